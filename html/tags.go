package html

import (
	htx "github.com/grindlemire/go-htx"
)

// A builds an <a> element.
func A(props htx.Props, children ...any) *Tag { return newTag("a", props, children) }

// Abbr builds an <abbr> element.
func Abbr(props htx.Props, children ...any) *Tag { return newTag("abbr", props, children) }

// Address builds an <address> element.
func Address(props htx.Props, children ...any) *Tag { return newTag("address", props, children) }

// Area builds an <area> element.
func Area(props htx.Props, children ...any) *Tag { return newTag("area", props, children) }

// Article builds an <article> element.
func Article(props htx.Props, children ...any) *Tag { return newTag("article", props, children) }

// Aside builds an <aside> element.
func Aside(props htx.Props, children ...any) *Tag { return newTag("aside", props, children) }

// Audio builds an <audio> element.
func Audio(props htx.Props, children ...any) *Tag { return newTag("audio", props, children) }

// B builds a <b> element.
func B(props htx.Props, children ...any) *Tag { return newTag("b", props, children) }

// Base builds a <base> element.
func Base(props htx.Props, children ...any) *Tag { return newTag("base", props, children) }

// Bdi builds a <bdi> element.
func Bdi(props htx.Props, children ...any) *Tag { return newTag("bdi", props, children) }

// Bdo builds a <bdo> element.
func Bdo(props htx.Props, children ...any) *Tag { return newTag("bdo", props, children) }

// Blockquote builds a <blockquote> element.
func Blockquote(props htx.Props, children ...any) *Tag { return newTag("blockquote", props, children) }

// Body builds a <body> element.
func Body(props htx.Props, children ...any) *Tag { return newTag("body", props, children) }

// Br builds a <br> element.
func Br(props htx.Props, children ...any) *Tag { return newTag("br", props, children) }

// Button builds a <button> element.
func Button(props htx.Props, children ...any) *Tag { return newTag("button", props, children) }

// Canvas builds a <canvas> element.
func Canvas(props htx.Props, children ...any) *Tag { return newTag("canvas", props, children) }

// Caption builds a <caption> element.
func Caption(props htx.Props, children ...any) *Tag { return newTag("caption", props, children) }

// Cite builds a <cite> element.
func Cite(props htx.Props, children ...any) *Tag { return newTag("cite", props, children) }

// Code builds a <code> element.
func Code(props htx.Props, children ...any) *Tag { return newTag("code", props, children) }

// Col builds a <col> element.
func Col(props htx.Props, children ...any) *Tag { return newTag("col", props, children) }

// Colgroup builds a <colgroup> element.
func Colgroup(props htx.Props, children ...any) *Tag { return newTag("colgroup", props, children) }

// Data builds a <data> element.
func Data(props htx.Props, children ...any) *Tag { return newTag("data", props, children) }

// Datalist builds a <datalist> element.
func Datalist(props htx.Props, children ...any) *Tag { return newTag("datalist", props, children) }

// Dd builds a <dd> element.
func Dd(props htx.Props, children ...any) *Tag { return newTag("dd", props, children) }

// Del builds a <del> element.
func Del(props htx.Props, children ...any) *Tag { return newTag("del", props, children) }

// Details builds a <details> element.
func Details(props htx.Props, children ...any) *Tag { return newTag("details", props, children) }

// Dfn builds a <dfn> element.
func Dfn(props htx.Props, children ...any) *Tag { return newTag("dfn", props, children) }

// Div builds a <div> element.
func Div(props htx.Props, children ...any) *Tag { return newTag("div", props, children) }

// Dl builds a <dl> element.
func Dl(props htx.Props, children ...any) *Tag { return newTag("dl", props, children) }

// Dt builds a <dt> element.
func Dt(props htx.Props, children ...any) *Tag { return newTag("dt", props, children) }

// Em builds an <em> element.
func Em(props htx.Props, children ...any) *Tag { return newTag("em", props, children) }

// Embed builds an <embed> element.
func Embed(props htx.Props, children ...any) *Tag { return newTag("embed", props, children) }

// Fieldset builds a <fieldset> element.
func Fieldset(props htx.Props, children ...any) *Tag { return newTag("fieldset", props, children) }

// Figcaption builds a <figcaption> element.
func Figcaption(props htx.Props, children ...any) *Tag { return newTag("figcaption", props, children) }

// Figure builds a <figure> element.
func Figure(props htx.Props, children ...any) *Tag { return newTag("figure", props, children) }

// Footer builds a <footer> element.
func Footer(props htx.Props, children ...any) *Tag { return newTag("footer", props, children) }

// Form builds a <form> element.
func Form(props htx.Props, children ...any) *Tag { return newTag("form", props, children) }

// H1 builds an <h1> element.
func H1(props htx.Props, children ...any) *Tag { return newTag("h1", props, children) }

// H2 builds an <h2> element.
func H2(props htx.Props, children ...any) *Tag { return newTag("h2", props, children) }

// H3 builds an <h3> element.
func H3(props htx.Props, children ...any) *Tag { return newTag("h3", props, children) }

// H4 builds an <h4> element.
func H4(props htx.Props, children ...any) *Tag { return newTag("h4", props, children) }

// H5 builds an <h5> element.
func H5(props htx.Props, children ...any) *Tag { return newTag("h5", props, children) }

// H6 builds an <h6> element.
func H6(props htx.Props, children ...any) *Tag { return newTag("h6", props, children) }

// Head builds a <head> element.
func Head(props htx.Props, children ...any) *Tag { return newTag("head", props, children) }

// Header builds a <header> element.
func Header(props htx.Props, children ...any) *Tag { return newTag("header", props, children) }

// Hr builds an <hr> element.
func Hr(props htx.Props, children ...any) *Tag { return newTag("hr", props, children) }

// HTML builds an <html> element.
func HTML(props htx.Props, children ...any) *Tag { return newTag("html", props, children) }

// I builds an <i> element.
func I(props htx.Props, children ...any) *Tag { return newTag("i", props, children) }

// Iframe builds an <iframe> element.
func Iframe(props htx.Props, children ...any) *Tag { return newTag("iframe", props, children) }

// Img builds an <img> element.
func Img(props htx.Props, children ...any) *Tag { return newTag("img", props, children) }

// Input builds an <input> element.
func Input(props htx.Props, children ...any) *Tag { return newTag("input", props, children) }

// Ins builds an <ins> element.
func Ins(props htx.Props, children ...any) *Tag { return newTag("ins", props, children) }

// Kbd builds a <kbd> element.
func Kbd(props htx.Props, children ...any) *Tag { return newTag("kbd", props, children) }

// Label builds a <label> element.
func Label(props htx.Props, children ...any) *Tag { return newTag("label", props, children) }

// Legend builds a <legend> element.
func Legend(props htx.Props, children ...any) *Tag { return newTag("legend", props, children) }

// Li builds an <li> element.
func Li(props htx.Props, children ...any) *Tag { return newTag("li", props, children) }

// Link builds a <link> element.
func Link(props htx.Props, children ...any) *Tag { return newTag("link", props, children) }

// Main builds a <main> element.
func Main(props htx.Props, children ...any) *Tag { return newTag("main", props, children) }

// Map builds a <map> element.
func Map(props htx.Props, children ...any) *Tag { return newTag("map", props, children) }

// Mark builds a <mark> element.
func Mark(props htx.Props, children ...any) *Tag { return newTag("mark", props, children) }

// Meta builds a <meta> element.
func Meta(props htx.Props, children ...any) *Tag { return newTag("meta", props, children) }

// Meter builds a <meter> element.
func Meter(props htx.Props, children ...any) *Tag { return newTag("meter", props, children) }

// Nav builds a <nav> element.
func Nav(props htx.Props, children ...any) *Tag { return newTag("nav", props, children) }

// Noscript builds a <noscript> element.
func Noscript(props htx.Props, children ...any) *Tag { return newTag("noscript", props, children) }

// Object builds an <object> element.
func Object(props htx.Props, children ...any) *Tag { return newTag("object", props, children) }

// Ol builds an <ol> element.
func Ol(props htx.Props, children ...any) *Tag { return newTag("ol", props, children) }

// Optgroup builds an <optgroup> element.
func Optgroup(props htx.Props, children ...any) *Tag { return newTag("optgroup", props, children) }

// Option builds an <option> element.
func Option(props htx.Props, children ...any) *Tag { return newTag("option", props, children) }

// Output builds an <output> element.
func Output(props htx.Props, children ...any) *Tag { return newTag("output", props, children) }

// P builds a <p> element.
func P(props htx.Props, children ...any) *Tag { return newTag("p", props, children) }

// Param builds a <param> element.
func Param(props htx.Props, children ...any) *Tag { return newTag("param", props, children) }

// Picture builds a <picture> element.
func Picture(props htx.Props, children ...any) *Tag { return newTag("picture", props, children) }

// Pre builds a <pre> element.
func Pre(props htx.Props, children ...any) *Tag { return newTag("pre", props, children) }

// Progress builds a <progress> element.
func Progress(props htx.Props, children ...any) *Tag { return newTag("progress", props, children) }

// Q builds a <q> element.
func Q(props htx.Props, children ...any) *Tag { return newTag("q", props, children) }

// Rp builds an <rp> element.
func Rp(props htx.Props, children ...any) *Tag { return newTag("rp", props, children) }

// Rt builds an <rt> element.
func Rt(props htx.Props, children ...any) *Tag { return newTag("rt", props, children) }

// Rtc builds an <rtc> element.
func Rtc(props htx.Props, children ...any) *Tag { return newTag("rtc", props, children) }

// Ruby builds a <ruby> element.
func Ruby(props htx.Props, children ...any) *Tag { return newTag("ruby", props, children) }

// S builds an <s> element.
func S(props htx.Props, children ...any) *Tag { return newTag("s", props, children) }

// Samp builds a <samp> element.
func Samp(props htx.Props, children ...any) *Tag { return newTag("samp", props, children) }

// Script builds a <script> element.
func Script(props htx.Props, children ...any) *Tag { return newTag("script", props, children) }

// Section builds a <section> element.
func Section(props htx.Props, children ...any) *Tag { return newTag("section", props, children) }

// Select builds a <select> element.
func Select(props htx.Props, children ...any) *Tag { return newTag("select", props, children) }

// Slot builds a <slot> element.
func Slot(props htx.Props, children ...any) *Tag { return newTag("slot", props, children) }

// Source builds a <source> element.
func Source(props htx.Props, children ...any) *Tag { return newTag("source", props, children) }

// Span builds a <span> element.
func Span(props htx.Props, children ...any) *Tag { return newTag("span", props, children) }

// Strong builds a <strong> element.
func Strong(props htx.Props, children ...any) *Tag { return newTag("strong", props, children) }

// Style builds a <style> element.
func Style(props htx.Props, children ...any) *Tag { return newTag("style", props, children) }

// Sub builds a <sub> element.
func Sub(props htx.Props, children ...any) *Tag { return newTag("sub", props, children) }

// Summary builds a <summary> element.
func Summary(props htx.Props, children ...any) *Tag { return newTag("summary", props, children) }

// Sup builds a <sup> element.
func Sup(props htx.Props, children ...any) *Tag { return newTag("sup", props, children) }

// Table builds a <table> element.
func Table(props htx.Props, children ...any) *Tag { return newTag("table", props, children) }

// Tbody builds a <tbody> element.
func Tbody(props htx.Props, children ...any) *Tag { return newTag("tbody", props, children) }

// Td builds a <td> element.
func Td(props htx.Props, children ...any) *Tag { return newTag("td", props, children) }

// Template builds a <template> element.
func Template(props htx.Props, children ...any) *Tag { return newTag("template", props, children) }

// Textarea builds a <textarea> element.
func Textarea(props htx.Props, children ...any) *Tag { return newTag("textarea", props, children) }

// Tfoot builds a <tfoot> element.
func Tfoot(props htx.Props, children ...any) *Tag { return newTag("tfoot", props, children) }

// Th builds a <th> element.
func Th(props htx.Props, children ...any) *Tag { return newTag("th", props, children) }

// Thead builds a <thead> element.
func Thead(props htx.Props, children ...any) *Tag { return newTag("thead", props, children) }

// Time builds a <time> element.
func Time(props htx.Props, children ...any) *Tag { return newTag("time", props, children) }

// Title builds a <title> element.
func Title(props htx.Props, children ...any) *Tag { return newTag("title", props, children) }

// Tr builds a <tr> element.
func Tr(props htx.Props, children ...any) *Tag { return newTag("tr", props, children) }

// Track builds a <track> element.
func Track(props htx.Props, children ...any) *Tag { return newTag("track", props, children) }

// U builds a <u> element.
func U(props htx.Props, children ...any) *Tag { return newTag("u", props, children) }

// Ul builds a <ul> element.
func Ul(props htx.Props, children ...any) *Tag { return newTag("ul", props, children) }

// Var builds a <var> element.
func Var(props htx.Props, children ...any) *Tag { return newTag("var", props, children) }

// Video builds a <video> element.
func Video(props htx.Props, children ...any) *Tag { return newTag("video", props, children) }
