// Package html is the markup tag vocabulary for the htx runtime.
//
// Every known tag has a constructor taking a prop map and children, all
// returning the shared Tag element. The compiler emits calls to these
// constructors for lowercase tag names, so the vocabulary here is also
// what .htx files may use. The package also carries the style and script
// collectors and the raw, comment and doctype helpers.
package html
