package htx

import "strings"

// Raw marks text that must be written to output without escaping. Text
// children and string prop values are escaped otherwise.
type Raw string

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", `"`, "&quot;")
)

// escapeText escapes text content: & < and >.
func escapeText(s string) string { return textEscaper.Replace(s) }

// escapeAttr escapes double-quoted attribute values: & and ".
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
