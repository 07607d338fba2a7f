package htxgen

import (
	"strings"

	"github.com/grindlemire/go-htx/html"
)

// isKnownTag reports whether a lowercase name is in the tag vocabulary.
// Lowercase names outside it are compile errors; capitalized or dotted
// names refer to user components and pass through untouched.
func isKnownTag(name string) bool {
	return html.IsTag(name)
}

// isVoidTag reports whether the tag cannot take children. The analyzer
// rejects child content under them at compile time; the runtime enforces
// the same rule.
func isVoidTag(name string) bool {
	return html.IsVoid(name)
}

// isComponentName reports whether a tag name refers to a user component: an
// exported identifier, optionally package qualified.
func isComponentName(name string) bool {
	if strings.Contains(name, ".") {
		return true
	}
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

// tagIdent returns the constructor identifier in the html package for a
// known tag name.
func tagIdent(name string) string {
	if name == "html" {
		return "HTML"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
