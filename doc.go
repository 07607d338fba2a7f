// Package htx is the runtime for components compiled from .htx files.
//
// Users import this single package for the complete public API:
// element construction, prop schemas and validation, context propagation,
// refs, collectors, and rendering to a string. The html subpackage holds
// the markup tag vocabulary, and cmd/htx compiles .htx files into Go.
package htx
