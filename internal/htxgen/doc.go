// Package htxgen implements the .htx to Go compiler: a scanner that splits
// mixed Go/markup source into spans, a parser that builds markup trees, an
// analyzer that validates tags, attributes, and imports, and a generator
// that rewrites each markup span into nested constructor calls.
//
// The pipeline preserves line numbers by contract: every span of the input
// occupies exactly the same number of lines in the output, so panics and
// compiler diagnostics in generated files point at the matching line of the
// .htx source. A JSON source map is produced alongside for tooling.
package htxgen
