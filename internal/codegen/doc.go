// Package codegen renders a synthesized schema and its instance as Go source.
//
// Output layout, in order: the generated-code header, the import of the
// includefolder vocabulary package, one struct per schema type, compile-time
// Directory assertions, one Files method per type and the accessor function
// returning the populated value. The result is formatted with gofumpt.
package codegen
