// Package codegen holds the output-side building blocks shared by the
// generator pipeline: the expression sum type distinguishing serialized
// literals from verbatim code, the element/fragment writer that produces
// JSX text, and the per-run import registry that deduplicates and orders
// module dependencies.
package codegen
