// Package generator walks a schema-described content tree and emits component
// source: the value serializer, slot resolver, and component renderer recurse
// through the tree while import requests accumulate in a per-run registry, and
// the façade assembles the final module shell around the rendered body.
//
// Generation is a pure function of (tree, schema, options): identical inputs
// produce byte-identical output, and a failed run returns no partial output.
package generator
