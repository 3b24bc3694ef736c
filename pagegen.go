// Package pagegen converts schema-governed content trees produced by a visual
// page-composition editor into component module source: a renderable markup
// tree wrapped in an exported function, preceded by the deduplicated imports
// the referenced components need.
package pagegen

import (
	"context"

	"github.com/goliatone/go-pagegen/pkg/codegen"
	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/generator"
	"github.com/goliatone/go-pagegen/pkg/schema"
)

// Node is one typed element of a content tree.
type Node = content.Node

// Sequence is an ordered run of sibling nodes.
type Sequence = content.Sequence

// Schema maps component type names to their generation configs.
type Schema = schema.Schema

// ComponentConfig is the per-type behavior record consulted for each node.
type ComponentConfig = schema.ComponentConfig

// FieldDescriptor declares how a single prop is serialized.
type FieldDescriptor = schema.FieldDescriptor

// PropsTransform remaps raw props and resolved slots before serialization.
type PropsTransform = schema.PropsTransform

// ImportSpec declares a module dependency of an emitted component.
type ImportSpec = codegen.ImportSpec

// Option customises generator behavior.
type Option = generator.Option

// Result carries separately rendered body and import statements.
type Result = generator.Result

// WithFunctionName forwards the exported function name option.
func WithFunctionName(name string) Option {
	return generator.WithFunctionName(name)
}

// WithFrameworkImport forwards the baseline framework import toggle.
func WithFrameworkImport(enabled bool) Option {
	return generator.WithFrameworkImport(enabled)
}

// WithFrameworkModule forwards the framework module path option.
func WithFrameworkModule(module string) Option {
	return generator.WithFrameworkModule(module)
}

// WithPreserveIDs forwards the node-identifier preservation toggle.
func WithPreserveIDs(preserve bool) Option {
	return generator.WithPreserveIDs(preserve)
}

// WithListKeys forwards the list-identity synthesis toggle.
func WithListKeys(enabled bool) Option {
	return generator.WithListKeys(enabled)
}

// WithIndent forwards the indentation width option.
func WithIndent(width int) Option {
	return generator.WithIndent(width)
}

// WithMaxDepth forwards the recursion bound option.
func WithMaxDepth(depth int) Option {
	return generator.WithMaxDepth(depth)
}

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(sch Schema, options ...Option) (*generator.Generator, error) {
	return generator.New(sch, options...)
}

// Generate builds a generator over the schema and renders the tree as a
// complete module. It is the simplest entry point for one-shot generation.
func Generate(ctx context.Context, sch Schema, tree Sequence, options ...Option) (string, error) {
	gen, err := generator.New(sch, options...)
	if err != nil {
		return "", err
	}
	return gen.Generate(ctx, tree)
}

// GenerateParts renders the tree body and import statements separately for
// callers that assemble their own module shell.
func GenerateParts(ctx context.Context, sch Schema, tree Sequence, options ...Option) (Result, error) {
	gen, err := generator.New(sch, options...)
	if err != nil {
		return Result{}, err
	}
	return gen.GenerateParts(ctx, tree)
}

// LoadSchema reads a component schema document from disk.
func LoadSchema(path string) (Schema, error) {
	return schema.Load(path)
}

// DecodeTree parses a serialized content tree. It accepts a bare node
// sequence, a single node, or a document wrapping the sequence under a
// "content" key.
func DecodeTree(raw []byte) (Sequence, error) {
	return content.DecodeTree(raw)
}
