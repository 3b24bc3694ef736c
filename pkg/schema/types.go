package schema

import (
	"fmt"

	"github.com/goliatone/go-pagegen/pkg/codegen"
)

// FieldKind is the simplified enum governing how a prop value is serialized.
type FieldKind string

const (
	FieldKindText    FieldKind = "text"
	FieldKindNumber  FieldKind = "number"
	FieldKindBoolean FieldKind = "boolean"
	FieldKindSlot    FieldKind = "slot"
	FieldKindArray   FieldKind = "array"
	FieldKindObject  FieldKind = "object"
)

// Valid reports whether the kind is one of the declared field kinds.
func (k FieldKind) Valid() bool {
	switch k {
	case FieldKindText, FieldKindNumber, FieldKindBoolean, FieldKindSlot, FieldKindArray, FieldKindObject:
		return true
	default:
		return false
	}
}

// FieldDescriptor declares how a single prop is serialized. Composite kinds
// carry their nested schema: Items for arrays, Fields for objects. Descriptors
// are supplied by the schema collaborator and treated as immutable.
type FieldDescriptor struct {
	Kind   FieldKind
	Items  *FieldDescriptor
	Fields map[string]FieldDescriptor
}

// PropsTransform remaps the raw prop map and resolved slot expressions into
// the authoritative attribute set for a node. The returned map wholly replaces
// the default mapping: it may rename, drop, or re-introduce any field,
// including redirecting a slot expression into the conventional "children"
// key. Returned values that already are codegen expressions are emitted as-is.
type PropsTransform func(props map[string]any, slots map[string]codegen.Expr) map[string]any

// ComponentConfig is the per-type behavior record looked up once per node
// render. It replaces inheritance-style dispatch with a plain schema table.
type ComponentConfig struct {
	// Fields maps prop names to their descriptors.
	Fields map[string]FieldDescriptor

	// OutputName overrides the emitted tag name. Empty means derive from the
	// component type name.
	OutputName string

	// Imports lists the module dependencies the emitted tag needs.
	Imports []codegen.ImportSpec

	// Transform, when set, replaces the default prop mapping for this type.
	Transform PropsTransform

	// Skip drops nodes of this type from the output entirely, nested slots
	// included.
	Skip bool

	// Description is informational metadata carried from schema documents.
	// Loader-sourced descriptions are sanitized before they get here.
	Description string
}

// Field returns the descriptor for a prop name, if declared.
func (c ComponentConfig) Field(name string) (FieldDescriptor, bool) {
	desc, ok := c.Fields[name]
	return desc, ok
}

// Schema is the type→config table consulted during rendering.
type Schema map[string]ComponentConfig

// Config resolves a component type name. Every node type in a tree must
// resolve; the generator treats a miss as fatal.
func (s Schema) Config(name string) (ComponentConfig, bool) {
	cfg, ok := s[name]
	return cfg, ok
}

// WithTransform attaches a props-transform hook to an already-registered
// component type. Hooks are code-only and cannot come from schema documents.
func (s Schema) WithTransform(name string, transform PropsTransform) error {
	cfg, ok := s[name]
	if !ok {
		return fmt.Errorf("schema: component type %q not registered", name)
	}
	cfg.Transform = transform
	s[name] = cfg
	return nil
}
