package generator

import (
	"sort"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/goliatone/go-pagegen/pkg/codegen"
	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/schema"
)

// run carries the state owned by a single generation call: the shared import
// registry and the generator configuration. It is created fresh per call and
// discarded afterwards, so concurrent generations never share state.
type run struct {
	gen     *Generator
	imports *codegen.ImportRegistry
}

// renderNode renders one content node into an element. A nil element (with
// nil error) means the node is skip-configured and contributes no output.
func (r *run) renderNode(node content.Node, depth int, listItem bool) (*codegen.Element, error) {
	if depth > r.gen.cfg.maxDepth {
		return nil, ErrDepthExceeded
	}

	cfg, ok := r.gen.schema.Config(node.Type)
	if !ok {
		return nil, &UnknownComponentTypeError{Type: node.Type}
	}
	if cfg.Skip {
		return nil, nil
	}

	props, slots, err := r.partitionProps(node, cfg, depth)
	if err != nil {
		return nil, err
	}

	nodeID, _ := node.ID()
	r.stripBookkeeping(props)

	if cfg.Transform != nil {
		props = cfg.Transform(props, slots)
		if props == nil {
			props = map[string]any{}
		}
	} else {
		for name, expr := range slots {
			props[name] = expr
		}
	}

	el := &codegen.Element{Tag: tagName(node.Type, cfg)}
	children := r.extractChildren(props)

	for _, spec := range cfg.Imports {
		if err := r.imports.Register(spec); err != nil {
			return nil, err
		}
	}

	if err := r.applyAttrs(el, props, cfg, depth, listItem, nodeID); err != nil {
		return nil, err
	}

	el.Children = children
	return el, nil
}

// partitionProps splits node props into slot expressions and plain values
// using the type's field descriptors. Slot values are always treated as
// content sequences, never as literals, even when empty or malformed.
func (r *run) partitionProps(node content.Node, cfg schema.ComponentConfig, depth int) (map[string]any, map[string]codegen.Expr, error) {
	props := make(map[string]any, len(node.Props))
	slots := make(map[string]codegen.Expr)

	for name, value := range node.Props {
		desc, declared := cfg.Field(name)
		if declared && desc.Kind == schema.FieldKindSlot {
			expr, err := r.resolveSlot(content.CoerceSequence(value), depth+1)
			if err != nil {
				return nil, nil, err
			}
			if expr != nil {
				slots[name] = expr
			}
			continue
		}
		props[name] = value
	}
	return props, slots, nil
}

// stripBookkeeping removes editor-internal props before any transform runs:
// the node identifier (unless preservation is configured) and underscore-
// prefixed editor flags.
func (r *run) stripBookkeeping(props map[string]any) {
	if !r.gen.cfg.preserveIDs {
		delete(props, "id")
	}
	for name := range props {
		if strings.HasPrefix(name, "_") {
			delete(props, name)
		}
	}
}

// extractChildren pulls the conventional "children" entry out of the prop
// map. Only resolved expressions move into child position: slot-declared
// children arrive here as expressions, and transforms redirect slots the same
// way. A plain value named "children" stays a prop and serializes as an
// attribute like any other non-slot field. A fragment expression is unwrapped
// so its children sit directly under the element; any other expression
// becomes the sole child.
func (r *run) extractChildren(props map[string]any) []codegen.Expr {
	raw, ok := props["children"]
	if !ok {
		return nil
	}
	expr, isExpr := codegen.AsExpr(raw)
	if !isExpr {
		return nil
	}
	delete(props, "children")

	if frag, isFragment := expr.(*codegen.Element); isFragment && frag.Tag == "" && len(frag.Attrs) == 0 {
		return frag.Children
	}
	return []codegen.Expr{expr}
}

// applyAttrs serializes the remaining props into attributes. Go maps are
// unordered, so attributes use a canonical order: the list-identity attribute
// first, then names ascending. Descriptor lookup is by the prop's current
// name; fields a transform renamed fall back to the generic encoding.
func (r *run) applyAttrs(el *codegen.Element, props map[string]any, cfg schema.ComponentConfig, depth int, listItem bool, nodeID string) error {
	names := make([]string, 0, len(props))
	hasKey := false
	for name := range props {
		if name == "key" {
			hasKey = true
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if hasKey {
		names = append([]string{"key"}, names...)
	} else if listItem && r.gen.cfg.listKeys && nodeID != "" {
		el.SetAttr("key", codegen.Literal{Code: quoteJS(nodeID), Str: true})
	}

	for _, name := range names {
		var desc *schema.FieldDescriptor
		if d, declared := cfg.Field(name); declared {
			desc = &d
		}
		expr, err := r.serialize(props[name], desc, depth)
		if err != nil {
			return err
		}
		if expr == nil {
			continue
		}
		el.SetAttr(name, expr)
	}
	return nil
}

// tagName resolves the emitted tag: the declared output name, the raw type
// string when it is already a valid tag, otherwise a camelized form of the
// type name.
func tagName(typeName string, cfg schema.ComponentConfig) string {
	if cfg.OutputName != "" {
		return cfg.OutputName
	}
	if identifierPattern.MatchString(typeName) {
		return typeName
	}
	normalized := strings.NewReplacer("-", "_", " ", "_", ".", "_").Replace(typeName)
	return inflect.Camelize(normalized)
}
