package generator

import (
	"github.com/goliatone/go-pagegen/pkg/codegen"
	"github.com/goliatone/go-pagegen/pkg/content"
)

// resolveSlot renders a nested content sequence into a single expression.
// A nil expression means the slot is empty and the caller omits the
// attribute or child entirely. One rendered element stays bare; two or more
// are wrapped in an anonymous fragment so they form one expression. The
// asymmetry is deliberate: it avoids a useless wrapper in the common
// single-child case. A sequence whose children all render to nothing (skip)
// collapses to nil, same as an empty sequence.
func (r *run) resolveSlot(seq content.Sequence, depth int) (codegen.Expr, error) {
	if len(seq) == 0 {
		return nil, nil
	}

	listItem := len(seq) > 1
	rendered := make([]codegen.Expr, 0, len(seq))
	for _, node := range seq {
		el, err := r.renderNode(node, depth, listItem)
		if err != nil {
			return nil, err
		}
		if el == nil {
			continue
		}
		rendered = append(rendered, el)
	}

	switch len(rendered) {
	case 0:
		return nil, nil
	case 1:
		return rendered[0], nil
	default:
		return codegen.Fragment(rendered...), nil
	}
}
