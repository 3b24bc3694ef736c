package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-pagegen/pkg/codegen"
	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/schema"
)

// serialize turns a typed field value into an output expression. A nil
// expression (with nil error) means the value is absent and the caller must
// omit the attribute or key entirely. Values that already carry generated
// code pass through untouched.
func (r *run) serialize(value any, desc *schema.FieldDescriptor, depth int) (codegen.Expr, error) {
	if expr, ok := codegen.AsExpr(value); ok {
		return expr, nil
	}
	if value == nil {
		return nil, nil
	}
	if desc == nil {
		return genericLiteral(value), nil
	}

	switch desc.Kind {
	case schema.FieldKindText, schema.FieldKindNumber, schema.FieldKindBoolean:
		return primitiveLiteral(value), nil
	case schema.FieldKindSlot:
		return r.resolveSlot(content.CoerceSequence(value), depth+1)
	case schema.FieldKindArray:
		return r.serializeArray(value, desc, depth)
	case schema.FieldKindObject:
		return r.serializeObject(value, desc, depth)
	default:
		return genericLiteral(value), nil
	}
}

// serializeArray serializes each element individually. Elements that
// structurally match a content node render as nested components rather than
// data literals, which lets array-typed fields carry nested markup.
func (r *run) serializeArray(value any, desc *schema.FieldDescriptor, depth int) (codegen.Expr, error) {
	items, ok := value.([]any)
	if !ok {
		return genericLiteral(value), nil
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		if node, isNode := content.IsNodeShaped(item); isNode {
			el, err := r.renderNode(node, depth+1, true)
			if err != nil {
				return nil, err
			}
			if el == nil {
				continue
			}
			parts = append(parts, r.gen.writer.Inline(el))
			continue
		}
		expr, err := r.serialize(item, desc.Items, depth)
		if err != nil {
			return nil, err
		}
		parts = append(parts, exprCode(r.gen.writer, expr))
	}
	return codegen.Literal{Code: "[" + strings.Join(parts, ", ") + "]"}, nil
}

// serializeObject serializes each key against its sub-descriptor, falling
// back to the generic literal for undeclared keys. Keys with absent values
// are omitted.
func (r *run) serializeObject(value any, desc *schema.FieldDescriptor, depth int) (codegen.Expr, error) {
	mapped, ok := value.(map[string]any)
	if !ok {
		return genericLiteral(value), nil
	}

	keys := make([]string, 0, len(mapped))
	for key := range mapped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if mapped[key] == nil {
			continue
		}
		var sub *schema.FieldDescriptor
		if child, found := desc.Fields[key]; found {
			sub = &child
		}
		expr, err := r.serialize(mapped[key], sub, depth)
		if err != nil {
			return nil, err
		}
		if expr == nil {
			continue
		}
		parts = append(parts, objectKey(key)+": "+exprCode(r.gen.writer, expr))
	}
	if len(parts) == 0 {
		return codegen.Literal{Code: "{}"}, nil
	}
	return codegen.Literal{Code: "{ " + strings.Join(parts, ", ") + " }"}, nil
}

// primitiveLiteral encodes a schemed primitive. Mistyped values degrade to
// the generic encoding instead of failing the run.
func primitiveLiteral(value any) codegen.Expr {
	return genericLiteral(value)
}

// genericLiteral is the schema-free fallback: strings quoted, numbers and
// booleans bare, maps and slices structurally mirrored. It never errors and
// never invokes slot logic.
func genericLiteral(value any) codegen.Expr {
	switch v := value.(type) {
	case string:
		return codegen.Literal{Code: quoteJS(v), Str: true}
	case bool:
		return codegen.Literal{Code: strconv.FormatBool(v)}
	case int:
		return codegen.Literal{Code: strconv.Itoa(v)}
	case int64:
		return codegen.Literal{Code: strconv.FormatInt(v, 10)}
	case uint64:
		return codegen.Literal{Code: strconv.FormatUint(v, 10)}
	case float32:
		return codegen.Literal{Code: formatFloat(float64(v))}
	case float64:
		return codegen.Literal{Code: formatFloat(v)}
	case json.Number:
		return codegen.Literal{Code: v.String()}
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				parts = append(parts, "null")
				continue
			}
			parts = append(parts, literalCode(genericLiteral(item)))
		}
		return codegen.Literal{Code: "[" + strings.Join(parts, ", ") + "]"}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			if v[key] == nil {
				continue
			}
			parts = append(parts, objectKey(key)+": "+literalCode(genericLiteral(v[key])))
		}
		if len(parts) == 0 {
			return codegen.Literal{Code: "{}"}
		}
		return codegen.Literal{Code: "{ " + strings.Join(parts, ", ") + " }"}
	case nil:
		return codegen.Literal{Code: "null"}
	default:
		return codegen.Literal{Code: quoteJS(fmt.Sprintf("%v", v)), Str: true}
	}
}

func literalCode(expr codegen.Expr) string {
	if lit, ok := expr.(codegen.Literal); ok {
		return lit.Code
	}
	if raw, ok := expr.(codegen.Raw); ok {
		return raw.Code
	}
	return ""
}

// exprCode renders an expression for use inside a data literal.
func exprCode(writer *codegen.Writer, expr codegen.Expr) string {
	switch v := expr.(type) {
	case codegen.Literal:
		return v.Code
	case codegen.Raw:
		return v.Code
	case *codegen.Element:
		return writer.Inline(v)
	case nil:
		return "null"
	default:
		return "null"
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// quoteJS encodes a string as a double-quoted JS literal without the HTML
// escaping encoding/json applies by default.
func quoteJS(s string) string {
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func objectKey(key string) string {
	if identifierPattern.MatchString(key) {
		return key
	}
	return quoteJS(key)
}
