package content

// Node is one instance of a typed, schema-governed tree element produced by
// the page-composition editor. Props values may be scalars, nested
// maps/slices, or — for slot fields — further node sequences. A node has no
// identity beyond its position in its parent sequence except an optional "id"
// prop used for stable list keys.
type Node struct {
	Type  string         `json:"type" yaml:"type"`
	Props map[string]any `json:"props" yaml:"props"`
}

// Sequence is an ordered run of sibling nodes. Order is rendering order and
// is preserved exactly.
type Sequence []Node

// ID returns the node's identifier prop when present.
func (n Node) ID() (string, bool) {
	id, ok := n.Props["id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// IsNodeShaped reports whether an arbitrary value structurally matches a
// content node: a map carrying a non-empty "type" string and a "props" map.
// This is a deliberate, narrow convention used to let array- and object-typed
// fields carry nested components; it is not general structural inference.
func IsNodeShaped(value any) (Node, bool) {
	switch v := value.(type) {
	case Node:
		return v, v.Type != ""
	case map[string]any:
		typ, ok := v["type"].(string)
		if !ok || typ == "" {
			return Node{}, false
		}
		if raw, present := v["props"]; present {
			props, ok := raw.(map[string]any)
			if !ok {
				return Node{}, false
			}
			return Node{Type: typ, Props: props}, true
		}
		return Node{Type: typ}, true
	default:
		return Node{}, false
	}
}

// CoerceSequence interprets a raw prop value as a node sequence. Slot values
// arrive either as typed sequences or as decoded []any payloads; entries that
// are not node shaped are dropped so a malformed slot degrades to an empty
// sequence instead of leaking literals into slot rendering.
func CoerceSequence(value any) Sequence {
	switch v := value.(type) {
	case nil:
		return nil
	case Sequence:
		return v
	case []Node:
		return Sequence(v)
	case []any:
		seq := make(Sequence, 0, len(v))
		for _, item := range v {
			if node, ok := IsNodeShaped(item); ok {
				seq = append(seq, node)
			}
		}
		return seq
	default:
		if node, ok := IsNodeShaped(value); ok {
			return Sequence{node}
		}
		return nil
	}
}
