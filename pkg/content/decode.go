package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeTree reads a content tree from a JSON or YAML payload. Accepted
// shapes: a bare sequence of nodes, a single node, or a document wrapping the
// sequence under a "content" key (the export format of the composition
// editor).
func DecodeTree(raw []byte) (Sequence, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("content: tree payload is empty")
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("content: decode tree: %w", err)
	}

	if wrapper, ok := doc.(map[string]any); ok {
		if inner, found := wrapper["content"]; found {
			doc = inner
		}
	}

	switch v := doc.(type) {
	case []any:
		seq := make(Sequence, 0, len(v))
		for i, item := range v {
			node, ok := IsNodeShaped(item)
			if !ok {
				return nil, fmt.Errorf("content: entry %d is not a content node", i)
			}
			seq = append(seq, node)
		}
		return seq, nil
	case map[string]any:
		node, ok := IsNodeShaped(v)
		if !ok {
			return nil, fmt.Errorf("content: document is not a content node")
		}
		return Sequence{node}, nil
	default:
		return nil, fmt.Errorf("content: unsupported tree document")
	}
}
