package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsNodeShaped(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"typed node", Node{Type: "hero"}, true},
		{"typed node without type", Node{}, false},
		{"map with props", map[string]any{"type": "hero", "props": map[string]any{"x": 1}}, true},
		{"map without props", map[string]any{"type": "hero"}, true},
		{"map with empty type", map[string]any{"type": "", "props": map[string]any{}}, false},
		{"map with non-map props", map[string]any{"type": "hero", "props": "nope"}, false},
		{"scalar", "hero", false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, got := IsNodeShaped(tc.value); got != tc.want {
				t.Fatalf("IsNodeShaped(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestNodeID(t *testing.T) {
	node := Node{Type: "card", Props: map[string]any{"id": "card-1"}}
	id, ok := node.ID()
	if !ok || id != "card-1" {
		t.Fatalf("ID() = %q, %v", id, ok)
	}

	if _, ok := (Node{Type: "card"}).ID(); ok {
		t.Fatal("expected no id")
	}
	if _, ok := (Node{Type: "card", Props: map[string]any{"id": 7}}).ID(); ok {
		t.Fatal("non-string id should not resolve")
	}
}

func TestCoerceSequenceDropsNonNodes(t *testing.T) {
	value := []any{
		map[string]any{"type": "card", "props": map[string]any{"title": "A"}},
		"stray literal",
		map[string]any{"props": map[string]any{}},
		map[string]any{"type": "card", "props": map[string]any{"title": "B"}},
	}

	got := CoerceSequence(value)
	want := Sequence{
		{Type: "card", Props: map[string]any{"title": "A"}},
		{Type: "card", Props: map[string]any{"title": "B"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestCoerceSequenceSingleNode(t *testing.T) {
	got := CoerceSequence(map[string]any{"type": "hero", "props": map[string]any{}})
	if len(got) != 1 || got[0].Type != "hero" {
		t.Fatalf("unexpected sequence: %+v", got)
	}
}

func TestCoerceSequencePassthrough(t *testing.T) {
	seq := Sequence{{Type: "a"}}
	if diff := cmp.Diff(seq, CoerceSequence(seq)); diff != "" {
		t.Fatalf("sequence not passed through:\n%s", diff)
	}
	if CoerceSequence(nil) != nil {
		t.Fatal("nil should coerce to nil")
	}
	if CoerceSequence(42) != nil {
		t.Fatal("scalar should coerce to nil")
	}
}
