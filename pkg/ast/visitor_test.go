package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fernlang/fernc/pkg/ast"
)

type itemCapturer struct {
	names []string
	ids   map[ast.NodeID]int
}

func (c *itemCapturer) VisitItem(item *ast.Item) {
	c.names = append(c.names, item.Name)
	c.ids[item.ID]++
}

func TestWalk(t *testing.T) {
	for name, tc := range map[string]struct {
		crate *ast.Crate
		want  []string
	}{
		"degenerate": {
			crate: &ast.Crate{},
			want:  nil,
		},
		"flat": {
			crate: &ast.Crate{
				Items: []*ast.Item{
					{ID: 1, Name: "a"},
					{ID: 2, Name: "b"},
				},
			},
			want: []string{"a", "b"},
		},
		"nested preorder": {
			crate: &ast.Crate{
				Items: []*ast.Item{
					{ID: 1, Name: "mod_a", Items: []*ast.Item{
						{ID: 2, Name: "inner_a"},
						{ID: 3, Name: "mod_b", Items: []*ast.Item{
							{ID: 4, Name: "inner_b"},
						}},
					}},
					{ID: 5, Name: "c"},
				},
			},
			want: []string{"mod_a", "inner_a", "mod_b", "inner_b", "c"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			capturer := &itemCapturer{ids: make(map[ast.NodeID]int)}
			ast.Walk(capturer, tc.crate)
			if diff := cmp.Diff(tc.want, capturer.names); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			for id, count := range capturer.ids {
				if count != 1 {
					t.Errorf("item %d visited %d times, want exactly once", id, count)
				}
			}
		})
	}
}

func TestLocalDef(t *testing.T) {
	id := ast.LocalDef(42)
	if !id.IsLocal() {
		t.Error("LocalDef should produce a local DefID")
	}
	if id.Node != 42 {
		t.Errorf("got node %d, want 42", id.Node)
	}
	other := ast.DefID{Crate: 3, Node: 42}
	if other.IsLocal() {
		t.Error("DefID with nonzero crate should not be local")
	}
	if id == other {
		t.Error("DefIDs with different crates must not compare equal")
	}
}
