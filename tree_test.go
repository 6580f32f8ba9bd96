package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArena_GenerationChecks(t *testing.T) {
	var a arena
	first := a.insert(&node{name: "a"})
	if first.IsZero() {
		t.Fatal("insert returned the zero id")
	}
	if _, ok := a.get(NodeID{}); ok {
		t.Error("zero id resolved to a node")
	}
	if !a.remove(first) {
		t.Fatal("remove of live id failed")
	}
	if a.remove(first) {
		t.Error("second remove succeeded")
	}

	second := a.insert(&node{name: "b"})
	if second.index != first.index {
		t.Fatalf("slot not reused: %v then %v", first, second)
	}
	if _, ok := a.get(first); ok {
		t.Error("stale id resolved after slot reuse")
	}
	if n, ok := a.get(second); !ok || n.name != "b" {
		t.Errorf("get(%v) = %v, %v", second, n, ok)
	}
	if a.len() != 1 {
		t.Errorf("len = %d, want 1", a.len())
	}
}

func TestCore_AddValidation(t *testing.T) {
	type tc struct {
		name   string
		widget Widget
		want   ErrorKind
	}

	tests := map[string]tc{
		"empty name":      {name: "", widget: &testWidget{spec: DefaultLayoutSpec()}, want: KindInvalid},
		"slash in name":   {name: "a/b", widget: &testWidget{spec: DefaultLayoutSpec()}, want: KindInvalid},
		"glob in name":    {name: "item*", widget: &testWidget{spec: DefaultLayoutSpec()}, want: KindInvalid},
		"nil widget":      {name: "a", widget: nil, want: KindInvalid},
		"negative gap":    {name: "a", widget: &testWidget{spec: LayoutSpec{Gap: -1, Columns: 1}}, want: KindLayout},
		"zero flex":       {name: "a", widget: &testWidget{spec: LayoutSpec{Width: Flex(0), Columns: 1}}, want: KindLayout},
		"grid no columns": {name: "a", widget: &testWidget{spec: LayoutSpec{Direction: Grid}}, want: KindLayout},
		"valid":           {name: "a", widget: &testWidget{spec: DefaultLayoutSpec()}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCore()
			id, err := c.Add(tt.name, tt.widget)
			if tt.want == 0 {
				if err != nil || !c.Valid(id) {
					t.Fatalf("Add = %v, %v; want a live id", id, err)
				}
				return
			}
			if !IsKind(err, tt.want) {
				t.Fatalf("Add error = %v, want kind %v", err, tt.want)
			}
			if c.Len() != 0 {
				t.Errorf("Len = %d after failed Add", c.Len())
			}
		})
	}
}

// links captures every parent/child link in the core.
func links(c *Core, ids ...NodeID) map[NodeID][2][]NodeID {
	out := make(map[NodeID][2][]NodeID)
	for _, id := range ids {
		out[id] = [2][]NodeID{{c.Parent(id)}, c.Children(id)}
	}
	return out
}

func TestCore_SetChildrenErrorsLeaveLinksUnchanged(t *testing.T) {
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{})
	a := mustAdd(t, c, "a", &testWidget{})
	b := mustAdd(t, c, "b", &testWidget{})
	leaf := mustAdd(t, c, "leaf", &testWidget{})
	other := mustAdd(t, c, "other", &testWidget{})
	stale := mustAdd(t, c, "stale", &testWidget{})
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	mustChildren(t, c, root, a, other)
	mustChildren(t, c, a, b)
	mustChildren(t, c, b, leaf)
	if err := c.RemoveSubtree(stale); err != nil {
		t.Fatal(err)
	}
	all := []NodeID{root, a, b, leaf, other}

	type tc struct {
		parent   NodeID
		children []NodeID
		want     ErrorKind
	}

	tests := map[string]tc{
		"self":                 {parent: a, children: []NodeID{a}, want: KindWouldCreateCycle},
		"ancestor":             {parent: leaf, children: []NodeID{a}, want: KindWouldCreateCycle},
		"grandparent":          {parent: leaf, children: []NodeID{b}, want: KindWouldCreateCycle},
		"attached elsewhere":   {parent: b, children: []NodeID{leaf, other}, want: KindAlreadyAttached},
		"stale child":          {parent: b, children: []NodeID{leaf, stale}, want: KindNodeNotFound},
		"stale parent":         {parent: stale, children: []NodeID{leaf}, want: KindNodeNotFound},
		"duplicate":            {parent: b, children: []NodeID{leaf, leaf}, want: KindInvalid},
		"root as child":        {parent: other, children: []NodeID{root}, want: KindWouldCreateCycle},
		"second child invalid": {parent: b, children: []NodeID{leaf, root}, want: KindWouldCreateCycle},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			before := links(c, all...)
			err := c.SetChildren(tt.parent, tt.children...)
			if !IsKind(err, tt.want) {
				t.Fatalf("SetChildren error = %v, want kind %v", err, tt.want)
			}
			if diff := cmp.Diff(before, links(c, all...), cmp.AllowUnexported(NodeID{})); diff != "" {
				t.Errorf("links changed (-before +after):\n%s", diff)
			}
		})
	}
}

func TestCore_SetChildrenDetachesDropped(t *testing.T) {
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{})
	a := mustAdd(t, c, "a", &testWidget{})
	b := mustAdd(t, c, "b", &testWidget{})
	mustChildren(t, c, root, a, b)
	mustChildren(t, c, root, b)

	if !c.Valid(a) {
		t.Fatal("dropped child was freed")
	}
	if p := c.Parent(a); !p.IsZero() {
		t.Errorf("dropped child parent = %v, want none", p)
	}
	if diff := cmp.Diff([]NodeID{b}, c.Children(root), cmp.AllowUnexported(NodeID{})); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}

	// the detached node can be attached somewhere else
	mustChildren(t, c, b, a)
	if diff := cmp.Diff([]string{"root", "b", "a"}, c.Path(a)); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestCore_Detach(t *testing.T) {
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{})
	a := mustAdd(t, c, "a", &testWidget{})
	kid := mustAdd(t, c, "kid", &testWidget{})
	mustChildren(t, c, root, a)
	mustChildren(t, c, a, kid)

	if err := c.Detach(a); err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if len(c.Children(root)) != 0 {
		t.Errorf("root still has children %v", c.Children(root))
	}
	if !c.Valid(a) || !c.Valid(kid) || c.Parent(kid) != a {
		t.Error("detached subtree not kept intact")
	}
	if err := c.Detach(a); err != nil {
		t.Errorf("second Detach: %v", err)
	}
}

func TestCore_RemoveSubtree(t *testing.T) {
	var log []string
	c := NewCore()
	w := func() *testWidget { return &testWidget{log: &log, spec: box(4, 4)} }
	root := mustAdd(t, c, "root", w())
	a := mustAdd(t, c, "a", w())
	a1 := mustAdd(t, c, "a1", w())
	a2 := mustAdd(t, c, "a2", w())
	a2x := mustAdd(t, c, "a2x", w())
	b := mustAdd(t, c, "b", w())
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	mustChildren(t, c, root, a, b)
	mustChildren(t, c, a, a1, a2)
	mustChildren(t, c, a2, a2x)
	mustLayout(t, c, 10, 10)
	log = nil

	if err := c.RemoveSubtree(a); err != nil {
		t.Fatalf("RemoveSubtree: %v", err)
	}
	want := []string{"unmount a1", "unmount a2x", "unmount a2", "unmount a"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("unmount order mismatch (-want +got):\n%s", diff)
	}
	for _, id := range []NodeID{a, a1, a2, a2x} {
		if c.Valid(id) {
			t.Errorf("%v still valid", id)
		}
	}
	if !c.Valid(b) || c.Len() != 2 {
		t.Errorf("Len = %d, want root and b left", c.Len())
	}
	if err := c.RemoveSubtree(a); !IsKind(err, KindNodeNotFound) {
		t.Errorf("second RemoveSubtree = %v, want not found", err)
	}
	if err := c.SetChildren(root, a1); !IsKind(err, KindNodeNotFound) {
		t.Errorf("SetChildren with removed id = %v, want not found", err)
	}
}

func TestCore_RemoveSubtreeClearsFocus(t *testing.T) {
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{})
	panel := mustAdd(t, c, "panel", &testWidget{spec: box(5, 2)})
	btn := mustAdd(t, c, "btn", &testWidget{spec: box(3, 1), focusable: true})
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	mustChildren(t, c, root, panel)
	mustChildren(t, c, panel, btn)
	mustLayout(t, c, 10, 5)
	if err := c.SetFocus(btn); err != nil {
		t.Fatalf("SetFocus: %v", err)
	}
	gen := c.FocusGen()

	if err := c.RemoveSubtree(panel); err != nil {
		t.Fatal(err)
	}
	if id, ok := c.Focused(); ok {
		t.Errorf("focus = %v after removing its ancestor", id)
	}
	if c.FocusGen() == gen {
		t.Error("focus generation did not change")
	}
}

func TestCore_PathAndWalk(t *testing.T) {
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{})
	a := mustAdd(t, c, "a", &testWidget{})
	b := mustAdd(t, c, "b", &testWidget{})
	a1 := mustAdd(t, c, "a1", &testWidget{})
	mustChildren(t, c, root, a, b)
	mustChildren(t, c, a, a1)

	var got []string
	c.Walk(root, func(id NodeID, depth int) bool {
		got = append(got, c.Name(id))
		return c.Name(id) != "a" // skip a's children
	})
	if diff := cmp.Diff([]string{"root", "a", "b"}, got); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"root", "a", "a1"}, c.Path(a1)); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}
