package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLayout_MountsOnce(t *testing.T) {
	var log []string
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{log: &log})
	a := mustAdd(t, c, "a", &testWidget{log: &log, spec: box(3, 3)})
	b := mustAdd(t, c, "b", &testWidget{log: &log, spec: box(3, 3)})
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	mustChildren(t, c, root, a)
	mustLayout(t, c, 10, 10)
	mustLayout(t, c, 12, 10)

	// b was never attached, so it is not mounted
	if diff := cmp.Diff([]string{"mount root", "mount a"}, log); diff != "" {
		t.Errorf("mount log mismatch (-want +got):\n%s", diff)
	}

	mustChildren(t, c, root, a, b)
	mustLayout(t, c, 12, 10)
	if diff := cmp.Diff([]string{"mount root", "mount a", "mount b"}, log); diff != "" {
		t.Errorf("mount log mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_MountsNodesAddedDuringMount(t *testing.T) {
	var log []string
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{log: &log, onMount: func(ctx *Context) error {
		id, err := ctx.Add("late", &testWidget{name: "late", log: &log, spec: box(4, 2), text: "hi"})
		if err != nil {
			return err
		}
		return ctx.SetChildren(id)
	}})
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	mustLayout(t, c, 10, 4)

	if diff := cmp.Diff([]string{"mount root", "mount late"}, log); diff != "" {
		t.Errorf("mount log mismatch (-want +got):\n%s", diff)
	}
	ids, err := c.FindNodes("/root/late")
	if err != nil || len(ids) != 1 {
		t.Fatalf("FindNodes = %v, %v", ids, err)
	}
	if v, _ := c.View(ids[0]); v.Outer != NewRect(0, 0, 4, 2) {
		t.Errorf("late child view %v, want laid out in the same pass", v.Outer)
	}
}

func TestLayout_InvalidSpecOnlyAffectsSubtree(t *testing.T) {
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{})
	bad := &testWidget{spec: box(10, 3)}
	badID := mustAdd(t, c, "bad", bad)
	ok := mustAdd(t, c, "ok", &testWidget{spec: box(10, 2)})
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	mustChildren(t, c, root, badID, ok)
	mustLayout(t, c, 10, 10)

	bad.spec.Gap = -1
	err := c.Layout(Size{Width: 10, Height: 10})
	if !IsKind(err, KindLayout) {
		t.Fatalf("Layout error = %v, want layout kind", err)
	}
	if v, _ := c.View(badID); !v.IsEmpty() {
		t.Errorf("invalid node view %v, want empty", v.Outer)
	}
	if screen, _, _ := c.ScreenRect(ok); screen != NewRect(0, 0, 10, 2) {
		t.Errorf("sibling at %v, want moved up to (0,0,10,2)", screen)
	}

	bad.spec.Gap = 0
	mustLayout(t, c, 10, 10)
	if screen, _, _ := c.ScreenRect(ok); screen != NewRect(0, 3, 10, 2) {
		t.Errorf("sibling at %v after fix, want (0,3,10,2)", screen)
	}
}

func TestLayout_MountErrorIsReported(t *testing.T) {
	boom := errors.New("boom")
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{})
	broken := mustAdd(t, c, "broken", &testWidget{spec: box(4, 1), onMount: func(*Context) error { return boom }})
	fine := mustAdd(t, c, "fine", &testWidget{spec: box(4, 1)})
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	mustChildren(t, c, root, broken, fine)

	err := c.Layout(Size{Width: 10, Height: 4})
	if !IsKind(err, KindLayout) || !errors.Is(err, boom) {
		t.Fatalf("Layout error = %v, want layout kind wrapping boom", err)
	}
	if v, _ := c.View(fine); v.Outer != NewRect(0, 1, 4, 1) {
		t.Errorf("fine view %v, want laid out", v.Outer)
	}
	// OnMount is not retried
	mustLayout(t, c, 10, 4)
}

func TestLayout_ZeroSize(t *testing.T) {
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{})
	kid := mustAdd(t, c, "kid", &testWidget{spec: box(3, 3)})
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	mustChildren(t, c, root, kid)
	mustLayout(t, c, 0, 0)

	if v, _ := c.View(root); !v.IsEmpty() {
		t.Errorf("root view %v on a zero screen", v.Outer)
	}
	if _, ok := c.LocateNode(root, Point{}); ok {
		t.Error("located a node on a zero screen")
	}
	if c.Size() != (Size{}) {
		t.Errorf("Size = %v", c.Size())
	}
}

func TestLayout_NoRoot(t *testing.T) {
	c := NewCore()
	mustAdd(t, c, "orphan", &testWidget{})
	mustLayout(t, c, 10, 10)
}

func TestLayout_TaintRemeasures(t *testing.T) {
	c := NewCore()
	root := mustAdd(t, c, "root", &testWidget{})
	w := &testWidget{measure: Size{Width: 5, Height: 2}}
	leaf := mustAdd(t, c, "leaf", w)
	below := mustAdd(t, c, "below", &testWidget{spec: box(5, 1)})
	if err := c.SetRoot(root); err != nil {
		t.Fatal(err)
	}
	mustChildren(t, c, root, leaf, below)
	mustLayout(t, c, 20, 10)
	if v, _ := c.View(leaf); v.Outer.Height != 2 {
		t.Fatalf("leaf height %d, want measured 2", v.Outer.Height)
	}

	w.measure.Height = 4
	c.Taint(leaf)
	mustLayout(t, c, 20, 10)
	if v, _ := c.View(leaf); v.Outer.Height != 4 {
		t.Errorf("leaf height %d after taint, want 4", v.Outer.Height)
	}
	if screen, _, _ := c.ScreenRect(below); screen.Y != 4 {
		t.Errorf("sibling at y %d, want 4", screen.Y)
	}
}

func TestLayout_KeepsScrollOffset(t *testing.T) {
	c, root, top, _ := threeNodeTree(t)
	c.ScrollTo(root, 0, 7)
	if err := c.SetHidden(top, true); err != nil {
		t.Fatal(err)
	}
	mustLayout(t, c, 20, 10)

	// the canvas shrank to the content box, so the offset clamps to zero
	if v, _ := c.View(root); v.TL.Y != 0 {
		t.Errorf("TL.Y = %d, want 0", v.TL.Y)
	}
	if err := c.SetHidden(top, false); err != nil {
		t.Fatal(err)
	}
	mustLayout(t, c, 20, 10)
	c.ScrollTo(root, 0, 7)
	mustLayout(t, c, 20, 10)
	if v, _ := c.View(root); v.TL.Y != 7 {
		t.Errorf("TL.Y = %d, want 7 kept", v.TL.Y)
	}
}
