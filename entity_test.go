package lwgl

import (
	"errors"
	"testing"
)

// --- Constructor defaults ---

func TestNewEntityDefaults(t *testing.T) {
	e := NewEntity("test")
	if e.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if e.Name != "test" {
		t.Errorf("Name = %q, want %q", e.Name, "test")
	}
	if !e.Visible {
		t.Error("Visible should be true")
	}
	if e.Transform.ScaleX != 1 || e.Transform.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", e.Transform.ScaleX, e.Transform.ScaleY)
	}
	if e.Transform.World() != identityTransform {
		t.Errorf("World() = %v, want identity", e.Transform.World())
	}
	if e.Parent != nil {
		t.Error("Parent should be nil")
	}
	if e.IsRoot() {
		t.Error("IsRoot() should be false for a plain entity")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewEntity("a")
	b := NewEntity("b")
	c := NewEntity("c")
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewEntity("parent")
	child := NewEntity("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewEntity("p1")
	p2 := NewEntity("p2")
	child := NewEntity("child")

	p1.AddChild(child)
	if p1.NumChildren() != 1 {
		t.Fatal("p1 should have 1 child")
	}

	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewEntity("parent")
	child := NewEntity("child")
	grandchild := NewEntity("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent) // should panic
}

func TestAddChildSelfPanic(t *testing.T) {
	e := NewEntity("self")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	e.AddChild(e)
}

func TestAddChildNilPanic(t *testing.T) {
	e := NewEntity("parent")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	e.AddChild(nil)
}

func TestAddChildAt(t *testing.T) {
	parent := NewEntity("parent")
	a := NewEntity("a")
	b := NewEntity("b")
	c := NewEntity("c")
	parent.AddChild(a)
	parent.AddChild(c)
	parent.AddChildAt(b, 1)

	want := []*Entity{a, b, c}
	for i, w := range want {
		if parent.ChildAt(i) != w {
			t.Errorf("ChildAt(%d) = %q, want %q", i, parent.ChildAt(i).Name, w.Name)
		}
	}
}

func TestAddChildAtOutOfRangePanic(t *testing.T) {
	parent := NewEntity("parent")
	child := NewEntity("child")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-range index, got none")
		}
	}()
	parent.AddChildAt(child, 5)
}

// --- Removal ---

func TestRemoveChild(t *testing.T) {
	parent := NewEntity("parent")
	a := NewEntity("a")
	b := NewEntity("b")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChild(a)
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != b {
		t.Error("remaining child should be b")
	}
	if a.Parent != nil {
		t.Error("removed child's Parent should be nil")
	}
}

func TestRemoveChildForeignPanic(t *testing.T) {
	p1 := NewEntity("p1")
	p2 := NewEntity("p2")
	child := NewEntity("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for foreign child, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveChildAt(t *testing.T) {
	parent := NewEntity("parent")
	a := NewEntity("a")
	b := NewEntity("b")
	parent.AddChild(a)
	parent.AddChild(b)

	got := parent.RemoveChildAt(0)
	if got != a {
		t.Error("RemoveChildAt(0) should return a")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != b {
		t.Error("b should be the only remaining child")
	}
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewEntity("parent")
	child := NewEntity("child")
	parent.AddChild(child)

	child.RemoveFromParent()
	if parent.NumChildren() != 0 {
		t.Error("parent should have no children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}

	// No-op without a parent.
	child.RemoveFromParent()
}

func TestRemoveChildren(t *testing.T) {
	parent := NewEntity("parent")
	a := NewEntity("a")
	b := NewEntity("b")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChildren()
	if parent.NumChildren() != 0 {
		t.Error("parent should have no children")
	}
	if a.Parent != nil || b.Parent != nil {
		t.Error("detached children should have nil Parent")
	}
	if a.IsDisposed() || b.IsDisposed() {
		t.Error("RemoveChildren must not dispose children")
	}
}

// --- SetChildIndex ---

func TestSetChildIndex(t *testing.T) {
	parent := NewEntity("parent")
	a := NewEntity("a")
	b := NewEntity("b")
	c := NewEntity("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.SetChildIndex(c, 0)
	want := []*Entity{c, a, b}
	for i, w := range want {
		if parent.ChildAt(i) != w {
			t.Errorf("ChildAt(%d) = %q, want %q", i, parent.ChildAt(i).Name, w.Name)
		}
	}

	parent.SetChildIndex(c, 2)
	want = []*Entity{a, b, c}
	for i, w := range want {
		if parent.ChildAt(i) != w {
			t.Errorf("after move back: ChildAt(%d) = %q, want %q", i, parent.ChildAt(i).Name, w.Name)
		}
	}
}

// --- SetParent ---

func TestSetParentReparents(t *testing.T) {
	p1 := NewEntity("p1")
	p2 := NewEntity("p2")
	child := NewEntity("child")
	p1.AddChild(child)

	if err := child.SetParent(p2); err != nil {
		t.Fatalf("SetParent: %v", err)
	}
	if child.Parent != p2 || p1.NumChildren() != 0 || p2.NumChildren() != 1 {
		t.Error("child should have moved from p1 to p2")
	}
}

func TestSetParentNilDetaches(t *testing.T) {
	parent := NewEntity("parent")
	child := NewEntity("child")
	parent.AddChild(child)

	if err := child.SetParent(nil); err != nil {
		t.Fatalf("SetParent(nil): %v", err)
	}
	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("child should be detached")
	}
}

// --- Hooks ---

func TestExecUpdateNoHook(t *testing.T) {
	e := NewEntity("bare")
	if err := e.execUpdate(0.016); err != nil {
		t.Errorf("execUpdate with no hook = %v, want nil", err)
	}
	if err := e.execLateUpdate(0.016); err != nil {
		t.Errorf("execLateUpdate with no hook = %v, want nil", err)
	}
}

func TestExecUpdateWrapsError(t *testing.T) {
	cause := errors.New("boom")
	e := NewEntity("bomb")
	e.OnUpdate = func(dt float64) error { return cause }

	err := e.execUpdate(0.016)
	if !errors.Is(err, cause) {
		t.Errorf("execUpdate error = %v, want wrap of %v", err, cause)
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewEntity("parent")
	child := NewEntity("child")
	grandchild := NewEntity("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)
	child.OnUpdate = func(dt float64) error { return nil }
	child.AddComponent(NewComponentFunc(func(dt float64) {}))

	child.Dispose()

	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("child and grandchild should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("parent should have no children")
	}
	if child.OnUpdate != nil || child.NumComponents() != 0 {
		t.Error("disposed entity should have no hooks or components")
	}
	if parent.IsDisposed() {
		t.Error("parent should not be disposed")
	}

	// Double dispose is a no-op.
	child.Dispose()
}
