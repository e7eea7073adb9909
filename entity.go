package lwgl

import "fmt"

// entityIDCounter is a plain counter (no atomic — lwgl is single-threaded).
var entityIDCounter uint32

func nextEntityID() uint32 {
	entityIDCounter++
	return entityIDCounter
}

// Entity is the fundamental scene graph element. A single flat struct is used
// for every node in the tree, including the stage root, to avoid interface
// dispatch on the hot path.
type Entity struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Entity
	children []*Entity

	// Behavior
	components []Component

	// OnUpdate is the entity's per-frame update hook, run during the first
	// pass of Stage.Update. A non-nil error aborts the rest of the frame's
	// sweep. Nil by default; zero cost when unused.
	OnUpdate func(dt float64) error

	// OnLateUpdate is run during Stage.LateUpdate, after every entity's
	// OnUpdate has completed for the frame. Same error semantics as OnUpdate.
	OnLateUpdate func(dt float64) error

	// Transform holds the entity's local spatial state and its computed
	// world matrix. World matrices are recomposed by the stage's transform
	// pass; mutate the local fields freely and the next visible frame picks
	// them up.
	Transform Transform

	// Visible gates traversal. An invisible entity and its entire subtree
	// are skipped by every stage pass, and its world transform goes stale
	// until it is made visible again.
	Visible bool

	// Metadata
	UserData any

	// Internal
	isRoot   bool
	disposed bool
}

// entityDefaults sets the common default field values shared by all constructors.
func entityDefaults(e *Entity) {
	e.ID = nextEntityID()
	e.Visible = true
	e.Transform.ScaleX = 1
	e.Transform.ScaleY = 1
	e.Transform.world = identityTransform
}

// NewEntity creates a visible entity with an identity transform and no
// parent. Attach it to the tree with AddChild.
func NewEntity(name string) *Entity {
	e := &Entity{Name: name}
	entityDefaults(e)
	return e
}

// IsRoot reports whether this entity is the stage root.
func (e *Entity) IsRoot() bool {
	return e.isRoot
}

// execUpdate runs the entity's update hook, if any. The failing entity's
// name is attached here, once; the error then unwinds untouched so the frame
// driver can still match it with errors.Is/As.
func (e *Entity) execUpdate(dt float64) error {
	if e.OnUpdate == nil {
		return nil
	}
	if err := e.OnUpdate(dt); err != nil {
		return fmt.Errorf("lwgl: update %q: %w", e.Name, err)
	}
	return nil
}

// execLateUpdate runs the entity's late-update hook, if any.
func (e *Entity) execLateUpdate(dt float64) error {
	if e.OnLateUpdate == nil {
		return nil
	}
	if err := e.OnLateUpdate(dt); err != nil {
		return fmt.Errorf("lwgl: late update %q: %w", e.Name, err)
	}
	return nil
}

// --- Tree manipulation ---

// setParent is the single write path for Entity.Parent. The stage root's
// parent is write-protected: the root must always remain the unique entity
// with no parent.
func (e *Entity) setParent(p *Entity) error {
	if e.isRoot {
		return fmt.Errorf("lwgl: cannot set parent on stage root %q: %w", e.Name, ErrInvariantViolation)
	}
	e.Parent = p
	return nil
}

// SetParent reparents the entity under p, appending it to p's children.
// SetParent(nil) detaches the entity from its current parent. On the stage
// root it always fails with an error matching ErrInvariantViolation,
// whatever the value.
func (e *Entity) SetParent(p *Entity) error {
	if e.isRoot {
		return e.setParent(p)
	}
	if p == nil {
		e.RemoveFromParent()
		return nil
	}
	p.AddChild(e)
	return nil
}

// AddChild appends child to this entity's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, child is an ancestor of this entity (cycle), or
// child is the stage root.
func (e *Entity) AddChild(child *Entity) {
	if child == nil {
		panic("lwgl: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("lwgl: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if err := child.setParent(e); err != nil {
		panic(err)
	}
	e.children = append(e.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting, cycle-check, and root-guard behavior as AddChild.
func (e *Entity) AddChildAt(child *Entity, index int) {
	if child == nil {
		panic("lwgl: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, e) {
		panic("lwgl: adding child would create a cycle")
	}
	if index < 0 || index > len(e.children) {
		panic("lwgl: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if err := child.setParent(e); err != nil {
		panic(err)
	}
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// RemoveChild detaches child from this entity.
// Panics if child.Parent != e.
func (e *Entity) RemoveChild(child *Entity) {
	if globalDebug {
		debugCheckDisposed(e, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != e {
		panic("lwgl: child's parent is not this entity")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (e *Entity) RemoveChildAt(index int) *Entity {
	if globalDebug {
		debugCheckDisposed(e, "RemoveChildAt")
	}
	if index < 0 || index >= len(e.children) {
		panic("lwgl: child index out of range")
	}
	child := e.children[index]
	copy(e.children[index:], e.children[index+1:])
	e.children[len(e.children)-1] = nil
	e.children = e.children[:len(e.children)-1]
	child.Parent = nil
	return child
}

// RemoveFromParent detaches this entity from its parent.
// No-op if this entity has no parent.
func (e *Entity) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// RemoveChildren detaches all children from this entity.
// Children are NOT disposed.
func (e *Entity) RemoveChildren() {
	for _, child := range e.children {
		child.Parent = nil
	}
	e.children = e.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (e *Entity) Children() []*Entity {
	return e.children
}

// NumChildren returns the number of children.
func (e *Entity) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Entity) ChildAt(index int) *Entity {
	return e.children[index]
}

// SetChildIndex moves child to a new index among its siblings. Traversal
// order follows child order, so this reorders when the child runs within a
// pass relative to its siblings.
func (e *Entity) SetChildIndex(child *Entity, index int) {
	if child.Parent != e {
		panic("lwgl: child's parent is not this entity")
	}
	nc := len(e.children)
	if index < 0 || index >= nc {
		panic("lwgl: child index out of range")
	}
	oldIndex := -1
	for i, c := range e.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(e.children[oldIndex:], e.children[oldIndex+1:index+1])
	} else {
		copy(e.children[index+1:], e.children[index:oldIndex])
	}
	e.children[index] = child
}

// --- Disposal ---

// Dispose removes this entity from its parent, marks it as disposed,
// and recursively disposes all descendants. A disposed entity may still be
// visited by a pass that snapshotted its slot before removal; its hooks and
// components are already cleared, so such a visit is a no-op.
func (e *Entity) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Entity) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.components = nil
	e.Parent = nil
	e.OnUpdate = nil
	e.OnLateUpdate = nil
	e.UserData = nil
}

// IsDisposed returns true if this entity has been disposed.
func (e *Entity) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of entity.
func isAncestor(candidate, entity *Entity) bool {
	for p := entity; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array; a pass iterating a snapshot of the old slice header sees
// the trailing slot as nil and skips it.
func (e *Entity) removeChildByPtr(child *Entity) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
