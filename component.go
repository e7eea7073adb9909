package lwgl

// Component is a behavior unit attached to an entity. The stage's component
// pass calls Update once per frame for every component on every visible
// entity, after all entity update hooks have run and all world transforms
// have been recomposed — components may therefore read world transforms that
// are globally consistent for the frame.
//
// Update has no error return; a component that can fail should record the
// failure on its own state (or on the entity's UserData) and let the owning
// entity's OnUpdate hook surface it next frame.
type Component interface {
	Update(dt float64)
}

// ComponentFunc adapts a plain function to the Component interface. Create
// one with NewComponentFunc; the returned pointer is the component's
// identity, so RemoveComponent works on it like on any pointer component.
type ComponentFunc struct {
	fn func(dt float64)
}

// NewComponentFunc wraps fn as a Component.
func NewComponentFunc(fn func(dt float64)) *ComponentFunc {
	return &ComponentFunc{fn: fn}
}

// Update calls the wrapped function.
func (f *ComponentFunc) Update(dt float64) {
	f.fn(dt)
}

// --- Entity component list ---

// AddComponent appends c to this entity's components. Components run in
// stored order during the component pass, before the entity's children are
// descended into. Panics if c is nil.
func (e *Entity) AddComponent(c Component) {
	if c == nil {
		panic("lwgl: cannot add nil component")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddComponent")
	}
	e.components = append(e.components, c)
}

// RemoveComponent removes the first occurrence of c from this entity.
// No-op if c is not attached. Uses copy+nil compaction like child removal,
// so a component pass iterating a snapshot of the old list sees the trailing
// slot as nil and skips it.
//
// Components are matched by interface identity; attach components as
// pointers (all the stock components are) so the match is a pointer
// comparison. A component whose dynamic type is not comparable can only be
// removed by index via RemoveComponentAt.
func (e *Entity) RemoveComponent(c Component) {
	for i, have := range e.components {
		if have == c {
			copy(e.components[i:], e.components[i+1:])
			e.components[len(e.components)-1] = nil
			e.components = e.components[:len(e.components)-1]
			return
		}
	}
}

// RemoveComponentAt removes and returns the component at the given index.
func (e *Entity) RemoveComponentAt(index int) Component {
	if globalDebug {
		debugCheckDisposed(e, "RemoveComponentAt")
	}
	if index < 0 || index >= len(e.components) {
		panic("lwgl: component index out of range")
	}
	c := e.components[index]
	copy(e.components[index:], e.components[index+1:])
	e.components[len(e.components)-1] = nil
	e.components = e.components[:len(e.components)-1]
	return c
}

// RemoveComponents detaches all components from this entity.
func (e *Entity) RemoveComponents() {
	for i := range e.components {
		e.components[i] = nil
	}
	e.components = e.components[:0]
}

// Components returns the component list. The returned slice MUST NOT be
// mutated by the caller.
func (e *Entity) Components() []Component {
	return e.components
}

// NumComponents returns the number of attached components.
func (e *Entity) NumComponents() int {
	return len(e.components)
}

// ComponentAt returns the component at the given index.
func (e *Entity) ComponentAt(index int) Component {
	return e.components[index]
}
