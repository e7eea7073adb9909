package lwgl

// Stage is the distinguished root of an entity tree and the driver of the
// per-frame update sweep. It is itself an Entity — all tree operations work
// on it — except that its parent is write-protected: the stage must always
// remain the unique entity with no parent, and any attempt to reparent it
// fails with ErrInvariantViolation.
//
// A frame loop calls Update(dt) then LateUpdate(dt) once per tick, in that
// order, never concurrently, never re-entrantly.
type Stage struct {
	Entity

	debug bool
}

// NewStage creates the root of a new entity tree. Construct exactly one per
// scene graph instance, at initialization.
func NewStage() *Stage {
	s := &Stage{}
	entityDefaults(&s.Entity)
	s.Name = "stage"
	s.isRoot = true
	return s
}

// Root returns the stage's entity view. Convenience for code that holds a
// *Stage but wants to pass the tree root around as a plain *Entity.
func (s *Stage) Root() *Entity {
	return &s.Entity
}

// Update runs the frame's early sweep: three strictly ordered passes, each a
// complete depth-first pre-order traversal of the whole visible subtree
// before the next begins.
//
//  1. Entity update hooks. Hooks commonly move entities or mutate the tree,
//     so all of them run before anything downstream observes the frame.
//  2. Transform synchronization. Every visible entity's world matrix is
//     recomposed against its parent's already-recomposed world matrix.
//  3. Component updates. Components commonly read world transforms, which
//     are globally consistent by the time this pass starts.
//
// If the stage itself is invisible the whole sweep is skipped. The first
// error returned by an update hook aborts the sweep immediately: remaining
// entities in that pass are not visited and the later passes do not run for
// this frame. Work already done is not rolled back.
//
// Each pass snapshots the child list it iterates at the moment it begins, so
// entities added during the sweep are first visited by the next snapshot
// taken (a later pass or the next frame), and entities removed mid-pass
// leave a nil slot that is skipped.
func (s *Stage) Update(dt float64) error {
	if !s.Visible {
		return nil
	}

	var stats *passStats
	if s.debug {
		stats = &passStats{}
	}

	kids := s.children
	for i, n := 0, len(kids); i < n; i++ {
		child := kids[i]
		if child == nil || !child.Visible {
			continue
		}
		if err := runUpdatePass(child, dt, stats); err != nil {
			return err
		}
	}

	// The root composes against nothing; refresh its own world matrix so
	// children see current values if the stage's local fields were moved.
	s.Transform.applyRoot()
	kids = s.children
	for i, n := 0, len(kids); i < n; i++ {
		child := kids[i]
		if child == nil || !child.Visible {
			continue
		}
		runTransformPass(child, &s.Transform, stats)
	}

	kids = s.children
	for i, n := 0, len(kids); i < n; i++ {
		child := kids[i]
		if child == nil || !child.Visible {
			continue
		}
		runComponentPass(child, dt, stats)
	}

	if s.debug {
		s.debugLogUpdate(stats)
	}
	return nil
}

// LateUpdate runs the frame's late sweep: a single depth-first pre-order
// pass invoking every visible entity's OnLateUpdate hook. Call it after
// Update has returned for the same frame, never interleaved per-entity.
// Same visibility gating, snapshot discipline, and fail-fast error
// propagation as Update.
func (s *Stage) LateUpdate(dt float64) error {
	if !s.Visible {
		return nil
	}

	var stats *passStats
	if s.debug {
		stats = &passStats{}
	}

	kids := s.children
	for i, n := 0, len(kids); i < n; i++ {
		child := kids[i]
		if child == nil || !child.Visible {
			continue
		}
		if err := runLateUpdatePass(child, dt, stats); err != nil {
			return err
		}
	}

	if s.debug {
		s.debugLogLate(stats)
	}
	return nil
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-entity
// access panics, tree depth and child count warnings are printed, and
// per-call pass statistics are logged to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// --- Recursive pass helpers ---
//
// Each helper snapshots the slice it iterates by capturing the header once
// and walking it by index. Removal compacts via copy+nil (see
// removeChildByPtr), so the snapshot's trailing slots can hold nil; every
// loop nil-checks each slot before use. Visibility is checked by the parent
// before descending, so a helper is only ever entered for a visible entity.

// runUpdatePass invokes e's update hook, then recurses into visible children.
func runUpdatePass(e *Entity, dt float64, stats *passStats) error {
	if stats != nil {
		stats.updated++
	}
	if err := e.execUpdate(dt); err != nil {
		return err
	}
	kids := e.children
	for i, n := 0, len(kids); i < n; i++ {
		child := kids[i]
		if child == nil || !child.Visible {
			continue
		}
		if err := runUpdatePass(child, dt, stats); err != nil {
			return err
		}
	}
	return nil
}

// runLateUpdatePass invokes e's late-update hook, then recurses into visible
// children.
func runLateUpdatePass(e *Entity, dt float64, stats *passStats) error {
	if stats != nil {
		stats.late++
	}
	if err := e.execLateUpdate(dt); err != nil {
		return err
	}
	kids := e.children
	for i, n := 0, len(kids); i < n; i++ {
		child := kids[i]
		if child == nil || !child.Visible {
			continue
		}
		if err := runLateUpdatePass(child, dt, stats); err != nil {
			return err
		}
	}
	return nil
}

// runTransformPass recomposes e's world matrix against parent's, then
// recurses into visible children so every child composes against a world
// matrix that is already current for the frame.
func runTransformPass(e *Entity, parent *Transform, stats *passStats) {
	e.Transform.Apply(parent)
	if stats != nil {
		stats.composed++
	}
	kids := e.children
	for i, n := 0, len(kids); i < n; i++ {
		child := kids[i]
		if child == nil || !child.Visible {
			continue
		}
		runTransformPass(child, &e.Transform, stats)
	}
}

// runComponentPass updates e's components in stored order, then recurses
// into visible children.
func runComponentPass(e *Entity, dt float64, stats *passStats) {
	comps := e.components
	for i, n := 0, len(comps); i < n; i++ {
		c := comps[i]
		if c == nil {
			continue
		}
		c.Update(dt)
		if stats != nil {
			stats.components++
		}
	}
	kids := e.children
	for i, n := 0, len(kids); i < n; i++ {
		child := kids[i]
		if child == nil || !child.Visible {
			continue
		}
		runComponentPass(child, dt, stats)
	}
}
