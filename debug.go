package lwgl

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Stage debug flag so that entity
// operations (which lack a Stage pointer) can check it cheaply. Only valid
// with a single Stage; multiple Stages with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// passStats counts traversal work for one Update or LateUpdate call.
// Only collected when Stage.debug is true.
type passStats struct {
	updated    int // entities whose update hook pass visited them
	composed   int // world transforms recomposed
	components int // component Update calls made
	late       int // entities visited by the late pass
}

// debugLogUpdate prints per-call pass statistics to stderr.
func (s *Stage) debugLogUpdate(stats *passStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[lwgl] update: hooks: %d | transforms: %d | components: %d\n",
		stats.updated, stats.composed, stats.components)
}

// debugLogLate prints late-pass statistics to stderr.
func (s *Stage) debugLogLate(stats *passStats) {
	_, _ = fmt.Fprintf(os.Stderr, "[lwgl] late update: hooks: %d\n", stats.late)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// entity is used in a tree operation. Only called when debug mode is on; in
// release mode callers skip this entirely.
func debugCheckDisposed(e *Entity, op string) {
	if e.disposed {
		panic(fmt.Sprintf("lwgl debug: %s on disposed entity %q (ID was %d)", op, e.Name, e.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Entity) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[lwgl] warning: tree depth %d exceeds %d (entity %q)\n",
			depth, debugMaxTreeDepth, e.Name)
	}
}

// debugCheckChildCount warns on stderr if an entity has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Entity) {
	if len(e.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[lwgl] warning: entity %q has %d children (threshold %d)\n",
			e.Name, len(e.children), debugMaxChildCount)
	}
}
