package willowxr

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and interaction metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	eventCount  int
	objectCount int
	scaling     bool
	scale       float64
	tickTime    time.Duration
}

// debugf prints a prefixed line when debug mode is on.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.logOut, "[willowxr] "+format+"\n", args...)
}

// logf prints a prefixed line regardless of debug mode. Used for failures
// that are swallowed to keep the frame loop alive.
func (s *Scene) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.logOut, "[willowxr] "+format+"\n", args...)
}

// debugLog prints per-frame interaction stats.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.debugf("frame %d | events: %d | objects: %d | tick: %v",
		s.frame, stats.eventCount, stats.objectCount, stats.tickTime)
	if stats.scaling {
		s.debugf("frame %d | scaling: %.4f", s.frame, stats.scale)
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("willowxr debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[willowxr] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[willowxr] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
