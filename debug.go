package animator

import (
	"fmt"

	"github.com/petermattis/goid"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("animator debug: %s on disposed node %q (id %s)", op, n.Name, n.id))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		n.scene.log().Warn("animator debug: tree too deep", "depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		n.scene.log().Warn("animator debug: too many children", "node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// ownerCheck records the goroutine that created an Animator.
type ownerCheck struct {
	owner int64
}

func newOwnerCheck() *ownerCheck {
	return &ownerCheck{owner: goid.Get()}
}

// checkOwner panics when a debug-mode animator is used from a goroutine other
// than the one that created it.
func (a *Animator) checkOwner(op string) {
	if a.debug == nil {
		return
	}
	if id := goid.Get(); id != a.debug.owner {
		panic(fmt.Sprintf("animator debug: %s called from goroutine %d, animator owned by goroutine %d", op, id, a.debug.owner))
	}
}
