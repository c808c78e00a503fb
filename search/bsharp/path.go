package bsharp

import "github.com/lvlath-labs/hsearch/core"

// splicePath reconstructs the full solution path from the pair of nodes
// whose frontiers met: the forward node's path up to (not including) its
// own state, the shared collision state once, then the backward node's
// path from its immediate parent onward to the goal.
func splicePath(collisionFwd, collisionBwd *core.Node) []string {
	fwdChain := collisionFwd.Path(false) // initial -> ... -> collision state
	bwdChain := collisionBwd.Path(true)  // collision state -> ... -> goal

	out := make([]string, 0, len(fwdChain)+len(bwdChain)-1)
	for _, n := range fwdChain {
		out = append(out, n.State.String())
	}
	for _, n := range bwdChain[1:] {
		out = append(out, n.State.String())
	}
	return out
}
