package graph

import "go.abhg.dev/stack/internal/git"

// Rebase retargets the lowest protected frontier of the graph onto
// newBase: it walks down each stack looking for the rightmost
// protected node and flips its action from Protected to
// Rebase(newBase). If every stack at a given level already rebased
// somewhere below, the parent short-circuits so exactly one rebase is
// emitted per root-to-tip path.
func Rebase(g *Graph, newBase git.Oid) error {
	rebaseNode(g.Root, newBase)
	return nil
}

func rebaseNode(node *Node, newBase git.Oid) bool {
	if len(node.Stacks) > 0 {
		allRebased := true
		for _, run := range node.Stacks {
			stackRebased := false
			for i := len(run) - 1; i >= 0; i-- {
				if rebaseNode(run[i], newBase) {
					stackRebased = true
					break
				}
			}
			if !stackRebased {
				allRebased = false
			}
		}
		if allRebased {
			return true
		}
	}

	switch {
	case node.Oid() == newBase:
		return true
	case node.Action.IsProtected():
		node.Action = Action{Kind: ActionRebase, NewBase: newBase}
		return true
	default:
		return false
	}
}
