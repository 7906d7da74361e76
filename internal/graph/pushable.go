package graph

import "go.abhg.dev/stack/internal/git"

// Pushable runs the pushable pass: a node becomes pushable iff it
// carries at least one non-protected branch, no ancestor in the same
// straight run is WIP, and no branch on it already matches its push
// target. A divergent node with no branch of its own stops the
// search for that entire line, since it's then ambiguous which
// eventual branch owns the intervening commits.
func Pushable(g *Graph) error {
	root := g.Root
	if root.Action.IsProtected() || root.Action.IsRebase() || len(root.Branches) == 0 {
		for _, run := range root.Stacks {
			pushableRun(run)
		}
	}
	return nil
}

func pushableRun(nodes []*Node) {
	var cause string
	for _, node := range nodes {
		if node.Action.IsProtected() || node.Action.IsRebase() {
			for _, run := range node.Stacks {
				pushableRun(run)
			}
			continue
		}

		if _, ok := node.Commit.WipSummary(); ok {
			cause = "contains WIP commit"
		}

		if len(node.Branches) > 0 {
			switch {
			case cause != "":
				// not pushable; cause explains why.
			case allPushed(node.Branches):
				// already pushed, nothing to do.
			default:
				node.Pushable = true
			}
			return
		} else if len(node.Stacks) > 0 {
			cause = "ambiguous which branch owns some commits"
		}
	}
}

func allPushed(branches []git.Branch) bool {
	for _, b := range branches {
		if b.PushOid == nil || *b.PushOid != b.Oid {
			return false
		}
	}
	return true
}
