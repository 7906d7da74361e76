package graph

import "go.abhg.dev/stack/internal/git"

// DropByTreeID marks Delete any Pick node whose tree id already
// appears among onto's commits — the same change has already landed
// on the moving base. Dropping a mid-stack node preserves its
// descendants: their stacks are reparented onto the nearest
// preceding Protected or Rebase node in the same run.
func DropByTreeID(g *Graph, onto []git.Commit) error {
	treeIDs := make(map[git.Oid]bool, len(onto))
	for _, c := range onto {
		treeIDs[c.TreeOid] = true
	}
	dropNode(g.Root, treeIDs)
	return nil
}

func dropNode(node *Node, treeIDs map[git.Oid]bool) {
	if !node.Action.IsProtected() && !node.Action.IsRebase() {
		return
	}

	var moved [][]*Node
	for _, run := range node.Stacks {
		moved = append(moved, dropRun(run, treeIDs)...)
	}
	node.Stacks = append(node.Stacks, moved...)
}

// dropRun walks one straight-line run root-to-tip, stopping at the
// first Pick commit whose tree isn't already landed (deletions are
// assumed contiguous from the protected frontier upward). It returns
// any orphaned child stacks that no protected/rebase node in this run
// claimed.
func dropRun(nodes []*Node, treeIDs map[git.Oid]bool) [][]*Node {
	var moved [][]*Node
	lastProtected := -1

loop:
	for i, n := range nodes {
		switch {
		case n.Action.IsProtected() || n.Action.IsRebase():
			lastProtected = i
			for _, run := range n.Stacks {
				moved = append(moved, dropRun(run, treeIDs)...)
			}
		case n.Action.IsDelete():
			break loop
		default: // Pick
			if treeIDs[n.Commit.TreeOid] {
				n.Action = Action{Kind: ActionDelete}
				moved = append(moved, n.Stacks...)
				n.Stacks = nil
			} else {
				break loop
			}
		}
	}

	if lastProtected >= 0 {
		nodes[lastProtected].Stacks = append(nodes[lastProtected].Stacks, moved...)
		return nil
	}
	return moved
}
