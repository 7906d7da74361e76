package graph

import (
	"context"

	"go.abhg.dev/stack/internal/git"
)

// Protect runs the protect pass: it marks a node Protected if any
// descendant is Protected, any branch attached to it matches
// ProtectedBranches, or its commit id is itself a protected branch's
// tip. If the graph root has a protected descendant reachable through
// the trunk — merge-base is an ancestor of a protected tip — the root
// is marked Protected too, preventing the published base from being
// rewritten.
func Protect(ctx context.Context, repo git.Repo, g *Graph, branches *BranchSet) error {
	rootOid := g.Root.Oid()
	for _, b := range branches.All() {
		if !b.Protected {
			continue
		}
		base, ok, err := repo.MergeBase(ctx, rootOid, b.Oid)
		if err != nil {
			return err
		}
		if ok && base == rootOid {
			g.Root.Action = Action{Kind: ActionProtected}
			break
		}
	}

	for _, stack := range g.Root.Stacks {
		protectRun(stack)
	}
	return nil
}

// protectRun processes one straight-line run tip-to-base, so that a
// protected tip propagates protection down to its ancestors within
// the run, and reports whether the run ended up protected.
func protectRun(nodes []*Node) bool {
	descendantProtected := false
	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]

		stacksProtected := false
		for _, child := range node.Stacks {
			if protectRun(child) {
				stacksProtected = true
			}
		}

		selfProtected := false
		for _, b := range node.Branches {
			if b.Protected {
				selfProtected = true
				break
			}
		}

		if descendantProtected || stacksProtected || selfProtected {
			node.Action = Action{Kind: ActionProtected}
			descendantProtected = true
		}
	}
	return descendantProtected
}
