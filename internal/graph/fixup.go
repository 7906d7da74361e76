package graph

import "go.abhg.dev/stack/internal/git"

// MarkFixup tags every node whose commit carries a fixup!/squash!
// prefix with the target summary it names, without changing the
// node's action.
func MarkFixup(g *Graph) {
	forEachNode(g.Root, func(n *Node) {
		if target, ok := n.Commit.FixupTarget(); ok {
			g.markFixupTarget(n.Oid(), target)
		}
	})
}

// MarkWIP tags every node whose commit summary carries a WIP marker
// ("WIP", "wip", "fixup!", or "squash!"), without changing the node's
// action.
func MarkWIP(g *Graph) {
	forEachNode(g.Root, func(n *Node) {
		if _, ok := n.Commit.WipSummary(); ok {
			g.markWIP(n.Oid())
		}
	})
}

// forEachNode visits root and every node reachable through Stacks.
func forEachNode(root *Node, f func(*Node)) {
	f(root)
	for _, run := range root.Stacks {
		forEachRun(run, f)
	}
}

func forEachRun(run []*Node, f func(*Node)) {
	for _, n := range run {
		f(n)
	}
	if len(run) == 0 {
		return
	}
	last := run[len(run)-1]
	for _, child := range last.Stacks {
		forEachRun(child, f)
	}
}

// FixupPolicy selects how the fixup pass handles Fixup-tagged nodes.
type FixupPolicy int

const (
	// FixupIgnore leaves Fixup-tagged nodes exactly where they are.
	FixupIgnore FixupPolicy = iota

	// FixupMove relocates a Fixup-tagged node to become a direct
	// child of its target commit.
	FixupMove

	// FixupSquash relocates as FixupMove, and additionally tags the
	// node with the Squash overlay so the executor combines its tree
	// and discards its message at cherry-pick time.
	FixupSquash
)

type pathEntry struct {
	node *Node
	path []*Node // ancestors, root-first, nearest ancestor last
}

// collectPaths returns one entry per node reachable from root, each
// carrying the chain of ancestors (root-first) above it.
func collectPaths(root *Node) []pathEntry {
	var out []pathEntry
	out = append(out, pathEntry{node: root})

	var processRun func(run []*Node, path []*Node)
	processRun = func(run []*Node, path []*Node) {
		cur := path
		for i, n := range run {
			out = append(out, pathEntry{node: n, path: cur})

			next := make([]*Node, len(cur)+1)
			copy(next, cur)
			next[len(cur)] = n
			cur = next

			if i == len(run)-1 {
				for _, child := range n.Stacks {
					processRun(child, cur)
				}
			}
		}
	}

	for _, run := range root.Stacks {
		processRun(run, []*Node{root})
	}
	return out
}

// Fixup applies the given policy to every Fixup-tagged node: it looks
// up the nearest ancestor whose summary matches the tagged target and,
// per policy, relocates the node to sit directly beneath it.
func Fixup(g *Graph, policy FixupPolicy) error {
	if policy == FixupIgnore {
		return nil
	}

	entries := collectPaths(g.Root)

	type relocation struct {
		node   *Node
		target *Node
	}
	var relocations []relocation

	for _, e := range entries {
		target, ok := g.FixupTarget(e.node.Oid())
		if !ok {
			continue
		}

		for i := len(e.path) - 1; i >= 0; i-- {
			ancestor := e.path[i]
			if ancestor.Commit.Summary() == target {
				relocations = append(relocations, relocation{node: e.node, target: ancestor})
				break
			}
		}
	}

	for _, r := range relocations {
		if r.node.Oid() == r.target.Oid() {
			continue
		}

		detached, ok := g.removeNode(r.node.Oid())
		if !ok {
			return git.GraphInvariantf("fixup: node %s missing during relocation", r.node.Oid())
		}
		if err := g.Insert(detached, r.target.Oid()); err != nil {
			return err
		}
		if policy == FixupSquash {
			g.markSquash(detached.Oid())
			g.markSquashParent(detached.Oid(), r.target.Oid())
		}
	}

	return nil
}

// removeNode detaches the node with oid from wherever it sits in the
// tree, reparenting any Stacks it owned onto whichever node becomes
// adjacent to the gap it leaves: the new last node of its run, or (if
// it was the run's only node) the run's owner directly.
func (g *Graph) removeNode(oid git.Oid) (*Node, bool) {
	return removeFromStacks(&g.Root.Stacks, oid)
}

func removeFromStacks(stacks *[][]*Node, oid git.Oid) (*Node, bool) {
	for si, run := range *stacks {
		for i, n := range run {
			if n.Oid() != oid {
				continue
			}

			isTerminal := i == len(run)-1
			newRun := append(append([]*Node{}, run[:i]...), run[i+1:]...)

			switch {
			case !isTerminal:
				(*stacks)[si] = newRun
			case len(newRun) > 0:
				newRun[len(newRun)-1].Stacks = append(newRun[len(newRun)-1].Stacks, n.Stacks...)
				(*stacks)[si] = newRun
			default:
				rest := append(append([][]*Node{}, (*stacks)[:si]...), (*stacks)[si+1:]...)
				*stacks = append(rest, n.Stacks...)
			}

			n.Stacks = nil
			return n, true
		}
	}

	for _, run := range *stacks {
		for _, n := range run {
			if found, ok := removeFromStacks(&n.Stacks, oid); ok {
				return found, ok
			}
		}
	}
	return nil, false
}
