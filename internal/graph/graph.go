// Package graph implements the decorated commit graph: the tree of
// linear runs built from a merge-base and a set of branch tips, the
// annotation passes that mutate it, and the script generator that
// linearizes it into a sequence the executor can replay.
package graph

import (
	"context"
	"sort"

	"go.abhg.dev/stack/internal/git"
)

// Graph is a root [Node] plus the closure reachable through its
// Stacks. Its shape is always a tree of linear runs: commits in the
// supported workflow have a single first-parent lineage, so a merge
// commit reachable from more than one tip terminates the stack rather
// than inducing a join. [FromBranches] enforces this and fails
// with a GraphInvariant error if a join is encountered.
type Graph struct {
	Root *Node

	byOid   map[git.Oid]*Node
	overlay map[git.Oid]map[string]any
	parent  map[git.Oid]git.Oid
}

// FromBranches builds a Graph from the given branch subset: the tip
// oids are the branches' current commits, the root is their common
// ancestor, and edges are recorded by walking first-parent ancestry
// from each tip back to the root.
func FromBranches(ctx context.Context, repo git.Repo, branches []git.Branch) (*Graph, error) {
	if len(branches) == 0 {
		return nil, git.UsageErrorf("no branches to build a graph from")
	}

	rootOid, err := commonAncestor(ctx, repo, branches)
	if err != nil {
		return nil, err
	}

	commits := map[git.Oid]git.Commit{}
	rootCommit, err := repo.FindCommit(ctx, rootOid)
	if err != nil {
		return nil, err
	}
	commits[rootOid] = rootCommit

	for _, b := range branches {
		if b.Oid == rootOid {
			continue
		}
		if _, ok := commits[b.Oid]; ok {
			continue
		}
		path, err := repo.CommitRange(ctx, rootOid, b.Oid)
		if err != nil {
			return nil, err
		}
		for _, c := range path {
			commits[c.Oid] = c
		}
	}

	parentOf, err := resolveParents(rootOid, commits)
	if err != nil {
		return nil, err
	}

	children := map[git.Oid][]git.Oid{}
	parent := map[git.Oid]git.Oid{}
	seen := map[git.Oid]bool{rootOid: true}
	for _, b := range branches {
		var path []git.Oid
		for cur := b.Oid; cur != rootOid; {
			path = append(path, cur)
			p, ok := parentOf[cur]
			if !ok {
				return nil, git.GraphInvariantf("commit %s has no path to merge-base %s", cur, rootOid)
			}
			cur = p
		}
		// path is tip-to-root; walk root-to-tip to add edges in
		// discovery order.
		prev := rootOid
		for i := len(path) - 1; i >= 0; i-- {
			cur := path[i]
			if !seen[cur] {
				children[prev] = append(children[prev], cur)
				parent[cur] = prev
				seen[cur] = true
			}
			prev = cur
		}
	}

	g := &Graph{
		byOid:   make(map[git.Oid]*Node),
		overlay: make(map[git.Oid]map[string]any),
		parent:  parent,
	}

	b := &builder{commits: commits, children: children, byOid: g.byOid}
	root := &Node{Commit: rootCommit}
	g.byOid[rootOid] = root
	for _, k := range children[rootOid] {
		root.Stacks = append(root.Stacks, b.buildRun(k))
	}
	g.Root = root

	for _, br := range branches {
		if node, ok := g.byOid[br.Oid]; ok {
			node.Branches = append(node.Branches, br)
		}
	}

	return g, nil
}

// commonAncestor folds merge-base across every branch tip, in order.
func commonAncestor(ctx context.Context, repo git.Repo, branches []git.Branch) (git.Oid, error) {
	acc := branches[0].Oid
	for _, b := range branches[1:] {
		base, ok, err := repo.MergeBase(ctx, acc, b.Oid)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", git.GraphInvariantf("branches %s and %s share no common ancestor", acc, b.Oid)
		}
		acc = base
	}
	return acc, nil
}

// resolveParents determines, for every non-root commit in the set,
// which of its parents is also in the set (or is the root). A commit
// with more than one such parent is a merge commit joining two lines
// that are both part of this stack — an invariant violation for the
// tree-of-linear-runs shape.
func resolveParents(rootOid git.Oid, commits map[git.Oid]git.Commit) (map[git.Oid]git.Oid, error) {
	parentOf := make(map[git.Oid]git.Oid, len(commits))
	for oid, c := range commits {
		if oid == rootOid {
			continue
		}

		var found git.Oid
		count := 0
		for _, p := range c.ParentOid {
			if p == rootOid {
				found, count = p, count+1
				continue
			}
			if _, ok := commits[p]; ok {
				found, count = p, count+1
			}
		}

		switch count {
		case 0:
			return nil, git.GraphInvariantf("commit %s has no ancestor within the stack", oid)
		case 1:
			parentOf[oid] = found
		default:
			return nil, git.GraphInvariantf("commit %s merges two lines of the stack", oid)
		}
	}
	return parentOf, nil
}

type builder struct {
	commits  map[git.Oid]git.Commit
	children map[git.Oid][]git.Oid
	byOid    map[git.Oid]*Node
}

// buildRun walks a straight-line chain starting at oid, stopping at
// the first divergence (0 or 2+ children), and recurses to build that
// divergent node's own Stacks.
func (b *builder) buildRun(oid git.Oid) []*Node {
	var run []*Node
	cur := oid
	for {
		node := &Node{Commit: b.commits[cur]}
		b.byOid[cur] = node
		run = append(run, node)

		kids := b.children[cur]
		if len(kids) != 1 {
			for _, k := range kids {
				node.Stacks = append(node.Stacks, b.buildRun(k))
			}
			return run
		}
		cur = kids[0]
	}
}

// NodeMut returns the node for oid, for passes that mutate the graph
// by commit id.
func (g *Graph) NodeMut(oid git.Oid) (*Node, bool) {
	n, ok := g.byOid[oid]
	return n, ok
}

// Insert splices newNode directly beneath parentOid, becoming its sole
// child: whatever used to follow parentOid — the rest of its run if
// parentOid sat mid-run, or its own Stacks if parentOid was a run's
// terminal node — becomes newNode's own subtree instead. This is how
// the amend flow splices a synthesized fixup commit directly beneath
// the commit it targets, ahead of that commit's existing descendants.
func (g *Graph) Insert(newNode *Node, parentOid git.Oid) error {
	if parentOid == g.Root.Oid() {
		newNode.Stacks = g.Root.Stacks
		g.Root.Stacks = [][]*Node{{newNode}}
		g.byOid[newNode.Oid()] = newNode
		return nil
	}

	if !insertAfter(&g.Root.Stacks, parentOid, newNode) {
		return git.GraphInvariantf("insert: node %s not found", parentOid)
	}
	g.byOid[newNode.Oid()] = newNode
	return nil
}

// insertAfter locates parentOid within stacks, recursing into child
// runs, and splices newNode in as its immediate successor.
func insertAfter(stacks *[][]*Node, parentOid git.Oid, newNode *Node) bool {
	for si, run := range *stacks {
		for i, n := range run {
			if n.Oid() != parentOid {
				continue
			}

			if i < len(run)-1 {
				// parentOid sits mid-run: everything after it in
				// this run, its original terminal node's Stacks
				// included, becomes newNode's own run.
				rest := append([]*Node{}, run[i+1:]...)
				(*stacks)[si] = append([]*Node{}, run[:i+1]...)
				newNode.Stacks = [][]*Node{rest}
			} else {
				// parentOid is the run's terminal node: its
				// existing children become newNode's.
				newNode.Stacks = n.Stacks
			}
			n.Stacks = [][]*Node{{newNode}}
			return true
		}
	}

	for _, run := range *stacks {
		for _, n := range run {
			if insertAfter(&n.Stacks, parentOid, newNode) {
				return true
			}
		}
	}
	return false
}

// CommitSet attaches an overlay annotation to the node for oid, keyed
// by key. Passes use this instead of widening Node, so that new
// annotations don't require touching every existing pass.
func (g *Graph) CommitSet(oid git.Oid, key string, value any) {
	m := g.overlay[oid]
	if m == nil {
		m = make(map[string]any)
		g.overlay[oid] = m
	}
	m[key] = value
}

// CommitGet reads an overlay annotation previously set by CommitSet.
func (g *Graph) CommitGet(oid git.Oid, key string) (any, bool) {
	m, ok := g.overlay[oid]
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

// AllOids returns every node's commit id in topological order: a
// node's ancestors always precede it, giving a deterministic linear
// walk of the whole graph without re-deriving one from Stacks.
func (g *Graph) AllOids() []git.Oid {
	oids := make([]git.Oid, 0, len(g.byOid))
	for oid := range g.byOid {
		oids = append(oids, oid)
	}
	// Sort first so Toposort's DFS visits in a deterministic order;
	// map iteration order alone would make the result flap between
	// runs despite being a valid topological order either way.
	sort.Slice(oids, func(i, j int) bool { return oids[i] < oids[j] })

	return Toposort(oids, func(oid git.Oid) (git.Oid, bool) {
		p, ok := g.parent[oid]
		return p, ok
	})
}
