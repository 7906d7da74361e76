package graph

import "go.abhg.dev/stack/internal/git"

// Overlay annotation keys. Each is a distinct type tag in the
// per-commit side-channel map, rather than a field on Node, so that a
// new pass can introduce an annotation without widening every node.
const (
	keyWIP          = "wip"
	keyFixupTarget  = "fixup-target"
	keySquash       = "squash"
	keySquashParent = "squash-parent"
	keyReword       = "reword"
)

func (g *Graph) markWIP(oid git.Oid) {
	g.CommitSet(oid, keyWIP, true)
}

// IsWIP reports whether the mark-WIP pass tagged oid as a
// work-in-progress commit.
func (g *Graph) IsWIP(oid git.Oid) bool {
	v, ok := g.CommitGet(oid, keyWIP)
	return ok && v.(bool)
}

func (g *Graph) markFixupTarget(oid git.Oid, target string) {
	g.CommitSet(oid, keyFixupTarget, target)
}

// FixupTarget reports the target summary the mark-fixup pass recorded
// for oid, if oid's commit carries a fixup!/squash! prefix.
func (g *Graph) FixupTarget(oid git.Oid) (string, bool) {
	v, ok := g.CommitGet(oid, keyFixupTarget)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (g *Graph) markSquash(oid git.Oid) {
	g.CommitSet(oid, keySquash, true)
}

// IsSquash reports whether oid's commit is tagged to be squashed into
// its fixup target at cherry-pick time, rather than just moved.
func (g *Graph) IsSquash(oid git.Oid) bool {
	v, ok := g.CommitGet(oid, keySquash)
	return ok && v.(bool)
}

func (g *Graph) markSquashParent(oid, parentOid git.Oid) {
	g.CommitSet(oid, keySquashParent, parentOid)
}

// SquashParent reports the oid oid was relocated beneath by the fixup
// pass, when oid is tagged [Graph.IsSquash]. The executor combines
// into a new commit parented on this node's own original parent,
// rather than on whatever oid replays to, since the combine replaces
// the parent commit instead of extending it.
func (g *Graph) SquashParent(oid git.Oid) (git.Oid, bool) {
	v, ok := g.CommitGet(oid, keySquashParent)
	if !ok {
		return "", false
	}
	return v.(git.Oid), true
}

// SetReword attaches a replacement commit message to oid's node,
// substituted by the executor at cherry-pick time.
func (g *Graph) SetReword(oid git.Oid, msg string) {
	g.CommitSet(oid, keyReword, msg)
}

// Reword returns the replacement message set by [Graph.SetReword], if
// any.
func (g *Graph) Reword(oid git.Oid) (string, bool) {
	v, ok := g.CommitGet(oid, keyReword)
	if !ok {
		return "", false
	}
	return v.(string), true
}
