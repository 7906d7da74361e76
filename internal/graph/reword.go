package graph

import "go.abhg.dev/stack/internal/git"

// Reword attaches a new message to the node referenced by oid; the
// executor substitutes it in place of the commit's own message at
// cherry-pick time.
func Reword(g *Graph, oid git.Oid, msg string) error {
	if _, ok := g.NodeMut(oid); !ok {
		return git.GraphInvariantf("reword: node %s not found", oid)
	}
	g.SetReword(oid, msg)
	return nil
}
