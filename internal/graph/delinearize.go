package graph

// Delinearize splits a straight-line run wherever an interior node
// carries branches, so that branch tips always sit at stack
// boundaries. It walks each run from tip to base; whenever a node
// short of the tip carries branches, everything after it becomes a
// new nested stack under that node.
func Delinearize(g *Graph) error {
	for i, run := range g.Root.Stacks {
		g.Root.Stacks[i] = delinearizeRun(run)
	}
	return nil
}

func delinearizeRun(nodes []*Node) []*Node {
	for _, n := range nodes {
		for i, child := range n.Stacks {
			n.Stacks[i] = delinearizeRun(child)
		}
	}

	for i := len(nodes) - 1; i >= 0; i-- {
		if len(nodes[i].Branches) == 0 {
			continue
		}
		split := i + 1
		if split == len(nodes) {
			continue
		}

		tail := append([]*Node{}, nodes[split:]...)
		nodes = nodes[:split]
		nodes[len(nodes)-1].Stacks = append(nodes[len(nodes)-1].Stacks, tail)
	}
	return nodes
}
