package rewrite

import (
	"go.abhg.dev/stack/internal/git"
	"go.abhg.dev/stack/internal/graph"
)

// ToScript linearizes root into a Script, dispatched by root's
// action. A Pick or Protected root emits SwitchCommit/RegisterMark at
// its own commit; a Rebase root emits them at its new base instead; a
// Delete root (no children, by invariant) just removes its branches.
func ToScript(root *graph.Node) *Script {
	script := &Script{}

	switch root.Action.Kind {
	case graph.ActionPick, graph.ActionProtected:
		mark := root.Oid()
		script.Commands = append(script.Commands, switchCommitCmd(mark), registerMarkCmd(mark))
		for _, run := range root.Stacks {
			if dep := toScriptInternal(run, mark); dep != nil {
				script.Dependents = append(script.Dependents, dep)
			}
		}

	case graph.ActionRebase:
		mark := root.Action.NewBase
		script.Commands = append(script.Commands, switchCommitCmd(mark), registerMarkCmd(mark))
		for _, run := range root.Stacks {
			if dep := toScriptInternal(run, mark); dep != nil {
				script.Dependents = append(script.Dependents, dep)
			}
		}

	case graph.ActionDelete:
		for _, b := range root.Branches {
			if b.IsLocal() {
				script.Commands = append(script.Commands, deleteBranchCmd(b.Local))
			}
		}
	}

	return script
}

// toScriptInternal walks one straight-line run in order, emitting a
// SwitchMark(baseMark) ahead of any commands so the executor returns
// to the right base before replaying. A run that produces neither
// commands nor dependents is omitted entirely.
func toScriptInternal(nodes []*graph.Node, baseMark git.Oid) *Script {
	script := &Script{}

	for _, node := range nodes {
		switch node.Action.Kind {
		case graph.ActionPick:
			script.Commands = append(script.Commands, cherryPickCmd(node.Oid()))
			for _, b := range node.Branches {
				if b.IsLocal() {
					script.Commands = append(script.Commands, createBranchCmd(b.Local))
				}
			}

			if len(node.Stacks) > 0 {
				mark := node.Oid()
				script.Commands = append(script.Commands, registerMarkCmd(mark))
				for _, run := range node.Stacks {
					if dep := toScriptInternal(run, mark); dep != nil {
						script.Dependents = append(script.Dependents, dep)
					}
				}
			}

		case graph.ActionProtected:
			for _, run := range node.Stacks {
				script.Commands = append(script.Commands, registerMarkCmd(node.Oid()))
				if dep := toScriptInternal(run, node.Oid()); dep != nil {
					script.Dependents = append(script.Dependents, dep)
				}
			}

		case graph.ActionRebase:
			nb := node.Action.NewBase
			script.Commands = append(script.Commands, switchCommitCmd(nb), registerMarkCmd(nb))
			for _, run := range node.Stacks {
				if dep := toScriptInternal(run, nb); dep != nil {
					script.Dependents = append(script.Dependents, dep)
				}
			}

		case graph.ActionDelete:
			for _, b := range node.Branches {
				if b.IsLocal() {
					script.Commands = append(script.Commands, deleteBranchCmd(b.Local))
				}
			}
		}
	}

	if len(script.Commands) > 0 {
		script.Commands = append([]Command{switchMarkCmd(baseMark)}, script.Commands...)
	}
	if len(script.Commands) == 0 && len(script.Dependents) == 0 {
		return nil
	}
	return script
}
