package rewrite

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"go.abhg.dev/container/ring"
	"go.abhg.dev/stack/internal/git"
	"go.abhg.dev/stack/internal/graph"
)

// Failure records one dependent script that could not finish replaying,
// and the branch names that were never reached as a result.
type Failure struct {
	// Branch identifies the node whose replay failed: the first branch
	// name the aborted script would otherwise have created, or the
	// commit's short oid if it creates none.
	Branch string

	// Err is the underlying replay error, usually one wrapping a
	// [git.CherryPickConflictError].
	Err error

	// Blocked lists every branch name that the aborted script and its
	// own dependents would have produced, in discovery order.
	Blocked []string
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Branch, f.Err)
}

// Result is the outcome of an [Executor.Run]: the script tree's
// independent branches are replayed to completion even when one of them
// conflicts, so Failures may hold more than one entry.
type Result struct {
	Failures []Failure
}

// Executor replays a [Script] against a repository, maintaining the
// mark table the script's SwitchMark/RegisterMark commands depend on.
// A conflict aborts only the dependent script it occurred in — sibling
// scripts at every level still run to completion.
type Executor struct {
	repo   git.Repo
	graph  *graph.Graph
	log    *log.Logger
	dryRun bool

	marks   map[git.Oid]git.Oid
	current git.Oid
}

// NewExecutor builds an Executor. g supplies the squash/reword overlays
// consulted while replaying CherryPick commands; it may be nil if
// neither pass was ever run (every CherryPick is then a plain replay).
// When dryRun is true, no repository mutation runs: commands are
// walked purely to validate the mark table.
func NewExecutor(repo git.Repo, g *graph.Graph, logger *log.Logger, dryRun bool) *Executor {
	return &Executor{
		repo:   repo,
		graph:  g,
		log:    logger,
		dryRun: dryRun,
		marks:  make(map[git.Oid]git.Oid),
	}
}

// Run replays script to completion, switching back to finalBranch
// afterward if it is non-empty. It returns every failure encountered
// along the way rather than stopping at the first one; a non-nil error
// return means closing out the run itself failed, not that the replay
// had no failures — check len(Result.Failures) for that.
func (e *Executor) Run(ctx context.Context, script *Script, finalBranch string) (Result, error) {
	var result Result
	e.runScript(ctx, script, &result)

	if finalBranch != "" && !e.dryRun {
		if err := e.repo.SwitchBranch(ctx, finalBranch); err != nil {
			return result, fmt.Errorf("return to %s: %w", finalBranch, err)
		}
	}
	return result, nil
}

// runScript executes one script's commands in order, then recurses
// into its dependents. A command failure aborts the rest of this
// script and every one of its dependents, recorded as a single
// Failure; it does not touch scripts the caller runs alongside this
// one.
func (e *Executor) runScript(ctx context.Context, script *Script, result *Result) {
	for i, cmd := range script.Commands {
		if err := e.runCommand(ctx, cmd); err != nil {
			result.Failures = append(result.Failures, Failure{
				Branch:  branchNameForFailure(script.Commands, i),
				Err:     err,
				Blocked: collectBranchNames(script.Commands[i+1:], script.Dependents),
			})
			return
		}
	}

	for _, dep := range script.Dependents {
		e.runScript(ctx, dep, result)
	}
}

// branchNameForFailure reports the branch a failing command at idx is
// replaying for: the CreateBranch immediately following it, since
// ToScript always emits CherryPick then its CreateBranch commands
// back to back, or the commit's own short oid if it creates none.
func branchNameForFailure(cmds []Command, idx int) string {
	for j := idx + 1; j < len(cmds) && cmds[j].Op == CreateBranch; j++ {
		return cmds[j].Name
	}
	return cmds[idx].Oid.Short()
}

// collectBranchNames gathers every branch name a CreateBranch command
// would produce across the remaining commands of an aborted script and
// the whole subtree of its dependents, breadth first.
func collectBranchNames(remaining []Command, deps []*Script) []string {
	var names []string
	for _, c := range remaining {
		if c.Op == CreateBranch {
			names = append(names, c.Name)
		}
	}

	var q ring.Q[*Script]
	for _, d := range deps {
		q.Push(d)
	}
	for !q.Empty() {
		s := q.Pop()
		for _, c := range s.Commands {
			if c.Op == CreateBranch {
				names = append(names, c.Name)
			}
		}
		for _, d := range s.Dependents {
			q.Push(d)
		}
	}
	return names
}

func (e *Executor) runCommand(ctx context.Context, cmd Command) error {
	switch cmd.Op {
	case SwitchCommit:
		e.log.Debug("switch", "oid", cmd.Oid.Short())
		if !e.dryRun {
			if err := e.repo.Switch(ctx, cmd.Oid); err != nil {
				return err
			}
		}
		e.current = cmd.Oid

	case SwitchMark:
		target, ok := e.marks[cmd.Oid]
		if !ok {
			return git.GraphInvariantf("switch-mark: mark %s was never registered", cmd.Oid.Short())
		}
		e.log.Debug("switch-mark", "mark", cmd.Oid.Short(), "oid", target.Short())
		if !e.dryRun {
			if err := e.repo.Switch(ctx, target); err != nil {
				return err
			}
		}
		e.current = target

	case RegisterMark:
		e.marks[cmd.Oid] = e.current

	case CherryPick:
		e.log.Debug("cherry-pick", "oid", cmd.Oid.Short())
		if e.dryRun {
			e.current = cmd.Oid
			return nil
		}
		newOid, err := e.cherryPick(ctx, cmd.Oid)
		if err != nil {
			return err
		}
		e.current = newOid

	case CreateBranch:
		e.log.Debug("create-branch", "name", cmd.Name, "oid", e.current.Short())
		if !e.dryRun {
			if err := e.repo.CreateBranch(ctx, cmd.Name, e.current); err != nil {
				return err
			}
		}

	case DeleteBranch:
		e.log.Debug("delete-branch", "name", cmd.Name)
		if !e.dryRun {
			if err := e.repo.DeleteBranch(ctx, cmd.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// cherryPick replays oid onto the current HEAD, folding it into its
// fixup target instead of landing it as its own commit when the fixup
// pass tagged it for a squash.
func (e *Executor) cherryPick(ctx context.Context, oid git.Oid) (git.Oid, error) {
	if e.graph != nil && e.graph.IsSquash(oid) {
		return e.squashCherryPick(ctx, oid)
	}

	if err := e.repo.CherryPick(ctx, oid); err != nil {
		return "", err
	}
	head, err := e.repo.HeadCommit(ctx)
	if err != nil {
		return "", err
	}

	if e.graph == nil {
		return head.Oid, nil
	}
	msg, ok := e.graph.Reword(oid)
	if !ok {
		return head.Oid, nil
	}
	newOid, err := e.repo.CommitTree(ctx, head.TreeOid, head.ParentOid[0], msg)
	if err != nil {
		return "", err
	}
	if err := e.repo.ResetHard(ctx, newOid); err != nil {
		return "", err
	}
	return newOid, nil
}

// squashCherryPick folds oid's changes into its fixup target by
// replaying them without committing, then writing a new commit in the
// target's place. The target itself was already replayed earlier in
// the script as an ordinary CherryPick, landing its own real commit —
// but that commit is not this combine's parent: squashCherryPick's
// result must replace the target rather than extend it, so its parent
// is the target's own original parent, looked up structurally through
// the graph rather than taken from e.current (which by this point
// holds the target's replayed, unsquashed commit). The target's real
// replayed commit is simply abandoned, unreferenced once ResetHard
// below moves HEAD to the combined commit — the same outcome an
// ordinary "git commit --amend" leaves behind.
func (e *Executor) squashCherryPick(ctx context.Context, oid git.Oid) (git.Oid, error) {
	targetOid, ok := e.graph.SquashParent(oid)
	if !ok {
		return "", git.GraphInvariantf("squash: %s has no recorded squash parent", oid.Short())
	}
	target, ok := e.graph.NodeMut(targetOid)
	if !ok {
		return "", git.GraphInvariantf("squash: squash parent %s missing from graph", targetOid.Short())
	}
	if len(target.Commit.ParentOid) == 0 {
		return "", git.GraphInvariantf("squash: squash parent %s has no parent", targetOid.Short())
	}
	parent := target.Commit.ParentOid[0]

	if err := e.repo.CherryPickNoCommit(ctx, oid); err != nil {
		return "", err
	}
	treeOid, err := e.repo.WriteTree(ctx)
	if err != nil {
		return "", err
	}

	msg, ok := e.graph.Reword(oid)
	if !ok {
		msg = target.Commit.Message
	}

	newOid, err := e.repo.CommitTree(ctx, treeOid, parent, msg)
	if err != nil {
		return "", err
	}
	if err := e.repo.ResetHard(ctx, newOid); err != nil {
		return "", err
	}
	return newOid, nil
}
