package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"go.abhg.dev/stack/internal/config"
	"go.abhg.dev/stack/internal/execedit"
	"go.abhg.dev/stack/internal/git"
	"go.abhg.dev/stack/internal/graph"
	"go.abhg.dev/stack/internal/rewrite"
	"go.abhg.dev/stack/internal/text"
)

type commitAmendCmd struct {
	All     bool   `short:"a" help:"Stage all tracked changes before amending."`
	Message string `short:"m" placeholder:"MSG" help:"Replace the commit message with MSG."`
	Edit    bool   `short:"e" help:"Open an editor to change the commit message."`
}

func (*commitAmendCmd) Help() string {
	return text.Dedent(`
		The topmost commit is folded into a new commit carrying the
		currently staged changes, and every branch built on top of it
		is replayed onto the result.
	`)
}

func (cmd *commitAmendCmd) Run(ctx context.Context, logger *log.Logger, opts *globalOptions) (err error) {
	repo, err := git.Open(ctx, "", git.OpenOptions{Log: logger})
	if err != nil {
		return fmt.Errorf("open repository: %w", err)
	}

	cfg, err := config.FromAll(ctx, repo, repo.Dir())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	protected := graph.NewProtectedBranches(cfg.ProtectedBranches)

	branches, err := graph.FromRepo(ctx, repo, protected)
	if err != nil {
		return fmt.Errorf("list branches: %w", err)
	}

	head, err := repo.HeadCommit(ctx)
	if err != nil {
		return fmt.Errorf("resolve HEAD: %w", err)
	}

	base, err := resolveImplicitBase(ctx, repo, branches, head, cfg.AutoBaseCommitCount)
	if err != nil {
		return err
	}

	descendants, err := branches.Descendants(ctx, repo, base)
	if err != nil {
		return fmt.Errorf("find descendant branches: %w", err)
	}

	g, err := graph.FromBranches(ctx, repo, descendants)
	if err != nil {
		return fmt.Errorf("build commit graph: %w", err)
	}
	if err := graph.Protect(ctx, repo, g, branches); err != nil {
		return fmt.Errorf("protect: %w", err)
	}
	graph.MarkFixup(g)
	graph.MarkWIP(g)

	headNode, ok := g.NodeMut(head.Oid)
	if !ok {
		return git.GraphInvariantf("amend: HEAD %s missing from its own graph", head.Oid.Short())
	}
	if headNode.Action.IsProtected() {
		return git.UsageErrorf("cannot amend protected commits")
	}
	if _, isFixup := g.FixupTarget(head.Oid); isFixup {
		return git.UsageErrorf("cannot amend fixup commits")
	}

	var finalBranch string
	if b, err := repo.HeadBranch(ctx); err == nil && b != nil {
		finalBranch = b.Local
	}

	if cmd.All {
		if err := repo.StageAll(ctx); err != nil {
			return fmt.Errorf("stage changes: %w", err)
		}
	}

	var snapshot *git.Snapshot
	if !opts.DryRun {
		stack := git.NewSnapshotStack(repo, git.SnapshotStackName, cfg.Capacity)
		var pushErr error
		snapshot, pushErr = stack.Push(ctx, "amend "+head.Oid.Short())
		if pushErr != nil && !errors.Is(pushErr, git.ErrNoChanges) {
			return fmt.Errorf("snapshot working tree: %w", pushErr)
		}

		defer func() {
			if err == nil {
				if popErr := stack.Pop(ctx, snapshot); popErr != nil {
					logger.Warn("could not drop amend snapshot", "error", popErr)
				}
				return
			}
			if snapshot != nil {
				logger.Info("working tree snapshot preserved for recovery",
					"stack", git.SnapshotStackName)
			}
		}()
	}

	treeOid, werr := repo.WriteTree(ctx)
	if werr != nil {
		return fmt.Errorf("write tree: %w", werr)
	}

	newOid, aerr := repo.AmendTree(ctx, treeOid, "fixup! "+head.Summary())
	if aerr != nil {
		return fmt.Errorf("synthesize fixup commit: %w", aerr)
	}
	newCommit, ferr := repo.FindCommit(ctx, newOid)
	if ferr != nil {
		return fmt.Errorf("find synthesized commit: %w", ferr)
	}

	newNode := &graph.Node{Commit: newCommit}
	if err = g.Insert(newNode, head.Oid); err != nil {
		return fmt.Errorf("insert fixup commit: %w", err)
	}
	graph.MarkFixup(g)

	if err = graph.Fixup(g, graph.FixupSquash); err != nil {
		return fmt.Errorf("fixup: %w", err)
	}

	msg := head.Message
	switch {
	case cmd.Message != "":
		msg = cmd.Message
	case cmd.Edit:
		editCmd, verr := repo.Var(ctx, "GIT_EDITOR")
		if verr != nil {
			return fmt.Errorf("resolve editor: %w", verr)
		}
		template := execedit.BuildTemplate(head.Message, finalBranch)
		edited, eerr := execedit.EditMessage(editCmd, template)
		if eerr != nil {
			return fmt.Errorf("edit commit message: %w", eerr)
		}
		if edited == "" {
			err = git.EditorAbortf("empty commit message, aborting amend")
			return err
		}
		msg = edited
	}
	if err = graph.Reword(g, newNode.Oid(), msg); err != nil {
		return fmt.Errorf("reword: %w", err)
	}

	script := rewrite.ToScript(g.Root)
	executor := rewrite.NewExecutor(repo, g, logger, opts.DryRun)
	result, rerr := executor.Run(ctx, script, finalBranch)
	if rerr != nil {
		err = rerr
		return fmt.Errorf("run script: %w", err)
	}

	for _, failure := range result.Failures {
		logger.Error("amend failed to replay a branch", "branch", failure.Branch, "error", failure.Err)
		if len(failure.Blocked) > 0 {
			logger.Warn("branches left unchanged", "branches", failure.Blocked)
		}
		err = failure
	}
	if err != nil {
		return err
	}

	if opts.DryRun {
		logger.Info("dry run: no changes made")
		return nil
	}

	logger.Info("amended", "commit", newCommit.Oid.Short(), "summary", head.Summary())
	return nil
}

// resolveImplicitBase walks HEAD's first-parent ancestry, starting
// above HEAD itself, looking for the nearest commit that is the tip of
// a tracked or protected branch. This is the merge-base the graph is
// rooted at when the command isn't told explicitly which stack to
// operate on.
func resolveImplicitBase(
	ctx context.Context,
	repo git.Repo,
	branches *graph.BranchSet,
	head git.Commit,
	maxCount int,
) (git.Oid, error) {
	cur := head
	for i := 0; i < maxCount; i++ {
		if len(cur.ParentOid) == 0 {
			break
		}

		parent, err := repo.FindCommit(ctx, cur.ParentOid[0])
		if err != nil {
			return "", fmt.Errorf("walk ancestry: %w", err)
		}
		for _, b := range branches.Lookup(parent.Oid) {
			if b.Protected || b.PushOid != nil {
				return parent.Oid, nil
			}
		}
		cur = parent
	}

	return "", git.UsageErrorf(
		"could not find a base between a tracked branch and %s within %d commits",
		head.Oid.Short(), maxCount,
	)
}
