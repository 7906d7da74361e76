package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"go.abhg.dev/stack/internal/config"
	"go.abhg.dev/stack/internal/git"
	"go.abhg.dev/stack/internal/graph"
	"go.abhg.dev/stack/internal/text"
)

// _branchListNow is the clock branchesCmd uses to compute relative
// commit ages, overridable in tests.
var _branchListNow = time.Now

type branchesCmd struct {
	Verbose bool `short:"v" help:"Show the commit each branch points at, and how long ago it was made."`
}

func (*branchesCmd) Help() string {
	return text.Dedent(`
		Lists every local and remote-tracking branch known to the
		repository, classified as protected, tracked, or plain work.
	`)
}

func (cmd *branchesCmd) Run(ctx context.Context, logger *log.Logger) error {
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

	return cmd.print(ctx, os.Stdout, repo, branches)
}

func (cmd *branchesCmd) print(ctx context.Context, w io.Writer, repo git.Repo, branches *graph.BranchSet) error {
	for _, b := range branches.All() {
		name := b.Local
		if name == "" {
			name = b.Remote
		}

		marker := " "
		if b.Protected {
			marker = "!"
		}

		if !cmd.Verbose {
			fmt.Fprintf(w, "%s %s\n", marker, name)
			continue
		}

		commit, err := repo.FindCommit(ctx, b.Oid)
		if err != nil {
			return fmt.Errorf("find commit for %s: %w", name, err)
		}

		age := humanize.RelTime(commit.Committer.Time, _branchListNow(), "ago", "from now")
		fmt.Fprintf(w, "%s %-30s %s %s\n", marker, name, b.Oid.Short(), age)
	}
	return nil
}
