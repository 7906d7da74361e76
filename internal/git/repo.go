package git

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Repository is the production [Repo] implementation. It shells out to
// the git CLI rooted at a working directory.
type Repository struct {
	dir    string
	gitDir string
	log    *log.Logger
	exec   execer

	pushRemote string
	pullRemote string
}

// OpenOptions configures [Open].
type OpenOptions struct {
	// Log receives debug output from Git subprocesses.
	Log *log.Logger

	exec execer
}

// Open opens the repository containing dir.
// If dir is empty, the current working directory is used.
func Open(ctx context.Context, dir string, opts OpenOptions) (*Repository, error) {
	if opts.exec == nil {
		opts.exec = _realExec
	}
	if opts.Log == nil {
		opts.Log = log.New(io.Discard)
	}

	out, err := newGitCmd(ctx, opts.Log, dir,
		"rev-parse", "--show-toplevel", "--absolute-git-dir",
	).OutputString(opts.exec)
	if err != nil {
		return nil, UsageErrorf("not a git repository: %v", err)
	}

	root, gitDir, ok := strings.Cut(out, "\n")
	if !ok {
		return nil, IOError("unexpected output from git rev-parse", fmt.Errorf("%q", out))
	}

	return &Repository{
		dir:    root,
		gitDir: gitDir,
		log:    opts.Log,
		exec:   opts.exec,
	}, nil
}

func (r *Repository) gitCmd(ctx context.Context, args ...string) *gitCmd {
	return newGitCmd(ctx, r.log, r.dir, args...)
}

// SetPushRemote sets the remote used as the default push target.
func (r *Repository) SetPushRemote(name string) { r.pushRemote = name }

// SetPullRemote sets the remote used as the default pull/fetch source.
func (r *Repository) SetPullRemote(name string) { r.pullRemote = name }

// GitDir returns the absolute path to the repository's .git directory.
func (r *Repository) GitDir() string { return r.gitDir }

// Dir returns the repository's working tree root, for callers that
// need to locate a workdir-scoped file such as the TOML config.
func (r *Repository) Dir() string { return r.dir }

// IsDirty reports whether the working tree or index has uncommitted
// changes. No command runs this as a pre-flight check; the amend flow
// proceeds whether or not the tree is dirty.
func (r *Repository) IsDirty(ctx context.Context) (bool, error) {
	out, err := r.gitCmd(ctx, "status", "--porcelain").OutputString(r.exec)
	if err != nil {
		return false, IOError("git status", err)
	}
	return out != "", nil
}
