package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Switch detaches HEAD to the given commit, leaving the working tree
// and index untouched relative to it.
func (r *Repository) Switch(ctx context.Context, oid Oid) error {
	if err := r.gitCmd(ctx, "checkout", "--detach", "--quiet", string(oid)).Run(r.exec); err != nil {
		return IOError("git checkout "+oid.Short(), err)
	}
	return nil
}

// StageAll stages every tracked change in the working tree, the
// plumbing behind "amend --all".
func (r *Repository) StageAll(ctx context.Context) error {
	if err := r.gitCmd(ctx, "add", "--update", ".").Run(r.exec); err != nil {
		return IOError("git add", err)
	}
	return nil
}

// SwitchBranch checks out a local branch by name, moving HEAD off of
// detached state. Used to return to the user's original branch once
// the executor finishes.
func (r *Repository) SwitchBranch(ctx context.Context, name string) error {
	if err := r.gitCmd(ctx, "checkout", "--quiet", name).Run(r.exec); err != nil {
		return IOError("git checkout "+name, err)
	}
	return nil
}

// CherryPickConflictError reports that a cherry-pick left the
// repository with unresolved conflicts.
type CherryPickConflictError struct {
	Oid Oid
	Err error
}

func (e *CherryPickConflictError) Error() string {
	return fmt.Sprintf("cherry-pick %s conflicted: %v", e.Oid.Short(), e.Err)
}

func (e *CherryPickConflictError) Unwrap() error { return e.Err }

// CherryPick replays the given commit onto the current HEAD.
// Returns a [KindConflict] [Error] wrapping a [CherryPickConflictError]
// if the replay could not complete cleanly.
func (r *Repository) CherryPick(ctx context.Context, oid Oid) error {
	err := r.gitCmd(ctx, "cherry-pick", "--keep-redundant-commits", string(oid)).Run(r.exec)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		_ = r.gitCmd(ctx, "cherry-pick", "--abort").Run(r.exec)
		return newError(KindConflict, "cherry-pick "+oid.Short(),
			&CherryPickConflictError{Oid: oid, Err: err})
	}
	return IOError("cherry-pick "+oid.Short(), err)
}

// CherryPickNoCommit replays the given commit's changes into the
// working tree and index without creating a commit, for callers that
// need to fold the result into another commit (see [Repository.WriteTree]
// and [Repository.CommitTree]). Conflict handling matches
// [Repository.CherryPick].
func (r *Repository) CherryPickNoCommit(ctx context.Context, oid Oid) error {
	err := r.gitCmd(ctx, "cherry-pick", "--no-commit", "--keep-redundant-commits", string(oid)).Run(r.exec)
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		_ = r.gitCmd(ctx, "cherry-pick", "--abort").Run(r.exec)
		return newError(KindConflict, "cherry-pick "+oid.Short(),
			&CherryPickConflictError{Oid: oid, Err: err})
	}
	return IOError("cherry-pick "+oid.Short(), err)
}

// WriteTree writes the current index to a tree object and returns its
// oid.
func (r *Repository) WriteTree(ctx context.Context) (Oid, error) {
	out, err := r.gitCmd(ctx, "write-tree").OutputString(r.exec)
	if err != nil {
		return "", IOError("git write-tree", err)
	}
	return Oid(out), nil
}

// ResetHard moves HEAD, the index, and the working tree to oid,
// discarding any uncommitted state. Used to land a commit synthesized
// via [Repository.CommitTree] after a [Repository.CherryPickNoCommit].
func (r *Repository) ResetHard(ctx context.Context, oid Oid) error {
	if err := r.gitCmd(ctx, "reset", "--hard", string(oid)).Run(r.exec); err != nil {
		return IOError("git reset --hard", err)
	}
	return nil
}

// CreateBranch points name at oid, creating it if it does not exist
// and moving it (deleting any prior local reference of the same name)
// if it does.
func (r *Repository) CreateBranch(ctx context.Context, name string, oid Oid) error {
	if err := r.gitCmd(ctx, "branch", "--force", name, string(oid)).Run(r.exec); err != nil {
		return IOError("git branch "+name, err)
	}
	return nil
}

// DeleteBranch removes a local branch reference.
func (r *Repository) DeleteBranch(ctx context.Context, name string) error {
	if err := r.gitCmd(ctx, "branch", "-D", name).Run(r.exec); err != nil {
		return IOError("git branch -D "+name, err)
	}
	return nil
}

// AmendTree writes a new commit reusing HEAD's current author and
// committer identity, the given message, and the given tree, as a
// child of HEAD. It returns the new commit's oid without moving any
// reference; callers append it to the commit graph themselves.
func (r *Repository) AmendTree(ctx context.Context, treeOid Oid, msg string) (Oid, error) {
	head, err := r.HeadCommit(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return r.CommitTree(ctx, treeOid, head.Oid, msg)
}

// CommitTree writes a new commit object with the given tree, parent,
// and message, reusing HEAD's author/committer identity. Unlike
// [Repository.AmendTree], the parent is explicit rather than always
// HEAD — used by the executor's squash combine, whose result replaces
// a commit rather than extending it.
func (r *Repository) CommitTree(ctx context.Context, treeOid, parent Oid, msg string) (Oid, error) {
	head, err := r.HeadCommit(ctx)
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}

	args := []string{
		"commit-tree", string(treeOid),
		"-p", string(parent),
		"-m", msg,
	}
	// Reuse HEAD's author/committer identity so the synthesized commit
	// isn't attributed to whoever happens to run the amend.
	cmd := r.gitCmd(ctx, args...).AppendEnv(
		"GIT_AUTHOR_NAME="+head.Author.Name,
		"GIT_AUTHOR_EMAIL="+head.Author.Email,
		"GIT_COMMITTER_NAME="+head.Committer.Name,
		"GIT_COMMITTER_EMAIL="+head.Committer.Email,
	)

	out, err := cmd.OutputString(r.exec)
	if err != nil {
		return "", IOError("git commit-tree", err)
	}
	return Oid(out), nil
}
