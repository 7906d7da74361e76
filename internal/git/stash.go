package git

import (
	"context"
	"fmt"
)

// StashID identifies a stash snapshot created by [Repository.StashPush].
type StashID struct {
	oid Oid
}

// StashPush captures the working tree and index into a stash entry
// tagged with reason and records it in the stash reflog, leaving the
// working tree and index as they are. It returns nil if there were no
// changes to stash.
func (r *Repository) StashPush(ctx context.Context, reason string) (*StashID, error) {
	args := []string{"stash", "create"}
	if reason != "" {
		args = append(args, reason)
	}

	out, err := r.gitCmd(ctx, args...).OutputString(r.exec)
	if err != nil {
		return nil, IOError("git stash create", err)
	}
	if out == "" {
		return nil, nil
	}

	if err := r.gitCmd(ctx, "stash", "store", "-m", stashMessage(reason), out).Run(r.exec); err != nil {
		return nil, IOError("git stash store", err)
	}

	return &StashID{oid: Oid(out)}, nil
}

// StashPop restores a snapshot captured by [Repository.StashPush]. It
// is a no-op if id is nil.
func (r *Repository) StashPop(ctx context.Context, id *StashID) error {
	if id == nil {
		return nil
	}

	ref, err := r.findStashRef(ctx, id.oid)
	if err != nil {
		return err
	}
	if ref == "" {
		return fmt.Errorf("%w: stash for %s", ErrNotExist, id.oid.Short())
	}

	if err := r.gitCmd(ctx, "stash", "pop", "--quiet", ref).Run(r.exec); err != nil {
		return IOError("git stash pop", err)
	}
	return nil
}

func (r *Repository) findStashRef(ctx context.Context, oid Oid) (string, error) {
	lines, err := r.gitCmd(ctx, "stash", "list", "--format=%gd %H").OutputLines(r.exec)
	if err != nil {
		return "", IOError("git stash list", err)
	}
	for _, line := range lines {
		ref, hash, ok := cutSpace(line)
		if ok && Oid(hash) == oid {
			return ref, nil
		}
	}
	return "", nil
}

func cutSpace(s string) (before, after string, ok bool) {
	for i, b := range []byte(s) {
		if b == ' ' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func stashMessage(reason string) string {
	if reason == "" {
		return "stack snapshot"
	}
	return "stack: " + reason
}
