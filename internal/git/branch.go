package git

import (
	"context"
	"strings"
)

// Branch is a single local or remote-tracking branch.
type Branch struct {
	// Ref is the fully qualified reference name, e.g.
	// "refs/heads/feature" or "refs/remotes/origin/feature".
	Ref string

	// Oid is the commit the branch currently points at.
	Oid Oid

	// PushOid is the commit the branch's push target points at, if
	// the branch has one configured.
	PushOid *Oid

	// PullOid is the commit the branch's upstream (pull) target
	// points at, if the branch has one configured.
	PullOid *Oid

	// Local is the branch's short name if it is a local branch.
	Local string

	// Remote is the branch's "<remote>/<name>" form if it is a
	// remote-tracking branch.
	Remote string

	// Protected reports whether the branch matches a configured
	// protected-branch glob. Set by the branch inventory, not by
	// this package.
	Protected bool
}

// IsLocal reports whether the branch is a local branch.
func (b Branch) IsLocal() bool { return b.Local != "" }

const _branchFieldSep = "\x01"

var _branchFormat = strings.Join([]string{
	"%(refname)", "%(objectname)",
	"%(push)", "%(push:objectname)",
	"%(upstream)", "%(upstream:objectname)",
}, _branchFieldSep)

// HeadBranch reports the branch checked out at HEAD, or nil if HEAD is
// detached.
func (r *Repository) HeadBranch(ctx context.Context) (*Branch, error) {
	name, err := r.gitCmd(ctx, "symbolic-ref", "--short", "-q", "HEAD").
		OutputString(r.exec)
	if err != nil || name == "" {
		return nil, nil //nolint:nilerr // detached HEAD is not an error here
	}

	branches, err := r.Branches(ctx)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		if branches[i].Local == name {
			return &branches[i], nil
		}
	}
	return nil, nil
}

// Branches lists all local and remote-tracking branches in the
// repository.
func (r *Repository) Branches(ctx context.Context) ([]Branch, error) {
	lines, err := r.gitCmd(ctx, "for-each-ref",
		"--format="+_branchFormat,
		"refs/heads", "refs/remotes",
	).OutputLines(r.exec)
	if err != nil {
		return nil, IOError("git for-each-ref", err)
	}

	branches := make([]Branch, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, _branchFieldSep)
		if len(fields) != 6 {
			continue
		}

		ref, oid := fields[0], Oid(fields[1])
		b := Branch{Ref: ref, Oid: oid}
		if push := fields[3]; push != "" {
			o := Oid(push)
			b.PushOid = &o
		}
		if pull := fields[5]; pull != "" {
			o := Oid(pull)
			b.PullOid = &o
		}

		switch {
		case strings.HasPrefix(ref, "refs/heads/"):
			b.Local = strings.TrimPrefix(ref, "refs/heads/")
		case strings.HasPrefix(ref, "refs/remotes/"):
			b.Remote = strings.TrimPrefix(ref, "refs/remotes/")
		default:
			continue
		}

		branches = append(branches, b)
	}
	return branches, nil
}

// MergeBase reports the common ancestor of a and b. The second return
// value is false if the commits are disjoint (no common ancestor).
func (r *Repository) MergeBase(ctx context.Context, a, b Oid) (Oid, bool, error) {
	out, err := r.gitCmd(ctx, "merge-base", string(a), string(b)).OutputString(r.exec)
	if err != nil {
		return "", false, nil
	}
	return Oid(out), true, nil
}
