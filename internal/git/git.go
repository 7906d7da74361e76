// Package git provides a read-mostly facade over a Git repository,
// accessed through the git CLI.
//
// All shell-to-Git interactions needed by the rest of this module go
// through this package; nothing else shells out to git directly.
// [Repository] is the facade's only production implementation, and
// mutation always goes through it, so a dry-run executor can swap in a
// no-op in its place.
package git

import "context"

// Repo is the facade the graph subsystem is built against.
// Tests substitute a fake, or a mock generated from this interface via
// go.uber.org/mock.
//
//go:generate mockgen -destination ../rewrite/mock_repo_test.go -package rewrite_test -typed go.abhg.dev/stack/internal/git Repo
type Repo interface {
	HeadCommit(ctx context.Context) (Commit, error)
	HeadBranch(ctx context.Context) (*Branch, error)
	MergeBase(ctx context.Context, a, b Oid) (Oid, bool, error)
	FindCommit(ctx context.Context, oid Oid) (Commit, error)
	CommitRange(ctx context.Context, baseExcl, headIncl Oid) ([]Commit, error)
	Branches(ctx context.Context) ([]Branch, error)

	StashPush(ctx context.Context, reason string) (*StashID, error)
	StashPop(ctx context.Context, id *StashID) error

	Switch(ctx context.Context, oid Oid) error
	SwitchBranch(ctx context.Context, name string) error
	CherryPick(ctx context.Context, oid Oid) error
	CherryPickNoCommit(ctx context.Context, oid Oid) error
	WriteTree(ctx context.Context) (Oid, error)
	ResetHard(ctx context.Context, oid Oid) error
	CreateBranch(ctx context.Context, name string, oid Oid) error
	DeleteBranch(ctx context.Context, name string) error
	AmendTree(ctx context.Context, treeOid Oid, msg string) (Oid, error)
	CommitTree(ctx context.Context, treeOid, parent Oid, msg string) (Oid, error)
	SetPushRemote(name string)
	SetPullRemote(name string)
}

var _ Repo = (*Repository)(nil)
