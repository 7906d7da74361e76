package graph

import (
	"context"

	"go.abhg.dev/stack/internal/git"
)

// BranchSet is the inventory of all local and remote-tracking
// branches in the repository, each classified as protected, tracked,
// or plain work.
type BranchSet struct {
	branches []git.Branch
	byOid    map[git.Oid][]int // reverse index: commit oid -> branch indices
}

// FromRepo scans every branch reachable via the repository facade and
// marks each one's Protected flag against the given glob set.
func FromRepo(ctx context.Context, repo git.Repo, protected *ProtectedBranches) (*BranchSet, error) {
	branches, err := repo.Branches(ctx)
	if err != nil {
		return nil, err
	}

	byOid := make(map[git.Oid][]int, len(branches))
	for i := range branches {
		name := branches[i].Local
		if name == "" {
			name = branches[i].Remote
		}
		branches[i].Protected = protected.Contains(name)
		byOid[branches[i].Oid] = append(byOid[branches[i].Oid], i)
	}

	return &BranchSet{branches: branches, byOid: byOid}, nil
}

// All returns every branch in the inventory.
func (s *BranchSet) All() []git.Branch {
	return s.branches
}

// ContainsOid reports whether any branch currently points at oid.
func (s *BranchSet) ContainsOid(oid git.Oid) bool {
	_, ok := s.byOid[oid]
	return ok
}

// Lookup returns the branches (local and/or remote-tracking) whose
// tip is oid, in discovery order.
func (s *BranchSet) Lookup(oid git.Oid) []git.Branch {
	idx := s.byOid[oid]
	if len(idx) == 0 {
		return nil
	}
	out := make([]git.Branch, len(idx))
	for i, j := range idx {
		out[i] = s.branches[j]
	}
	return out
}

// Descendants returns the subset of branches whose current id is
// reachable from mergeBase by walking first-parent ancestry, in
// discovery order. This is the stack-selection input for
// [FromBranches]. Reachability is memoised per-oid so that
// branches sharing ancestry don't repeat the walk.
func (s *BranchSet) Descendants(ctx context.Context, repo git.Repo, mergeBase git.Oid) ([]git.Branch, error) {
	memo := map[git.Oid]bool{mergeBase: true}

	var reachable func(oid git.Oid) (bool, error)
	reachable = func(oid git.Oid) (bool, error) {
		if v, ok := memo[oid]; ok {
			return v, nil
		}

		commit, err := repo.FindCommit(ctx, oid)
		if err != nil || len(commit.ParentOid) == 0 {
			memo[oid] = false
			return false, nil //nolint:nilerr // unreachable commit, not a fatal error
		}

		ok, err := reachable(commit.ParentOid[0])
		if err != nil {
			return false, err
		}
		memo[oid] = ok
		return ok, nil
	}

	var out []git.Branch
	for _, b := range s.branches {
		ok, err := reachable(b.Oid)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, b)
		}
	}
	return out, nil
}
