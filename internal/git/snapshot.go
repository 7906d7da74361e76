package git

import (
	"context"
	"fmt"

	"go.abhg.dev/container/ring"
)

// SnapshotStackName is the default name of the backup stack the
// executor pushes to before mutating a repository, and the name
// printed in the recovery note on partial failure.
const SnapshotStackName = "stack-snapshots"

// Snapshot is one entry in a [SnapshotStack]: a stash created before a
// mutating run, along with the reason it was taken.
type Snapshot struct {
	ID     StashID
	Reason string
}

// SnapshotStack is a capacity-bounded backup stack of [Snapshot]
// entries, scoped to one name so that multiple tools (or multiple
// invocations) don't stomp on each other's recovery state.
//
// Push is released on every exit path: a clean run pops its own
// snapshot, while a failed run leaves it behind along with an
// informational note naming the stack, per the scoped-acquisition
// requirement on the stash snapshot resource.
type SnapshotStack struct {
	repo     *Repository
	name     string
	capacity int
	entries  ring.Q[Snapshot]
	count    int
}

// NewSnapshotStack returns a [SnapshotStack] bounded to capacity
// entries. A non-positive capacity disables bounding.
func NewSnapshotStack(repo *Repository, name string, capacity int) *SnapshotStack {
	return &SnapshotStack{repo: repo, name: name, capacity: capacity}
}

// Push creates a snapshot of the working tree and index, tagged with
// reason, and records it at the top of the stack. If there are no
// changes to snapshot, Push records nothing and returns a nil
// snapshot with [ErrNoChanges].
//
// If capacity is exceeded, the oldest snapshot is dropped from the
// repository and forgotten.
func (s *SnapshotStack) Push(ctx context.Context, reason string) (*Snapshot, error) {
	id, err := s.repo.StashPush(ctx, s.name+": "+reason)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", s.name, err)
	}
	if id == nil {
		return nil, ErrNoChanges
	}

	snap := Snapshot{ID: *id, Reason: reason}
	s.entries.Push(snap)
	s.count++

	if s.capacity > 0 {
		for s.count > s.capacity {
			oldest := s.entries.Pop()
			s.count--
			// Best-effort: an unreachable stash entry is harmless
			// clutter, not a failure worth surfacing.
			_ = s.repo.gitCmd(ctx, "stash", "drop", "--quiet", oldest.ID.oid.String()).Run(s.repo.exec)
		}
	}

	return &snap, nil
}

// Pop restores snap, a snapshot returned by [SnapshotStack.Push], and
// drops its stash entry. It is a no-op if snap is nil. The stack's own
// capacity bookkeeping still counts the entry.
func (s *SnapshotStack) Pop(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		return nil
	}
	return s.repo.StashPop(ctx, &snap.ID)
}
