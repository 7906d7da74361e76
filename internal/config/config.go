// Package config layers the tool's configuration from defaults, a
// workdir TOML file, and repository-local git-config, per the external
// interface specification.
package config

import (
	"context"
	"fmt"

	"go.abhg.dev/stack/internal/git"
)

// defaultProtectedBranches mirrors the upstream tool's built-in
// protected-branch patterns: the common names a trunk or stabilization
// branch goes by.
var defaultProtectedBranches = []string{"main", "master", "dev", "stable"}

const (
	_defaultCapacity            = 10
	_defaultAutoBaseCommitCount = 50
)

// Config is the merged configuration for one invocation.
type Config struct {
	// ProtectedBranches is the union of glob patterns matching
	// branches that must not be rewritten or deleted.
	ProtectedBranches []string

	// PushRemote is the default remote used for pushes. Empty means
	// "use the branch's configured upstream, if any."
	PushRemote string

	// PullRemote is the remote to fetch/rebase from.
	PullRemote string

	// Capacity bounds the stash snapshot stack's depth.
	Capacity int

	// AutoBaseCommitCount bounds how many commits to walk back while
	// resolving an implicit base before giving up.
	AutoBaseCommitCount int
}

// merge appends other's lists onto self's, and fills in any scalar
// self left unset with other's value. Lists concatenate; scalars use
// first-defined-wins.
func (c Config) merge(other Config) Config {
	c.ProtectedBranches = append(append([]string{}, c.ProtectedBranches...), other.ProtectedBranches...)

	if c.PushRemote == "" {
		c.PushRemote = other.PushRemote
	}
	if c.PullRemote == "" {
		c.PullRemote = other.PullRemote
	}
	if c.Capacity == 0 {
		c.Capacity = other.Capacity
	}
	if c.AutoBaseCommitCount == 0 {
		c.AutoBaseCommitCount = other.AutoBaseCommitCount
	}

	return c
}

// GitConfig is the subset of the git facade configuration reading
// needs.
type GitConfig interface {
	ConfigGetAll(ctx context.Context, key string) ([]string, error)
	DefaultBranch(ctx context.Context) string
}

const _protectedBranchKey = "stack.protected-branch"

// FromDefaults builds the base configuration layer: the repository's
// configured default branch, plus the built-in protected-branch
// patterns.
func FromDefaults(ctx context.Context, gitCfg GitConfig) Config {
	protected := make([]string, 0, len(defaultProtectedBranches)+1)
	protected = append(protected, gitCfg.DefaultBranch(ctx))
	protected = append(protected, defaultProtectedBranches...)

	return Config{
		ProtectedBranches:   protected,
		Capacity:            _defaultCapacity,
		AutoBaseCommitCount: _defaultAutoBaseCommitCount,
	}
}

// FromRepo reads the repo-local layer: the multi-valued
// stack.protected-branch git-config key.
func FromRepo(ctx context.Context, gitCfg GitConfig) (Config, error) {
	patterns, err := gitCfg.ConfigGetAll(ctx, _protectedBranchKey)
	if err != nil {
		return Config{}, git.ConfigError("read "+_protectedBranchKey, err)
	}
	return Config{ProtectedBranches: patterns}, nil
}

// FromAll loads and layers defaults, the workdir file, and repo-local
// config, in that order; later layers extend earlier ones.
func FromAll(ctx context.Context, gitCfg GitConfig, workdir string) (Config, error) {
	cfg := FromDefaults(ctx, gitCfg)

	workdirCfg, err := FromWorkdir(workdir)
	if err != nil {
		return Config{}, fmt.Errorf("load workdir config: %w", err)
	}
	cfg = cfg.merge(workdirCfg)

	repoCfg, err := FromRepo(ctx, gitCfg)
	if err != nil {
		return Config{}, fmt.Errorf("load repo config: %w", err)
	}
	cfg = cfg.merge(repoCfg)

	return cfg, nil
}
