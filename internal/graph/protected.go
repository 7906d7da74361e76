package graph

import "path"

// ProtectedBranches is a compiled glob set matching branch short
// names that must not be rewritten or deleted. It is derived from
// configuration layering (defaults, workdir file, repo config); the
// layers are unioned, never overwritten.
type ProtectedBranches struct {
	patterns []string
}

// NewProtectedBranches compiles the given glob patterns.
func NewProtectedBranches(patterns []string) *ProtectedBranches {
	return &ProtectedBranches{patterns: append([]string{}, patterns...)}
}

// Contains reports whether name matches one of the configured
// patterns.
func (p *ProtectedBranches) Contains(name string) bool {
	for _, pattern := range p.patterns {
		if pattern == name {
			return true
		}
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
