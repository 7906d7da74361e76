package config

import "path"

// IsProtected reports whether branch matches any of the configured
// protected-branch glob patterns. Patterns use shell glob syntax
// (path.Match), not regular expressions.
func (c Config) IsProtected(branch string) bool {
	for _, pattern := range c.ProtectedBranches {
		if ok, err := path.Match(pattern, branch); err == nil && ok {
			return true
		}
		if pattern == branch {
			return true
		}
	}
	return false
}
