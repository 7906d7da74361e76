package git

import (
	"context"
	"errors"
	"os/exec"
)

// ConfigGet reads a single-valued git-config key. The second return
// value is false if the key is unset.
func (r *Repository) ConfigGet(ctx context.Context, key string) (string, bool, error) {
	out, err := r.gitCmd(ctx, "config", "--get", key).OutputString(r.exec)
	if err != nil {
		if isConfigKeyUnset(err) {
			return "", false, nil
		}
		return "", false, IOError("git config --get "+key, err)
	}
	return out, true, nil
}

// ConfigGetAll reads all values of a multi-valued git-config key, in
// the order git-config reports them (earliest definition first).
func (r *Repository) ConfigGetAll(ctx context.Context, key string) ([]string, error) {
	lines, err := r.gitCmd(ctx, "config", "--get-all", key).OutputLines(r.exec)
	if err != nil {
		if isConfigKeyUnset(err) {
			return nil, nil
		}
		return nil, IOError("git config --get-all "+key, err)
	}
	return lines, nil
}

// ConfigAddMulti appends a value to a multi-valued git-config key.
func (r *Repository) ConfigAddMulti(ctx context.Context, key, value string) error {
	if err := r.gitCmd(ctx, "config", "--add", key, value).Run(r.exec); err != nil {
		return IOError("git config --add "+key, err)
	}
	return nil
}

// isConfigKeyUnset reports whether err represents "git config" exiting
// with status 1 because the requested key does not exist, as opposed
// to a real configuration-file parse failure (exit status 3) or other
// I/O failure.
func isConfigKeyUnset(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	return exitErr.ExitCode() == 1
}

// Var returns the value of a Git-resolved variable, such as
// GIT_EDITOR, honoring Git's own layered resolution (environment,
// git-config, built-in default) ahead of any fallback the caller
// applies on error.
func (r *Repository) Var(ctx context.Context, name string) (string, error) {
	out, err := r.gitCmd(ctx, "var", name).OutputString(r.exec)
	if err != nil {
		return "", IOError("git var "+name, err)
	}
	return out, nil
}

// DefaultBranch reports the repository's configured default branch
// name for newly created repositories (init.defaultBranch), falling
// back to "main" if unset.
func (r *Repository) DefaultBranch(ctx context.Context) string {
	name, ok, err := r.ConfigGet(ctx, "init.defaultBranch")
	if err != nil || !ok || name == "" {
		return "main"
	}
	return name
}
