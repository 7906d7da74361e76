package git

import (
	"errors"
	"fmt"
)

// Kind classifies an [Error] for the purpose of choosing an exit code
// and a recovery strategy; it is never used as a Go type switch target
// outside this package.
type Kind int

const (
	// KindIO marks a filesystem or repository I/O failure. Fatal.
	KindIO Kind = iota

	// KindUsage marks a problem with how the tool was invoked:
	// the working directory is not a repository, a required branch
	// is absent, or a commit that cannot be amended was targeted.
	KindUsage

	// KindConfig marks a malformed configuration source:
	// an invalid glob, an unparsable TOML file, or a bare repository.
	KindConfig

	// KindGraphInvariant marks a violated internal invariant of the
	// commit graph, such as a node missing after a fixup relocation.
	// Always fatal; it indicates a program fault, not user error.
	KindGraphInvariant

	// KindConflict marks a cherry-pick that produced merge conflicts.
	// Local to one branch's script; collected, not thrown.
	KindConflict

	// KindEditorAbort marks an empty message returned from the
	// configured editor during a reword.
	KindEditorAbort
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindUsage:
		return "usage"
	case KindConfig:
		return "config"
	case KindGraphInvariant:
		return "graph invariant"
	case KindConflict:
		return "conflict"
	case KindEditorAbort:
		return "editor abort"
	default:
		return "unknown"
	}
}

// Error is a typed error carrying a [Kind], used to decide the process
// exit code at the top of the command and to decide whether a failure
// aborts the whole invocation or is local to one branch.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// UsageErrorf builds a [KindUsage] [Error].
func UsageErrorf(format string, args ...any) error {
	return newError(KindUsage, fmt.Sprintf(format, args...), nil)
}

// ConfigErrorf builds a [KindConfig] [Error].
func ConfigErrorf(format string, args ...any) error {
	return newError(KindConfig, fmt.Sprintf(format, args...), nil)
}

// ConfigError wraps cause as a [KindConfig] [Error].
func ConfigError(msg string, cause error) error {
	return newError(KindConfig, msg, cause)
}

// GraphInvariantf builds a [KindGraphInvariant] [Error].
func GraphInvariantf(format string, args ...any) error {
	return newError(KindGraphInvariant, fmt.Sprintf(format, args...), nil)
}

// EditorAbortf builds a [KindEditorAbort] [Error].
func EditorAbortf(format string, args ...any) error {
	return newError(KindEditorAbort, fmt.Sprintf(format, args...), nil)
}

// IOError wraps cause as a [KindIO] [Error].
func IOError(msg string, cause error) error {
	return newError(KindIO, msg, cause)
}

// ExitCode maps err to the process exit code described by the external
// interface specification: 0 for nil/success, 64 for usage errors,
// 78 for configuration errors, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *Error
	if errors.As(err, &gitErr) {
		switch gitErr.Kind {
		case KindUsage:
			return 64
		case KindConfig:
			return 78
		}
	}
	return 1
}

// ErrDetachedHead indicates that the repository is in detached HEAD
// state when a branch name was expected.
var ErrDetachedHead = errors.New("in detached HEAD state")

// ErrNotExist is returned when a requested Git object or ref does not
// exist.
var ErrNotExist = errors.New("does not exist")

// ErrNoChanges is returned when there is nothing to stash.
var ErrNoChanges = errors.New("no changes to stash")
