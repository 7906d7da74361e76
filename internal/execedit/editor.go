// Package execedit provides the ability to invoke external editors.
package execedit

import (
	"os"
	"os/exec"

	"github.com/buildkite/shellwords"
)

// Command constructs a command to open the editor
// with the given editor command.
// The editor command may be a shell command or a binary name,
// optionally followed by its own flags (e.g. "code --wait").
func Command(edit string, args ...string) *exec.Cmd {
	var cmd *exec.Cmd
	if words, err := shellwords.SplitPosix(edit); err == nil && len(words) > 0 {
		if exe, err := exec.LookPath(words[0]); err == nil {
			cmd = exec.Command(exe, append(words[1:], args...)...)
		}
	}
	if cmd == nil {
		// We'll run:
		//   sh -c 'EDITOR "$@"' -- "$1" "$2" ...
		// The shell will take care of quoting issues.
		shArgs := append([]string{"-c", edit + ` "$@"`, "--"}, args...)
		cmd = exec.Command("sh", shArgs...)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
