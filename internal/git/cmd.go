package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"go.abhg.dev/stack/internal/ioutil"
)

type execer interface {
	Run(*exec.Cmd) error
	Output(*exec.Cmd) ([]byte, error)
}

type realExecer struct{}

var _realExec execer = realExecer{}

func (realExecer) Run(cmd *exec.Cmd) error              { return cmd.Run() }
func (realExecer) Output(cmd *exec.Cmd) ([]byte, error) { return cmd.Output() }

// gitCmd provides a fluent API around exec.Cmd that captures stderr:
// it is attached to the returned error, or streamed to the logger
// instead when debug logging is enabled (see stderrWriter).
type gitCmd struct {
	cmd  *exec.Cmd
	wrap func(error) error
}

func newGitCmd(ctx context.Context, logger *log.Logger, dir string, args ...string) *gitCmd {
	name := "git"
	if len(args) > 0 {
		name += " " + args[0]
	}

	stderr, wrap := stderrWriter(name, logger)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stderr = stderr

	return &gitCmd{cmd: cmd, wrap: wrap}
}

func (c *gitCmd) Stdin(r io.Reader) *gitCmd {
	c.cmd.Stdin = r
	return c
}

func (c *gitCmd) StdinString(s string) *gitCmd {
	return c.Stdin(strings.NewReader(s))
}

// AppendEnv appends environment variables to the command, seeding from
// the current process environment the first time it's called so that
// PATH, HOME, and friends survive.
func (c *gitCmd) AppendEnv(env ...string) *gitCmd {
	if len(env) == 0 {
		return c
	}
	if c.cmd.Env == nil {
		c.cmd.Env = os.Environ()
	}
	c.cmd.Env = append(c.cmd.Env, env...)
	return c
}

// Run runs the command, blocking until it completes.
func (c *gitCmd) Run(exec execer) error {
	return c.wrap(exec.Run(c.cmd))
}

// Output runs the command and returns its stdout.
func (c *gitCmd) Output(exec execer) ([]byte, error) {
	out, err := exec.Output(c.cmd)
	return out, c.wrap(err)
}

// OutputString runs the command and returns its stdout as a string,
// with the trailing newline removed.
func (c *gitCmd) OutputString(exec execer) (string, error) {
	out, err := c.Output(exec)
	out, _ = bytes.CutSuffix(out, []byte{'\n'})
	return string(out), err
}

// OutputLines runs the command and splits its stdout into non-empty,
// trimmed lines.
func (c *gitCmd) OutputLines(exec execer) ([]string, error) {
	s, err := c.OutputString(exec)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}

	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// stderrWriter returns an io.Writer that records stderr for later use,
// and a wrap function that attaches the recorded stderr to an error.
//
// If debug logging is enabled, stderr streams to the logger instead of
// being buffered, matching how the rest of the command's progress is
// reported.
func stderrWriter(cmdName string, logger *log.Logger) (w io.Writer, wrap func(error) error) {
	if logger != nil && logger.GetLevel() <= log.DebugLevel {
		cmdLog := logger.WithPrefix(cmdName)
		w, flush := ioutil.LogWriter(cmdLog, log.DebugLevel)
		return w, func(err error) error {
			flush()
			return err
		}
	}

	var buf bytes.Buffer
	return &buf, func(err error) error {
		stderr := bytes.TrimSpace(buf.Bytes())
		if err == nil || len(stderr) == 0 {
			return err
		}
		return errors.Join(err, fmt.Errorf("stderr:\n%s", stderr))
	}
}
