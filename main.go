// Command stack manages a stack of dependent local branches rooted at
// a shared merge-base: annotating, reordering, and replaying their
// commits as the branches themselves change.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"go.abhg.dev/stack/internal/git"
)

func main() {
	logger := newLogger(os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		logger.Warn("interrupted, cleaning up; press Ctrl-C again to exit immediately")
		cancel()
	}()

	var cmd mainCmd
	kctx := kong.Parse(
		&cmd,
		kong.Name("stack"),
		kong.Description("stack manages a stack of dependent local branches."),
		kong.Bind(logger, &cmd.globalOptions),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.UsageOnError(),
	)

	if err := kctx.Run(); err != nil {
		kctx.Errorf("%v", err)
		kctx.Exit(git.ExitCode(err))
	}
}

// newLogger builds the process-wide logger, coloring its output only
// when stderr is a terminal.
func newLogger(w *os.File) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: false})
	if !isatty.IsTerminal(w.Fd()) {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger
}

// globalOptions carries flags shared by every subcommand.
type globalOptions struct {
	DryRun bool `short:"n" help:"Print what would be done without changing the repository."`
}

type mainCmd struct {
	globalOptions

	Verbose bool        `short:"v" help:"Enable debug logging."`
	Version versionFlag `help:"Print version information and quit."`

	Amend      commitAmendCmd `cmd:"" name:"amend" help:"Amend the topmost commit and restack dependents."`
	Branches   branchesCmd    `cmd:"" name:"branches" help:"List known branches."`
	VersionCmd versionCmd     `cmd:"" name:"version" help:"Print version information."`
}

func (cmd *mainCmd) AfterApply(logger *log.Logger) error {
	if cmd.Verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return nil
}
