package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/kong"
)

// _version is overwritten at release-build time via -ldflags.
var _version = "dev"

// versionFlag implements "--version": print version information and
// exit before any subcommand runs.
type versionFlag bool

func (v versionFlag) BeforeReset(app *kong.Kong) error {
	fmt.Fprintln(app.Stdout, "stack", versionString())
	app.Exit(0)
	return nil
}

// versionCmd implements "version" as an ordinary subcommand, for
// scripts that pipe stack's stdout and don't want kong's early-exit
// flag handling.
type versionCmd struct {
	Short bool `help:"Print only the version number."`
}

func (cmd *versionCmd) Run(kctx *kong.Context) error {
	if cmd.Short {
		fmt.Fprintln(kctx.Stdout, versionString())
		return nil
	}
	fmt.Fprintln(kctx.Stdout, "stack", versionString())
	return nil
}

func versionString() string {
	if _version != "dev" {
		return _version
	}
	if report := generateBuildReport(); report != "" {
		return _version + " (" + report + ")"
	}
	return _version
}

// generateBuildReport extracts a human-readable revision string from
// the Go module's embedded build metadata, for development builds
// that weren't stamped with -ldflags.
func generateBuildReport() string {
	return buildReportFromInfo(readBuildInfo())
}

func readBuildInfo() *debug.BuildInfo {
	info, _ := debug.ReadBuildInfo()
	return info
}

func buildReportFromInfo(info *debug.BuildInfo) string {
	if info == nil {
		return ""
	}

	var revision, dirty, timestamp string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				dirty = "-dirty"
			}
		case "vcs.time":
			timestamp = setting.Value
		}
	}

	var parts []string
	if revision != "" {
		parts = append(parts, revision+dirty)
	}
	if timestamp != "" {
		parts = append(parts, timestamp)
	}
	return strings.Join(parts, " ")
}
