// Package main provides the entry point for the bidclock CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mrz1836/bidclock/internal/cli"
	"github.com/mrz1836/bidclock/internal/errors"
)

// Set via ldflags at build time.
var (
	version = "" //nolint:gochecknoglobals // ldflags target
	commit  = "" //nolint:gochecknoglobals // ldflags target
	date    = "" //nolint:gochecknoglobals // ldflags target
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if err != nil {
		if _, action := errors.Actionable(err); action != "" {
			_, _ = fmt.Fprintln(os.Stderr, "Try: "+action)
		}
	}
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
