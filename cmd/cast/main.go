// Command cast is the CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/pxuan19/CAST/internal/interfaces/cli"
	"github.com/pxuan19/CAST/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitStatus(errors.GetCode(err)))
	}
}
