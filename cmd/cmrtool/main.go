package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
)

var (
	envFlag = &cli.StringFlag{
		Name:     "env",
		Aliases:  []string{"e"},
		Usage:    "CMR environment (sit, uat or prod)",
		Required: true,
	}
	snapshotDirFlag = &cli.StringFlag{
		Name:  "snapshot-dir",
		Usage: "Directory holding the snapshot JSON files (default: SNAPSHOT_DIR or cwd)",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error)",
	}
	timeoutFlag = &cli.DurationFlag{
		Name:    "timeout",
		Aliases: []string{"t"},
		Usage:   "HTTP client timeout (e.g. 30s, 1m); 0 uses the transport default",
		Value:   0 * time.Second,
	}
)

func main() {
	root := &cli.Command{
		Name:  "cmrtool",
		Usage: "Discover OPeNDAP-capable CMR collections and manage service associations",
		Flags: []cli.Flag{envFlag, snapshotDirFlag, logLevelFlag, timeoutFlag},
		Commands: []*cli.Command{
			newDiscoverCommand(),
			newAssociateCommand(),
			newMirrorCommand(),
			newBrowseCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
