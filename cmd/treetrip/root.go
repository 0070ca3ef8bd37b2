// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// ROOT COMMAND
// =============================================================================

type rootFlags struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "treetrip",
		Short: "Find the largest closed, connected trip plan on a tree of cities",
		Long: `treetrip computes, for a tree of cities with integer attractiveness,
the largest connected set of at most K cities that includes every city more
attractive than its least attractive member.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newSolveCmd(flags), newGenCmd(flags))

	return root
}

// logger builds the stderr text logger for the configured level.
func (f *rootFlags) logger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", f.logLevel, err)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
