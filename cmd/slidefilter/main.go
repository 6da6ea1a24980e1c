// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slidefilter CLI, which bundles the
// slide filters behind subcommands and can drive pandoc end to end.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidefilters/internal/cli"
	"github.com/pdiddy/slidefilters/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg holds the configuration loaded before any subcommand runs.
var cfg types.Config

// rootCmd is the base command for the slidefilter CLI.
var rootCmd = &cobra.Command{
	Use:   "slidefilter",
	Short: "pandoc filters for turning lecture notes into slides",
	Long: `slidefilter rewrites pandoc JSON documents. "strip" removes everything
between <!-- BEGIN NOT SLIDE --> and <!-- END NOT SLIDE --> comments; "blank"
empties every paragraph while keeping headers, lists, and equations.

Filter subcommands read pandoc JSON on stdin and write it to stdout, so they
can be used directly in a pipe:

  pandoc notes.md -t json | slidefilter strip | pandoc -f json -t revealjs -s -o slides.html

"render" runs that pipeline for you.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		loaded, err := cli.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			loaded.Log.Level = level
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidefilter.yaml or ~/.config/slidefilter/slidefilter.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "stderr log level: debug, info, warn, error (overrides config)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
