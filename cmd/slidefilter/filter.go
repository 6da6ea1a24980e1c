// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidefilters/internal/cli"
	"github.com/pdiddy/slidefilters/internal/filter"
)

var blankCmd = &cobra.Command{
	Use:   "blank [format]",
	Short: "Replace every paragraph with an empty one",
	Long: `Blank reads a pandoc JSON document on stdin and replaces the content of
every paragraph with an empty string. Headers, lists, equations, and all
other blocks pass through unchanged.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunFilters(cmd, cfg, cli.FormatArg(args), []filter.Filter{filter.TextBlanker{}})
	},
}

var stripCmd = &cobra.Command{
	Use:   "strip [format]",
	Short: "Remove content between NOT SLIDE marker comments",
	Long: `Strip reads a pandoc JSON document on stdin and deletes every block from
<!-- BEGIN NOT SLIDE --> up to and including <!-- END NOT SLIDE -->. The
markers must be raw HTML blocks. A region that is never closed runs to the
end of the document; a warning is logged when that happens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunFilters(cmd, cfg, cli.FormatArg(args), []filter.Filter{filter.CommentRangeStripper{}})
	},
}

var chainCmd = &cobra.Command{
	Use:   "chain [--format fmt] [filters...]",
	Short: "Apply several filters in order",
	Long: `Chain applies the named filters to the document on stdin, one after
another, each with fresh state. With no names it uses the "filters" list
from the configuration.

Unlike blank and strip, whose single positional argument is the target
format, chain's positional arguments are filter names. Pass the target
format with --format instead:

  slidefilter chain --format revealjs strip-not-slide blank-text`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = cfg.Filters
		}
		if len(names) == 0 {
			return fmt.Errorf("no filters given and none configured")
		}
		filters, err := filter.LookupAll(names)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		return cli.RunFilters(cmd, cfg, format, filters)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available filters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range filter.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	chainCmd.Flags().String("format", "", "target output format passed to the filters")

	rootCmd.AddCommand(blankCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(chainCmd)
	rootCmd.AddCommand(listCmd)
}
