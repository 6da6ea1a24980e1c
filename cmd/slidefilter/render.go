// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slidefilters/internal/cli"
	"github.com/pdiddy/slidefilters/internal/filter"
	"github.com/pdiddy/slidefilters/internal/host"
)

var renderCmd = &cobra.Command{
	Use:   "render <input>",
	Short: "Convert a document with pandoc, applying filters in process",
	Long: `Render runs pandoc to read the input into JSON, applies the selected
filters (default: the "filters" list from the configuration), and runs
pandoc again to write the output. Extra writer arguments from the
configuration (pandoc.extra_args) are appended to the final call.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		names, _ := cmd.Flags().GetStringSlice("filter")
		bin, _ := cmd.Flags().GetString("pandoc")

		if len(names) == 0 {
			names = cfg.Filters
		}
		filters, err := filter.LookupAll(names)
		if err != nil {
			return err
		}
		if bin == "" {
			bin = cfg.Pandoc.Binary
		}
		p, err := host.Detect(bin)
		if err != nil {
			return err
		}
		log, err := cli.NewLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		opts := host.RenderOptions{
			Input:     args[0],
			Output:    output,
			From:      from,
			To:        to,
			ExtraArgs: cfg.Pandoc.ExtraArgs,
		}
		if err := p.Render(cmd.Context(), opts, filter.Env{Logger: log}, filters...); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "rendered: %s -> %s\n", opts.Input, opts.Output)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "output file (required)")
	renderCmd.Flags().StringP("from", "f", "", "pandoc reader (default: inferred from input)")
	renderCmd.Flags().StringP("to", "t", "", "pandoc writer (default: inferred from output)")
	renderCmd.Flags().StringSlice("filter", nil, "filter to apply; repeat for a chain (default: config filters)")
	renderCmd.Flags().String("pandoc", "", "pandoc executable (default: config pandoc.binary)")
	_ = renderCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(renderCmd)
}
