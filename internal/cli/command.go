// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/slidefilters/internal/filter"
)

// NewFilterCommand returns the root command of a standalone pandoc filter
// executable running f. It takes no flags; pandoc's optional target-format
// argument is accepted and handed to the filter.
func NewFilterCommand(use string, f filter.Filter) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [format]",
		Short: "pandoc JSON filter: " + f.Name(),
		Long: `Reads a pandoc JSON document on stdin, applies the ` + f.Name() + ` filter,
and writes the result to stdout. Use it with pandoc --filter.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig("")
			if err != nil {
				return err
			}
			return RunFilters(cmd, cfg, FormatArg(args), []filter.Filter{f})
		},
	}
}

// FormatArg returns the target format pandoc passes as the first argument.
func FormatArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
