// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/slidefilters/internal/filter"
	"github.com/pdiddy/slidefilters/pkg/types"
)

// RunFilters applies filters to the document on the command's stdin and
// writes the result to its stdout. Diagnostics go to its stderr.
func RunFilters(cmd *cobra.Command, cfg types.Config, format string, filters []filter.Filter) error {
	log, err := NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log.Debug("running filters", "format", format, "count", len(filters))
	env := filter.Env{Format: format, Logger: log}
	return filter.Run(cmd.InOrStdin(), cmd.OutOrStdout(), env, filters...)
}
