// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidefilters/internal/cli"
	"github.com/pdiddy/slidefilters/internal/filter"
	"github.com/pdiddy/slidefilters/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize NOT SLIDE regions without rewriting the document",
	Long: `Report runs the strip filter over the pandoc JSON document on stdin and
prints what it found (markers, regions, deleted blocks, and whether the
document ends inside an open region) as YAML, or JSON with --json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := cli.NewLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		report, err := filter.Inspect(cmd.InOrStdin(), filter.Env{Logger: log})
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return writeReport(cmd, report, jsonOutput)
	},
}

func writeReport(cmd *cobra.Command, report types.StripReport, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

func init() {
	reportCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(reportCmd)
}
