// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidefilters/internal/pandoc"
	"github.com/pdiddy/slidefilters/pkg/types"
)

const notesJSON = `{"pandoc-api-version":[1,23,1],"meta":{},"blocks":[` +
	`{"t":"Header","c":[1,["",[],[]],[{"t":"Str","c":"Week"},{"t":"Space"},{"t":"Str","c":"1"}]]},` +
	`{"t":"RawBlock","c":["html","<!-- BEGIN NOT SLIDE -->"]},` +
	`{"t":"Para","c":[{"t":"Str","c":"lecture"},{"t":"Space"},{"t":"Str","c":"prose"}]},` +
	`{"t":"RawBlock","c":["html","<!-- END NOT SLIDE -->"]},` +
	`{"t":"Para","c":[{"t":"Str","c":"on"},{"t":"Space"},{"t":"Str","c":"slide"}]}]}`

// run executes rootCmd with args and stdin from an empty working directory.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCapture(t, stdin, args...)
	return out, err
}

// runCapture is run that also returns what the command wrote to stderr.
func runCapture(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestStripCommand(t *testing.T) {
	out, err := run(t, notesJSON, "strip", "revealjs")
	require.NoError(t, err)

	doc, err := pandoc.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, "Week 1", doc.Blocks[0].Text())
	assert.Equal(t, "on slide", doc.Blocks[1].Text())
}

func TestChainCommand(t *testing.T) {
	out, err := run(t, notesJSON, "chain", "strip-not-slide", "blank-text")
	require.NoError(t, err)

	doc, err := pandoc.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, "Week 1", doc.Blocks[0].Text())
	assert.Equal(t, "", doc.Blocks[1].Text())
}

func TestChainCommand_FormatFlag(t *testing.T) {
	out, stderr, err := runCapture(t, notesJSON, "--log-level", "debug", "chain", "--format", "revealjs", "strip-not-slide")
	require.NoError(t, err)
	assert.Contains(t, stderr, "format=revealjs")

	doc, err := pandoc.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, "on slide", doc.Blocks[1].Text())
}

func TestChainCommand_FormatIsNotPositional(t *testing.T) {
	_, err := run(t, notesJSON, "chain", "revealjs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown filter "revealjs"`)
	assert.Contains(t, chainCmd.Long, "--format")
}

func TestChainCommand_UnknownFilter(t *testing.T) {
	_, err := run(t, notesJSON, "chain", "shout")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter")
}

func TestReportCommand(t *testing.T) {
	out, err := run(t, notesJSON, "report")
	require.NoError(t, err)

	var report types.StripReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, types.StripReport{
		BeginMarkers: 1,
		EndMarkers:   1,
		Regions:      1,
		DeletedNodes: 1,
		FinalState:   types.RegionOutside,
	}, report)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "blank-text\nstrip-not-slide\n", out)
}

func TestWriteReport(t *testing.T) {
	report := types.StripReport{BeginMarkers: 2, Regions: 1, FinalState: types.RegionInside, Unterminated: true}

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, writeReport(cmd, report, false))
	assert.Contains(t, buf.String(), "begin_markers: 2\n")
	assert.Contains(t, buf.String(), "final_state: inside\n")
	assert.Contains(t, buf.String(), "unterminated: true\n")

	buf.Reset()
	require.NoError(t, writeReport(cmd, report, true))
	assert.Contains(t, buf.String(), `"unterminated": true`)
}
