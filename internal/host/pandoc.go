// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package host drives the pandoc executable around the in-process filters:
// pandoc reads the source into JSON, the filters rewrite it, and pandoc
// writes the final output.
package host

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pdiddy/slidefilters/internal/filter"
	"github.com/pdiddy/slidefilters/internal/pandoc"
)

// DefaultBinary is the pandoc executable looked up on PATH.
const DefaultBinary = "pandoc"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

var defaultExec = &osExecutor{}

// Pandoc runs one pandoc binary.
type Pandoc struct {
	bin  string
	exec executor
}

// Detect locates bin (DefaultBinary when empty) on PATH.
func Detect(bin string) (*Pandoc, error) {
	return detect(bin, defaultExec)
}

func detect(bin string, exec executor) (*Pandoc, error) {
	if bin == "" {
		bin = DefaultBinary
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("pandoc executable %q not found: %w", bin, err)
	}
	return &Pandoc{bin: path, exec: exec}, nil
}

// Path returns the resolved executable path.
func (p *Pandoc) Path() string { return p.bin }

// Read converts the file at input into a pandoc document. from selects the
// reader; empty lets pandoc infer it from the extension.
func (p *Pandoc) Read(ctx context.Context, input, from string) (*pandoc.Document, error) {
	args := make([]string, 0, 5)
	if from != "" {
		args = append(args, "--from", from)
	}
	args = append(args, "--to", "json", input)

	var out bytes.Buffer
	if err := p.exec.RunPiped(ctx, p.bin, args, nil, &out); err != nil {
		return nil, fmt.Errorf("reading %s with pandoc: %w", input, err)
	}
	doc, err := pandoc.Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("reading %s with pandoc: %w", input, err)
	}
	return doc, nil
}

// Write renders doc to output. to selects the writer; empty lets pandoc
// infer it from the output extension.
func (p *Pandoc) Write(ctx context.Context, doc *pandoc.Document, output, to string, extra ...string) error {
	var in bytes.Buffer
	if err := pandoc.Encode(&in, doc); err != nil {
		return err
	}

	args := []string{"--from", "json"}
	if to != "" {
		args = append(args, "--to", to)
	}
	args = append(args, "--output", output)
	args = append(args, extra...)

	if err := p.exec.RunPiped(ctx, p.bin, args, &in, io.Discard); err != nil {
		return fmt.Errorf("writing %s with pandoc: %w", output, err)
	}
	return nil
}

// RenderOptions describes one end-to-end conversion.
type RenderOptions struct {
	Input     string
	Output    string
	From      string
	To        string
	ExtraArgs []string
}

// Render reads opts.Input, applies filters in order, and writes opts.Output.
// The filters see opts.To as their target format.
func (p *Pandoc) Render(ctx context.Context, opts RenderOptions, env filter.Env, filters ...filter.Filter) error {
	doc, err := p.Read(ctx, opts.Input, opts.From)
	if err != nil {
		return err
	}
	if env.Format == "" {
		env.Format = opts.To
	}
	filter.Apply(doc, env, filters...)
	return p.Write(ctx, doc, opts.Output, opts.To, opts.ExtraArgs...)
}
