//go:build mage

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Slides builds the CLI and renders input (lecture notes in Markdown) into a
// reveal.js deck next to it, with NOT SLIDE regions removed.
func Slides(input string) error {
	mg.Deps(Build)
	output := strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
	bin := filepath.Join(binDir, "slidefilter")
	if err := sh.RunV(bin, "render", input, "--to", "revealjs", "--filter", "strip-not-slide", "--output", output); err != nil {
		return fmt.Errorf("rendering %s: %w", input, err)
	}
	return nil
}

// Outline renders input into an HTML outline: NOT SLIDE regions removed and
// every paragraph blanked, leaving headers, lists, and equations.
func Outline(input string) error {
	mg.Deps(Build)
	output := strings.TrimSuffix(input, filepath.Ext(input)) + ".outline.html"
	bin := filepath.Join(binDir, "slidefilter")
	if err := sh.RunV(bin, "render", input, "--to", "html", "--filter", "strip-not-slide", "--filter", "blank-text", "--output", output); err != nil {
		return fmt.Errorf("rendering %s: %w", input, err)
	}
	return nil
}
