// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the pandoc-blank-text filter: every paragraph is replaced
// by an empty one while headers, lists, and equations are kept.
//
//	pandoc slides.md --filter pandoc-blank-text -o outline.html
package main

import (
	"os"

	"github.com/pdiddy/slidefilters/internal/cli"
	"github.com/pdiddy/slidefilters/internal/filter"
)

func main() {
	if err := cli.NewFilterCommand("pandoc-blank-text", filter.TextBlanker{}).Execute(); err != nil {
		os.Exit(1)
	}
}
