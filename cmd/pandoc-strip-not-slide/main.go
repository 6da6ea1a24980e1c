// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the pandoc-strip-not-slide filter: everything between
// <!-- BEGIN NOT SLIDE --> and <!-- END NOT SLIDE --> is dropped. The
// comments should sit on lines of their own, surrounded by blank lines, so
// that pandoc parses them as raw HTML blocks.
//
//	pandoc notes.md --filter pandoc-strip-not-slide -t revealjs -o slides.html
package main

import (
	"os"

	"github.com/pdiddy/slidefilters/internal/cli"
	"github.com/pdiddy/slidefilters/internal/filter"
)

func main() {
	if err := cli.NewFilterCommand("pandoc-strip-not-slide", filter.CommentRangeStripper{}).Execute(); err != nil {
		os.Exit(1)
	}
}
