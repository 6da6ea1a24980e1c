// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import "github.com/pdiddy/slidefilters/internal/pandoc"

// TextBlanker replaces every paragraph with an empty one, leaving headers,
// lists, equations and other structure in place.
type TextBlanker struct{}

// Name implements Filter.
func (TextBlanker) Name() string { return "blank-text" }

// Handler implements Filter. The blanker is stateless.
func (TextBlanker) Handler(Env) pandoc.Handler {
	return pandoc.HandlerFunc(BlankParagraph)
}

// BlankParagraph returns Para([Str("")]) for any paragraph, discarding its
// inline content, and Unchanged for every other node.
func BlankParagraph(n *pandoc.Node) pandoc.Action {
	if n.Tag != pandoc.TagPara {
		return pandoc.Unchanged()
	}
	return pandoc.Replace(pandoc.Para(pandoc.Str("")))
}
