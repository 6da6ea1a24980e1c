// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"fmt"
	"io"

	"github.com/pdiddy/slidefilters/internal/pandoc"
	"github.com/pdiddy/slidefilters/pkg/types"
)

// Apply runs filters over doc in order. Each filter gets its own handler,
// and therefore its own state, for this document.
func Apply(doc *pandoc.Document, env Env, filters ...Filter) *pandoc.Document {
	base := env.logger()
	for _, f := range filters {
		fenv := env
		fenv.Logger = base.With("filter", f.Name())

		h := f.Handler(fenv)
		pandoc.Walk(doc, h)
		if fin, ok := h.(Finisher); ok {
			fin.Finish()
		}
		fenv.Logger.Debug("filter applied", "blocks", len(doc.Blocks))
	}
	return doc
}

// Run reads one pandoc JSON document from r, applies filters, and writes the
// result to w.
func Run(r io.Reader, w io.Writer, env Env, filters ...Filter) error {
	doc, err := pandoc.Decode(r)
	if err != nil {
		return err
	}
	Apply(doc, env, filters...)
	if err := pandoc.Encode(w, doc); err != nil {
		return fmt.Errorf("writing filtered document: %w", err)
	}
	return nil
}

// Inspect runs the stripper over the document read from r and returns its
// report. The filtered document is discarded.
func Inspect(r io.Reader, env Env) (types.StripReport, error) {
	doc, err := pandoc.Decode(r)
	if err != nil {
		return types.StripReport{}, err
	}
	s := NewRegionStripper(env.logger().With("filter", CommentRangeStripper{}.Name()))
	pandoc.Walk(doc, s)
	s.Finish()
	return s.Report(), nil
}
