// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"log/slog"
	"strings"

	"github.com/pdiddy/slidefilters/internal/pandoc"
	"github.com/pdiddy/slidefilters/pkg/types"
)

// Marker comments delimiting an excluded region. They are matched as
// substrings of html RawBlock text.
const (
	BeginMarker = "<!-- BEGIN NOT SLIDE -->"
	EndMarker   = "<!-- END NOT SLIDE -->"
)

const markerFormat = "html"

// CommentRangeStripper deletes everything between a BEGIN NOT SLIDE and an
// END NOT SLIDE comment, markers included.
type CommentRangeStripper struct{}

// Name implements Filter.
func (CommentRangeStripper) Name() string { return "strip-not-slide" }

// Handler implements Filter with a fresh RegionStripper.
func (CommentRangeStripper) Handler(env Env) pandoc.Handler {
	return NewRegionStripper(env.logger())
}

// RegionStripper is the per-document state of the stripper. The markers act
// as a two-state toggle: a second BEGIN while inside does not nest, and an
// END while outside is a no-op. A region left open runs to end of document.
type RegionStripper struct {
	state  types.RegionState
	report types.StripReport
	log    *slog.Logger
}

// NewRegionStripper returns a stripper in the outside state. A nil logger
// discards diagnostics.
func NewRegionStripper(log *slog.Logger) *RegionStripper {
	if log == nil {
		log = Env{}.logger()
	}
	return &RegionStripper{state: types.RegionOutside, log: log}
}

// State reports whether the stripper is currently inside a region.
func (s *RegionStripper) State() types.RegionState { return s.state }

// Handle implements pandoc.Handler.
func (s *RegionStripper) Handle(n *pandoc.Node) pandoc.Action {
	if format, text, ok := n.RawBlock(); ok && format == markerFormat {
		if strings.Contains(text, BeginMarker) {
			s.report.BeginMarkers++
			if s.state == types.RegionOutside {
				s.report.Regions++
				s.log.Debug("not-slide region opened", "region", s.report.Regions)
			}
			s.state = types.RegionInside
			return pandoc.Delete()
		}
		if strings.Contains(text, EndMarker) {
			s.report.EndMarkers++
			if s.state == types.RegionOutside {
				s.report.StrayEndMarkers++
				s.log.Debug("END NOT SLIDE marker outside a region")
			} else {
				s.log.Debug("not-slide region closed", "region", s.report.Regions)
			}
			s.state = types.RegionOutside
			return pandoc.Delete()
		}
	}

	if s.state == types.RegionInside {
		s.report.DeletedNodes++
		return pandoc.Delete()
	}
	return pandoc.Unchanged()
}

// Finish implements Finisher. An open region is reported but the truncated
// output stands.
func (s *RegionStripper) Finish() {
	s.report.FinalState = s.state
	s.report.Unterminated = s.state == types.RegionInside
	if s.report.Unterminated {
		s.log.Warn("document ended inside a NOT SLIDE region; content after the last BEGIN marker was dropped",
			"deleted_nodes", s.report.DeletedNodes)
	}
}

// Report returns the counters gathered so far. FinalState and Unterminated
// are filled in by Finish.
func (s *RegionStripper) Report() types.StripReport { return s.report }
