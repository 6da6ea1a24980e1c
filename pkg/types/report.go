// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RegionState is the stripper's position relative to an excluded region.
type RegionState string

const (
	RegionOutside RegionState = "outside"
	RegionInside  RegionState = "inside"
)

// StripReport summarizes one pass of the not-slide stripper over a document.
type StripReport struct {
	// BeginMarkers counts BEGIN markers seen, including repeats while inside.
	BeginMarkers int `json:"begin_markers" yaml:"begin_markers"`

	// EndMarkers counts END markers seen, including stray ones while outside.
	EndMarkers int `json:"end_markers" yaml:"end_markers"`

	// Regions counts Outside -> Inside transitions.
	Regions int `json:"regions" yaml:"regions"`

	// DeletedNodes counts nodes removed because they fell inside a region.
	// Marker nodes and descendants of deleted nodes are not counted.
	DeletedNodes int `json:"deleted_nodes" yaml:"deleted_nodes"`

	// StrayEndMarkers counts END markers seen while already outside.
	StrayEndMarkers int `json:"stray_end_markers" yaml:"stray_end_markers"`

	// FinalState is the state at end of document.
	FinalState RegionState `json:"final_state" yaml:"final_state"`

	// Unterminated is true when the document ended inside a region.
	Unterminated bool `json:"unterminated" yaml:"unterminated"`
}
