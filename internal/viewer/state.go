package viewer

import "cleanbite/internal/domain/catalog"

// State is a point-in-time snapshot of a controller.
type State struct {
	View         View           `json:"view"`
	Detail       DetailState    `json:"detail"`
	DetailID     string         `json:"detailId,omitempty"`
	Results      ResultsMode    `json:"results"`
	Query        string         `json:"query,omitempty"`
	Matches      int            `json:"matches"`
	Loaded       bool           `json:"loaded"`
	Error        string         `json:"error,omitempty"`
	Records      int            `json:"records"`
	Filtered     int            `json:"filtered"`
	Markers      int            `json:"markers"`
	ActiveMarker string         `json:"activeMarker,omitempty"`
	Navigating   bool           `json:"navigating"`
	Filter       catalog.Filter `json:"filter"`
}
