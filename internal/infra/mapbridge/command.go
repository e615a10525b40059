// Package mapbridge renders viewer operations as JSON commands for the
// browser. A Bridge stands in for the map widget and the panels around it;
// the browser replays the commands it drains and reports events back.
package mapbridge

import "cleanbite/internal/viewer"

// Command types understood by the browser client.
const (
	CmdMapCreate    = "map.create"
	CmdMapFlyTo     = "map.flyTo"
	CmdMapVisible   = "map.visible"
	CmdMarkerAdd    = "marker.add"
	CmdMarkerStyle  = "marker.style"
	CmdMarkerRemove = "marker.remove"
	CmdMarkersReset = "markers.reset"
	CmdLoading      = "loading"
	CmdDetailShow   = "detail.show"
	CmdDetailEmph   = "detail.emphasis"
	CmdDetailHide   = "detail.hide"
	CmdDetailError  = "detail.error"
	CmdResultsShow  = "results.show"
	CmdResultsHide  = "results.hide"
	CmdToggle       = "toggle"
	CmdSearchClear  = "search.clearButton"
	CmdSearchReset  = "search.reset"
	CmdNavigateShow = "navigating.show"
	CmdNavigateHide = "navigating.hide"
)

// Command is one instruction for the browser. Seq increases with every
// command a bridge hands out.
type Command struct {
	Seq  uint64 `json:"seq"`
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// MapInit is the payload of map.create.
type MapInit struct {
	AccessToken string    `json:"accessToken"`
	StyleURL    string    `json:"styleUrl"`
	Center      []float64 `json:"center"` // [lng, lat]
	Zoom        float64   `json:"zoom"`
	Controls    []Control `json:"controls"`
}

// Control is a map control attached at a screen corner.
type Control struct {
	Type     string `json:"type"`
	Position string `json:"position"`
	MaxWidth int    `json:"maxWidth,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// DefaultControls are the navigation and scale controls.
func DefaultControls() []Control {
	return []Control{
		{Type: "navigation", Position: "top-right"},
		{Type: "scale", Position: "bottom-right", MaxWidth: 100, Unit: "metric"},
	}
}

type markerAdd struct {
	Key    string    `json:"key"`
	ID     string    `json:"id"`
	LngLat []float64 `json:"lngLat"`
	Color  string    `json:"color"`
}

type markerStyle struct {
	Key    string  `json:"key"`
	Scale  float64 `json:"scale"`
	ZIndex int     `json:"zIndex"`
	Glow   string  `json:"glow"`
}

type markerRemove struct {
	Key string `json:"key"`
}

// markersReset replaces every marker on the client with the given set.
type markersReset struct {
	Markers []markerState `json:"markers"`
}

type markerState struct {
	markerAdd
	Appearance *viewer.Appearance `json:"appearance,omitempty"`
}

type flyTo struct {
	Center     []float64 `json:"center"`
	Zoom       float64   `json:"zoom"`
	DurationMS int64     `json:"duration"`
	Curve      float64   `json:"curve"`
	Easing     string    `json:"easing"`
}

type visible struct {
	Visible bool `json:"visible"`
}

type toggle struct {
	ListView bool   `json:"listView"`
	Title    string `json:"title"`
	Icon     string `json:"icon"`
}

type message struct {
	Message string `json:"message"`
}

type text struct {
	Text string `json:"text"`
}
