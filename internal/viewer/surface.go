// Package viewer coordinates the map, the detail panel and the results panel
// for one viewer. It owns the marker registry and the selection sequence and
// talks to the rendering side only through the interfaces declared here.
package viewer

import (
	"time"

	"cleanbite/internal/domain/entity"
	"cleanbite/internal/domain/presentation"
)

// MapSurface is the map widget.
type MapSurface interface {
	// AddMarker places a coloured marker for the establishment id.
	AddMarker(id string, at entity.Coordinates, color string) MarkerHandle
	// FlyTo animates the viewport.
	FlyTo(opts FlyToOptions)
	// OnceMoveEnd registers fn for the next end of a viewport movement only,
	// replacing any handler still waiting.
	// fn may run on any goroutine but never inside a MapSurface call.
	OnceMoveEnd(fn func())
}

// MarkerHandle is a live marker owned by the registry.
type MarkerHandle interface {
	SetAppearance(a Appearance)
	Remove()
}

// Glow is the shadow intensity around a marker.
type Glow string

const (
	GlowNone   Glow = "none"
	GlowSoft   Glow = "soft"
	GlowStrong Glow = "strong"
)

// Appearance is the visual state of a marker.
type Appearance struct {
	Scale  float64 `json:"scale"`
	ZIndex int     `json:"zIndex"`
	Glow   Glow    `json:"glow"`
}

var (
	// Baseline is the resting state of every marker.
	Baseline = Appearance{Scale: 1, ZIndex: 1, Glow: GlowNone}
	// Highlighted is the settled state of the active marker.
	Highlighted = Appearance{Scale: 1.3, ZIndex: 10, Glow: GlowSoft}
	// Overshoot is the first phase of an animated activation.
	Overshoot = Appearance{Scale: 1.5, ZIndex: 20, Glow: GlowStrong}
	// Settled is where an overshoot ends; it keeps the raised z-index.
	Settled = Appearance{Scale: 1.3, ZIndex: 20, Glow: GlowSoft}
)

// Easing names a time curve for viewport animations.
type Easing string

// EaseInOutQuad accelerates over the first half and decelerates over the second.
const EaseInOutQuad Easing = "easeInOutQuad"

// At maps progress t in [0,1] through the curve.
func (e Easing) At(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}

	switch e {
	case EaseInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}

		return -1 + (4-2*t)*t
	default:
		return t
	}
}

// FlyToOptions describes one viewport animation.
type FlyToOptions struct {
	Center   entity.Coordinates
	Zoom     float64
	Duration time.Duration
	Curve    float64
	Easing   Easing
}

// ResultsMode is what the results overlay currently shows.
type ResultsMode string

const (
	ResultsHidden ResultsMode = "hidden"
	ResultsSearch ResultsMode = "search"
	ResultsList   ResultsMode = "list"
)

// Panels is everything around the map: overlays, indicators and controls.
type Panels interface {
	ShowLoading(visible bool)
	ShowError(message string)

	ShowDetail(detail presentation.Detail, emphasized bool)
	SetDetailEmphasis(emphasized bool)
	HideDetail()

	ShowResults(panel presentation.ResultsPanel, mode ResultsMode)
	HideResults()

	// SetMapVisible fades the map and its legend in or out.
	SetMapVisible(visible bool)
	// SetToggle updates the view toggle for the current view.
	SetToggle(listView bool)
	SetClearSearch(visible bool)
	ResetSearchInput()

	ShowNavigating(text string)
	HideNavigating()
}
