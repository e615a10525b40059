package usecase

import (
	"context"

	"cleanbite/internal/infra/mapbridge"
	"cleanbite/internal/viewer"
)

// Viewer event types accepted by Dispatch.
const (
	EventSearch      = "search"
	EventClearSearch = "clear_search"
	EventFilter      = "filter"
	EventToggleView  = "toggle_view"
	EventSelect      = "select"
	EventMarkerClick = "marker_click"
	EventClosePanel  = "close_panel"
	EventEscape      = "escape"
	EventClick       = "click"
	EventMoveEnd     = "moveend"
	EventMapLoad     = "map_load"
)

// ViewerUsecase drives server-side viewer sessions: one view controller per
// browser, fed by UI events and answered with rendering commands.
type ViewerUsecase interface {
	OpenSession(ctx context.Context) (*ViewerSnapshot, error)
	Dispatch(ctx context.Context, sessionID string, event *ViewerEvent) (*ViewerSnapshot, error)
	Stream(ctx context.Context, sessionID string) (*CommandStream, error)
	CloseSession(ctx context.Context, sessionID string) error
	// ReapIdle closes sessions idle for longer than the configured TTL.
	ReapIdle(ctx context.Context) int
}

// ViewerEvent is one UI event reported by the browser.
type ViewerEvent struct {
	Type         string
	Query        string
	ID           string
	MinRating    *int
	BusinessType *string
	Target       *viewer.ClickTarget
}

// ViewerSnapshot carries the commands produced so far and the resulting state.
// Each command is delivered once, either here or on the stream.
type ViewerSnapshot struct {
	SessionID string              `json:"sessionId"`
	Commands  []mapbridge.Command `json:"commands"`
	State     viewer.State        `json:"state"`
	MapReady  bool                `json:"mapReady"`
}

// CommandStream delivers commands produced after a request returned, such as
// the steps of a fly-to sequence.
type CommandStream struct {
	// Notify fires when Drain has something to return.
	Notify <-chan struct{}
	// Done is closed when the session ends.
	Done  <-chan struct{}
	Drain func() []mapbridge.Command
}
