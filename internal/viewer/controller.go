package viewer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cleanbite/internal/domain/catalog"
	"cleanbite/internal/domain/entity"
	domainerrors "cleanbite/internal/domain/errors"
	"cleanbite/internal/domain/presentation"

	"github.com/pkg/errors"
)

// Loader supplies the normalised establishment set.
type Loader interface {
	All(ctx context.Context) ([]entity.Establishment, error)
}

// View is the top-level presentation.
type View string

const (
	MapView  View = "map"
	ListView View = "list"
)

// DetailState is the detail panel state.
type DetailState string

const (
	DetailClosed DetailState = "closed"
	DetailOpen   DetailState = "open"
	DetailError  DetailState = "error"
)

// ClickTarget says where a pointer click landed.
type ClickTarget struct {
	InDetailPanel  bool `json:"inDetailPanel"`
	OnMarker       bool `json:"onMarker"`
	InResultsPanel bool `json:"inResultsPanel"`
	InSearchInput  bool `json:"inSearchInput"`
}

// Options configures a Controller. Zero fields take defaults.
type Options struct {
	Scheduler Scheduler
	Formatter *presentation.Formatter
	Timings   *Timings
	Logger    *slog.Logger
}

// Controller is the view state machine for one viewer. All methods are safe
// for concurrent use; deferred steps run under the same lock.
type Controller struct {
	mu sync.Mutex

	surface   MapSurface
	panels    Panels
	sched     Scheduler
	formatter *presentation.Formatter
	timings   Timings
	logger    *slog.Logger
	registry  *Registry

	records  []entity.Establishment
	byID     map[string]int
	sorted   []entity.Establishment
	filtered []entity.Establishment
	filter   catalog.Filter
	loaded   bool
	loadErr  error

	view       View
	detail     DetailState
	detailID   string
	results    ResultsMode
	query      string
	matches    int
	navigating bool

	// seq identifies the current cancellable sequence; pending holds its timers.
	seq     uint64
	pending []Timer
	closed  bool
}

// NewController creates a controller in map view with nothing loaded.
func NewController(surface MapSurface, panels Panels, opts Options) *Controller {
	c := &Controller{
		surface:   surface,
		panels:    panels,
		sched:     opts.Scheduler,
		formatter: opts.Formatter,
		logger:    opts.Logger,
		byID:      make(map[string]int),
		view:      MapView,
		detail:    DetailClosed,
		results:   ResultsHidden,
	}

	if c.sched == nil {
		c.sched = NewClockScheduler()
	}
	if c.formatter == nil {
		c.formatter = presentation.NewFormatter(nil)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	c.timings = DefaultTimings()
	if opts.Timings != nil {
		c.timings = *opts.Timings
	}

	c.registry = NewRegistry(surface, serialScheduler{c: c}, c.timings)

	return c
}

// Start loads the dataset and places the markers for the current filter. A
// failure is terminal for this controller: the error is shown in the detail
// panel and never retried.
func (c *Controller) Start(ctx context.Context, loader Loader) error {
	c.mu.Lock()
	c.panels.ShowLoading(true)
	c.mu.Unlock()

	records, err := loader.All(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.panels.ShowLoading(false)

	if err != nil {
		c.loadErr = err
		c.detail = DetailError
		c.detailID = ""
		c.panels.ShowError(userMessage(err))
		c.logger.Error("viewer dataset load failed", slog.Any("error", err))

		return errors.Wrap(err, "load establishments")
	}

	c.records = records
	c.byID = make(map[string]int, len(records))
	for i := range records {
		// First occurrence wins, as in the repository.
		if _, dup := c.byID[records[i].ID]; !dup {
			c.byID[records[i].ID] = i
		}
	}
	c.sorted = catalog.SortByName(records)
	c.loaded = true

	c.applyFilters()

	if c.view == ListView && c.results == ResultsList {
		c.panels.ShowResults(presentation.AlphabeticalList(c.sorted), ResultsList)
	}

	c.logger.Debug("viewer dataset loaded",
		slog.Int("records", len(records)),
		slog.Int("markers", c.registry.Len()))

	return nil
}

// Close cancels every pending step. Later calls are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.cancelPending()
	c.registry.Clear()
	c.closed = true
}

// Search handles a change of the search input.
func (c *Controller) Search(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	query, action := catalog.Classify(raw)
	c.panels.SetClearSearch(query != "")

	switch action {
	case catalog.QueryClear:
		c.resetSearch()
	case catalog.QueryIgnore:
	case catalog.QueryRun:
		matches := catalog.Search(c.records, query)
		c.query = query
		c.matches = len(matches)
		c.results = ResultsSearch
		c.panels.ShowResults(presentation.SearchResults(matches, query), ResultsSearch)
	}
}

// ClearSearch empties the search input and reverts to the filtered view.
func (c *Controller) ClearSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.panels.ResetSearchInput()
	c.panels.SetClearSearch(false)
	c.resetSearch()
}

// SetFilters replaces the active filter and redraws the markers.
func (c *Controller) SetFilters(filter catalog.Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.filter = filter
	c.applyFilters()
}

// ToggleView switches between map view and list view.
func (c *Controller) ToggleView() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	seq := c.begin()

	if c.view == ListView {
		c.showMapView()

		return
	}

	c.view = ListView
	c.panels.SetToggle(true)
	c.closeDetail()
	c.panels.SetMapVisible(false)
	c.after(seq, c.timings.ListSettle, c.showList)
}

// SelectByID flies to the establishment and opens its details. Unknown ids
// are ignored. From list view the map is restored first.
func (c *Controller) SelectByID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	idx, ok := c.byID[id]
	if !ok {
		return
	}
	e := c.records[idx]

	seq := c.begin()

	if c.view == ListView {
		c.showMapView()
		c.after(seq, c.timings.ListSelectDelay, func() {
			c.flyTo(seq, e)
		})

		return
	}

	c.flyTo(seq, e)
}

// MarkerClicked opens the details of a live marker without emphasis.
func (c *Controller) MarkerClicked(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.registry.Has(id) {
		return
	}

	idx, ok := c.byID[id]
	if !ok {
		return
	}

	seq := c.begin()
	c.openDetail(seq, c.records[idx], false)
	c.registry.Activate(id, false)
}

// CloseDetailPanel hides the detail panel and resets the active marker.
func (c *Controller) CloseDetailPanel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.begin()
	c.closeDetail()
}

// Escape closes the detail panel and hides the results panel, whatever their
// state, and cancels any selection in flight.
func (c *Controller) Escape() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.begin()
	c.closeDetail()
	c.hideResults(true)
}

// ClickOutside applies the pointer dismissal rules. The list overlay of list
// view is not dismissed by clicks.
func (c *Controller) ClickOutside(target ClickTarget) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if !target.InDetailPanel && !target.OnMarker && c.detail != DetailClosed {
		c.begin()
		c.closeDetail()
	}

	if !target.InResultsPanel && !target.InSearchInput {
		c.hideResults(false)
	}
}

// State returns a snapshot of the view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		View:       c.view,
		Detail:     c.detail,
		DetailID:   c.detailID,
		Results:    c.results,
		Query:      c.query,
		Matches:    c.matches,
		Loaded:     c.loaded,
		Records:    len(c.records),
		Filtered:   len(c.filtered),
		Markers:    c.registry.Len(),
		Navigating: c.navigating,
		Filter:     c.filter,
	}

	if id, ok := c.registry.Active(); ok {
		s.ActiveMarker = id
	}
	if c.loadErr != nil {
		s.Error = userMessage(c.loadErr)
	}

	return s
}

func (c *Controller) flyTo(seq uint64, e entity.Establishment) {
	c.hideResults(false)
	c.closeDetail()

	if !e.HasCoordinates() {
		c.openDetail(seq, e, true)

		return
	}

	c.navigating = true
	c.panels.ShowNavigating(presentation.NavigatingText(e.Name))

	c.surface.FlyTo(FlyToOptions{
		Center:   *e.Coordinates,
		Zoom:     c.timings.FlyToZoom,
		Duration: c.timings.FlyToDuration,
		Curve:    c.timings.FlyToCurve,
		Easing:   EaseInOutQuad,
	})

	c.surface.OnceMoveEnd(c.guard(seq, func() {
		c.after(seq, c.timings.MoveEndSettle, func() {
			c.registry.Activate(e.ID, true)
			c.openDetail(seq, e, true)
			c.navigating = false
			c.panels.HideNavigating()
		})
	}))

	c.logger.Debug("viewer flying to establishment", slog.String("id", e.ID))
}

func (c *Controller) openDetail(seq uint64, e entity.Establishment, emphasized bool) {
	c.detail = DetailOpen
	c.detailID = e.ID
	c.panels.ShowDetail(c.formatter.Detail(&e), emphasized)
	c.hideResults(false)

	if emphasized {
		c.after(seq, c.timings.EmphasisDecay, func() {
			c.panels.SetDetailEmphasis(false)
		})
	}
}

func (c *Controller) closeDetail() {
	if c.detail != DetailClosed {
		c.panels.HideDetail()
		c.detail = DetailClosed
		c.detailID = ""
	}

	c.registry.Deactivate()
}

func (c *Controller) hideResults(force bool) {
	if c.results == ResultsHidden {
		return
	}
	if c.results == ResultsList && !force {
		return
	}

	c.results = ResultsHidden
	c.panels.HideResults()
}

func (c *Controller) resetSearch() {
	c.query = ""
	c.matches = 0
	c.hideResults(false)
	c.applyFilters()
}

func (c *Controller) applyFilters() {
	if !c.loaded {
		return
	}

	c.filtered = catalog.ApplyFilters(c.records, c.filter)
	c.registry.Reconcile(c.filtered)
}

func (c *Controller) showMapView() {
	c.view = MapView
	c.panels.SetToggle(false)
	c.hideResults(true)
	c.panels.SetMapVisible(true)
}

func (c *Controller) showList() {
	c.results = ResultsList

	if !c.loaded {
		c.panels.ShowResults(presentation.LoadingList(), ResultsList)

		return
	}

	c.panels.ShowResults(presentation.AlphabeticalList(c.sorted), ResultsList)
}

// begin starts a new sequence, invalidating every step of the previous one.
func (c *Controller) begin() uint64 {
	c.cancelPending()
	c.seq++

	return c.seq
}

func (c *Controller) cancelPending() {
	for _, t := range c.pending {
		t.Stop()
	}
	c.pending = c.pending[:0]

	if c.navigating {
		c.navigating = false
		c.panels.HideNavigating()
	}
}

// after schedules fn as a step of sequence seq. Must be called with mu held.
func (c *Controller) after(seq uint64, d time.Duration, fn func()) {
	c.pending = append(c.pending, c.sched.AfterFunc(d, c.guard(seq, fn)))
}

// guard wraps fn so that it runs under mu and only while seq is current.
func (c *Controller) guard(seq uint64, fn func()) func() {
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.closed || c.seq != seq {
			return
		}

		fn()
	}
}

// serialScheduler runs registry callbacks under the controller lock.
type serialScheduler struct {
	c *Controller
}

func (s serialScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return s.c.sched.AfterFunc(d, func() {
		s.c.mu.Lock()
		defer s.c.mu.Unlock()

		if s.c.closed {
			return
		}

		fn()
	})
}

func userMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return domainerrors.ErrDatasetUnavailable.Message()
}
