package viewer

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"cleanbite/internal/domain/entity"
	"cleanbite/internal/domain/presentation"
)

// fakeClock is a manual Scheduler. Advance fires due timers in order on the
// calling goroutine.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	order   int
	fn      func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &fakeTimer{clock: c, at: c.now + d, order: c.seq, fn: fn}
	c.timers = append(c.timers, t)

	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true

	return true
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		due := make([]*fakeTimer, 0)
		for _, t := range c.timers {
			if !t.fired && !t.stopped && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			c.now = target
			c.mu.Unlock()

			return
		}

		sort.Slice(due, func(i, j int) bool {
			if due[i].at != due[j].at {
				return due[i].at < due[j].at
			}

			return due[i].order < due[j].order
		})
		next := due[0]
		next.fired = true
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}

	return n
}

type fakeMarker struct {
	mu         sync.Mutex
	id         string
	at         entity.Coordinates
	color      string
	appearance Appearance
	removed    bool
}

func (m *fakeMarker) SetAppearance(a Appearance) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.appearance = a
}

func (m *fakeMarker) Remove() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removed = true
}

func (m *fakeMarker) Appearance() Appearance {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.appearance
}

type fakeSurface struct {
	mu      sync.Mutex
	markers []*fakeMarker
	flights []FlyToOptions
	moveEnd func()
}

func (s *fakeSurface) AddMarker(id string, at entity.Coordinates, color string) MarkerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &fakeMarker{id: id, at: at, color: color, appearance: Baseline}
	s.markers = append(s.markers, m)

	return m
}

func (s *fakeSurface) FlyTo(opts FlyToOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flights = append(s.flights, opts)
}

func (s *fakeSurface) OnceMoveEnd(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.moveEnd = fn
}

// FinishMove ends the current viewport movement.
func (s *fakeSurface) FinishMove() {
	s.mu.Lock()
	fn := s.moveEnd
	s.moveEnd = nil
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (s *fakeSurface) Live() map[string]*fakeMarker {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]*fakeMarker)
	for _, m := range s.markers {
		if !m.removed {
			out[m.id] = m
		}
	}

	return out
}

// LiveMarkers returns the live markers in creation order, duplicates included.
func (s *fakeSurface) LiveMarkers() []*fakeMarker {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*fakeMarker
	for _, m := range s.markers {
		if !m.removed {
			out = append(out, m)
		}
	}

	return out
}

func (s *fakeSurface) LiveCount() int {
	return len(s.Live())
}

func (s *fakeSurface) Flights() []FlyToOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]FlyToOptions(nil), s.flights...)
}

type fakePanels struct {
	mu sync.Mutex

	calls        int
	loading      bool
	errorMessage string
	detail       *presentation.Detail
	emphasized   bool
	results      *presentation.ResultsPanel
	resultsMode  ResultsMode
	mapVisible   bool
	listToggle   bool
	clearVisible bool
	navigating   string
	inputResets  int
}

func newFakePanels() *fakePanels {
	return &fakePanels{resultsMode: ResultsHidden, mapVisible: true}
}

func (p *fakePanels) record(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	fn()
}

func (p *fakePanels) ShowLoading(visible bool) {
	p.record(func() { p.loading = visible })
}

func (p *fakePanels) ShowError(message string) {
	p.record(func() { p.errorMessage = message; p.detail = nil })
}

func (p *fakePanels) ShowDetail(detail presentation.Detail, emphasized bool) {
	p.record(func() { p.detail = &detail; p.emphasized = emphasized })
}

func (p *fakePanels) SetDetailEmphasis(emphasized bool) {
	p.record(func() { p.emphasized = emphasized })
}

func (p *fakePanels) HideDetail() {
	p.record(func() { p.detail = nil; p.emphasized = false; p.errorMessage = "" })
}

func (p *fakePanels) ShowResults(panel presentation.ResultsPanel, mode ResultsMode) {
	p.record(func() { p.results = &panel; p.resultsMode = mode })
}

func (p *fakePanels) HideResults() {
	p.record(func() { p.results = nil; p.resultsMode = ResultsHidden })
}

func (p *fakePanels) SetMapVisible(visible bool) {
	p.record(func() { p.mapVisible = visible })
}

func (p *fakePanels) SetToggle(listView bool) {
	p.record(func() { p.listToggle = listView })
}

func (p *fakePanels) SetClearSearch(visible bool) {
	p.record(func() { p.clearVisible = visible })
}

func (p *fakePanels) ResetSearchInput() {
	p.record(func() { p.inputResets++ })
}

func (p *fakePanels) ShowNavigating(text string) {
	p.record(func() { p.navigating = text })
}

func (p *fakePanels) HideNavigating() {
	p.record(func() { p.navigating = "" })
}

type panelState struct {
	calls        int
	loading      bool
	errorMessage string
	detail       *presentation.Detail
	emphasized   bool
	results      *presentation.ResultsPanel
	resultsMode  ResultsMode
	mapVisible   bool
	listToggle   bool
	clearVisible bool
	navigating   string
	inputResets  int
}

func (p *fakePanels) snapshot() panelState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return panelState{
		calls:        p.calls,
		loading:      p.loading,
		errorMessage: p.errorMessage,
		detail:       p.detail,
		emphasized:   p.emphasized,
		results:      p.results,
		resultsMode:  p.resultsMode,
		mapVisible:   p.mapVisible,
		listToggle:   p.listToggle,
		clearVisible: p.clearVisible,
		navigating:   p.navigating,
		inputResets:  p.inputResets,
	}
}

type loaderFunc func(ctx context.Context) ([]entity.Establishment, error)

func (f loaderFunc) All(ctx context.Context) ([]entity.Establishment, error) {
	return f(ctx)
}

func staticLoader(records []entity.Establishment) Loader {
	return loaderFunc(func(context.Context) ([]entity.Establishment, error) {
		return records, nil
	})
}

func establishment(id, name string, rating int, coords *entity.Coordinates) entity.Establishment {
	return entity.Establishment{
		ID:           id,
		Name:         name,
		BusinessType: "Restaurant/Cafe/Canteen",
		Rating:       rating,
		Coordinates:  coords,
		SearchBlob:   strings.ToLower(name + " Restaurant/Cafe/Canteen"),
	}
}

func at(lat, lon float64) *entity.Coordinates {
	return &entity.Coordinates{Latitude: lat, Longitude: lon}
}

func fixture() []entity.Establishment {
	return []entity.Establishment{
		establishment("1", "Pizza Palace", 5, at(54.05, -2.80)),
		establishment("2", "Corner Cafe", 3, at(54.06, -2.79)),
		establishment("3", "Awaiting Kitchen", 0, at(54.04, -2.81)),
		establishment("4", "Mobile Pizza Van", 4, nil),
	}
}
