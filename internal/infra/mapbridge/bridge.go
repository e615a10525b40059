package mapbridge

import (
	"slices"
	"strconv"
	"sync"

	"cleanbite/internal/domain/entity"
	"cleanbite/internal/domain/presentation"
	"cleanbite/internal/viewer"
)

// DefaultMaxPending bounds the undelivered command queue before it is compacted.
const DefaultMaxPending = 10000

type detailShow struct {
	Detail     presentation.Detail `json:"detail"`
	Emphasized bool                `json:"emphasized"`
}

type resultsShow struct {
	Panel presentation.ResultsPanel `json:"panel"`
	Mode  viewer.ResultsMode        `json:"mode"`
}

type liveMarker struct {
	n          uint64
	add        markerAdd
	appearance *viewer.Appearance
}

// Bridge queues commands for one browser viewer. It implements
// viewer.MapSurface and viewer.Panels and is safe for concurrent use.
type Bridge struct {
	mu          sync.Mutex
	seq         uint64
	markers     uint64
	live        map[string]*liveMarker
	queue       []Command
	compactions int
	maxPending  int
	moveEnd     func()
	closed      bool
	notify      chan struct{}
}

var (
	_ viewer.MapSurface = (*Bridge)(nil)
	_ viewer.Panels     = (*Bridge)(nil)
)

// New creates a bridge that compacts its queue once more than maxPending
// commands are undelivered. Zero selects DefaultMaxPending.
func New(maxPending int) *Bridge {
	if maxPending <= 0 {
		maxPending = DefaultMaxPending
	}

	return &Bridge{
		maxPending: maxPending,
		live:       make(map[string]*liveMarker),
		notify:     make(chan struct{}, 1),
	}
}

// CreateMap queues the map.create command.
func (b *Bridge) CreateMap(init MapInit) {
	b.push(CmdMapCreate, init)
}

// Drain returns and forgets every queued command.
func (b *Bridge) Drain() []Command {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.queue
	b.queue = nil

	if out == nil {
		return []Command{}
	}

	return out
}

// Notify is signalled after commands are queued. It carries no data and
// coalesces bursts; call Drain after each receive.
func (b *Bridge) Notify() <-chan struct{} {
	return b.notify
}

// Compactions returns how many times a full queue was collapsed.
func (b *Bridge) Compactions() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.compactions
}

// MoveEnd reports the end of a viewport movement from the browser and runs
// the handler registered through OnceMoveEnd, if any.
func (b *Bridge) MoveEnd() {
	b.mu.Lock()
	fn := b.moveEnd
	b.moveEnd = nil
	b.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Close discards the pending handler and stops queueing.
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.moveEnd = nil
	b.queue = nil
	b.live = make(map[string]*liveMarker)
}

// AddMarker implements viewer.MapSurface.
func (b *Bridge) AddMarker(id string, at entity.Coordinates, color string) viewer.MarkerHandle {
	b.mu.Lock()
	b.markers++
	add := markerAdd{
		Key:    "m" + strconv.FormatUint(b.markers, 10),
		ID:     id,
		LngLat: []float64{at.Longitude, at.Latitude},
		Color:  color,
	}
	if !b.closed {
		b.live[add.Key] = &liveMarker{n: b.markers, add: add}
	}
	queued := b.pushLocked(CmdMarkerAdd, add)
	b.mu.Unlock()

	b.signal(queued)

	return &markerHandle{bridge: b, key: add.Key}
}

// FlyTo implements viewer.MapSurface.
func (b *Bridge) FlyTo(opts viewer.FlyToOptions) {
	b.push(CmdMapFlyTo, flyTo{
		Center:     []float64{opts.Center.Longitude, opts.Center.Latitude},
		Zoom:       opts.Zoom,
		DurationMS: opts.Duration.Milliseconds(),
		Curve:      opts.Curve,
		Easing:     string(opts.Easing),
	})
}

// OnceMoveEnd implements viewer.MapSurface.
func (b *Bridge) OnceMoveEnd(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.moveEnd = fn
}

func (b *Bridge) ShowLoading(v bool) { b.push(CmdLoading, visible{Visible: v}) }

func (b *Bridge) ShowError(msg string) { b.push(CmdDetailError, message{Message: msg}) }

func (b *Bridge) ShowDetail(detail presentation.Detail, emphasized bool) {
	b.push(CmdDetailShow, detailShow{Detail: detail, Emphasized: emphasized})
}

func (b *Bridge) SetDetailEmphasis(emphasized bool) {
	b.push(CmdDetailEmph, map[string]bool{"emphasized": emphasized})
}

func (b *Bridge) HideDetail() { b.push(CmdDetailHide, nil) }

func (b *Bridge) ShowResults(panel presentation.ResultsPanel, mode viewer.ResultsMode) {
	b.push(CmdResultsShow, resultsShow{Panel: panel, Mode: mode})
}

func (b *Bridge) HideResults() { b.push(CmdResultsHide, nil) }

func (b *Bridge) SetMapVisible(v bool) { b.push(CmdMapVisible, visible{Visible: v}) }

func (b *Bridge) SetToggle(listView bool) {
	t := toggle{ListView: listView, Title: "Show List View", Icon: "grid"}
	if listView {
		t.Title = "Show Map View"
		t.Icon = "pin"
	}

	b.push(CmdToggle, t)
}

func (b *Bridge) SetClearSearch(v bool) { b.push(CmdSearchClear, visible{Visible: v}) }

func (b *Bridge) ResetSearchInput() { b.push(CmdSearchReset, nil) }

func (b *Bridge) ShowNavigating(s string) { b.push(CmdNavigateShow, text{Text: s}) }

func (b *Bridge) HideNavigating() { b.push(CmdNavigateHide, nil) }

func (b *Bridge) push(kind string, data any) {
	b.mu.Lock()
	queued := b.pushLocked(kind, data)
	b.mu.Unlock()

	b.signal(queued)
}

// pushLocked appends one command and compacts the queue when it grows past
// maxPending. Must be called with mu held.
func (b *Bridge) pushLocked(kind string, data any) bool {
	if b.closed {
		return false
	}

	b.seq++
	b.queue = append(b.queue, Command{Seq: b.seq, Type: kind, Data: data})
	if len(b.queue) > b.maxPending {
		b.compactLocked()
	}

	return true
}

func (b *Bridge) signal(queued bool) {
	if !queued {
		return
	}

	select {
	case b.notify <- struct{}{}:
	default:
	}
}

// compactLocked collapses the queue into the state it leads to: every marker
// command becomes one markers.reset carrying the live set, and of the panel
// commands only the last per channel is kept, in queue order. The result is
// renumbered after the highest seq handed out so far.
func (b *Bridge) compactLocked() {
	seen := make(map[string]bool)
	kept := make([]Command, 0, 16)
	for i := len(b.queue) - 1; i >= 0; i-- {
		cmd := b.queue[i]
		ch := channel(cmd.Type)
		if ch == "" || seen[ch] {
			continue
		}
		seen[ch] = true
		kept = append(kept, cmd)
	}
	slices.Reverse(kept)

	reset := Command{Type: CmdMarkersReset, Data: b.snapshotLocked()}
	at := 0
	if len(kept) > 0 && kept[0].Type == CmdMapCreate {
		at = 1
	}
	kept = slices.Insert(kept, at, reset)

	for i := range kept {
		b.seq++
		kept[i].Seq = b.seq
	}

	b.queue = kept
	b.compactions++
}

func (b *Bridge) snapshotLocked() markersReset {
	live := make([]*liveMarker, 0, len(b.live))
	for _, m := range b.live {
		live = append(live, m)
	}
	slices.SortFunc(live, func(x, y *liveMarker) int {
		switch {
		case x.n < y.n:
			return -1
		case x.n > y.n:
			return 1
		default:
			return 0
		}
	})

	reset := markersReset{Markers: make([]markerState, 0, len(live))}
	for _, m := range live {
		reset.Markers = append(reset.Markers, markerState{markerAdd: m.add, Appearance: m.appearance})
	}

	return reset
}

// channel groups commands that overwrite each other's effect on the client.
// Marker commands have no channel; compaction replaces them wholesale.
func channel(kind string) string {
	switch kind {
	case CmdMarkerAdd, CmdMarkerStyle, CmdMarkerRemove, CmdMarkersReset:
		return ""
	case CmdDetailShow, CmdDetailHide, CmdDetailError:
		return "detail"
	case CmdResultsShow, CmdResultsHide:
		return "results"
	case CmdNavigateShow, CmdNavigateHide:
		return "navigating"
	default:
		return kind
	}
}

type markerHandle struct {
	bridge *Bridge
	key    string
}

func (m *markerHandle) SetAppearance(a viewer.Appearance) {
	b := m.bridge

	b.mu.Lock()
	if live, ok := b.live[m.key]; ok {
		live.appearance = &a
	}
	queued := b.pushLocked(CmdMarkerStyle, markerStyle{
		Key:    m.key,
		Scale:  a.Scale,
		ZIndex: a.ZIndex,
		Glow:   string(a.Glow),
	})
	b.mu.Unlock()

	b.signal(queued)
}

func (m *markerHandle) Remove() {
	b := m.bridge

	b.mu.Lock()
	delete(b.live, m.key)
	queued := b.pushLocked(CmdMarkerRemove, markerRemove{Key: m.key})
	b.mu.Unlock()

	b.signal(queued)
}
