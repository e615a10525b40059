package viewer

import (
	"math"
	"testing"
	"time"

	"cleanbite/internal/domain/entity"
	"cleanbite/internal/domain/presentation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() (*Registry, *fakeSurface, *fakeClock) {
	surface := &fakeSurface{}
	clock := &fakeClock{}

	return NewRegistry(surface, clock, DefaultTimings()), surface, clock
}

func TestRegistry_ReconcileSkipsRecordsWithoutCoordinates(t *testing.T) {
	r, surface, _ := newTestRegistry()

	n := r.Reconcile(fixture())

	assert.Equal(t, 3, n)
	live := surface.Live()
	assert.Len(t, live, 3)
	assert.NotContains(t, live, "4")
	assert.Equal(t, presentation.ColorExcellent, live["1"].color)
	assert.Equal(t, presentation.ColorGood, live["2"].color)
	assert.Equal(t, presentation.ColorPoor, live["3"].color)
}

func TestRegistry_ReconcileIsIdempotent(t *testing.T) {
	r, surface, _ := newTestRegistry()
	records := fixture()

	r.Reconcile(records)
	first := surface.Live()
	r.Reconcile(records)
	second := surface.Live()

	assert.Equal(t, r.Len(), len(second))
	assert.Len(t, second, len(first))
	for id, m := range first {
		assert.True(t, m.removed, "marker %s from the first pass must be released", id)
		assert.NotSame(t, m, second[id])
	}
}

func TestRegistry_ReconcileDropsActive(t *testing.T) {
	r, _, _ := newTestRegistry()
	r.Reconcile(fixture())
	require.True(t, r.Activate("1", false))

	r.Reconcile(fixture()[1:])

	_, ok := r.Active()
	assert.False(t, ok)
	assert.False(t, r.Has("1"))
}

func TestRegistry_ActivateKeepsSingleActive(t *testing.T) {
	r, surface, _ := newTestRegistry()
	r.Reconcile(fixture())
	live := surface.Live()

	require.True(t, r.Activate("1", false))
	require.True(t, r.Activate("2", false))

	id, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, "2", id)
	assert.Equal(t, Baseline, live["1"].Appearance())
	assert.Equal(t, Highlighted, live["2"].Appearance())
}

func TestRegistry_ActivateUnknown(t *testing.T) {
	r, _, _ := newTestRegistry()
	r.Reconcile(fixture())

	assert.False(t, r.Activate("4", false))
	assert.False(t, r.Activate("missing", true))
	_, ok := r.Active()
	assert.False(t, ok)
}

func TestRegistry_DuplicateIDActivatesFirst(t *testing.T) {
	r, surface, _ := newTestRegistry()
	r.Reconcile([]entity.Establishment{
		establishment("7", "Alpha", 5, at(54.01, -2.81)),
		establishment("7", "Bravo", 3, at(54.02, -2.82)),
	})

	markers := surface.LiveMarkers()
	require.Len(t, markers, 2)

	require.True(t, r.Activate("7", false))
	assert.Equal(t, Highlighted, markers[0].Appearance())
	assert.Equal(t, Baseline, markers[1].Appearance())
}

func TestRegistry_AnimatedActivationSettles(t *testing.T) {
	r, surface, clock := newTestRegistry()
	r.Reconcile(fixture())
	m := surface.Live()["1"]

	require.True(t, r.Activate("1", true))
	assert.Equal(t, Overshoot, m.Appearance())

	clock.Advance(399 * time.Millisecond)
	assert.Equal(t, Overshoot, m.Appearance())

	clock.Advance(time.Millisecond)
	assert.Equal(t, Settled, m.Appearance())
}

func TestRegistry_SettleCancelledByNewActivation(t *testing.T) {
	r, surface, clock := newTestRegistry()
	r.Reconcile(fixture())
	live := surface.Live()

	r.Activate("1", true)
	r.Activate("2", false)
	clock.Advance(time.Second)

	assert.Equal(t, Baseline, live["1"].Appearance())
	assert.Equal(t, Highlighted, live["2"].Appearance())
	assert.Zero(t, clock.Pending())
}

func TestRegistry_DeactivateResetsBaseline(t *testing.T) {
	r, surface, clock := newTestRegistry()
	r.Reconcile(fixture())
	m := surface.Live()["3"]

	r.Activate("3", true)
	r.Deactivate()
	clock.Advance(time.Second)

	assert.Equal(t, Baseline, m.Appearance())
	_, ok := r.Active()
	assert.False(t, ok)
}

func TestEasing_At(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{t: -1, want: 0},
		{t: 0, want: 0},
		{t: 0.25, want: 0.125},
		{t: 0.5, want: 0.5},
		{t: 0.75, want: 0.875},
		{t: 1, want: 1},
		{t: 2, want: 1},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, EaseInOutQuad.At(tt.t), 1e-9, "t=%v", tt.t)
	}

	assert.InDelta(t, 0.3, Easing("linear").At(0.3), 1e-9)
}

func TestRegistry_NoMarkerForMissingPosition(t *testing.T) {
	r, surface, _ := newTestRegistry()
	records := []entity.Establishment{
		establishment("a", "Nowhere", 5, nil),
		establishment("b", "Somewhere", 5, at(54, -2)),
	}

	r.Reconcile(records)

	assert.Equal(t, 1, surface.LiveCount())
	assert.False(t, r.Has("a"))
	assert.False(t, math.IsNaN(surface.Live()["b"].at.Latitude))
}
