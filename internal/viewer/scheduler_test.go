package viewer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestClockScheduler_FiresAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	sched := NewClockScheduler()
	var fired atomic.Int32

	done := make(chan struct{})
	sched.AfterFunc(time.Millisecond, func() {
		fired.Add(1)
		close(done)
	})
	stopped := sched.AfterFunc(time.Hour, func() { fired.Add(100) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	assert.True(t, stopped.Stop())
	assert.Equal(t, int32(1), fired.Load())
}

func TestController_RealSchedulerSelection(t *testing.T) {
	defer goleak.VerifyNone(t)

	surface := &fakeSurface{}
	panels := newFakePanels()
	timings := DefaultTimings()
	timings.ListSettle = 2 * time.Millisecond
	timings.ListSelectDelay = 2 * time.Millisecond
	timings.MoveEndSettle = 2 * time.Millisecond
	timings.MarkerSettle = 2 * time.Millisecond
	timings.EmphasisDecay = 2 * time.Millisecond

	c := NewController(surface, panels, Options{Timings: &timings})
	require.NoError(t, c.Start(context.Background(), staticLoader(fixture())))

	c.SelectByID("1")
	surface.FinishMove()

	require.Eventually(t, func() bool {
		return c.State().Detail == DetailOpen
	}, time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		return surface.Live()["1"].Appearance() == Settled
	}, time.Second, time.Millisecond)

	c.Close()
}
