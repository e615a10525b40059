package viewer

import "time"

// Timer is a pending deferred call.
type Timer interface {
	// Stop prevents the call if it has not started yet.
	Stop() bool
}

// Scheduler runs fn once after d on its own goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type clockScheduler struct{}

// NewClockScheduler returns a Scheduler backed by time.AfterFunc.
func NewClockScheduler() Scheduler {
	return clockScheduler{}
}

func (clockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Timings holds every fixed delay of the view transitions.
type Timings struct {
	ListSettle      time.Duration // map fade-out before the list is rendered
	ListSelectDelay time.Duration // list to map switch before a selection proceeds
	FlyToDuration   time.Duration
	FlyToCurve      float64
	FlyToZoom       float64
	MoveEndSettle   time.Duration // pause after the viewport stops moving
	MarkerSettle    time.Duration // overshoot to highlighted
	EmphasisDecay   time.Duration // detail panel glow after a search selection
}

// DefaultTimings returns the standard transition timings.
func DefaultTimings() Timings {
	return Timings{
		ListSettle:      400 * time.Millisecond,
		ListSelectDelay: 500 * time.Millisecond,
		FlyToDuration:   1200 * time.Millisecond,
		FlyToCurve:      1.42,
		FlyToZoom:       15,
		MoveEndSettle:   200 * time.Millisecond,
		MarkerSettle:    400 * time.Millisecond,
		EmphasisDecay:   2000 * time.Millisecond,
	}
}
