package viewer

import (
	"cleanbite/internal/domain/entity"
	"cleanbite/internal/domain/presentation"
)

type markerEntry struct {
	id     string
	handle MarkerHandle
}

// Registry owns the live markers for the current filtered set and tracks the
// single active marker. It is not safe for concurrent use; the controller
// serialises access, including the settle callbacks it schedules.
type Registry struct {
	surface MapSurface
	sched   Scheduler
	timings Timings

	entries []*markerEntry
	byID    map[string]*markerEntry
	active  *markerEntry
	settle  Timer
}

// NewRegistry creates an empty registry drawing on surface.
func NewRegistry(surface MapSurface, sched Scheduler, timings Timings) *Registry {
	return &Registry{
		surface: surface,
		sched:   sched,
		timings: timings,
		byID:    make(map[string]*markerEntry),
	}
}

// Reconcile releases every owned marker and creates one per record that has
// coordinates. It returns the number of live markers.
func (r *Registry) Reconcile(records []entity.Establishment) int {
	r.Clear()

	for i := range records {
		e := &records[i]
		if !e.HasCoordinates() {
			continue
		}

		entry := &markerEntry{
			id:     e.ID,
			handle: r.surface.AddMarker(e.ID, *e.Coordinates, presentation.Color(e.Rating)),
		}
		r.entries = append(r.entries, entry)
		if _, dup := r.byID[e.ID]; !dup {
			r.byID[e.ID] = entry
		}
	}

	return len(r.entries)
}

// Clear releases every marker and drops the active one.
func (r *Registry) Clear() {
	r.stopSettle()

	for _, entry := range r.entries {
		entry.handle.Remove()
	}

	r.entries = nil
	r.byID = make(map[string]*markerEntry)
	r.active = nil
}

// Has reports whether a live marker exists for id.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]

	return ok
}

// Activate highlights the marker for id, resetting the previous one. Animated
// activations overshoot first and settle after Timings.MarkerSettle.
func (r *Registry) Activate(id string, animated bool) bool {
	entry, ok := r.byID[id]
	if !ok {
		return false
	}

	r.Deactivate()
	r.active = entry

	if !animated {
		entry.handle.SetAppearance(Highlighted)

		return true
	}

	entry.handle.SetAppearance(Overshoot)
	r.settle = r.sched.AfterFunc(r.timings.MarkerSettle, func() {
		if r.active != entry {
			return
		}
		entry.handle.SetAppearance(Settled)
	})

	return true
}

// Deactivate resets the active marker, if any, to baseline.
func (r *Registry) Deactivate() {
	r.stopSettle()

	if r.active == nil {
		return
	}

	r.active.handle.SetAppearance(Baseline)
	r.active = nil
}

// Active returns the id of the active marker.
func (r *Registry) Active() (string, bool) {
	if r.active == nil {
		return "", false
	}

	return r.active.id, true
}

// Len returns the number of live markers.
func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) stopSettle() {
	if r.settle != nil {
		r.settle.Stop()
		r.settle = nil
	}
}
