// Package catalog holds the pure queries over the establishment set:
// rating/type filtering, substring search and the alphabetical list.
package catalog

import (
	"cleanbite/internal/domain/entity"
)

// Filter narrows the establishment set. Nil fields are not applied.
type Filter struct {
	MinRating    *int    `json:"minRating,omitempty"`
	BusinessType *string `json:"businessType,omitempty"`
}

// IsZero reports whether no predicate is set.
func (f Filter) IsZero() bool {
	return f.MinRating == nil && f.BusinessType == nil
}

// Matches applies both predicates with AND semantics.
func (f Filter) Matches(e *entity.Establishment) bool {
	if f.MinRating != nil && e.Rating < *f.MinRating {
		return false
	}
	if f.BusinessType != nil && e.BusinessType != *f.BusinessType {
		return false
	}

	return true
}

// ApplyFilters returns the matching establishments in input order. The input
// is never modified; a new slice is returned even when no filter is set.
func ApplyFilters(records []entity.Establishment, filter Filter) []entity.Establishment {
	out := make([]entity.Establishment, 0, len(records))
	for i := range records {
		if filter.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}

	return out
}
