package catalog

import (
	"slices"

	"cleanbite/internal/domain/entity"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MaxListItems caps the alphabetical list rendered in list view.
const MaxListItems = 100

// SortByName returns a copy of records ordered by name with en-GB collation.
// Equal names keep their input order.
func SortByName(records []entity.Establishment) []entity.Establishment {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []entity.Establishment{}
	}

	// Collators are not safe for concurrent use; build one per call.
	col := collate.New(language.BritishEnglish)
	slices.SortStableFunc(sorted, func(a, b entity.Establishment) int {
		return col.CompareString(a.Name, b.Name)
	})

	return sorted
}

// Truncate returns at most n leading records.
func Truncate(records []entity.Establishment, n int) []entity.Establishment {
	if n >= 0 && len(records) > n {
		return records[:n]
	}

	return records
}
