package presentation

import (
	"html"
	"strconv"

	"cleanbite/internal/domain/catalog"
	"cleanbite/internal/domain/entity"
)

// Results panel headings and placeholder rows.
const (
	SearchHeader = "Search Results"
	ListHeader   = "All Restaurants"

	NoResultsTitle    = "No restaurants found"
	NoResultsSubtitle = "Try adjusting your search terms"

	LoadingTitle    = "Loading restaurants..."
	LoadingSubtitle = "Please wait while data loads"
)

// ResultsPanel is the rendered content of the results overlay.
type ResultsPanel struct {
	Header      string  `json:"header"`
	Count       string  `json:"count"`
	Rows        []Row   `json:"rows"`
	Placeholder *Notice `json:"placeholder,omitempty"`
}

// Notice is a non-selectable row.
type Notice struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// SearchResults renders up to catalog.MaxRenderedResults matches with the
// query highlighted. The count reflects every match.
func SearchResults(matches []entity.Establishment, query string) ResultsPanel {
	panel := ResultsPanel{
		Header: SearchHeader,
		Count:  resultCount(len(matches)),
		Rows:   []Row{},
	}

	if len(matches) == 0 {
		panel.Placeholder = &Notice{Title: NoResultsTitle, Subtitle: NoResultsSubtitle}

		return panel
	}

	for _, e := range catalog.Truncate(matches, catalog.MaxRenderedResults) {
		panel.Rows = append(panel.Rows, newRow(&e, catalog.Highlight(e.Name, query)))
	}

	return panel
}

// AlphabeticalList renders the list view rows. sorted must already be in
// display order; at most catalog.MaxListItems rows are rendered.
func AlphabeticalList(sorted []entity.Establishment) ResultsPanel {
	panel := ResultsPanel{
		Header: ListHeader,
		Count:  strconv.Itoa(len(sorted)) + " restaurants",
		Rows:   []Row{},
	}

	for _, e := range catalog.Truncate(sorted, catalog.MaxListItems) {
		panel.Rows = append(panel.Rows, newRow(&e, html.EscapeString(e.Name)))
	}

	return panel
}

// LoadingList is shown in list view before the dataset is available.
func LoadingList() ResultsPanel {
	return ResultsPanel{
		Header:      ListHeader,
		Rows:        []Row{},
		Placeholder: &Notice{Title: LoadingTitle, Subtitle: LoadingSubtitle},
	}
}

func newRow(e *entity.Establishment, nameHTML string) Row {
	return Row{
		ID:           e.ID,
		NameHTML:     nameHTML,
		BusinessType: e.BusinessType,
		Rating:       e.Rating,
		Category:     CategoryFor(e.Rating),
		RatingLabel:  Label(e.Rating),
	}
}

func resultCount(n int) string {
	if n == 1 {
		return "1 result"
	}

	return strconv.Itoa(n) + " results"
}

// NavigatingText is the transient indicator shown during a fly-to.
func NavigatingText(name string) string {
	return "Flying to " + name
}
