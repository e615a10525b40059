package catalog

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"cleanbite/internal/domain/entity"
)

const (
	// MinQueryLength is the shortest trimmed query that triggers a search.
	MinQueryLength = 2

	// MaxRenderedResults caps the rows rendered for a search.
	MaxRenderedResults = 10
)

// QueryAction says what a search input change should do to the view.
type QueryAction int

const (
	// QueryClear reverts to the filter-derived view.
	QueryClear QueryAction = iota
	// QueryIgnore leaves the current view untouched.
	QueryIgnore
	// QueryRun runs the search.
	QueryRun
)

// Classify trims the raw input and decides the action for it.
func Classify(raw string) (string, QueryAction) {
	query := strings.TrimSpace(raw)

	switch n := utf8.RuneCountInString(query); {
	case n == 0:
		return query, QueryClear
	case n < MinQueryLength:
		return query, QueryIgnore
	default:
		return query, QueryRun
	}
}

// Search returns establishments whose search blob contains the query,
// case-insensitively, in input order.
func Search(records []entity.Establishment, query string) []entity.Establishment {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]entity.Establishment, 0)
	if needle == "" {
		return out
	}

	for i := range records {
		if strings.Contains(records[i].SearchBlob, needle) {
			out = append(out, records[i])
		}
	}

	return out
}

// Highlight HTML-escapes text and wraps every case-insensitive occurrence of
// query in <strong>. The query is matched literally.
func Highlight(text, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return html.EscapeString(text)
	}

	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	matches := pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return html.EscapeString(text)
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(html.EscapeString(text[last:m[0]]))
		b.WriteString("<strong>")
		b.WriteString(html.EscapeString(text[m[0]:m[1]]))
		b.WriteString("</strong>")
		last = m[1]
	}
	b.WriteString(html.EscapeString(text[last:]))

	return b.String()
}
