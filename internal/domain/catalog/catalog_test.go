package catalog

import (
	"strings"
	"testing"

	"cleanbite/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func record(id, name, businessType string, rating int, raw string) entity.Establishment {
	return entity.Establishment{
		ID:           id,
		Name:         name,
		BusinessType: businessType,
		Rating:       rating,
		RawRating:    raw,
		SearchBlob:   strings.ToLower(name + " " + businessType + " " + raw),
	}
}

func ids(records []entity.Establishment) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}

	return out
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func sampleRecords() []entity.Establishment {
	return []entity.Establishment{
		record("1", "Pizza Palace", "Restaurant/Cafe/Canteen", 5, "5"),
		record("2", "Corner Shop", "Retailers - other", 2, "2"),
		record("3", "Bella Pizza", "Takeaway/sandwich shop", 4, "4"),
		record("4", "The Anchor", "Pub/bar/nightclub", 3, "3"),
		record("5", "Awaiting Kitchen", "Restaurant/Cafe/Canteen", 0, "AwaitingInspection"),
	}
}

func TestApplyFilters(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter is identity", filter: Filter{}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "min rating keeps order", filter: Filter{MinRating: intPtr(4)}, want: []string{"1", "3"}},
		{name: "min rating zero keeps all", filter: Filter{MinRating: intPtr(0)}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "exact type", filter: Filter{BusinessType: strPtr("Restaurant/Cafe/Canteen")}, want: []string{"1", "5"}},
		{name: "type is case sensitive", filter: Filter{BusinessType: strPtr("restaurant/cafe/canteen")}, want: []string{}},
		{
			name:   "both predicates",
			filter: Filter{MinRating: intPtr(4), BusinessType: strPtr("Restaurant/Cafe/Canteen")},
			want:   []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(ApplyFilters(records, tt.filter)))
		})
	}
}

func TestApplyFilters_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := ids(records)

	out := ApplyFilters(records, Filter{})
	out[0].Name = "changed"

	assert.Equal(t, before, ids(records))
	assert.Equal(t, "Pizza Palace", records[0].Name)
}

func TestApplyFilters_UnparsedRatingExcluded(t *testing.T) {
	records := []entity.Establishment{
		record("a", "Five", "Restaurant/Cafe/Canteen", 5, "5"),
		record("b", "Three", "Restaurant/Cafe/Canteen", 3, "3"),
		record("c", "Pending", "Restaurant/Cafe/Canteen", 0, "AwaitingInspection"),
	}

	assert.Equal(t, []string{"a"}, ids(ApplyFilters(records, Filter{MinRating: intPtr(4)})))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw        string
		wantQuery  string
		wantAction QueryAction
	}{
		{raw: "", wantQuery: "", wantAction: QueryClear},
		{raw: "   ", wantQuery: "", wantAction: QueryClear},
		{raw: "a", wantQuery: "a", wantAction: QueryIgnore},
		{raw: "  a  ", wantQuery: "a", wantAction: QueryIgnore},
		{raw: "é", wantQuery: "é", wantAction: QueryIgnore},
		{raw: "pi", wantQuery: "pi", wantAction: QueryRun},
		{raw: " pizza ", wantQuery: "pizza", wantAction: QueryRun},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			query, action := Classify(tt.raw)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantAction, action)
		})
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	records := sampleRecords()

	lower := Search(records, "pizza")
	upper := Search(records, "PIZZA")

	assert.Equal(t, []string{"1", "3"}, ids(lower))
	assert.Equal(t, ids(lower), ids(upper))
}

func TestSearch_MatchesTypeAndRawRating(t *testing.T) {
	records := sampleRecords()

	assert.Equal(t, []string{"4"}, ids(Search(records, "nightclub")))
	assert.Equal(t, []string{"5"}, ids(Search(records, "awaitinginspection")))
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Empty(t, Search(sampleRecords(), "   "))
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  string
	}{
		{name: "single match", text: "Pizza Palace", query: "pizza", want: "<strong>Pizza</strong> Palace"},
		{name: "every occurrence", text: "Papa Pasta", query: "pa", want: "<strong>Pa</strong><strong>pa</strong> <strong>Pa</strong>sta"},
		{name: "no match escapes", text: "Fish & Chips", query: "zz", want: "Fish &amp; Chips"},
		{name: "regex characters are literal", text: "Caffe (Central)", query: "(c", want: "Caffe <strong>(C</strong>entral)"},
		{name: "dot is literal", text: "A.B Cafe", query: "a.", want: "<strong>A.</strong>B Cafe"},
		{name: "markup in name is escaped", text: "<b>Bar</b>", query: "bar", want: "&lt;b&gt;<strong>Bar</strong>&lt;/b&gt;"},
		{name: "empty query", text: "Tom's", query: "", want: "Tom&#39;s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.query))
		})
	}
}

func TestSortByName(t *testing.T) {
	records := []entity.Establishment{
		record("1", "zebra Bar", "", 0, ""),
		record("2", "Éclair House", "", 0, ""),
		record("3", "apple Cafe", "", 0, ""),
		record("4", "Eagle Inn", "", 0, ""),
		record("5", "Apple Deli", "", 0, ""),
	}

	sorted := SortByName(records)

	assert.Equal(t, []string{"3", "5", "4", "2", "1"}, ids(sorted))
	assert.Equal(t, "1", records[0].ID, "input must keep its order")
}

func TestTruncate(t *testing.T) {
	records := sampleRecords()

	assert.Len(t, Truncate(records, 2), 2)
	assert.Len(t, Truncate(records, 100), len(records))
	assert.Empty(t, Truncate(records, 0))
}
