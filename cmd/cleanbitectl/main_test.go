package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cleanbite/internal/domain/presentation"
	"cleanbite/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `[
  {"FHRSID": 1, "BusinessName": "Pizza Palace", "BusinessType": "Restaurant/Cafe/Canteen", "RatingValue": "5",
   "AddressLine1": "1 Market Street", "PostCode": "LA1 1AA", "RatingDate": "2024-03-14",
   "Geocode": {"Latitude": "54.0466", "Longitude": "-2.8007"},
   "Scores": {"Hygiene": 0, "Structural": 5, "ConfidenceInManagement": 0}},
  {"FHRSID": 2, "BusinessName": "Anchor Inn", "BusinessType": "Pub/bar/nightclub", "RatingValue": "3",
   "AddressLine1": "2 Quay Road", "PostCode": "LA1 1AB", "RatingDate": "2023-11-02"},
  {"FHRSID": 3, "BusinessName": "Pizza Express", "BusinessType": "Restaurant/Cafe/Canteen", "RatingValue": "1",
   "AddressLine1": "3 Church Street", "PostCode": "LA1 1AC"}
]`

func writeFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "restaurants.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--source", writeFixture(t), "--seed", "7"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestSearchCmd(t *testing.T) {
	out, err := run(t, "search", "pizza", "--json")
	require.NoError(t, err)

	var page usecase.EstablishmentPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.True(t, page.Searched)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "1", page.Items[0].ID)
	assert.Equal(t, "<strong>Pizza</strong> Palace", page.Items[0].NameHTML)
}

func TestSearchCmd_Filters(t *testing.T) {
	out, err := run(t, "search", "pizza", "--min-rating", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "Pizza Palace")
	assert.NotContains(t, out, "Pizza Express")
	assert.Contains(t, out, "1 result\n")
}

func TestSearchCmd_ShortQueryOnlyFilters(t *testing.T) {
	out, err := run(t, "search", "p", "--type", "Pub/bar/nightclub")
	require.NoError(t, err)

	assert.Contains(t, out, "Anchor Inn")
	assert.Contains(t, out, "1 result\n")
}

func TestSearchCmd_MatchesTypeNotAddress(t *testing.T) {
	out, err := run(t, "search", "street", "--json")
	require.NoError(t, err)

	var page usecase.EstablishmentPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Zero(t, page.Total)

	out, err = run(t, "search", "pub/bar", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "2", page.Items[0].ID)

	help, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, help, "Search establishments by name, type or rating")

	help, err = run(t, "search", "--help")
	require.NoError(t, err)
	assert.Contains(t, help, "Addresses are not searched.")
}

func TestSearchCmd_InvalidRating(t *testing.T) {
	_, err := run(t, "search", "--min-rating", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--min-rating")
}

func TestListCmd(t *testing.T) {
	out, err := run(t, "list", "--json")
	require.NoError(t, err)

	var panel presentation.ResultsPanel
	require.NoError(t, json.Unmarshal([]byte(out), &panel))
	assert.Equal(t, presentation.ListHeader, panel.Header)
	assert.Equal(t, "3 restaurants", panel.Count)

	ids := make([]string, 0, len(panel.Rows))
	for _, row := range panel.Rows {
		ids = append(ids, row.ID)
	}
	assert.Equal(t, []string{"2", "3", "1"}, ids)
}

func TestListCmd_Limit(t *testing.T) {
	out, err := run(t, "list", "--limit", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "All Restaurants (3 restaurants)")
	assert.Contains(t, out, "Anchor Inn")
	assert.NotContains(t, out, "Pizza")
}

func TestShowCmd(t *testing.T) {
	out, err := run(t, "show", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Pizza Palace\n")
	assert.Contains(t, out, "Excellent Hygiene Rating: Very high hygiene standards - negligible risk")
	assert.Contains(t, out, "Inspected: 14 March 2024")
	assert.Contains(t, out, "Hygiene 0/5  Structural 5/5  Management 0/5")
}

func TestShowCmd_ShareLink(t *testing.T) {
	out, err := run(t, "show", "http://localhost:8080/?establishment=2")
	require.NoError(t, err)

	assert.Contains(t, out, "Anchor Inn\n")
	assert.Contains(t, out, "Good Hygiene Rating")
}

func TestShowCmd_ForeignLink(t *testing.T) {
	_, err := run(t, "show", "https://example.com/?establishment=2")
	require.Error(t, err)
}

func TestShowCmd_NotFound(t *testing.T) {
	_, err := run(t, "show", "404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Establishment not found")
}

func TestTypesCmd(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)

	assert.Equal(t, "Restaurant/Cafe/Canteen\nPub/bar/nightclub\n", out)
}

func TestQRCmd(t *testing.T) {
	target := filepath.Join(t.TempDir(), "share.png")

	out, err := run(t, "qr", "2", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+target)

	png, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestRootCmd_MissingDataset(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--source", filepath.Join(t.TempDir(), "missing.json"), "types"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load")
}
