// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cleanbite/internal/domain/presentation"
	"cleanbite/internal/infra/mapbridge"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// EstablishmentUsecase defines the read operations over the inspection data.
type EstablishmentUsecase interface {
	// Search applies the filters, then the text query when it is long enough.
	Search(ctx context.Context, query *EstablishmentQuery) (*EstablishmentPage, error)
	// Alphabetical returns the list view, sorted by name over the whole set.
	Alphabetical(ctx context.Context, limit int) (*presentation.ResultsPanel, error)
	Detail(ctx context.Context, id string) (*presentation.Detail, error)
	BusinessTypes(ctx context.Context) ([]string, error)
	// Markers returns the filtered establishments that can be placed on the map.
	Markers(ctx context.Context, query *MarkerQuery) (*geojson.FeatureCollection, error)
	MapSettings(ctx context.Context) *MapSettings
	ShareCode(ctx context.Context, id string) ([]byte, error)
}

// EstablishmentQuery narrows the establishment set.
type EstablishmentQuery struct {
	MinRating    *int
	BusinessType *string
	Text         string
	Limit        int
}

// EstablishmentPage is one page of matching establishments.
type EstablishmentPage struct {
	Items    []EstablishmentSummary `json:"items"`
	Total    int                    `json:"total"`
	Searched bool                   `json:"searched"`
}

// EstablishmentSummary is the list representation of an establishment.
type EstablishmentSummary struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	NameHTML     string                `json:"nameHtml"`
	BusinessType string                `json:"businessType"`
	Rating       int                   `json:"rating"`
	Category     presentation.Category `json:"category"`
	RatingLabel  string                `json:"ratingLabel"`
	Color        string                `json:"color"`
	Address      string                `json:"address"`
	Coordinates  []float64             `json:"coordinates,omitempty"` // [lng, lat]
}

// MarkerQuery narrows the marker set; Bound is optional.
type MarkerQuery struct {
	MinRating    *int
	BusinessType *string
	Bound        *orb.Bound
}

// MapSettings is the configuration of the browser map widget.
type MapSettings struct {
	AccessToken string              `json:"accessToken"`
	StyleURL    string              `json:"styleUrl"`
	Center      []float64           `json:"center"`
	Zoom        float64             `json:"zoom"`
	FlyToZoom   float64             `json:"flyToZoom"`
	Controls    []mapbridge.Control `json:"controls"`
	BasemapURL  string              `json:"basemapUrl,omitempty"`
}
