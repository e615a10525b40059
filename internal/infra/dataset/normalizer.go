// Package dataset loads the food-hygiene fixture and turns either of its two
// published shapes into canonical establishments.
package dataset

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	domainerrors "cleanbite/internal/domain/errors"
	"cleanbite/internal/domain/entity"

	"github.com/pkg/errors"
)

// Shape identifies which layout a payload uses.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeFlat          // [ {...}, {...} ]
	ShapeNested        // {"FHRSEstablishment":{"EstablishmentCollection":{"EstablishmentDetail":[...]}}}
)

// PositionIDPrefix starts the id of a record without an FHRSID, followed by
// its position in the payload. FHRSIDs are numeric, so the two never meet.
const PositionIDPrefix = "pos-"

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeNested:
		return "nested"
	default:
		return "unknown"
	}
}

// flexString accepts a JSON string, number, bool or null. Objects and arrays
// decode to the empty string so one odd field never rejects its record.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = ""

		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*f = flexString(s)
	case 'n', '{', '[':
		*f = ""
	default:
		*f = flexString(data)
	}

	return nil
}

func (f flexString) trimmed() string {
	return strings.TrimSpace(string(f))
}

type sourceGeocode struct {
	Latitude  flexString `json:"Latitude"`
	Longitude flexString `json:"Longitude"`
}

// UnmarshalJSON tolerates the empty string or null some exports use for a
// missing geocode.
func (g *sourceGeocode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	type plain sourceGeocode
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.WithStack(err)
	}
	*g = sourceGeocode(p)

	return nil
}

type sourceScores struct {
	Hygiene                flexString `json:"Hygiene"`
	Structural             flexString `json:"Structural"`
	ConfidenceInManagement flexString `json:"ConfidenceInManagement"`

	present bool
}

func (s *sourceScores) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	type plain sourceScores
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.WithStack(err)
	}
	*s = sourceScores(p)
	s.present = true

	return nil
}

// sourceRecord carries every field name either export has been seen to use.
type sourceRecord struct {
	FHRSID flexString `json:"FHRSID"`

	Name         flexString `json:"name"`
	BusinessName flexString `json:"BusinessName"`

	Type         flexString `json:"type"`
	BusinessType flexString `json:"BusinessType"`

	Rating      flexString `json:"rating"`
	RatingValue flexString `json:"RatingValue"`

	Lat       flexString     `json:"lat"`
	Latitude  flexString     `json:"Latitude"`
	Lon       flexString     `json:"lon"`
	Longitude flexString     `json:"Longitude"`
	Geocode   *sourceGeocode `json:"Geocode"`

	Address      flexString `json:"address"`
	AddressLine1 flexString `json:"AddressLine1"`
	AddressLine2 flexString `json:"AddressLine2"`
	AddressLine3 flexString `json:"AddressLine3"`
	AddressLine4 flexString `json:"AddressLine4"`
	PostCode     flexString `json:"PostCode"`

	RatingDateShort flexString `json:"ratingDate"`
	RatingDate      flexString `json:"RatingDate"`

	Scores *sourceScores `json:"Scores"`
}

// UnmarshalJSON leaves non-object array entries as an empty record.
func (r *sourceRecord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*r = sourceRecord{}

		return nil
	}

	type plain sourceRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.WithStack(err)
	}
	*r = sourceRecord(p)

	return nil
}

// nestedPayload is the verbose XML-derived export.
type nestedPayload struct {
	FHRSEstablishment *struct {
		EstablishmentCollection *struct {
			EstablishmentDetail json.RawMessage `json:"EstablishmentDetail"`
		} `json:"EstablishmentCollection"`
	} `json:"FHRSEstablishment"`
}

// DetectShape inspects the first significant byte and, for objects, the
// wrapper keys.
func DetectShape(raw []byte) Shape {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ShapeUnknown
	}

	switch raw[0] {
	case '[':
		return ShapeFlat
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return ShapeUnknown
		}
		if _, ok := envelope["FHRSEstablishment"]; ok {
			return ShapeNested
		}
	}

	return ShapeUnknown
}

// Normalize decodes a fixture in either shape. It fails only when the
// payload itself cannot be decoded; malformed records degrade to sentinels.
func Normalize(raw []byte) ([]entity.Establishment, error) {
	switch DetectShape(raw) {
	case ShapeFlat:
		var records []sourceRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, errors.Wrap(domainerrors.ErrDatasetMalformed, err.Error())
		}

		return normalizeFlat(records), nil
	case ShapeNested:
		var payload nestedPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.Wrap(domainerrors.ErrDatasetMalformed, err.Error())
		}

		return normalizeNested(&payload)
	default:
		return nil, domainerrors.ErrDatasetMalformed.WithDetails("payload is neither an establishment array nor an FHRSEstablishment document")
	}
}

func normalizeFlat(records []sourceRecord) []entity.Establishment {
	out := make([]entity.Establishment, 0, len(records))
	for i := range records {
		out = append(out, normalizeRecord(&records[i], i))
	}

	return out
}

func normalizeNested(payload *nestedPayload) ([]entity.Establishment, error) {
	if payload.FHRSEstablishment == nil || payload.FHRSEstablishment.EstablishmentCollection == nil {
		return nil, domainerrors.ErrDatasetMalformed.WithDetails("missing EstablishmentCollection")
	}

	detail := bytes.TrimSpace(payload.FHRSEstablishment.EstablishmentCollection.EstablishmentDetail)
	if len(detail) == 0 || bytes.Equal(detail, []byte("null")) {
		return []entity.Establishment{}, nil
	}

	var records []sourceRecord
	if detail[0] == '{' {
		// XML converters collapse a single-element collection to an object.
		var single sourceRecord
		if err := json.Unmarshal(detail, &single); err != nil {
			return nil, errors.Wrap(domainerrors.ErrDatasetMalformed, err.Error())
		}
		records = []sourceRecord{single}
	} else if err := json.Unmarshal(detail, &records); err != nil {
		return nil, errors.Wrap(domainerrors.ErrDatasetMalformed, err.Error())
	}

	return normalizeFlat(records), nil
}

func normalizeRecord(r *sourceRecord, position int) entity.Establishment {
	name := firstNonEmpty(r.Name, r.BusinessName)
	businessType := firstNonEmpty(r.Type, r.BusinessType)
	rawRating := firstNonEmpty(r.Rating, r.RatingValue)

	id := r.FHRSID.trimmed()
	if id == "" {
		id = PositionIDPrefix + strconv.Itoa(position)
	}

	est := entity.Establishment{
		ID:             id,
		Name:           name,
		BusinessType:   businessType,
		Rating:         ParseRating(rawRating),
		RawRating:      rawRating,
		Address:        formatAddress(r),
		Coordinates:    parseCoordinates(r),
		InspectionDate: firstNonEmpty(r.RatingDateShort, r.RatingDate),
		Scores:         parseScores(r.Scores),
	}
	est.SearchBlob = strings.ToLower(name + " " + businessType + " " + rawRating)

	return est
}

// ParseRating reads the leading integer of a rating value. Anything that does
// not start with digits, or falls outside 0..5, is the unrated sentinel.
func ParseRating(raw string) int {
	n, ok := leadingInt(raw)
	if !ok || n < entity.MinRating || n > entity.MaxRating {
		return entity.MinRating
	}

	return n
}

func leadingInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}

	return n, true
}

func formatAddress(r *sourceRecord) string {
	if addr := r.Address.trimmed(); addr != "" {
		return addr
	}

	parts := make([]string, 0, 5)
	for _, line := range []flexString{r.AddressLine1, r.AddressLine2, r.AddressLine3, r.AddressLine4, r.PostCode} {
		if v := line.trimmed(); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, ", ")
}

func parseCoordinates(r *sourceRecord) *entity.Coordinates {
	var geoLat, geoLon flexString
	if r.Geocode != nil {
		geoLat, geoLon = r.Geocode.Latitude, r.Geocode.Longitude
	}

	lat, latOK := parseCoordinate(firstNonEmpty(r.Lat, r.Latitude, geoLat), 90)
	lon, lonOK := parseCoordinate(firstNonEmpty(r.Lon, r.Longitude, geoLon), 180)
	if !latOK || !lonOK {
		return nil
	}

	return &entity.Coordinates{Latitude: lat, Longitude: lon}
}

func parseCoordinate(raw string, limit float64) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		return 0, false
	}

	return v, true
}

func parseScores(s *sourceScores) *entity.Scores {
	if s == nil || !s.present {
		return nil
	}

	return &entity.Scores{
		Hygiene:              scoreValue(s.Hygiene),
		Structural:           scoreValue(s.Structural),
		ManagementConfidence: scoreValue(s.ConfidenceInManagement),
	}
}

func scoreValue(v flexString) int {
	n, ok := leadingInt(v.trimmed())
	if !ok || n < 0 {
		return 0
	}

	return n
}

func firstNonEmpty(values ...flexString) string {
	for _, v := range values {
		if s := v.trimmed(); s != "" {
			return s
		}
	}

	return ""
}
