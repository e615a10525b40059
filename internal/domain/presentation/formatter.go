// Package presentation derives the display text shown for an establishment:
// rating category, label, description, summary and inspection date.
package presentation

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"cleanbite/internal/domain/entity"
)

// Category is the three-tier rating bucket used for badges and markers.
type Category string

const (
	CategoryExcellent Category = "excellent"
	CategoryGood      Category = "good"
	CategoryPoor      Category = "poor"
)

// Marker colours per category.
const (
	ColorExcellent = "#2ecc71"
	ColorGood      = "#f1c40f"
	ColorPoor      = "#e74c3c"
)

// UnknownDate is shown when an establishment has no inspection date.
const UnknownDate = "Unknown"

// DateLayout renders dates in the en-GB long form, e.g. "5 March 2024".
const DateLayout = "2 January 2006"

// CategoryFor buckets a rating. Zero and anything below 3 is poor.
func CategoryFor(rating int) Category {
	switch {
	case rating >= 4:
		return CategoryExcellent
	case rating == 3:
		return CategoryGood
	default:
		return CategoryPoor
	}
}

// Label returns the display label for a rating.
func Label(rating int) string {
	switch CategoryFor(rating) {
	case CategoryExcellent:
		return "Excellent"
	case CategoryGood:
		return "Good"
	default:
		return "Poor"
	}
}

// Color returns the marker colour for a rating.
func Color(rating int) string {
	switch CategoryFor(rating) {
	case CategoryExcellent:
		return ColorExcellent
	case CategoryGood:
		return ColorGood
	default:
		return ColorPoor
	}
}

// Description returns the fixed sentence for an exact rating value.
func Description(rating int) string {
	switch rating {
	case 5:
		return "Very high hygiene standards - negligible risk"
	case 4:
		return "Good hygiene standards - low risk"
	case 3:
		return "Generally satisfactory - medium risk"
	case 2:
		return "Some improvement necessary - high risk"
	case 1:
		return "Major improvement necessary - very high risk"
	default:
		return "Urgent improvement required"
	}
}

var summaries = map[Category][]string{
	CategoryExcellent: {
		"This establishment maintains excellent hygiene standards with consistent high-quality food safety practices.",
		"A highly recommended venue with outstanding cleanliness and food handling procedures.",
		"Exemplary hygiene standards make this a safe and trustworthy dining choice.",
		"This business demonstrates exceptional commitment to food safety and customer well-being.",
	},
	CategoryGood: {
		"This establishment maintains good hygiene standards with reliable food safety practices.",
		"A solid choice for dining with consistent cleanliness and proper food handling.",
		"Good hygiene standards make this a dependable option for safe dining.",
		"This business shows good commitment to maintaining food safety standards.",
	},
	CategoryPoor: {
		"This establishment needs improvement in hygiene standards and food safety practices.",
		"Consider dining elsewhere until hygiene standards are improved to acceptable levels.",
		"Food safety concerns have been identified that require attention from management.",
		"Hygiene improvements are needed before this can be considered a safe dining option.",
	},
}

// Summaries returns the phrasings available for a category.
func Summaries(category Category) []string {
	return summaries[category]
}

// Picker chooses an index in [0, n).
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

// Pick calls f(n).
func (f PickerFunc) Pick(n int) int {
	return f(n)
}

type randPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandPicker returns a Picker backed by a PCG source. A zero seed draws
// one from the runtime so that summaries vary between processes.
func NewRandPicker(seed uint64) Picker {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &randPicker{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *randPicker) Pick(n int) int {
	if n <= 0 {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.rnd.IntN(n)
}

// Formatter builds display payloads. It is safe for concurrent use when the
// Picker is.
type Formatter struct {
	picker Picker
}

// NewFormatter returns a Formatter drawing summaries from picker.
func NewFormatter(picker Picker) *Formatter {
	if picker == nil {
		picker = NewRandPicker(0)
	}

	return &Formatter{picker: picker}
}

// Summary picks one of the phrasings for the rating's category.
func (f *Formatter) Summary(rating int) string {
	pool := summaries[CategoryFor(rating)]
	idx := f.picker.Pick(len(pool))
	if idx < 0 || idx >= len(pool) {
		idx = 0
	}

	return pool[idx]
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// FormatDate renders a raw inspection date. Unparseable input is returned as
// is and an empty value yields UnknownDate.
func FormatDate(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return UnknownDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DateLayout)
		}
	}

	return raw
}

// Detail is the content of the detail panel for one establishment.
type Detail struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	BusinessType      string      `json:"businessType"`
	Rating            int         `json:"rating"`
	Category          Category    `json:"category"`
	RatingLabel       string      `json:"ratingLabel"`
	RatingDescription string      `json:"ratingDescription"`
	Address           string      `json:"address"`
	InspectionDate    string      `json:"inspectionDate"`
	Scores            *ScoreLines `json:"scores,omitempty"`
	Summary           string      `json:"summary"`
	Coordinates       []float64   `json:"coordinates,omitempty"` // [lng, lat]
}

// ScoreLines is the breakdown rendered as "n/5".
type ScoreLines struct {
	Hygiene    string `json:"hygiene"`
	Structural string `json:"structural"`
	Management string `json:"management"`
}

// Detail builds the detail panel payload.
func (f *Formatter) Detail(e *entity.Establishment) Detail {
	d := Detail{
		ID:                e.ID,
		Name:              e.Name,
		BusinessType:      e.BusinessType,
		Rating:            e.Rating,
		Category:          CategoryFor(e.Rating),
		RatingLabel:       Label(e.Rating) + " Hygiene Rating",
		RatingDescription: Description(e.Rating),
		Address:           e.Address,
		InspectionDate:    FormatDate(e.InspectionDate),
		Summary:           f.Summary(e.Rating),
	}

	if e.Scores != nil {
		d.Scores = &ScoreLines{
			Hygiene:    outOfFive(e.Scores.Hygiene),
			Structural: outOfFive(e.Scores.Structural),
			Management: outOfFive(e.Scores.ManagementConfidence),
		}
	}

	if e.Coordinates != nil {
		d.Coordinates = []float64{e.Coordinates.Longitude, e.Coordinates.Latitude}
	}

	return d
}

func outOfFive(v int) string {
	return strconv.Itoa(v) + "/5"
}

// Row is one entry of the results panel.
type Row struct {
	ID           string   `json:"id"`
	NameHTML     string   `json:"nameHtml"`
	BusinessType string   `json:"businessType"`
	Rating       int      `json:"rating"`
	Category     Category `json:"category"`
	RatingLabel  string   `json:"ratingLabel"`
}
