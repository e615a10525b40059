// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator that reports fields by their json or query name
// and knows the bbox rule.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("bbox", validateBBox)

	return &CustomValidator{validator: v}
}

// Validate validates a request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "query", "param"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return fld.Name
}

// validateBBox accepts "minLng,minLat,maxLng,maxLat" in WGS84 with min <= max.
func validateBBox(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	_, ok := ParseBBox(fl.Field().String())

	return ok
}

// ParseBBox parses a "minLng,minLat,maxLng,maxLat" string.
func ParseBBox(raw string) ([4]float64, bool) {
	var out [4]float64

	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return out, false
	}

	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, false
		}
		out[i] = v
	}

	minLng, minLat, maxLng, maxLat := out[0], out[1], out[2], out[3]
	if minLng < -180 || maxLng > 180 || minLat < -90 || maxLat > 90 {
		return out, false
	}
	if minLng > maxLng || minLat > maxLat {
		return out, false
	}

	return out, true
}
