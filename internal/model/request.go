package model

import (
	"fmt"
	"slices"
)

// Bounds accepted for a canonical prediction request.
const (
	MinYear = 1990
	MaxYear = 2030

	MinEnrollmentPercent = 0.0
	MaxEnrollmentPercent = 100.0

	MinGenderGapIndex = 0.0
	MaxGenderGapIndex = 1.0
)

// PredictionRequest is a validated, canonical prediction payload.
// Construct one through the validator; a hand-built request must still
// pass Validate before it reaches the wire.
type PredictionRequest struct {
	Country                 string
	STEMField               string
	Year                    int
	FemaleEnrollmentPercent float64
	GenderGapIndex          float64
}

// Validate checks the request against the canonical bounds and the
// configured enumerations. The validator enforces the same rules
// field-by-field; this is the request builder's defensive backstop.
func (r PredictionRequest) Validate(countries, stemFields []string) error {
	if r.Year < MinYear || r.Year > MaxYear {
		return fmt.Errorf("year %d outside [%d, %d]", r.Year, MinYear, MaxYear)
	}
	if r.FemaleEnrollmentPercent < MinEnrollmentPercent || r.FemaleEnrollmentPercent > MaxEnrollmentPercent {
		return fmt.Errorf("female enrollment %.2f outside [%.0f, %.0f]", r.FemaleEnrollmentPercent, MinEnrollmentPercent, MaxEnrollmentPercent)
	}
	if r.GenderGapIndex < MinGenderGapIndex || r.GenderGapIndex > MaxGenderGapIndex {
		return fmt.Errorf("gender gap index %.3f outside [%.1f, %.1f]", r.GenderGapIndex, MinGenderGapIndex, MaxGenderGapIndex)
	}
	if r.Country == "" || !slices.Contains(countries, r.Country) {
		return fmt.Errorf("country %q is not in the configured set", r.Country)
	}
	if r.STEMField == "" || !slices.Contains(stemFields, r.STEMField) {
		return fmt.Errorf("STEM field %q is not in the configured set", r.STEMField)
	}
	return nil
}
