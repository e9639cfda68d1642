// Package submission implements the request orchestration around a
// prediction attempt: input validation and the state machine that
// gates when a submission may start, resolve, or be discarded.
package submission

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/JoyOffere/linear-regression-model/internal/model"
)

// Validator checks raw input against the canonical bounds and the
// configured enumerations. It is pure: no side effects, no network.
type Validator struct {
	countries  []string
	stemFields []string
}

// NewValidator creates a validator for the given enumerations.
func NewValidator(countries, stemFields []string) *Validator {
	return &Validator{
		countries:  countries,
		stemFields: stemFields,
	}
}

// Validate checks every field and returns either a canonical request
// or the complete set of violations. It never short-circuits, so a
// single pass reports everything that is wrong.
func (v *Validator) Validate(in model.Input) (model.PredictionRequest, model.FieldErrors) {
	errs := make(model.FieldErrors)
	var req model.PredictionRequest

	year, err := strconv.Atoi(strings.TrimSpace(in.Year))
	switch {
	case err != nil:
		errs[model.FieldYear] = "year must be a whole number"
	case year < model.MinYear || year > model.MaxYear:
		errs[model.FieldYear] = fmt.Sprintf("year must be between %d and %d", model.MinYear, model.MaxYear)
	default:
		req.Year = year
	}

	// ParseFloat accepts "NaN", which would sail through the range
	// checks below, so it is rejected with the parse failures.
	enrollment, err := strconv.ParseFloat(strings.TrimSpace(in.FemaleEnrollmentPercent), 64)
	switch {
	case err != nil || math.IsNaN(enrollment):
		errs[model.FieldEnrollment] = "female enrollment must be a number"
	case enrollment < model.MinEnrollmentPercent || enrollment > model.MaxEnrollmentPercent:
		errs[model.FieldEnrollment] = "female enrollment must be between 0 and 100"
	default:
		req.FemaleEnrollmentPercent = enrollment
	}

	index, err := strconv.ParseFloat(strings.TrimSpace(in.GenderGapIndex), 64)
	switch {
	case err != nil || math.IsNaN(index):
		errs[model.FieldGapIndex] = "gender gap index must be a number"
	case index < model.MinGenderGapIndex || index > model.MaxGenderGapIndex:
		errs[model.FieldGapIndex] = "gender gap index must be between 0.0 and 1.0"
	default:
		req.GenderGapIndex = index
	}

	switch {
	case in.Country == "":
		errs[model.FieldCountry] = "select a country"
	case !slices.Contains(v.countries, in.Country):
		errs[model.FieldCountry] = fmt.Sprintf("country %q is not supported", in.Country)
	default:
		req.Country = in.Country
	}

	switch {
	case in.STEMField == "":
		errs[model.FieldSTEMField] = "select a STEM field"
	case !slices.Contains(v.stemFields, in.STEMField):
		errs[model.FieldSTEMField] = fmt.Sprintf("STEM field %q is not supported", in.STEMField)
	default:
		req.STEMField = in.STEMField
	}

	if len(errs) > 0 {
		return model.PredictionRequest{}, errs
	}
	return req, nil
}
