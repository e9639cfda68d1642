// Package predictor talks to the remote graduation-rate prediction
// service: it serializes canonical requests, performs the HTTP calls,
// and converts loosely-typed response bodies into outcomes.
package predictor

import (
	"encoding/json"
	"fmt"

	"github.com/JoyOffere/linear-regression-model/internal/config"
	"github.com/JoyOffere/linear-regression-model/internal/model"
)

// Builder serializes a canonical PredictionRequest into the wire
// payload under the configured field names.
type Builder struct {
	fields     config.RequestFields
	countries  []string
	stemFields []string
}

// NewBuilder creates a builder for the given wire contract and
// enumerations.
func NewBuilder(fields config.RequestFields, countries, stemFields []string) *Builder {
	return &Builder{
		fields:     fields,
		countries:  countries,
		stemFields: stemFields,
	}
}

// Build serializes req. It revalidates the request first; an invalid
// request here means the caller skipped the validator.
func (b *Builder) Build(req model.PredictionRequest) ([]byte, error) {
	if err := req.Validate(b.countries, b.stemFields); err != nil {
		return nil, fmt.Errorf("refusing to serialize invalid request: %w", err)
	}

	payload := map[string]any{
		b.fields.Year:                    req.Year,
		b.fields.FemaleEnrollmentPercent: req.FemaleEnrollmentPercent,
		b.fields.GenderGapIndex:          req.GenderGapIndex,
		b.fields.Country:                 req.Country,
		b.fields.STEMField:               req.STEMField,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request: %w", err)
	}
	return body, nil
}
