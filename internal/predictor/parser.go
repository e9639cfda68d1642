package predictor

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/JoyOffere/linear-regression-model/internal/common"
	"github.com/JoyOffere/linear-regression-model/internal/model"
)

// Parser extracts the numeric estimate from a success response body.
// The key holding the estimate varies between backend versions, so the
// parser probes an ordered list of candidates and uses the first one
// present.
type Parser struct {
	keys []string
}

// NewParser creates a parser probing the given keys in order.
func NewParser(keys []string) *Parser {
	return &Parser{keys: keys}
}

// Parse converts a response body into a graduation-rate percentage.
// Failures wrap one of common.ErrMalformedResponse,
// common.ErrEstimateMissing or common.ErrEstimateInvalid so the caller
// can tell the causes apart.
func (p *Parser) Parse(body []byte) (float64, error) {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	if obj == nil {
		return 0, fmt.Errorf("%w: body is null", common.ErrMalformedResponse)
	}

	for _, key := range p.keys {
		value, ok := obj[key]
		if !ok {
			continue
		}

		rate, ok := value.(float64)
		if !ok {
			return 0, fmt.Errorf("%w: key %q holds %T, want a number", common.ErrEstimateInvalid, key, value)
		}
		// The estimate is a percentage; anything outside [0, 100] (or
		// non-finite) means the backend sent garbage, not a rate.
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return 0, fmt.Errorf("%w: key %q is not finite", common.ErrEstimateInvalid, key)
		}
		if rate < model.MinEnrollmentPercent || rate > model.MaxEnrollmentPercent {
			return 0, fmt.Errorf("%w: key %q is %.4f, outside [0, 100]", common.ErrEstimateInvalid, key, rate)
		}
		return rate, nil
	}

	return 0, fmt.Errorf("%w: none of [%s] present", common.ErrEstimateMissing, strings.Join(p.keys, ", "))
}
