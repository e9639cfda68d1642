// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/JoyOffere/linear-regression-model/internal/common"
	"github.com/JoyOffere/linear-regression-model/internal/model"
)

// Default enumerations accepted by the primary deployment of the
// prediction service. Deployments with a different catalogue override
// these in config.yaml.
var (
	DefaultCountries = []string{
		"Australia", "Brazil", "Canada", "China", "France", "Germany",
		"India", "Japan", "South Korea", "United Kingdom", "United States",
	}

	DefaultSTEMFields = []string{
		"Biology", "Computer Science", "Engineering", "Mathematics",
	}

	// DefaultResponseKeys is the ordered list of body keys probed for
	// the estimate. Older deployments return "prediction" instead of
	// "predicted_graduation_rate"; earlier entries win.
	DefaultResponseKeys = []string{"predicted_graduation_rate", "prediction"}
)

// RequestFields names the JSON fields of the prediction request. One
// observed deployment spells the enrollment field
// "female_enrollment_percentage"; the wire names are configuration so
// neither contract is baked into the client.
type RequestFields struct {
	Year                    string
	FemaleEnrollmentPercent string
	GenderGapIndex          string
	Country                 string
	STEMField               string
}

// DefaultRequestFields returns the wire names of the primary contract.
func DefaultRequestFields() RequestFields {
	return RequestFields{
		Year:                    "year",
		FemaleEnrollmentPercent: "female_enrollment_percent",
		GenderGapIndex:          "gender_gap_index",
		Country:                 "country",
		STEMField:               "stem_field",
	}
}

// Defaults seeds the form with raw input values at session start and
// after a reset. Empty strings mean the field starts blank.
type Defaults struct {
	Year                    string
	FemaleEnrollmentPercent string
	GenderGapIndex          string
	Country                 string
	STEMField               string
}

// Config holds everything the prediction core consumes.
type Config struct {
	BaseURL       string
	RequestFields RequestFields
	Defaults      Defaults
	ResponseKeys  []string
	Countries     []string
	STEMFields    []string
	Timeout       time.Duration
}

// SetDefaults registers default values on the given Viper instance.
// Call before reading the config file so file values win.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("prediction.base_url", "http://localhost:8000")
	v.SetDefault("prediction.timeout", "30s")
	v.SetDefault("prediction.response_keys", DefaultResponseKeys)

	fields := DefaultRequestFields()
	v.SetDefault("prediction.request_fields.year", fields.Year)
	v.SetDefault("prediction.request_fields.female_enrollment_percent", fields.FemaleEnrollmentPercent)
	v.SetDefault("prediction.request_fields.gender_gap_index", fields.GenderGapIndex)
	v.SetDefault("prediction.request_fields.country", fields.Country)
	v.SetDefault("prediction.request_fields.stem_field", fields.STEMField)

	v.SetDefault("options.countries", DefaultCountries)
	v.SetDefault("options.stem_fields", DefaultSTEMFields)

	v.SetDefault("defaults.year", "")
	v.SetDefault("defaults.female_enrollment_percent", "")
	v.SetDefault("defaults.gender_gap_index", "")
	v.SetDefault("defaults.country", "")
	v.SetDefault("defaults.stem_field", "")
}

// Load reads the configuration from the global Viper instance.
func Load() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper reads and validates the configuration from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		BaseURL:      v.GetString("prediction.base_url"),
		Timeout:      v.GetDuration("prediction.timeout"),
		ResponseKeys: v.GetStringSlice("prediction.response_keys"),
		RequestFields: RequestFields{
			Year:                    v.GetString("prediction.request_fields.year"),
			FemaleEnrollmentPercent: v.GetString("prediction.request_fields.female_enrollment_percent"),
			GenderGapIndex:          v.GetString("prediction.request_fields.gender_gap_index"),
			Country:                 v.GetString("prediction.request_fields.country"),
			STEMField:               v.GetString("prediction.request_fields.stem_field"),
		},
		Countries:  v.GetStringSlice("options.countries"),
		STEMFields: v.GetStringSlice("options.stem_fields"),
		Defaults: Defaults{
			Year:                    v.GetString("defaults.year"),
			FemaleEnrollmentPercent: v.GetString("defaults.female_enrollment_percent"),
			GenderGapIndex:          v.GetString("defaults.gender_gap_index"),
			Country:                 v.GetString("defaults.country"),
			STEMField:               v.GetString("defaults.stem_field"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration for gaps that would leave
// the core inoperable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: prediction.base_url is required", common.ErrMissingConfig)
	}
	if len(c.ResponseKeys) == 0 {
		return fmt.Errorf("%w: prediction.response_keys must list at least one candidate key", common.ErrInvalidConfig)
	}
	if len(c.Countries) == 0 {
		return fmt.Errorf("%w: options.countries must not be empty", common.ErrInvalidConfig)
	}
	if len(c.STEMFields) == 0 {
		return fmt.Errorf("%w: options.stem_fields must not be empty", common.ErrInvalidConfig)
	}
	f := c.RequestFields
	for name, value := range map[string]string{
		"year":                      f.Year,
		"female_enrollment_percent": f.FemaleEnrollmentPercent,
		"gender_gap_index":          f.GenderGapIndex,
		"country":                   f.Country,
		"stem_field":                f.STEMField,
	} {
		if value == "" {
			return fmt.Errorf("%w: prediction.request_fields.%s must not be empty", common.ErrInvalidConfig, name)
		}
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}

// SeedInput converts the configured defaults into the raw input a new
// session starts from.
func (c *Config) SeedInput() model.Input {
	return model.Input{
		Year:                    c.Defaults.Year,
		FemaleEnrollmentPercent: c.Defaults.FemaleEnrollmentPercent,
		GenderGapIndex:          c.Defaults.GenderGapIndex,
		Country:                 c.Defaults.Country,
		STEMField:               c.Defaults.STEMField,
	}
}
