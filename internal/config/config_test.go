package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoyOffere/linear-regression-model/internal/common"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, DefaultResponseKeys, cfg.ResponseKeys)
	assert.Equal(t, DefaultRequestFields(), cfg.RequestFields)
	assert.Equal(t, DefaultCountries, cfg.Countries)
	assert.Equal(t, DefaultSTEMFields, cfg.STEMFields)
	assert.True(t, cfg.SeedInput().IsEmpty())
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("prediction.base_url", "https://stem.example.com")
	v.Set("prediction.timeout", "5s")
	v.Set("prediction.response_keys", []string{"prediction"})
	v.Set("prediction.request_fields.female_enrollment_percent", "female_enrollment_percentage")
	v.Set("options.countries", []string{"Germany"})
	v.Set("defaults.gender_gap_index", "0.7")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://stem.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"prediction"}, cfg.ResponseKeys)
	assert.Equal(t, "female_enrollment_percentage", cfg.RequestFields.FemaleEnrollmentPercent)
	assert.Equal(t, []string{"Germany"}, cfg.Countries)
	assert.Equal(t, "0.7", cfg.SeedInput().GenderGapIndex)
}

func TestFromViperValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{name: "missing base url", key: "prediction.base_url", value: "", wantErr: common.ErrMissingConfig},
		{name: "no response keys", key: "prediction.response_keys", value: []string{}, wantErr: common.ErrInvalidConfig},
		{name: "no countries", key: "options.countries", value: []string{}, wantErr: common.ErrInvalidConfig},
		{name: "no stem fields", key: "options.stem_fields", value: []string{}, wantErr: common.ErrInvalidConfig},
		{name: "blank wire field", key: "prediction.request_fields.year", value: "", wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := FromViper(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTimeoutFallback(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("prediction.timeout", "0s")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}
