package cleanse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasgrow/atlas-go/internal/errors"
	"github.com/atlasgrow/atlas-go/internal/model"
)

func TestDecimalHours(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"six_and_a_half_hours", "06:30:00", 6.5, false},
		{"full_day", "24:00:00", 24.0, false},
		{"with_seconds", "01:30:36", 1.51, false},
		{"no_seconds_part", "10:15", 10.25, false},
		{"zero", "00:00:00", 0.0, false},
		{"garbage", "soon", 0, true},
		{"negative_component", "-1:30:00", 0, true},
		{"too_many_parts", "1:2:3:4", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecimalHours(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var ee *errors.EnhancedError
				require.ErrorAs(t, err, &ee)
				assert.Equal(t, errors.CategoryValidation, ee.Category)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestNormalizeSun(t *testing.T) {
	date := model.NullDate{Time: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	recs := []model.SunRecord{
		{Date: date, HoursOfDaylight: model.NullString{String: "06:30:00", Valid: true}},
		{Date: date, HoursOfDaylight: model.NullString{}},                                  // absent duration
		{Date: date, HoursOfDaylight: model.NullString{String: "cloudy", Valid: true}},     // unparsable
		{Date: date, HoursOfDaylight: model.NullString{String: "12:00:00", Valid: true}},
	}

	days := NormalizeSun(recs)

	require.Len(t, days, 2)
	assert.InDelta(t, 6.5, days[0].Hours, 0.0001)
	assert.InDelta(t, 12.0, days[1].Hours, 0.0001)
}

func TestChartableMeasurements(t *testing.T) {
	full := model.MeasurementRecord{
		Depth:       model.NullFloat{Float64: 10, Valid: true},
		PH:          model.NullFloat{Float64: 6.1, Valid: true},
		EC:          model.NullFloat{Float64: 1.4, Valid: true},
		PPM:         model.NullFloat{Float64: 700, Valid: true},
		Temperature: model.NullFloat{Float64: 21, Valid: true},
	}
	missingEC := full
	missingEC.EC = model.NullFloat{}

	raw := []model.MeasurementRecord{full, missingEC}
	chartable := ChartableMeasurements(raw)

	// The incomplete row is excluded from the filtered view but still
	// present in the raw dataset.
	require.Len(t, chartable, 1)
	assert.True(t, chartable[0].HasCoreReadings())
	assert.Len(t, raw, 2)
}
