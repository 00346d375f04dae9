package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  NullString
	}{
		{"present", `"Left"`, NullString{String: "Left", Valid: true}},
		{"empty_string_is_absent", `""`, NullString{}},
		{"null_is_absent", `null`, NullString{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got NullString
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNullFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  NullFloat
	}{
		{"number", `4.5`, NullFloat{Float64: 4.5, Valid: true}},
		{"quoted_number", `"5.25"`, NullFloat{Float64: 5.25, Valid: true}},
		{"integer", `42`, NullFloat{Float64: 42, Valid: true}},
		{"empty_string_is_absent", `""`, NullFloat{}},
		{"null_is_absent", `null`, NullFloat{}},
		{"garbage_string_is_absent", `"n/a"`, NullFloat{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got NullFloat
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNullDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantTime  time.Time
	}{
		{"iso_date", `"2026-03-01"`, true, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"us_date", `"03/01/2026"`, true, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"empty_string_is_absent", `""`, false, time.Time{}},
		{"null_is_absent", `null`, false, time.Time{}},
		{"unparsable_degrades_to_absent", `"not a date"`, false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got NullDate
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.True(t, got.Time.Equal(tt.wantTime), "got %v, want %v", got.Time, tt.wantTime)
			}
		})
	}
}

func TestNullDate_MarshalJSON(t *testing.T) {
	present := NullDate{Time: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	data, err := json.Marshal(present)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-01"`, string(data))

	data, err = json.Marshal(NullDate{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
