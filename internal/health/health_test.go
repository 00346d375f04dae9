package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateYield(t *testing.T) {
	tests := []struct {
		name  string
		grams float64
		want  Severity
	}{
		{"critical_below_30", 29.9, SeverityCritical},
		{"warning_at_30", 30.0, SeverityWarning},
		{"warning_below_50", 45.2, SeverityWarning},
		{"normal_at_50", 50.0, SeverityNormal},
		{"normal_above", 72.3, SeverityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := EvaluateYield(tt.grams)
			assert.Equal(t, tt.want, alert.Severity)
			assert.Equal(t, MetricYield, alert.Metric)
			assert.Equal(t, "Yield: "+tt.want.Label(), alert.Title)
		})
	}
}

func TestEvaluateYield_MessageFormat(t *testing.T) {
	alert := EvaluateYield(45.2)
	assert.Equal(t, "Yield is slightly under the expected threshold of 50g+. Current: 45.2g.", alert.Message)
	assert.NotEmpty(t, alert.Recommendation)
}

func TestEvaluatePH(t *testing.T) {
	tests := []struct {
		name string
		ph   float64
		want Severity
	}{
		{"critical_acidic", 5.1, SeverityCritical},
		{"warning_at_low_cutoff", 5.2, SeverityWarning},
		{"warning_low_band", 5.4, SeverityWarning},
		{"normal_at_5_5", 5.5, SeverityNormal},
		{"normal_mid", 6.0, SeverityNormal},
		{"normal_at_6_5", 6.5, SeverityNormal},
		{"warning_high_band", 6.7, SeverityWarning},
		{"warning_at_high_cutoff", 6.8, SeverityWarning},
		{"critical_alkaline", 6.9, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluatePH(tt.ph).Severity)
		})
	}
}

func TestEvaluateEC(t *testing.T) {
	tests := []struct {
		name string
		ec   float64
		want Severity
	}{
		{"critical_low", 0.6, SeverityCritical},
		{"warning_at_0_7", 0.7, SeverityWarning},
		{"warning_below_1", 0.9, SeverityWarning},
		{"normal_at_1", 1.0, SeverityNormal},
		{"normal_at_2", 2.0, SeverityNormal},
		{"warning_above_2", 2.2, SeverityWarning},
		{"warning_at_2_5", 2.5, SeverityWarning},
		{"critical_high", 2.6, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateEC(tt.ec).Severity)
		})
	}
}

func TestEvaluateLight_NoWarningTier(t *testing.T) {
	assert.Equal(t, SeverityCritical, EvaluateLight(5.9).Severity)
	assert.Equal(t, SeverityNormal, EvaluateLight(6.0).Severity)
	assert.Equal(t, SeverityNormal, EvaluateLight(18.0).Severity)
}

func TestEvaluateLeafSize(t *testing.T) {
	tests := []struct {
		name   string
		inches float64
		want   Severity
	}{
		{"critical_below_2", 1.9, SeverityCritical},
		{"warning_at_2", 2.0, SeverityWarning},
		{"warning_below_3", 2.9, SeverityWarning},
		{"normal_at_3", 3.0, SeverityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateLeafSize(tt.inches).Severity)
		})
	}
}

func TestEvaluateBrix(t *testing.T) {
	tests := []struct {
		name string
		brix float64
		want Severity
	}{
		{"critical_below_6", 5.9, SeverityCritical},
		{"warning_at_6", 6.0, SeverityWarning},
		{"warning_below_8", 7.5, SeverityWarning},
		{"normal_at_8", 8.0, SeverityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateBrix(tt.brix).Severity)
		})
	}
}

func TestTotalLight_CappedAtFullDay(t *testing.T) {
	assert.InDelta(t, 18.5, TotalLight(12.5, 6.0), 0.0001)
	assert.InDelta(t, MaxLightHours, TotalLight(20.0, 10.0), 0.0001)
}

func TestEvaluate_FixedOrderAndDeterminism(t *testing.T) {
	in := Inputs{
		Yield:      45.2,
		PH:         6.0,
		EC:         1.5,
		TotalLight: 14.0,
		LeafSize:   2.5,
		Brix:       7.0,
	}

	alerts := Evaluate(in)
	require.Len(t, alerts, 6)

	order := []Metric{MetricYield, MetricPH, MetricEC, MetricLight, MetricLeafSize, MetricBrix}
	for i, metric := range order {
		assert.Equal(t, metric, alerts[i].Metric)
		assert.NotEmpty(t, alerts[i].Message)
		assert.NotEmpty(t, alerts[i].Recommendation)
	}

	// Same inputs always classify identically.
	assert.Equal(t, alerts, Evaluate(in))
}
