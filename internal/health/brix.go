package health

import "fmt"

// Brix score thresholds.
const (
	brixCriticalBelow = 6.0
	brixWarningBelow  = 8.0
)

// EvaluateBrix classifies the mean Brix score of harvested plants.
func EvaluateBrix(brix float64) Alert {
	alert := Alert{
		Metric: MetricBrix,
		Value:  brix,
	}
	switch {
	case brix < brixCriticalBelow:
		alert.Severity = SeverityCritical
		alert.Message = fmt.Sprintf("Brix value is below ideal levels. Goal is 8+ for high-quality produce. Current: %.1f.", brix)
		alert.Recommendation = "Increase potassium uptake and optimize ripening conditions."
	case brix < brixWarningBelow:
		alert.Severity = SeverityWarning
		alert.Message = fmt.Sprintf("Brix score is approaching optimal but not quite there. Current: %.1f.", brix)
		alert.Recommendation = "Improve nutrient timing and boost light exposure during fruit development."
	default:
		alert.Severity = SeverityNormal
		alert.Message = fmt.Sprintf("Brix score is at or above target levels (8+). Current: %.1f.", brix)
		alert.Recommendation = "Maintain your current practices to preserve sweetness and quality."
	}
	alert.Title = "Brix Score: " + alert.Severity.Label()
	return alert
}
