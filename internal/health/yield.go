package health

import "fmt"

// Yield thresholds in grams.
const (
	yieldCriticalBelow = 30.0
	yieldWarningBelow  = 50.0
)

// EvaluateYield classifies the mean harvest yield.
func EvaluateYield(grams float64) Alert {
	alert := Alert{
		Metric: MetricYield,
		Value:  grams,
	}
	switch {
	case grams < yieldCriticalBelow:
		alert.Severity = SeverityCritical
		alert.Message = fmt.Sprintf("Yield is well below the optimal 50g+ range. Current: %.1fg.", grams)
		alert.Recommendation = "Improve nutrient delivery, verify EC and pH levels, and increase lighting exposure."
	case grams < yieldWarningBelow:
		alert.Severity = SeverityWarning
		alert.Message = fmt.Sprintf("Yield is slightly under the expected threshold of 50g+. Current: %.1fg.", grams)
		alert.Recommendation = "Consider adjusting nutrients, lighting duration, and irrigation strategy."
	default:
		alert.Severity = SeverityNormal
		alert.Message = fmt.Sprintf("Yield is within the optimal range (50g+). Current: %.1fg.", grams)
		alert.Recommendation = "Maintain your current growing conditions and keep monitoring regularly."
	}
	alert.Title = "Yield: " + alert.Severity.Label()
	return alert
}
