package health

import "fmt"

// Minimum combined light exposure in hours per day. Light has no warning
// tier, anything at or above the minimum is normal.
const lightCriticalBelow = 6.0

// EvaluateLight classifies the combined natural and artificial light hours.
func EvaluateLight(totalHours float64) Alert {
	alert := Alert{
		Metric: MetricLight,
		Value:  totalHours,
	}
	if totalHours < lightCriticalBelow {
		alert.Severity = SeverityCritical
		alert.Message = fmt.Sprintf("Total light exposure is too low. Minimum required: 6 hours/day. Current: %.1f hrs.", totalHours)
		alert.Recommendation = "Increase artificial lighting or reposition plants for more sun."
	} else {
		alert.Severity = SeverityNormal
		alert.Message = fmt.Sprintf("Total light exposure exceeds the 6-hour minimum. Current: %.1f hrs.", totalHours)
		alert.Recommendation = "Light availability is sufficient, no changes needed at this time."
	}
	alert.Title = "Light: " + alert.Severity.Label()
	return alert
}
