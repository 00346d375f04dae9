package health

import "fmt"

// Leaf size thresholds in inches.
const (
	leafCriticalBelow = 2.0
	leafWarningBelow  = 3.0
)

// EvaluateLeafSize classifies the mean size of the largest leaf per plant.
func EvaluateLeafSize(inches float64) Alert {
	alert := Alert{
		Metric: MetricLeafSize,
		Value:  inches,
	}
	switch {
	case inches < leafCriticalBelow:
		alert.Severity = SeverityCritical
		alert.Message = fmt.Sprintf("Leaf size is far below the optimal threshold (3+ inches). Current: %.1f\".", inches)
		alert.Recommendation = "Apply micronutrients and improve airflow and humidity control."
	case inches < leafWarningBelow:
		alert.Severity = SeverityWarning
		alert.Message = fmt.Sprintf("Leaf size is slightly under the 3-inch target. Current: %.1f\".", inches)
		alert.Recommendation = "Review nutrient balance and increase light intensity if needed."
	default:
		alert.Severity = SeverityNormal
		alert.Message = fmt.Sprintf("Average leaf size meets the optimal 3-inch threshold. Current: %.1f\".", inches)
		alert.Recommendation = "Continue current growth strategy and monitor leaf expansion."
	}
	alert.Title = "Leaf Size: " + alert.Severity.Label()
	return alert
}
