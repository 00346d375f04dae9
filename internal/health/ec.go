package health

import "fmt"

// Electrical conductivity thresholds in mS/cm.
const (
	ecCriticalLow  = 0.7
	ecWarningLow   = 1.0
	ecWarningHigh  = 2.0
	ecCriticalHigh = 2.5
)

// EvaluateEC classifies the nutrient solution's electrical conductivity.
func EvaluateEC(ec float64) Alert {
	alert := Alert{
		Metric: MetricEC,
		Value:  ec,
	}
	switch {
	case ec < ecCriticalLow:
		alert.Severity = SeverityCritical
		alert.Message = fmt.Sprintf("Electrical conductivity is far below the optimal range (1.0-2.0 S/m). Current: %.2f.", ec)
		alert.Recommendation = "Add more nutrients to enrich the solution and support plant growth."
	case ec > ecCriticalHigh:
		alert.Severity = SeverityCritical
		alert.Message = fmt.Sprintf("Electrical conductivity is too high. Target range is 1.0-2.0 S/m. Current: %.2f.", ec)
		alert.Recommendation = "Dilute with fresh water or flush the system to reduce salt buildup."
	case ec < ecWarningLow || ec > ecWarningHigh:
		alert.Severity = SeverityWarning
		alert.Message = fmt.Sprintf("EC is slightly outside the optimal range (1.0-2.0 S/m). Current: %.2f.", ec)
		alert.Recommendation = "Fine-tune the nutrient mix and recheck levels after the next feeding."
	default:
		alert.Severity = SeverityNormal
		alert.Message = fmt.Sprintf("Electrical conductivity is stable and within the 1.0-2.0 S/m range. Current: %.2f.", ec)
		alert.Recommendation = "Maintain consistent feeding schedule and check weekly."
	}
	alert.Title = "EC: " + alert.Severity.Label()
	return alert
}
