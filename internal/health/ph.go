package health

import "fmt"

// pH thresholds. The ideal band is 5.5-6.5 with a warning margin on either
// side before the critical cutoffs.
const (
	phCriticalLow  = 5.2
	phWarningLow   = 5.5
	phWarningHigh  = 6.5
	phCriticalHigh = 6.8
)

// EvaluatePH classifies the mean nutrient solution pH.
func EvaluatePH(ph float64) Alert {
	alert := Alert{
		Metric: MetricPH,
		Value:  ph,
	}
	switch {
	case ph < phCriticalLow:
		alert.Severity = SeverityCritical
		alert.Message = fmt.Sprintf("pH is too acidic. Optimal range: 5.5-6.5. Current: %.2f.", ph)
		alert.Recommendation = "Apply a base solution to raise pH and prevent root damage."
	case ph > phCriticalHigh:
		alert.Severity = SeverityCritical
		alert.Message = fmt.Sprintf("pH is too alkaline. Optimal range: 5.5-6.5. Current: %.2f.", ph)
		alert.Recommendation = "Use a mild acid like phosphoric acid to bring the pH down gradually."
	case ph < phWarningLow || ph > phWarningHigh:
		alert.Severity = SeverityWarning
		alert.Message = fmt.Sprintf("pH is slightly outside the target range of 5.5-6.5. Current: %.2f.", ph)
		alert.Recommendation = "Stabilize with pH adjusters and monitor levels over the next few days."
	default:
		alert.Severity = SeverityNormal
		alert.Message = fmt.Sprintf("pH is in the ideal range (5.5-6.5). Current: %.2f.", ph)
		alert.Recommendation = "No adjustments needed, continue current monitoring routine."
	}
	alert.Title = "pH: " + alert.Severity.Label()
	return alert
}
