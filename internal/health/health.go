// Package health classifies aggregate growing metrics into severity tiers
// using fixed numeric bands and emits a recommendation for each. Evaluation
// is a pure function of its inputs: total over the real line, deterministic,
// no hidden state.
package health

// Severity is the tier an evaluated metric falls into.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityNormal   Severity = "normal"
)

// Label returns the display form of the severity.
func (s Severity) Label() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityWarning:
		return "Warning"
	case SeverityNormal:
		return "Normal"
	default:
		return string(s)
	}
}

// Metric identifies one of the evaluated growing metrics.
type Metric string

const (
	MetricYield    Metric = "yield"
	MetricPH       Metric = "ph"
	MetricEC       Metric = "ec"
	MetricLight    Metric = "light"
	MetricLeafSize Metric = "leaf_size"
	MetricBrix     Metric = "brix"
)

// Alert is the result of evaluating one metric.
type Alert struct {
	Metric         Metric   `json:"metric"`
	Title          string   `json:"title"`
	Severity       Severity `json:"severity"`
	Value          float64  `json:"value"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

// Inputs carries the aggregate values the evaluator classifies. TotalLight
// is natural plus artificial hours, already capped at 24.
type Inputs struct {
	Yield      float64
	PH         float64
	EC         float64
	TotalLight float64
	LeafSize   float64
	Brix       float64
}

// MaxLightHours caps the combined light exposure at one full day.
const MaxLightHours = 24.0

// TotalLight combines natural daylight with artificial light hours, capped
// at MaxLightHours.
func TotalLight(naturalHours, artificialHours float64) float64 {
	total := naturalHours + artificialHours
	if total > MaxLightHours {
		return MaxLightHours
	}
	return total
}

// Evaluate classifies all six metrics and returns their alerts in a fixed
// display order.
func Evaluate(in Inputs) []Alert {
	return []Alert{
		EvaluateYield(in.Yield),
		EvaluatePH(in.PH),
		EvaluateEC(in.EC),
		EvaluateLight(in.TotalLight),
		EvaluateLeafSize(in.LeafSize),
		EvaluateBrix(in.Brix),
	}
}
