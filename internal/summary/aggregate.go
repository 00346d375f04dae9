// Package summary aggregates dated observations into per-date means.
package summary

import (
	"sort"
	"time"

	"github.com/atlasgrow/atlas-go/internal/errors"
	"github.com/atlasgrow/atlas-go/internal/model"
)

// ErrEmptySeries is returned when an aggregation or mean is requested over
// zero rows. Operating on undefined values is never silently defaulted.
var ErrEmptySeries = errors.Newf("empty series").
	Component("summary").
	Category(errors.CategoryEmptySeries).
	Build()

// Metric names for growth observations.
const (
	MetricHeight = "height"
	MetricWidth  = "width"
	MetricLeaf   = "leaf"
)

// Row is one dated observation carrying named numeric metrics. Non-numeric
// fields are discarded before aggregation.
type Row struct {
	Date    time.Time
	Metrics map[string]float64
}

// accumulator tracks per-metric running sums within one date group.
type accumulator struct {
	sum   map[string]float64
	count map[string]int
}

// Aggregate groups rows sharing an identical date and computes the
// arithmetic mean of each metric within the group. The result has exactly
// one row per distinct input date, ordered ascending.
func Aggregate(rows []Row) ([]Row, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySeries
	}

	groups := make(map[time.Time]*accumulator)
	for i := range rows {
		row := &rows[i]
		acc, ok := groups[row.Date]
		if !ok {
			acc = &accumulator{
				sum:   make(map[string]float64),
				count: make(map[string]int),
			}
			groups[row.Date] = acc
		}
		for metric, value := range row.Metrics {
			acc.sum[metric] += value
			acc.count[metric]++
		}
	}

	dates := make([]time.Time, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]Row, 0, len(dates))
	for _, date := range dates {
		acc := groups[date]
		metrics := make(map[string]float64, len(acc.sum))
		for metric, sum := range acc.sum {
			metrics[metric] = sum / float64(acc.count[metric])
		}
		out = append(out, Row{Date: date, Metrics: metrics})
	}
	return out, nil
}

// FromGrowth converts growth records into aggregation rows. Records with an
// absent date are skipped so they never form a phantom group; absent metric
// values simply do not contribute to their column's mean.
func FromGrowth(recs []model.GrowthRecord) []Row {
	rows := make([]Row, 0, len(recs))
	for i := range recs {
		rec := &recs[i]
		if !rec.Date.Valid {
			continue
		}
		metrics := make(map[string]float64, 3)
		if rec.Height.Valid {
			metrics[MetricHeight] = rec.Height.Float64
		}
		if rec.Width.Valid {
			metrics[MetricWidth] = rec.Width.Float64
		}
		if rec.Leaf.Valid {
			metrics[MetricLeaf] = rec.Leaf.Float64
		}
		rows = append(rows, Row{Date: rec.Date.Time, Metrics: metrics})
	}
	return rows
}

// FilterPlant returns the growth records belonging to one plant identifier.
func FilterPlant(recs []model.GrowthRecord, plantID string) []model.GrowthRecord {
	out := make([]model.GrowthRecord, 0, len(recs))
	for i := range recs {
		if recs[i].PlantID() == plantID {
			out = append(out, recs[i])
		}
	}
	return out
}

// Averages computes the overall mean of each metric across a summary
// series, used by the presentation layer for its average reference line.
func Averages(rows []Row) map[string]float64 {
	sum := make(map[string]float64)
	count := make(map[string]int)
	for i := range rows {
		for metric, value := range rows[i].Metrics {
			sum[metric] += value
			count[metric]++
		}
	}
	avg := make(map[string]float64, len(sum))
	for metric, s := range sum {
		avg[metric] = s / float64(count[metric])
	}
	return avg
}

// Column extracts the present values of a nullable numeric column.
func Column(n int, value func(i int) model.NullFloat) []float64 {
	out := make([]float64, 0, n)
	for i := range n {
		if v := value(i); v.Valid {
			out = append(out, v.Float64)
		}
	}
	return out
}

// Mean returns the arithmetic mean of values. An empty input is an
// empty-series error, never a zero default.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptySeries
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}
