// Package forecast extends a summary series with a short-horizon synthetic
// projection. The projection is a multiplicative random walk intended for
// chart display only; it is not a statistical forecast and has no
// predictive validity.
package forecast

import (
	"math/rand/v2"
	"time"

	"github.com/atlasgrow/atlas-go/internal/errors"
	"github.com/atlasgrow/atlas-go/internal/summary"
)

// Sentinel errors for forecast operations
var (
	ErrEmptySeries = errors.Newf("cannot project an empty series").
		Component("forecast").
		Category(errors.CategoryEmptySeries).
		Build()
)

// Config holds the projection tunables.
type Config struct {
	Horizon        int     // Number of future days to generate
	GrowthRate     float64 // Base multiplicative growth per day
	NoiseAmplitude float64 // Uniform noise bound added to the rate each day
}

// DefaultConfig returns the tunables the production dashboard shipped with.
func DefaultConfig() Config {
	return Config{
		Horizon:        10,
		GrowthRate:     1.02,
		NoiseAmplitude: 0.03,
	}
}

// Point is one projected value.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Source supplies uniform random values in [0, 1). *rand.Rand satisfies it;
// tests inject a seeded source for reproducibility.
type Source interface {
	Float64() float64
}

// NewSource returns a random source. A zero seed selects a time-based seed,
// any other value gives a reproducible sequence.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1))
}

// Project generates cfg.Horizon future points for the named metric,
// compounding the series' last observed value by (growth rate ± noise) each
// day. Projected dates are contiguous, one calendar day apart, starting the
// day after the last observed date.
func Project(series []summary.Row, metric string, cfg Config, src Source) ([]Point, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if cfg.Horizon < 1 {
		return nil, errors.Newf("forecast horizon must be at least 1, got %d", cfg.Horizon).
			Component("forecast").
			Category(errors.CategoryValidation).
			Context("horizon", cfg.Horizon).
			Build()
	}

	last := &series[len(series)-1]
	value, ok := last.Metrics[metric]
	if !ok {
		return nil, errors.Newf("metric %q has no value in the last observation", metric).
			Component("forecast").
			Category(errors.CategoryEmptySeries).
			Context("metric", metric).
			Build()
	}

	// The series is date-ascending by contract, but scanning for the max
	// keeps the start date correct for unsorted callers.
	lastDate := series[0].Date
	for i := range series {
		if series[i].Date.After(lastDate) {
			lastDate = series[i].Date
		}
	}

	points := make([]Point, 0, cfg.Horizon)
	date := lastDate
	for range cfg.Horizon {
		date = date.AddDate(0, 0, 1)
		fluctuation := (src.Float64()*2 - 1) * cfg.NoiseAmplitude
		value *= cfg.GrowthRate + fluctuation
		points = append(points, Point{Date: date, Value: value})
	}
	return points, nil
}
