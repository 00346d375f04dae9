// Package state holds the datasets loaded at startup and recomputes the
// derived views the presentation layer consumes. Loaded data is read-only;
// every recomputation produces new values, so a populated State is safe to
// share across concurrent readers.
package state

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/atlasgrow/atlas-go/internal/cleanse"
	"github.com/atlasgrow/atlas-go/internal/conf"
	"github.com/atlasgrow/atlas-go/internal/dataservice"
	"github.com/atlasgrow/atlas-go/internal/errors"
	"github.com/atlasgrow/atlas-go/internal/forecast"
	"github.com/atlasgrow/atlas-go/internal/health"
	"github.com/atlasgrow/atlas-go/internal/logging"
	"github.com/atlasgrow/atlas-go/internal/model"
	"github.com/atlasgrow/atlas-go/internal/observability"
	"github.com/atlasgrow/atlas-go/internal/suncalc"
	"github.com/atlasgrow/atlas-go/internal/summary"
)

// Package-level logger for state operations
var (
	stateLogger   *slog.Logger
	stateLevelVar = new(slog.LevelVar)
)

func init() {
	var err error
	stateLevelVar.Set(slog.LevelDebug)

	stateLogger, _, err = logging.NewFileLogger("logs/state.log", "state", stateLevelVar)
	if err != nil {
		logging.Error("Failed to initialize state file logger", "error", err)
		fbHandler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: stateLevelVar})
		stateLogger = slog.New(fbHandler).With("service", "state")
	}
}

// Derived view cache tuning.
const (
	viewCacheTTL     = 5 * time.Minute
	viewCacheCleanup = 10 * time.Minute
)

// State is the application state object constructed at startup and passed
// to every component that needs the loaded datasets.
type State struct {
	settings *conf.Settings

	unit         *model.UnitParameters
	sun          []model.SunRecord
	sunDays      []model.SunDay
	measurements []model.MeasurementRecord
	growth       []model.GrowthRecord
	harvest      []model.HarvestRecord

	// datasetErrs records per-dataset load failures; one dataset failing
	// never blocks the others.
	datasetErrs map[dataservice.Dataset]error

	sunCalc   *suncalc.SunCalc
	viewCache *gocache.Cache
	metrics   *observability.Metrics
}

// Load fetches all datasets from the data service and builds the
// application state. Loading is fail-soft per dataset: a DataUnavailable
// failure is recorded and the remaining datasets still load.
func Load(ctx context.Context, client *dataservice.Client, settings *conf.Settings, metrics *observability.Metrics) *State {
	s := &State{
		settings:    settings,
		datasetErrs: make(map[dataservice.Dataset]error),
		sunCalc:     suncalc.NewSunCalc(settings.Unit.Latitude, settings.Unit.Longitude),
		viewCache:   gocache.New(viewCacheTTL, viewCacheCleanup),
		metrics:     metrics,
	}

	load := func(dataset dataservice.Dataset, fetch func() error) {
		start := time.Now()
		err := fetch()
		if s.metrics != nil {
			s.metrics.RecordFetchDuration(string(dataset), time.Since(start).Seconds())
		}
		if err != nil {
			stateLogger.Error("Failed to load dataset", "dataset", string(dataset), "error", err)
			s.datasetErrs[dataset] = err
			if s.metrics != nil {
				s.metrics.RecordFetch(string(dataset), "error")
			}
			return
		}
		if s.metrics != nil {
			s.metrics.RecordFetch(string(dataset), "success")
		}
	}

	load(dataservice.DatasetUnitParameters, func() error {
		unit, err := client.FetchUnitParameters(ctx)
		if err != nil {
			return err
		}
		s.unit = unit
		return nil
	})
	load(dataservice.DatasetSunData, func() error {
		sun, err := client.FetchSunData(ctx)
		if err != nil {
			return err
		}
		s.sun = sun
		s.sunDays = cleanse.NormalizeSun(sun)
		return nil
	})
	load(dataservice.DatasetMeasurements, func() error {
		measurements, err := client.FetchMeasurements(ctx)
		if err != nil {
			return err
		}
		s.measurements = measurements
		return nil
	})
	load(dataservice.DatasetPlantGrowth, func() error {
		growth, err := client.FetchPlantGrowth(ctx)
		if err != nil {
			return err
		}
		s.growth = growth
		return nil
	})
	load(dataservice.DatasetPlantHarvest, func() error {
		harvest, err := client.FetchPlantHarvest(ctx)
		if err != nil {
			return err
		}
		s.harvest = harvest
		return nil
	})

	stateLogger.Info("Application state loaded",
		"datasets", len(dataservice.Datasets),
		"failed", len(s.datasetErrs),
		"growth_rows", len(s.growth),
		"harvest_rows", len(s.harvest),
		"measurement_rows", len(s.measurements),
	)
	return s
}

// DatasetErrors returns the load failures by dataset name.
func (s *State) DatasetErrors() map[dataservice.Dataset]error {
	out := make(map[dataservice.Dataset]error, len(s.datasetErrs))
	for k, v := range s.datasetErrs {
		out[k] = v
	}
	return out
}

// datasetErr wraps a recorded load failure for a dataset a view depends on.
func (s *State) datasetErr(dataset dataservice.Dataset) error {
	if err, ok := s.datasetErrs[dataset]; ok {
		return err
	}
	return nil
}

// UnitParameters returns the growing unit's static configuration.
func (s *State) UnitParameters() (*model.UnitParameters, error) {
	if err := s.datasetErr(dataservice.DatasetUnitParameters); err != nil {
		return nil, err
	}
	if s.unit == nil {
		return nil, errors.Newf("unit parameters not loaded").
			Component("state").
			Category(errors.CategoryNotFound).
			Build()
	}
	return s.unit, nil
}

// SunDays returns the normalized daylight records.
func (s *State) SunDays() ([]model.SunDay, error) {
	if err := s.datasetErr(dataservice.DatasetSunData); err != nil {
		return nil, err
	}
	return s.sunDays, nil
}

// Measurements returns the raw sensor readings, including incomplete rows.
func (s *State) Measurements() ([]model.MeasurementRecord, error) {
	if err := s.datasetErr(dataservice.DatasetMeasurements); err != nil {
		return nil, err
	}
	return s.measurements, nil
}

// ChartableMeasurements returns the readings where every core field is
// present, the view used for charting.
func (s *State) ChartableMeasurements() ([]model.MeasurementRecord, error) {
	recs, err := s.Measurements()
	if err != nil {
		return nil, err
	}
	return cleanse.ChartableMeasurements(recs), nil
}

// GrowthRecords returns the raw growth observations.
func (s *State) GrowthRecords() ([]model.GrowthRecord, error) {
	if err := s.datasetErr(dataservice.DatasetPlantGrowth); err != nil {
		return nil, err
	}
	return s.growth, nil
}

// HarvestRecords returns the raw harvest observations.
func (s *State) HarvestRecords() ([]model.HarvestRecord, error) {
	if err := s.datasetErr(dataservice.DatasetPlantHarvest); err != nil {
		return nil, err
	}
	return s.harvest, nil
}

// Plants enumerates the distinct plant identifiers across the growth and
// harvest datasets, sorted for stable display.
func (s *State) Plants() []string {
	seen := make(map[string]struct{})
	for i := range s.growth {
		if id := s.growth[i].PlantID(); id != "" {
			seen[id] = struct{}{}
		}
	}
	for i := range s.harvest {
		if id := s.harvest[i].PlantID(); id != "" {
			seen[id] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// GrowthSummary returns the per-date mean of every growth metric across all
// plants, or for a single plant when plantID is non-empty.
func (s *State) GrowthSummary(plantID string) ([]summary.Row, error) {
	if err := s.datasetErr(dataservice.DatasetPlantGrowth); err != nil {
		return nil, err
	}

	cacheKey := "summary:" + plantID
	if cached, found := s.viewCache.Get(cacheKey); found {
		return cached.([]summary.Row), nil
	}

	start := time.Now()
	recs := s.growth
	if plantID != "" {
		recs = summary.FilterPlant(recs, plantID)
		if len(recs) == 0 {
			return nil, errors.Newf("unknown plant: %s", plantID).
				Component("state").
				Category(errors.CategoryNotFound).
				Context("plant", plantID).
				Build()
		}
	}
	rows, err := summary.Aggregate(summary.FromGrowth(recs))
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordRecomputeDuration("growth_summary", time.Since(start).Seconds())
	}

	s.viewCache.Set(cacheKey, rows, gocache.DefaultExpiration)
	return rows, nil
}

// Forecast generates the synthetic projection for one growth metric, scoped
// to a single plant when plantID is non-empty. A configured non-zero seed
// makes the projection reproducible.
func (s *State) Forecast(metric, plantID string) ([]forecast.Point, error) {
	switch metric {
	case summary.MetricHeight, summary.MetricWidth, summary.MetricLeaf:
	default:
		return nil, errors.Newf("unknown forecast metric: %s", metric).
			Component("state").
			Category(errors.CategoryValidation).
			Context("metric", metric).
			Build()
	}

	rows, err := s.GrowthSummary(plantID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	cfg := forecast.Config{
		Horizon:        s.settings.Forecast.Horizon,
		GrowthRate:     s.settings.Forecast.GrowthRate,
		NoiseAmplitude: s.settings.Forecast.NoiseAmplitude,
	}
	points, err := forecast.Project(rows, metric, cfg, forecast.NewSource(s.settings.Forecast.Seed))
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordRecomputeDuration("forecast", time.Since(start).Seconds())
	}
	return points, nil
}

// BrixLineComposition returns the distribution of Brix Line values among
// harvested plants, the input of the dashboard's composition chart.
func (s *State) BrixLineComposition() (map[string]int, error) {
	if err := s.datasetErr(dataservice.DatasetPlantHarvest); err != nil {
		return nil, err
	}
	out := make(map[string]int)
	for i := range s.harvest {
		if line := s.harvest[i].BrixLine; line.Valid {
			out[line.String]++
		}
	}
	return out, nil
}

// Alerts evaluates the health thresholds over the loaded datasets. Metrics
// whose input data is unavailable are skipped with a warning; evaluation
// itself never fails.
func (s *State) Alerts() []health.Alert {
	alerts := make([]health.Alert, 0, 6)

	if v, err := s.meanYield(); err != nil {
		stateLogger.Warn("Skipping yield alert", "error", err)
	} else {
		alerts = append(alerts, health.EvaluateYield(v))
	}
	if v, err := s.meanPH(); err != nil {
		stateLogger.Warn("Skipping pH alert", "error", err)
	} else {
		alerts = append(alerts, health.EvaluatePH(v))
	}
	if v, err := s.currentEC(); err != nil {
		stateLogger.Warn("Skipping EC alert", "error", err)
	} else {
		alerts = append(alerts, health.EvaluateEC(v))
	}
	if v, err := s.totalLight(); err != nil {
		stateLogger.Warn("Skipping light alert", "error", err)
	} else {
		alerts = append(alerts, health.EvaluateLight(v))
	}
	if v, err := s.meanLeafSize(); err != nil {
		stateLogger.Warn("Skipping leaf size alert", "error", err)
	} else {
		alerts = append(alerts, health.EvaluateLeafSize(v))
	}
	if v, err := s.meanBrix(); err != nil {
		stateLogger.Warn("Skipping Brix alert", "error", err)
	} else {
		alerts = append(alerts, health.EvaluateBrix(v))
	}

	if s.metrics != nil {
		for i := range alerts {
			s.metrics.UpdateAlertSeverity(string(alerts[i].Metric), severityValue(alerts[i].Severity))
		}
	}
	return alerts
}

func severityValue(severity health.Severity) float64 {
	switch severity {
	case health.SeverityCritical:
		return observability.SeverityValueCritical
	case health.SeverityWarning:
		return observability.SeverityValueWarning
	default:
		return observability.SeverityValueNormal
	}
}

func (s *State) meanYield() (float64, error) {
	recs, err := s.HarvestRecords()
	if err != nil {
		return 0, err
	}
	return summary.Mean(summary.Column(len(recs), func(i int) model.NullFloat { return recs[i].Yield }))
}

// meanPH averages over the raw measurements, not the chartable view, to
// match the dashboard's behavior.
func (s *State) meanPH() (float64, error) {
	recs, err := s.Measurements()
	if err != nil {
		return 0, err
	}
	return summary.Mean(summary.Column(len(recs), func(i int) model.NullFloat { return recs[i].PH }))
}

// currentEC returns either the configured constant or the live mean of the
// EC readings, depending on the alerts configuration.
func (s *State) currentEC() (float64, error) {
	if s.settings.Alerts.ECSource == conf.ECSourceLive {
		recs, err := s.Measurements()
		if err != nil {
			return 0, err
		}
		return summary.Mean(summary.Column(len(recs), func(i int) model.NullFloat { return recs[i].EC }))
	}
	return s.settings.Alerts.ECFixedValue, nil
}

// totalLight combines mean natural daylight with the unit's artificial
// light hours, capped at 24. When the sun dataset is unavailable the
// daylight term falls back to an astronomical estimate for the unit's
// location.
func (s *State) totalLight() (float64, error) {
	natural, err := s.meanDaylight()
	if err != nil {
		return 0, err
	}

	artificial := 0.0
	if s.unit != nil && s.unit.ArtificialLightHours.Valid {
		artificial = s.unit.ArtificialLightHours.Float64
	}
	return health.TotalLight(natural, artificial), nil
}

func (s *State) meanDaylight() (float64, error) {
	days, err := s.SunDays()
	if err == nil && len(days) > 0 {
		values := make([]float64, 0, len(days))
		for i := range days {
			values = append(values, days[i].Hours)
		}
		return summary.Mean(values)
	}

	estimate, calcErr := s.sunCalc.EstimateDaylightHours(time.Now())
	if calcErr != nil {
		if err == nil {
			err = summary.ErrEmptySeries
		}
		return 0, fmt.Errorf("no daylight data: %w", errors.Join(err, calcErr))
	}
	stateLogger.Warn("Sun dataset unavailable, using astronomical daylight estimate",
		"estimate_hours", estimate,
		"error", err,
	)
	return estimate, nil
}

func (s *State) meanLeafSize() (float64, error) {
	recs, err := s.GrowthRecords()
	if err != nil {
		return 0, err
	}
	return summary.Mean(summary.Column(len(recs), func(i int) model.NullFloat { return recs[i].Leaf }))
}

func (s *State) meanBrix() (float64, error) {
	recs, err := s.HarvestRecords()
	if err != nil {
		return 0, err
	}
	return summary.Mean(summary.Column(len(recs), func(i int) model.NullFloat { return recs[i].Brix }))
}
