package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasgrow/atlas-go/internal/conf"
	"github.com/atlasgrow/atlas-go/internal/dataservice"
	"github.com/atlasgrow/atlas-go/internal/state"
)

const testBaseURL = "https://data.example.com/api/"

var testBodies = map[dataservice.Dataset]string{
	dataservice.DatasetUnitParameters: `[
	  {"Unit ID": "ATLAS-01", "Plant Type 1": "Basil", "Plant Count 1": 24,
	   "Artificial Light (Hours)": 6}
	]`,
	dataservice.DatasetSunData: `[
	  {"Date": "2026-03-01", "Hours of Daylight": "10:00:00"},
	  {"Date": "2026-03-02", "Hours of Daylight": "12:00:00"}
	]`,
	dataservice.DatasetMeasurements: `[
	  {"Timestamp": "2026-03-01", "Depth": 10.0, "pH": 6.0, "EC": 1.4, "PPM": 700, "Temperature": 21.5},
	  {"Timestamp": "2026-03-02", "Depth": 10.2, "pH": 6.2, "EC": "", "PPM": 690, "Temperature": 21.0}
	]`,
	dataservice.DatasetPlantGrowth: `[
	  {"Date": "2026-03-01", "Level": "1", "Side": "Left", "Height (Inches)": 4.0, "Width (Inches)": 2.0, "Leaf (Inches)": 2.0},
	  {"Date": "2026-03-02", "Level": "1", "Side": "Left", "Height (Inches)": 4.4, "Width (Inches)": 2.2, "Leaf (Inches)": 2.2}
	]`,
	dataservice.DatasetPlantHarvest: `[
	  {"Date": "2026-03-10", "Level": "1", "Side": "Left", "Yield (Grams)": 55.0, "Roots (Millimeters)": 160.0, "Brix": 8.5, "Brix Line": "A"}
	]`,
}

// newTestController loads a state from mocked datasets and wires a
// controller around it. Datasets listed in failing respond with a 500.
func newTestController(t *testing.T, failing ...dataservice.Dataset) *Controller {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	failed := make(map[dataservice.Dataset]bool, len(failing))
	for _, dataset := range failing {
		failed[dataset] = true
	}
	for dataset, body := range testBodies {
		status, payload := http.StatusOK, body
		if failed[dataset] {
			status, payload = http.StatusInternalServerError, `{"error": "down"}`
		}
		httpmock.RegisterResponder("GET", testBaseURL+string(dataset),
			httpmock.NewStringResponder(status, payload))
	}

	settings := &conf.Settings{}
	settings.Dataservice = conf.DataserviceSettings{
		BaseURL:    testBaseURL,
		Timeout:    5 * time.Second,
		MaxRetries: 1,
		RetryDelay: 0,
	}
	settings.Unit.Latitude = 52.1
	settings.Unit.Longitude = 5.1
	settings.Forecast = conf.ForecastSettings{
		Horizon:        10,
		GrowthRate:     1.02,
		NoiseAmplitude: 0.03,
		Seed:           42,
	}
	settings.Alerts = conf.AlertsSettings{
		ECSource:     conf.ECSourceFixed,
		ECFixedValue: 3.33,
	}
	settings.WebServer.Port = "8080"

	client := dataservice.NewClient(&settings.Dataservice)
	appState := state.Load(context.Background(), client, settings, nil)

	c := New(appState, settings, nil)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// get performs a request against the controller's router and decodes the
// JSON body into out.
func get(t *testing.T, c *Controller, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c.Echo.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestGetHealthz(t *testing.T) {
	c := newTestController(t)

	var resp HealthzResponse
	rec := get(t, c, "/api/v1/healthz", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.FailedDatasets)
}

func TestGetHealthz_Degraded(t *testing.T) {
	c := newTestController(t, dataservice.DatasetSunData)

	var resp HealthzResponse
	rec := get(t, c, "/api/v1/healthz", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, []string{string(dataservice.DatasetSunData)}, resp.FailedDatasets)
}

func TestGetUnitParameters(t *testing.T) {
	c := newTestController(t)

	var resp map[string]any
	rec := get(t, c, "/api/v1/unit", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ATLAS-01", resp["Unit ID"])
}

func TestGetSunDays(t *testing.T) {
	c := newTestController(t)

	var resp []map[string]any
	rec := get(t, c, "/api/v1/sun", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 2)
	assert.InDelta(t, 10.0, resp[0]["hours"], 0.0001)
}

func TestGetSunDays_Unavailable(t *testing.T) {
	c := newTestController(t, dataservice.DatasetSunData)

	var resp ErrorResponse
	rec := get(t, c, "/api/v1/sun", &resp)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	assert.NotEmpty(t, resp.Error)
}

func TestGetMeasurements_Views(t *testing.T) {
	c := newTestController(t)

	var chartable []map[string]any
	rec := get(t, c, "/api/v1/measurements", &chartable)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, chartable, 1)

	var raw []map[string]any
	rec = get(t, c, "/api/v1/measurements?view=raw", &raw)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, raw, 2)
}

func TestGetMeasurements_InvalidView(t *testing.T) {
	c := newTestController(t)

	var resp ErrorResponse
	rec := get(t, c, "/api/v1/measurements?view=wide", &resp)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "wide")
}

func TestGetGrowthRecords(t *testing.T) {
	c := newTestController(t)

	var resp []map[string]any
	rec := get(t, c, "/api/v1/growth", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 2)
	assert.Equal(t, "1", resp[0]["Level"])
	assert.InDelta(t, 4.0, resp[0]["Height (Inches)"], 0.0001)
}

func TestGetHarvestRecords(t *testing.T) {
	c := newTestController(t)

	var resp []map[string]any
	rec := get(t, c, "/api/v1/harvest", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp, 1)
	assert.InDelta(t, 55.0, resp[0]["Yield (Grams)"], 0.0001)
	assert.InDelta(t, 160.0, resp[0]["Roots (Millimeters)"], 0.0001)
	assert.Equal(t, "A", resp[0]["Brix Line"])
}

func TestGetHarvestRecords_Unavailable(t *testing.T) {
	c := newTestController(t, dataservice.DatasetPlantHarvest)

	var resp ErrorResponse
	rec := get(t, c, "/api/v1/harvest", &resp)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestGetGrowthSummary(t *testing.T) {
	c := newTestController(t)

	var resp GrowthSummaryResponse
	rec := get(t, c, "/api/v1/growth/summary", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Series, 2)
	assert.Equal(t, "2026-03-01", resp.Series[0].Date)
	require.NotNil(t, resp.Series[0].Height)
	assert.InDelta(t, 4.0, *resp.Series[0].Height, 0.0001)
	assert.InDelta(t, 4.2, resp.Averages["height"], 0.0001)
}

func TestGetGrowthSummary_UnknownPlant(t *testing.T) {
	c := newTestController(t)

	var resp ErrorResponse
	rec := get(t, c, "/api/v1/growth/summary?plant=9-Middle", &resp)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetGrowthForecast(t *testing.T) {
	c := newTestController(t)

	var resp ForecastResponse
	rec := get(t, c, "/api/v1/growth/forecast", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "height", resp.Metric)
	assert.Equal(t, 10, resp.Horizon)
	require.Len(t, resp.Points, 10)
	assert.Equal(t, "2026-03-03", resp.Points[0].Date)
}

func TestGetGrowthForecast_InvalidMetric(t *testing.T) {
	c := newTestController(t)

	var resp ErrorResponse
	rec := get(t, c, "/api/v1/growth/forecast?metric=girth", &resp)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPlants(t *testing.T) {
	c := newTestController(t)

	var resp PlantsResponse
	rec := get(t, c, "/api/v1/plants", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"1-Left"}, resp.Plants)
}

func TestGetBrixComposition(t *testing.T) {
	c := newTestController(t)

	var resp BrixCompositionResponse
	rec := get(t, c, "/api/v1/harvest/brix-lines", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]int{"A": 1}, resp.Composition)
}

func TestGetAlerts(t *testing.T) {
	c := newTestController(t)

	var resp AlertsResponse
	rec := get(t, c, "/api/v1/alerts", &resp)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Alerts, 6)
	assert.Equal(t, "yield", string(resp.Alerts[0].Metric))
	assert.NotEmpty(t, resp.Alerts[0].Recommendation)
}
