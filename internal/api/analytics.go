package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlasgrow/atlas-go/internal/model"
	"github.com/atlasgrow/atlas-go/internal/summary"
)

// GrowthSummaryPoint is one aggregated row in the growth summary response.
// Metrics absent from a date group are omitted.
type GrowthSummaryPoint struct {
	Date   string   `json:"date"`
	Height *float64 `json:"height,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Leaf   *float64 `json:"leaf,omitempty"`
}

// GrowthSummaryResponse carries the aggregated series plus the per-metric
// overall means the presentation layer draws as its average reference line.
type GrowthSummaryResponse struct {
	Plant    string               `json:"plant,omitempty"`
	Series   []GrowthSummaryPoint `json:"series"`
	Averages map[string]float64   `json:"averages"`
}

// ForecastPoint is one projected value in the forecast response.
type ForecastPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ForecastResponse carries a synthetic growth projection. Illustrative
// display data only, not a statistical forecast.
type ForecastResponse struct {
	Metric  string          `json:"metric"`
	Plant   string          `json:"plant,omitempty"`
	Horizon int             `json:"horizon"`
	Points  []ForecastPoint `json:"points"`
}

// PlantsResponse lists the distinct plant identifiers.
type PlantsResponse struct {
	Plants []string `json:"plants"`
}

// BrixCompositionResponse carries the Brix Line distribution for the
// composition chart.
type BrixCompositionResponse struct {
	Composition map[string]int `json:"composition"`
}

// initAnalyticsRoutes registers all analytics-related API endpoints
func (c *Controller) initAnalyticsRoutes() {
	growthGroup := c.Group.Group("/growth")
	growthGroup.GET("/summary", c.GetGrowthSummary)
	growthGroup.GET("/forecast", c.GetGrowthForecast)

	c.Group.GET("/plants", c.GetPlants)
	c.Group.GET("/harvest/brix-lines", c.GetBrixComposition)
}

// GetGrowthSummary handles GET /api/v1/growth/summary
// Aggregates growth observations by date across all plants, or for the
// plant named by the "plant" query parameter.
func (c *Controller) GetGrowthSummary(ctx echo.Context) error {
	plantID := ctx.QueryParam("plant")

	rows, err := c.State.GrowthSummary(plantID)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to get growth summary")
	}

	resp := GrowthSummaryResponse{
		Plant:    plantID,
		Series:   make([]GrowthSummaryPoint, 0, len(rows)),
		Averages: summary.Averages(rows),
	}
	for i := range rows {
		resp.Series = append(resp.Series, summaryPoint(&rows[i]))
	}
	return ctx.JSON(http.StatusOK, resp)
}

// summaryPoint maps an aggregated row to its response shape.
func summaryPoint(row *summary.Row) GrowthSummaryPoint {
	point := GrowthSummaryPoint{Date: row.Date.Format(model.DateLayout)}
	if v, ok := row.Metrics[summary.MetricHeight]; ok {
		point.Height = &v
	}
	if v, ok := row.Metrics[summary.MetricWidth]; ok {
		point.Width = &v
	}
	if v, ok := row.Metrics[summary.MetricLeaf]; ok {
		point.Leaf = &v
	}
	return point
}

// GetGrowthForecast handles GET /api/v1/growth/forecast
// Projects the metric named by the "metric" query parameter, optionally
// scoped to one plant.
func (c *Controller) GetGrowthForecast(ctx echo.Context) error {
	metric := ctx.QueryParam("metric")
	if metric == "" {
		metric = summary.MetricHeight
	}
	plantID := ctx.QueryParam("plant")

	points, err := c.State.Forecast(metric, plantID)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to generate forecast")
	}

	resp := ForecastResponse{
		Metric:  metric,
		Plant:   plantID,
		Horizon: len(points),
		Points:  make([]ForecastPoint, 0, len(points)),
	}
	for i := range points {
		resp.Points = append(resp.Points, ForecastPoint{
			Date:  points[i].Date.Format(model.DateLayout),
			Value: points[i].Value,
		})
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetPlants handles GET /api/v1/plants
// Enumerates the distinct plant identifiers for the drill-down selector.
func (c *Controller) GetPlants(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, PlantsResponse{Plants: c.State.Plants()})
}

// GetBrixComposition handles GET /api/v1/harvest/brix-lines
func (c *Controller) GetBrixComposition(ctx echo.Context) error {
	composition, err := c.State.BrixLineComposition()
	if err != nil {
		return c.HandleError(ctx, err, "Failed to get Brix line composition")
	}
	return ctx.JSON(http.StatusOK, BrixCompositionResponse{Composition: composition})
}
