package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// initDatasetRoutes registers the raw dataset endpoints
func (c *Controller) initDatasetRoutes() {
	c.Group.GET("/unit", c.GetUnitParameters)
	c.Group.GET("/sun", c.GetSunDays)
	c.Group.GET("/measurements", c.GetMeasurements)
	c.Group.GET("/growth", c.GetGrowthRecords)
	c.Group.GET("/harvest", c.GetHarvestRecords)
}

// GetUnitParameters handles GET /api/v1/unit
// Returns the growing unit's static configuration.
func (c *Controller) GetUnitParameters(ctx echo.Context) error {
	unit, err := c.State.UnitParameters()
	if err != nil {
		return c.HandleError(ctx, err, "Failed to get unit parameters")
	}
	return ctx.JSON(http.StatusOK, unit)
}

// GetSunDays handles GET /api/v1/sun
// Returns the normalized daylight records with durations in decimal hours.
func (c *Controller) GetSunDays(ctx echo.Context) error {
	days, err := c.State.SunDays()
	if err != nil {
		return c.HandleError(ctx, err, "Failed to get sun data")
	}
	return ctx.JSON(http.StatusOK, days)
}

// GetMeasurements handles GET /api/v1/measurements
// The "view" query parameter selects "chartable" (default, complete rows
// only) or "raw" (all rows).
func (c *Controller) GetMeasurements(ctx echo.Context) error {
	view := ctx.QueryParam("view")
	if view == "" {
		view = "chartable"
	}

	switch view {
	case "raw":
		recs, err := c.State.Measurements()
		if err != nil {
			return c.HandleError(ctx, err, "Failed to get measurements")
		}
		return ctx.JSON(http.StatusOK, recs)
	case "chartable":
		recs, err := c.State.ChartableMeasurements()
		if err != nil {
			return c.HandleError(ctx, err, "Failed to get measurements")
		}
		return ctx.JSON(http.StatusOK, recs)
	default:
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid view: " + view,
			Message: "view must be \"chartable\" or \"raw\"",
			Code:    http.StatusBadRequest,
		})
	}
}

// GetGrowthRecords handles GET /api/v1/growth
// Returns the raw per-plant growth observations, the input of the
// presentation layer's growth heatmaps.
func (c *Controller) GetGrowthRecords(ctx echo.Context) error {
	recs, err := c.State.GrowthRecords()
	if err != nil {
		return c.HandleError(ctx, err, "Failed to get growth records")
	}
	return ctx.JSON(http.StatusOK, recs)
}

// GetHarvestRecords handles GET /api/v1/harvest
// Returns the raw harvest outcomes consumed by the yield, root and Brix
// distribution views and the per-plant latest-harvest cards.
func (c *Controller) GetHarvestRecords(ctx echo.Context) error {
	recs, err := c.State.HarvestRecords()
	if err != nil {
		return c.HandleError(ctx, err, "Failed to get harvest records")
	}
	return ctx.JSON(http.StatusOK, recs)
}
