package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atlasgrow/atlas-go/internal/health"
)

// AlertsResponse carries the evaluated health alerts in display order.
type AlertsResponse struct {
	Alerts []health.Alert `json:"alerts"`
}

// initAlertRoutes registers the health alert endpoints
func (c *Controller) initAlertRoutes() {
	c.Group.GET("/alerts", c.GetAlerts)
}

// GetAlerts handles GET /api/v1/alerts
// Evaluates the six health thresholds over the loaded datasets. Metrics
// whose source dataset failed to load are omitted from the response.
func (c *Controller) GetAlerts(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, AlertsResponse{Alerts: c.State.Alerts()})
}
