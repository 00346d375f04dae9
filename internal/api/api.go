// Package api exposes the derived views and health alerts as a JSON HTTP
// surface for the presentation layer. It hands back data structures only;
// rendering and styling are the consumer's concern.
package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/atlasgrow/atlas-go/internal/conf"
	"github.com/atlasgrow/atlas-go/internal/errors"
	"github.com/atlasgrow/atlas-go/internal/logging"
	"github.com/atlasgrow/atlas-go/internal/observability"
	"github.com/atlasgrow/atlas-go/internal/state"
)

// Controller manages the API routes and handlers
type Controller struct {
	Echo     *echo.Echo
	Group    *echo.Group
	State    *state.State
	Settings *conf.Settings
	Metrics  *observability.Metrics

	apiLogger      *slog.Logger
	apiLevelVar    *slog.LevelVar
	apiLoggerClose func() error
}

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// New creates a controller with its routes registered on a fresh echo
// instance.
func New(appState *state.State, settings *conf.Settings, metrics *observability.Metrics) *Controller {
	c := &Controller{
		Echo:        echo.New(),
		State:       appState,
		Settings:    settings,
		Metrics:     metrics,
		apiLevelVar: new(slog.LevelVar),
	}
	c.Echo.HideBanner = true

	var err error
	c.apiLogger, c.apiLoggerClose, err = logging.NewFileLogger("logs/api.log", "api", c.apiLevelVar)
	if err != nil {
		logging.Error("Failed to initialize API file logger", "error", err)
		fbHandler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: c.apiLevelVar})
		c.apiLogger = slog.New(fbHandler).With("service", "api")
	}

	c.Echo.Use(middleware.Recover())
	c.Echo.Use(c.requestLogger())

	c.Group = c.Echo.Group("/api/v1")
	c.initRoutes()
	return c
}

// initRoutes registers all API endpoints
func (c *Controller) initRoutes() {
	c.Group.GET("/healthz", c.GetHealthz)
	c.initDatasetRoutes()
	c.initAnalyticsRoutes()
	c.initAlertRoutes()

	if c.Metrics != nil {
		c.Echo.GET("/metrics", echo.WrapHandler(c.Metrics.Handler()))
	}
}

// requestLogger logs each request with duration at debug level.
func (c *Controller) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			c.apiLogger.Debug("Handled request",
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"status", ctx.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}

// Start begins serving on the configured port. Blocks until shutdown.
func (c *Controller) Start() error {
	addr := fmt.Sprintf(":%s", c.Settings.WebServer.Port)
	c.apiLogger.Info("Starting API server", "addr", addr)
	return c.Echo.Start(addr)
}

// Close releases the controller's resources.
func (c *Controller) Close() error {
	if c.apiLoggerClose != nil {
		return c.apiLoggerClose()
	}
	return nil
}

// HandleError logs err and replies with a structured error response whose
// status code follows the error's category.
func (c *Controller) HandleError(ctx echo.Context, err error, message string) error {
	code := statusCodeForError(err)
	c.apiLogger.Error(message,
		"error", err,
		"path", ctx.Request().URL.Path,
		"status", code,
	)
	return ctx.JSON(code, ErrorResponse{
		Error:   err.Error(),
		Message: message,
		Code:    code,
	})
}

// statusCodeForError maps error categories to HTTP status codes.
func statusCodeForError(err error) int {
	var ee *errors.EnhancedError
	if !errors.As(err, &ee) {
		return http.StatusInternalServerError
	}
	switch ee.Category {
	case errors.CategoryNotFound:
		return http.StatusNotFound
	case errors.CategoryValidation:
		return http.StatusBadRequest
	case errors.CategoryDataUnavailable:
		return http.StatusServiceUnavailable
	case errors.CategoryEmptySeries:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// HealthzResponse reports service liveness and per-dataset load failures.
type HealthzResponse struct {
	Status         string   `json:"status"`
	FailedDatasets []string `json:"failed_datasets,omitempty"`
}

// GetHealthz handles GET /api/v1/healthz
func (c *Controller) GetHealthz(ctx echo.Context) error {
	resp := HealthzResponse{Status: "ok"}
	for dataset := range c.State.DatasetErrors() {
		resp.FailedDatasets = append(resp.FailedDatasets, string(dataset))
	}
	if len(resp.FailedDatasets) > 0 {
		resp.Status = "degraded"
	}
	return ctx.JSON(http.StatusOK, resp)
}
