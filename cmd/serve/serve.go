// Package serve implements the serve command: load the datasets once and
// serve the derived views over HTTP.
package serve

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/atlasgrow/atlas-go/internal/api"
	"github.com/atlasgrow/atlas-go/internal/conf"
	"github.com/atlasgrow/atlas-go/internal/dataservice"
	"github.com/atlasgrow/atlas-go/internal/errors"
	"github.com/atlasgrow/atlas-go/internal/logging"
	"github.com/atlasgrow/atlas-go/internal/observability"
	"github.com/atlasgrow/atlas-go/internal/state"
)

const shutdownTimeout = 10 * time.Second

// Command creates the serve command
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load datasets and serve the monitoring API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), settings)
		},
	}
}

func runServe(ctx context.Context, settings *conf.Settings) error {
	metrics, err := observability.NewMetrics()
	if err != nil {
		return errors.New(err).
			Component("serve").
			Category(errors.CategoryConfiguration).
			Context("operation", "init_metrics").
			Build()
	}

	client := dataservice.NewClient(&settings.Dataservice)
	appState := state.Load(ctx, client, settings, metrics)

	for dataset, loadErr := range appState.DatasetErrors() {
		logging.Warn("Dataset failed to load, dependent views will be unavailable",
			"dataset", string(dataset),
			"error", loadErr,
		)
	}

	controller := api.New(appState, settings, metrics)
	defer func() {
		if closeErr := controller.Close(); closeErr != nil {
			logging.Warn("Failed to close API controller", "error", closeErr)
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		if serveErr := controller.Start(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return errors.New(err).
			Component("serve").
			Category(errors.CategoryNetwork).
			Context("operation", "serve_http").
			Build()
	case sig := <-quit:
		logging.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return controller.Echo.Shutdown(shutdownCtx)
}
