// Package dataservice fetches the tabular telemetry datasets from the
// remote Atlas data service.
package dataservice

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/atlasgrow/atlas-go/internal/conf"
	"github.com/atlasgrow/atlas-go/internal/errors"
	"github.com/atlasgrow/atlas-go/internal/logging"
)

const (
	UserAgent          = "Atlas-Go https://github.com/atlasgrow/atlas-go"
	maxBodyPreviewSize = 200 // Maximum characters to show in error logs
)

// Package-level logger for the data service client
var (
	serviceLogger   *slog.Logger
	serviceLevelVar = new(slog.LevelVar)
)

func init() {
	var err error
	serviceLevelVar.Set(slog.LevelDebug)

	serviceLogger, _, err = logging.NewFileLogger("logs/dataservice.log", "dataservice", serviceLevelVar)
	if err != nil {
		logging.Error("Failed to initialize dataservice file logger", "error", err)
		fbHandler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: serviceLevelVar})
		serviceLogger = slog.New(fbHandler).With("service", "dataservice")
	}
}

// Sentinel errors for data service operations
var (
	ErrDataUnavailable = errors.Newf("dataset unavailable").
		Component("dataservice").
		Category(errors.CategoryDataUnavailable).
		Build()
)

// Client fetches datasets over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a data service client from settings.
func NewClient(settings *conf.DataserviceSettings) *Client {
	baseURL := settings.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: settings.Timeout},
		maxRetries: settings.MaxRetries,
		retryDelay: settings.RetryDelay,
	}
}

// newDatasetError creates a standardized data service error with common fields
func newDatasetError(err error, category errors.ErrorCategory, operation string, dataset Dataset) error {
	return errors.New(err).
		Component("dataservice").
		Category(category).
		Context("operation", operation).
		Context("dataset", string(dataset)).
		Build()
}

// truncateBodyPreview truncates response body for logging
func truncateBodyPreview(body string) string {
	if len(body) > maxBodyPreviewSize {
		return body[:maxBodyPreviewSize] + "... (truncated)"
	}
	return body
}

// readResponseBody reads and optionally decompresses the response body
func readResponseBody(resp *http.Response, logger *slog.Logger, dataset Dataset) ([]byte, error) {
	var reader io.Reader = resp.Body
	var gzReader *gzip.Reader

	if resp.Header.Get("Content-Encoding") == "gzip" {
		logger.Debug("Response is gzip encoded, creating reader")
		var err error
		gzReader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, newDatasetError(err, errors.CategoryNetwork, "create_gzip_reader", dataset)
		}
		reader = gzReader
	}

	body, err := io.ReadAll(reader)
	if gzReader != nil {
		if closeErr := gzReader.Close(); closeErr != nil {
			logger.Debug("Failed to close gzip reader", "error", closeErr)
		}
	}
	if err != nil {
		return nil, newDatasetError(err, errors.CategoryNetwork, "read_response_body", dataset)
	}

	return body, nil
}

// fetchDataset executes the HTTP request for one dataset with retry logic
// and returns the raw response body.
func (c *Client) fetchDataset(ctx context.Context, dataset Dataset) ([]byte, error) {
	apiURL := c.baseURL + string(dataset)

	logger := serviceLogger.With("dataset", string(dataset))
	logger.Info("Fetching dataset", "url", apiURL)

	for i := range c.maxRetries {
		isLastAttempt := i == c.maxRetries-1
		attemptLogger := logger.With("attempt", i+1, "max_attempts", c.maxRetries)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, http.NoBody)
		if err != nil {
			return nil, newDatasetError(err, errors.CategoryNetwork, "create_http_request", dataset)
		}
		req.Header.Set("User-Agent", UserAgent)
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			attemptLogger.Warn("HTTP request failed", "error", err)
			if isLastAttempt {
				return nil, errors.New(fmt.Errorf("%w: %s: %w", ErrDataUnavailable, dataset, err)).
					Component("dataservice").
					Category(errors.CategoryDataUnavailable).
					Context("operation", "dataset_request").
					Context("dataset", string(dataset)).
					Context("max_retries", fmt.Sprintf("%d", c.maxRetries)).
					Build()
			}
			time.Sleep(c.retryDelay)
			continue
		}

		attemptLogger.Debug("Received HTTP response", "status_code", resp.StatusCode)

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			if closeErr := resp.Body.Close(); closeErr != nil {
				attemptLogger.Debug("Failed to close response body", "error", closeErr)
			}
			attemptLogger.Warn("Received non-OK status code",
				"status_code", resp.StatusCode,
				"response_body", truncateBodyPreview(string(bodyBytes)),
			)
			if isLastAttempt {
				return nil, errors.New(fmt.Errorf("%w: %s: non-OK response (%d) after %d attempts", ErrDataUnavailable, dataset, resp.StatusCode, c.maxRetries)).
					Component("dataservice").
					Category(errors.CategoryDataUnavailable).
					Context("operation", "dataset_response").
					Context("dataset", string(dataset)).
					Context("status_code", fmt.Sprintf("%d", resp.StatusCode)).
					Build()
			}
			time.Sleep(c.retryDelay)
			continue
		}

		body, err := readResponseBody(resp, attemptLogger, dataset)
		if closeErr := resp.Body.Close(); closeErr != nil {
			attemptLogger.Debug("Failed to close response body", "error", closeErr)
		}
		if err != nil {
			return nil, err
		}

		logger.Info("Successfully fetched dataset", "bytes", len(body))
		return body, nil
	}

	return nil, errors.New(fmt.Errorf("%w: %s: max retries exceeded", ErrDataUnavailable, dataset)).
		Component("dataservice").
		Category(errors.CategoryDataUnavailable).
		Context("operation", "dataset_request").
		Context("dataset", string(dataset)).
		Build()
}

// decodeRows parses a JSON array of flat records into typed rows.
func decodeRows[T any](body []byte, dataset Dataset) ([]T, error) {
	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, newDatasetError(err, errors.CategoryValidation, "unmarshal_dataset", dataset)
	}
	return rows, nil
}
