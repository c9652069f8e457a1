package backendclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"portal/internal/pkg/config"
	"portal/pkg/logger"
	retrierconfig "portal/pkg/retrier"
	"portal/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// New builds the HTTP client used for all order backend calls and verifies
// the backend is reachable before returning. Startup fails fast when the
// backend never answers within the retry window.
func New(ctx context.Context, log logger.Logger, cfg *config.Backend) (*http.Client, error) {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
	}

	backendLog := log.With(
		logger.NewField("component", "backend-client"),
		logger.NewField("base_url", cfg.BaseURL),
	)

	if err := pingBackend(ctx, backendLog, client, cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("backend connection: %w", err)
	}

	return client, nil
}

func pingBackend(ctx context.Context, log logger.Logger, client *http.Client, baseURL string) error {
	healthURL := strings.TrimRight(baseURL, "/") + "/health"

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // retry every error
	}

	retrier := backoff_adapter.New(retryConfig)

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting backend connection")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
		if err != nil {
			return err
		}

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("backend health returned %s", resp.Status)
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("backend connection failed after retries")
		return fmt.Errorf("failed to reach order backend: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("backend connection established")
	return nil
}
