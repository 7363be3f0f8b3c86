package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/estantelabs/estante/internal/api"
	"github.com/estantelabs/estante/internal/cli"
	"github.com/estantelabs/estante/internal/common"
	"github.com/estantelabs/estante/internal/config"
	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/service"
)

// loadConfig resolves the application settings from Viper.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newGateway builds the API client from the resolved configuration.
func newGateway(cfg config.Config) service.Gateway {
	return api.NewClient(cfg.APIURL, api.WithTimeout(cfg.APITimeout))
}

func defaultRetryOptions() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     5 * time.Second,
	}
}

// fetchBooks loads the catalog with retries on recoverable failures. With
// fallback enabled, exhausted retries yield the bundled collection and a
// warning instead of an error.
func fetchBooks(ctx context.Context, gateway service.Gateway, fallback bool) ([]model.Book, error) {
	var books []model.Book

	err := common.WithRetry(ctx, func() error {
		var fetchErr error
		books, fetchErr = gateway.FetchBooks(ctx)
		return retryable(fetchErr)
	}, defaultRetryOptions())

	if err != nil {
		if !fallback {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		slog.Warn("catalog load failed, using bundled collection", "error", err)
		fmt.Println(cli.FormatWarning("Serviço indisponível; exibindo a coleção local."))
		return api.FallbackBooks(), nil
	}

	return books, nil
}

// retryable classifies a gateway error for the retry loop: protocol and
// network failures are worth retrying, API rejections are not.
func retryable(err error) error {
	if err == nil {
		return nil
	}
	return &common.RetryableError{Err: err, Retryable: api.Recoverable(err)}
}
