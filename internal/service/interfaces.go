// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/estantelabs/estante/internal/model"
)

// Gateway defines the contract for the remote book service. All methods are
// safe for concurrent use, never mutate shared state, and return either data
// or a typed failure (see the api package). Falling back to bundled data is
// the caller's decision, never the gateway's.
type Gateway interface {
	// FetchBooks retrieves the full catalog.
	FetchBooks(ctx context.Context) ([]model.Book, error)

	// FetchStatistics retrieves the aggregate catalog snapshot.
	FetchStatistics(ctx context.Context) (*model.Statistics, error)

	// FetchRecommendations requests a ranked recommendation list for the
	// given query. There is no fallback on this path: an error means no
	// recommendations.
	FetchRecommendations(ctx context.Context, query model.RecommendationQuery) ([]model.Recommendation, error)

	// RegisterProfile records a submitted profile server-side. Best-effort;
	// callers log failures and move on.
	RegisterProfile(ctx context.Context, profile model.UserProfile) error

	// CheckHealth probes the service root. A nil error means online.
	CheckHealth(ctx context.Context) error
}

// BookSource provides the current book collection to read-only consumers
// such as the filter engine and the export command.
type BookSource interface {
	Books() []model.Book
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
