package api

import (
	"context"

	"github.com/estantelabs/estante/internal/model"
)

// MockGateway is a mock implementation of service.Gateway for testing.
type MockGateway struct {
	// Functions that can be set by tests to control behavior
	FetchBooksFn           func(ctx context.Context) ([]model.Book, error)
	FetchStatisticsFn      func(ctx context.Context) (*model.Statistics, error)
	FetchRecommendationsFn func(ctx context.Context, query model.RecommendationQuery) ([]model.Recommendation, error)
	RegisterProfileFn      func(ctx context.Context, profile model.UserProfile) error
	CheckHealthFn          func(ctx context.Context) error

	// Call tracking
	FetchBooksCalls           int
	FetchStatisticsCalls      int
	FetchRecommendationsCalls []model.RecommendationQuery
	RegisterProfileCalls      []model.UserProfile
	CheckHealthCalls          int
}

// NewMockGateway creates a new mock gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// FetchBooks implements service.Gateway.
func (m *MockGateway) FetchBooks(ctx context.Context) ([]model.Book, error) {
	m.FetchBooksCalls++
	if m.FetchBooksFn != nil {
		return m.FetchBooksFn(ctx)
	}
	return []model.Book{}, nil
}

// FetchStatistics implements service.Gateway.
func (m *MockGateway) FetchStatistics(ctx context.Context) (*model.Statistics, error) {
	m.FetchStatisticsCalls++
	if m.FetchStatisticsFn != nil {
		return m.FetchStatisticsFn(ctx)
	}
	return &model.Statistics{}, nil
}

// FetchRecommendations implements service.Gateway.
func (m *MockGateway) FetchRecommendations(ctx context.Context, query model.RecommendationQuery) ([]model.Recommendation, error) {
	m.FetchRecommendationsCalls = append(m.FetchRecommendationsCalls, query)
	if m.FetchRecommendationsFn != nil {
		return m.FetchRecommendationsFn(ctx, query)
	}
	return []model.Recommendation{}, nil
}

// RegisterProfile implements service.Gateway.
func (m *MockGateway) RegisterProfile(ctx context.Context, profile model.UserProfile) error {
	m.RegisterProfileCalls = append(m.RegisterProfileCalls, profile)
	if m.RegisterProfileFn != nil {
		return m.RegisterProfileFn(ctx, profile)
	}
	return nil
}

// CheckHealth implements service.Gateway.
func (m *MockGateway) CheckHealth(ctx context.Context) error {
	m.CheckHealthCalls++
	if m.CheckHealthFn != nil {
		return m.CheckHealthFn(ctx)
	}
	return nil
}
