package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/estantelabs/estante/internal/api"
	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/store"
	"github.com/estantelabs/estante/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []model.Book {
	return []model.Book{
		{ID: 1, Title: "Duna", Author: "Frank Herbert", Genre: "fantasia", Type: model.TypeFiction, Level: model.LevelBeginner, Year: 1965},
		{ID: 2, Title: "O Hobbit", Author: "J.R.R. Tolkien", Genre: "fantasia", Type: model.TypeFiction, Level: model.LevelBeginner, Year: 1937},
		{ID: 3, Title: "Sapiens", Author: "Yuval Noah Harari", Genre: "história", Type: model.TypeNonFiction, Level: model.LevelAdvanced, Year: 2011},
	}
}

func newTestModel(t *testing.T, gateway *api.MockGateway) Model {
	t.Helper()

	cfg := defaultConfig()
	cfg.Gateway = gateway
	cfg.Store = store.New()

	m := newModel(cfg)
	m.width = 120
	m.height = 40
	return m
}

// loadBooks runs a complete fetch cycle against the mock gateway.
func loadBooks(t *testing.T, m Model) Model {
	t.Helper()

	cmd := m.fetchBooks()
	next, _ := m.Update(cmd())

	loaded, ok := next.(Model)
	require.True(t, ok)
	return loaded
}

func TestCatalogLoadRendersBooks(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchBooksFn = func(context.Context) ([]model.Book, error) {
		return testCatalog(), nil
	}

	m := newTestModel(t, gateway)
	m = loadBooks(t, m)

	require.True(t, m.ready)
	assert.Equal(t, 3, m.carousel.Count())

	view := m.View()
	assert.Contains(t, view, "Duna")
	assert.Contains(t, view, "3 livros encontrados")
}

func TestFilterCyclingNeverRefetches(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchBooksFn = func(context.Context) ([]model.Book, error) {
		return testCatalog(), nil
	}

	m := newTestModel(t, gateway)
	m = loadBooks(t, m)
	require.Equal(t, 1, gateway.FetchBooksCalls)

	// First genre option is "fantasia" (sorted): two books match.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(Model)
	assert.Equal(t, "fantasia", m.store.Criteria().Genre)
	assert.Equal(t, 2, m.carousel.Count())

	// Second option narrows further.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(Model)
	assert.Equal(t, "história", m.store.Criteria().Genre)
	assert.Equal(t, 1, m.carousel.Count())

	// A third press wraps back to unset.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(Model)
	assert.True(t, m.store.Criteria().IsZero())
	assert.Equal(t, 3, m.carousel.Count())

	assert.Equal(t, 1, gateway.FetchBooksCalls)
}

func TestClearFiltersRestoresFullCollection(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchBooksFn = func(context.Context) ([]model.Book, error) {
		return testCatalog(), nil
	}

	m := newTestModel(t, gateway)
	m = loadBooks(t, m)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = next.(Model)
	require.False(t, m.store.Criteria().IsZero())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(Model)
	assert.True(t, m.store.Criteria().IsZero())
	assert.Equal(t, 3, m.carousel.Count())
}

func TestFailedLoadFallsBackWithNotice(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchBooksFn = func(context.Context) ([]model.Book, error) {
		return nil, &api.NetworkError{Op: "fetch books", Err: errors.New("connection refused")}
	}

	m := newTestModel(t, gateway)
	m = loadBooks(t, m)

	require.True(t, m.ready)
	assert.Equal(t, len(api.FallbackBooks()), m.carousel.Count())
	assert.Contains(t, m.notice, "coleção local")

	// The interface keeps working on the bundled collection.
	view := m.View()
	assert.Contains(t, view, "coleção local")
	assert.NotContains(t, view, "panic")
}

func TestFailedLoadWithoutFallback(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchBooksFn = func(context.Context) ([]model.Book, error) {
		return nil, &api.NetworkError{Op: "fetch books", Err: errors.New("connection refused")}
	}

	cfg := defaultConfig()
	cfg.Gateway = gateway
	cfg.Store = store.New()
	cfg.FallbackEnabled = false

	m := newModel(cfg)
	m.width = 120
	m.height = 40
	m = loadBooks(t, m)

	assert.Equal(t, 0, m.carousel.Count())
	assert.Contains(t, m.notice, "Não foi possível carregar o catálogo")
}

func TestStatisticsFailureDerivesLocal(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchBooksFn = func(context.Context) ([]model.Book, error) {
		return testCatalog(), nil
	}
	gateway.FetchStatisticsFn = func(context.Context) (*model.Statistics, error) {
		return nil, &api.NetworkError{Op: "fetch statistics", Err: errors.New("boom")}
	}

	m := newTestModel(t, gateway)
	m = loadBooks(t, m)

	cmd := m.fetchStatistics()
	next, _ := m.Update(cmd())
	m = next.(Model)

	summary := m.statsPanel.Summary()
	assert.True(t, summary.Local)
	assert.Equal(t, "3", summary.TotalBooks)
	assert.Equal(t, "0", summary.TotalUsers)
}

func TestStatisticsLoadUpdatesHeroAndPanel(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchBooksFn = func(context.Context) ([]model.Book, error) {
		return testCatalog(), nil
	}
	gateway.FetchStatisticsFn = func(context.Context) (*model.Statistics, error) {
		return &model.Statistics{
			TotalBooks:   1250,
			TotalGenres:  8,
			TotalUsers:   40,
			TotalRatings: 320,
			Genres:       map[string]int{"fantasia": 2, "história": 1},
			Levels:       map[string]int{model.LevelBeginner: 2},
		}, nil
	}

	m := newTestModel(t, gateway)
	m = loadBooks(t, m)

	cmd := m.fetchStatistics()
	next, _ := m.Update(cmd())
	m = next.(Model)

	assert.Contains(t, m.View(), "1.250 livros • 40 usuários • 320 avaliações")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)
	assert.Contains(t, m.View(), "Distribuição por Gênero")
}

func TestProfileSubmitFlowsToRecommendations(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchBooksFn = func(context.Context) ([]model.Book, error) {
		return testCatalog(), nil
	}
	gateway.FetchRecommendationsFn = func(_ context.Context, query model.RecommendationQuery) ([]model.Recommendation, error) {
		return []model.Recommendation{
			{Book: model.Book{ID: 1, Title: "Duna", Genre: query.Genre}, Score: 0.91},
			{Book: model.Book{ID: 2, Title: "O Hobbit", Genre: query.Genre}, Score: 0.78},
		}, nil
	}

	m := newTestModel(t, gateway)
	m = loadBooks(t, m)

	profile := model.UserProfile{
		Name:  "Ana",
		Genre: "fantasia",
		Type:  model.TypeFiction,
		Level: model.LevelBeginner,
	}

	next, cmd := m.Update(components.ProfileSubmitMsg{Profile: profile})
	m = next.(Model)
	require.Equal(t, TabRecommendations, m.tab)
	require.NotNil(t, cmd)

	// Resolve the batched commands as the program would.
	for _, msg := range drain(cmd) {
		next, _ = m.Update(msg)
		m = next.(Model)
	}

	require.Len(t, gateway.FetchRecommendationsCalls, 1)
	assert.Equal(t, model.DefaultTopN, gateway.FetchRecommendationsCalls[0].TopN)
	require.Len(t, gateway.RegisterProfileCalls, 1)

	require.NotNil(t, m.store.Profile())
	assert.Len(t, m.store.Recommendations(), 2)

	view := m.View()
	assert.Contains(t, view, "Recomendações para Ana")
	assert.Contains(t, view, "Duna")
	assert.Contains(t, view, "91%")
}

func TestRecommendationFailureClearsWaitingState(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchRecommendationsFn = func(context.Context, model.RecommendationQuery) ([]model.Recommendation, error) {
		return nil, &api.APIError{Op: "fetch recommendations", Status: 400, Message: "genero, tipo e nivel são obrigatórios"}
	}

	m := newTestModel(t, gateway)

	profile := model.UserProfile{Name: "Ana", Genre: "x", Type: model.TypeFiction, Level: model.LevelBeginner}
	next, cmd := m.Update(components.ProfileSubmitMsg{Profile: profile})
	m = next.(Model)

	for _, msg := range drain(cmd) {
		next, _ = m.Update(msg)
		m = next.(Model)
	}

	assert.Nil(t, m.store.Profile())
	assert.Contains(t, m.View(), "Não foi possível gerar recomendações")
}

func TestChartSelectionWrapsPastLastSlice(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchStatisticsFn = func(context.Context) (*model.Statistics, error) {
		return &model.Statistics{
			TotalBooks: 3,
			Genres:     map[string]int{"fantasia": 2, "história": 1},
			Levels:     map[string]int{model.LevelBeginner: 3},
		}, nil
	}

	m := newTestModel(t, gateway)
	cmd := m.fetchStatistics()
	next, _ := m.Update(cmd())
	m = next.(Model)
	m.ready = true
	m.tab = TabStatistics

	var notices []string
	for i := 0; i < 5; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = next.(Model)
		notices = append(notices, m.notice)
	}

	assert.Equal(t, []string{
		"fantasia: 2 livros",
		"história: 1 livros",
		"fantasia: 2 livros",
		"história: 1 livros",
		"fantasia: 2 livros",
	}, notices)
	assert.Equal(t, 1, m.chartSel)
}

func TestStatisticsTabReloadsOnEveryVisit(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchStatisticsFn = func(context.Context) (*model.Statistics, error) {
		return &model.Statistics{
			TotalBooks: 10,
			Genres:     map[string]int{"fantasia": 2},
		}, nil
	}

	m := newTestModel(t, gateway)
	m.ready = true

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)
	require.NotNil(t, cmd)
	for _, msg := range drain(cmd) {
		next, _ = m.Update(msg)
		m = next.(Model)
	}
	require.Equal(t, 1, gateway.FetchStatisticsCalls)

	// Leaving and returning refreshes the charts.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	m = next.(Model)

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(Model)
	require.NotNil(t, cmd)
	for _, msg := range drain(cmd) {
		next, _ = m.Update(msg)
		m = next.(Model)
	}
	assert.Equal(t, 2, gateway.FetchStatisticsCalls)
}

func TestTabNavigation(t *testing.T) {
	m := newTestModel(t, api.NewMockGateway())
	m.ready = true

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, TabStatistics, m.tab)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, TabCatalog, m.tab)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	m = next.(Model)
	assert.Equal(t, TabProfile, m.tab)

	// Esc leaves the profile form instead of quitting.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Equal(t, TabCatalog, m.tab)
	assert.False(t, m.quitting)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, api.NewMockGateway())
	m.ready = true

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewIsIdempotent(t *testing.T) {
	gateway := api.NewMockGateway()
	gateway.FetchBooksFn = func(context.Context) ([]model.Book, error) {
		return testCatalog(), nil
	}

	m := newTestModel(t, gateway)
	m = loadBooks(t, m)

	assert.Equal(t, m.View(), m.View())
}

func TestHealthMessageTogglesStatus(t *testing.T) {
	m := newTestModel(t, api.NewMockGateway())
	m.ready = true

	next, _ := m.Update(healthMsg{err: nil})
	m = next.(Model)
	assert.Contains(t, m.View(), "online")

	next, _ = m.Update(healthMsg{err: errors.New("down")})
	m = next.(Model)
	assert.Contains(t, m.View(), "offline")
}

// drain resolves a command tree into its produced messages, following
// batches one level deep the way the runtime would.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}
