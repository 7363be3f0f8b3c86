package tui

import (
	"context"
	"time"

	"github.com/estantelabs/estante/internal/charts"
	"github.com/estantelabs/estante/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fetchTimeout  = 15 * time.Second
	probeTimeout  = 5 * time.Second
	noticeTimeout = 6 * time.Second
)

// fetchBooks loads the catalog from the gateway. The generation is issued
// before the fetch starts so the store can discard stale responses.
func (m Model) fetchBooks() tea.Cmd {
	gen := m.store.BeginBooksLoad()
	gateway := m.gateway

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		books, err := gateway.FetchBooks(ctx)
		return booksLoadedMsg{gen: gen, books: books, err: err}
	}
}

// fetchStatistics loads the aggregate snapshot from the gateway.
func (m Model) fetchStatistics() tea.Cmd {
	gen := m.store.BeginStatsLoad()
	gateway := m.gateway

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		stats, err := gateway.FetchStatistics(ctx)
		return statisticsLoadedMsg{gen: gen, stats: stats, err: err}
	}
}

// fetchRecommendations requests a ranked list for the submitted profile.
func (m Model) fetchRecommendations(profile model.UserProfile) tea.Cmd {
	gateway := m.gateway
	query := profile.Query(m.config.TopN)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		recs, err := gateway.FetchRecommendations(ctx, query)
		return recommendationsMsg{profile: profile, recs: recs, err: err}
	}
}

// registerProfile records the profile server-side. Best-effort: failures
// are logged and never block the recommendation flow.
func (m Model) registerProfile(profile model.UserProfile) tea.Cmd {
	gateway := m.gateway

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		return profileRegisteredMsg{err: gateway.RegisterProfile(ctx, profile)}
	}
}

// checkHealth probes the service root.
func (m Model) checkHealth() tea.Cmd {
	gateway := m.gateway

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()

		return healthMsg{err: gateway.CheckHealth(ctx)}
	}
}

// exportCharts writes both distribution charts to the export directory.
func (m Model) exportCharts() tea.Cmd {
	manager := m.statsPanel.Charts()
	dir := m.config.ExportDir

	return func() tea.Msg {
		var paths []string
		for _, id := range []string{charts.ChartGenres, charts.ChartLevels} {
			path, err := manager.Export(dir, id, "txt")
			if err != nil {
				return exportDoneMsg{err: err}
			}
			paths = append(paths, path)
		}
		return exportDoneMsg{paths: paths}
	}
}

// clearNoticeAfter expires the status notice once it has been visible
// long enough to read.
func clearNoticeAfter() tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
