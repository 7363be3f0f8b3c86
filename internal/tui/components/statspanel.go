package components

import (
	"github.com/estantelabs/estante/internal/charts"
	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/tui/themes"
	"github.com/estantelabs/estante/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatsPanelModel displays the catalog statistics: a row of stat cards and
// the genre and level distribution charts.
type StatsPanelModel struct {
	theme   themes.Theme
	charts  *charts.Manager
	summary viewmodel.StatsSummary
	hasData bool
	compact bool
	width   int
	height  int
}

// NewStatsPanelModel creates an empty stats panel.
func NewStatsPanelModel(theme themes.Theme, notify charts.NotifyFunc) StatsPanelModel {
	return StatsPanelModel{
		theme:  theme,
		charts: charts.NewManager(charts.WithNotify(notify), charts.WithWidth(60)),
		width:  80,
	}
}

// SetStatistics replaces the displayed snapshot. Local marks snapshots
// derived client-side after a failed fetch.
func (m *StatsPanelModel) SetStatistics(stats model.Statistics, local bool) {
	m.summary = viewmodel.NewStatsSummary(stats, local)
	m.charts.Update(stats)
	m.hasData = true
}

// Summary exposes the current formatted snapshot for the hero banner, so
// both regions render from the same figures.
func (m StatsPanelModel) Summary() viewmodel.StatsSummary {
	return m.summary
}

// Charts exposes the chart manager for selection and export.
func (m StatsPanelModel) Charts() *charts.Manager {
	return m.charts
}

// SetCompact collapses the panel to the stat cards only.
func (m *StatsPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Update handles messages.
func (m StatsPanelModel) Update(msg tea.Msg) (StatsPanelModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// Resize updates the component size.
func (m *StatsPanelModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.charts.Resize(min(width-4, 70))
}

// View renders the stats panel.
func (m StatsPanelModel) View() string {
	if !m.hasData {
		return lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Render("Carregando estatísticas...")
	}

	sections := []string{m.renderCards()}

	if m.summary.Local {
		sections = append(sections, m.theme.StatusWarning.Render(
			"Estatísticas calculadas localmente; totais de usuários e avaliações indisponíveis."))
	}

	if !m.compact {
		sections = append(sections, "", m.charts.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCards renders the headline figures.
func (m StatsPanelModel) renderCards() string {
	cards := []struct {
		label string
		value string
	}{
		{"📚 Livros", m.summary.TotalBooks},
		{"🎭 Gêneros", m.summary.TotalGenres},
		{"👥 Usuários", m.summary.TotalUsers},
		{"⭐ Avaliações", m.summary.TotalRatings},
	}

	row := make([]string, 0, len(cards))
	for _, card := range cards {
		content := lipgloss.JoinVertical(
			lipgloss.Center,
			m.theme.Title.Render(card.value),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render(card.label),
		)
		row = append(row, m.theme.RoundedBox.MarginRight(1).Render(content))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}
