package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabTitles = [tabCount]string{
	TabCatalog:         "Catálogo",
	TabStatistics:      "Estatísticas",
	TabRecommendations: "Recomendações",
	TabProfile:         "Perfil",
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return m.renderLoading()
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sections := []string{
		m.renderHero(),
		m.renderTabBar(),
		"",
		m.renderContent(),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	gap := m.height - lipgloss.Height(body) - 1
	if gap > 0 {
		body += strings.Repeat("\n", gap)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

// renderLoading renders the startup screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("📚 Estante"),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Carregando catálogo..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderHero renders the banner with the headline figures. The figures
// come from the same summary the stats panel renders, so the two regions
// always agree.
func (m Model) renderHero() string {
	title := m.theme.Title.Render("📚 Estante — Catálogo e Recomendações de Livros")

	summary := m.statsPanel.Summary()
	if summary.TotalBooks == "" {
		return title
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		lipgloss.NewStyle().Foreground(m.theme.Secondary).Render(summary.HeroLine()),
	)
}

// renderTabBar renders the tab strip.
func (m Model) renderTabBar() string {
	tabs := make([]string, 0, tabCount)
	for tab := TabCatalog; tab < tabCount; tab++ {
		label := fmt.Sprintf(" %d %s ", int(tab)+1, tabTitles[tab])
		if tab == m.tab {
			tabs = append(tabs, m.theme.Selected.Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderContent renders the active tab.
func (m Model) renderContent() string {
	switch m.tab {
	case TabCatalog:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderFilterLine(),
			"",
			m.carousel.View(),
		)
	case TabStatistics:
		return m.statsPanel.View()
	case TabRecommendations:
		return m.recommendations.View()
	case TabProfile:
		return m.profileForm.View()
	}
	return ""
}

// renderFilterLine shows the active criteria above the carousel.
func (m Model) renderFilterLine() string {
	criteria := m.store.Criteria()

	segment := func(label, value string) string {
		if value == "" {
			return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label + ": todos")
		}
		return m.theme.StatusInfo.Render(label + ": " + value)
	}

	line := strings.Join([]string{
		segment("gênero [g]", criteria.Genre),
		segment("tipo [t]", criteria.Type),
		segment("nível [n]", criteria.Level),
	}, "  ")

	if !criteria.IsZero() {
		line += lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  [x] limpar")
	}

	return line
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	var status string
	if m.online {
		status = m.theme.StatusSuccess.Render("● online")
	} else {
		status = m.theme.StatusError.Render("● offline")
	}

	right := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("? ajuda · q sair")

	center := ""
	if m.notice != "" {
		center = m.theme.StatusWarning.Render(m.notice)
	}

	gap := m.width - lipgloss.Width(status) - lipgloss.Width(center) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	leftPad := gap / 2
	rightPad := gap - leftPad

	return status +
		strings.Repeat(" ", leftPad) +
		center +
		strings.Repeat(" ", rightPad) +
		right
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Estante — Ajuda")

	sections := []struct {
		title string
		items [][2]string
	}{
		{"Abas", [][2]string{
			{"1-4", "catálogo, estatísticas, recomendações, perfil"},
			{"Tab", "próxima aba"},
			{"Shift+Tab", "aba anterior"},
		}},
		{"Catálogo", [][2]string{
			{"←/→", "paginar livros"},
			{"g / t / n", "alternar filtro de gênero, tipo e nível"},
			{"x", "limpar filtros"},
		}},
		{"Estatísticas", [][2]string{
			{"Enter", "destacar próxima fatia do gráfico"},
			{"e", "exportar gráficos"},
		}},
		{"Geral", [][2]string{
			{"r", "recarregar dados"},
			{"q/Esc", "sair"},
			{"Ctrl+C", "sair imediatamente"},
		}},
	}

	var lines []string
	for _, section := range sections {
		lines = append(lines, m.theme.Subtitle.Render(section.title))
		for _, item := range section.items {
			lines = append(lines, fmt.Sprintf("  %s %s",
				lipgloss.NewStyle().Foreground(m.theme.Primary).Width(12).Render(item[0]),
				m.theme.Normal.Render(item[1]),
			))
		}
		lines = append(lines, "")
	}

	lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Pressione qualquer tecla para fechar"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.Width(56).Render(
			lipgloss.JoinVertical(lipgloss.Left, append([]string{title, ""}, lines...)...),
		),
	)
}
