package components

import (
	"fmt"

	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/tui/themes"
	"github.com/estantelabs/estante/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const scoreBarWidth = 20

// RecommendationsModel displays the ranked recommendation list alongside a
// summary of the submitted profile.
type RecommendationsModel struct {
	theme    themes.Theme
	cards    []viewmodel.RecommendationCard
	profile  *viewmodel.ProfileSummary
	scoreBar progress.Model
	spinner  spinner.Model
	errText  string
	loading  bool
	width    int
	height   int
}

// NewRecommendationsModel creates an empty recommendations view.
func NewRecommendationsModel(theme themes.Theme) RecommendationsModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	bar.Width = scoreBarWidth

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return RecommendationsModel{
		theme:    theme,
		scoreBar: bar,
		spinner:  s,
		width:    80,
	}
}

// SetLoading switches the view into the waiting state.
func (m *RecommendationsModel) SetLoading(loading bool) {
	m.loading = loading
	if loading {
		m.errText = ""
	}
}

// SetResults replaces the displayed recommendations.
func (m *RecommendationsModel) SetResults(profile model.UserProfile, recs []model.Recommendation) {
	summary := viewmodel.NewProfileSummary(profile)
	m.profile = &summary
	m.cards = viewmodel.NewRecommendationCards(recs)
	m.loading = false
	m.errText = ""
}

// ShowError surfaces a failed recommendation request.
func (m *RecommendationsModel) ShowError(message string) {
	m.errText = message
	m.loading = false
}

// HasResults reports whether a recommendation set is on display.
func (m RecommendationsModel) HasResults() bool {
	return m.profile != nil
}

// Init returns the spinner tick.
func (m RecommendationsModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m RecommendationsModel) Update(msg tea.Msg) (RecommendationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// Resize updates the component size.
func (m *RecommendationsModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the recommendations view.
func (m RecommendationsModel) View() string {
	if m.loading {
		return fmt.Sprintf("%s Buscando recomendações...", m.spinner.View())
	}

	if m.errText != "" {
		return m.theme.StatusError.Render(m.errText)
	}

	if m.profile == nil {
		return lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Render("Preencha seu perfil para receber recomendações personalizadas.")
	}

	sections := []string{
		m.renderProfile(),
		"",
	}

	if len(m.cards) == 0 {
		sections = append(sections, m.theme.Subtitle.Render("Nenhuma recomendação encontrada para este perfil."))
	} else {
		sections = append(sections, m.renderCards())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderProfile renders the submitted profile summary panel.
func (m RecommendationsModel) renderProfile() string {
	p := m.profile

	lines := []string{
		m.theme.Subtitle.Render("Recomendações para " + p.Name),
		fmt.Sprintf("Gênero: %s · Tipo: %s · Nível: %s",
			m.theme.Normal.Render(p.Genre),
			m.theme.Normal.Render(p.Type),
			m.theme.Normal.Render(p.Level),
		),
	}

	return m.theme.EmphasisBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderCards renders the ranked cards, two per row on wide terminals.
func (m RecommendationsModel) renderCards() string {
	perRow := 1
	if m.width >= 2*(cardWidth+cardGap) {
		perRow = 2
	}

	var rows []string
	for start := 0; start < len(m.cards); start += perRow {
		end := min(start+perRow, len(m.cards))
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, m.renderCard(i, m.cards[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one ranked recommendation.
func (m RecommendationsModel) renderCard(rank int, card viewmodel.RecommendationCard) string {
	inner := cardWidth - 4

	header := fmt.Sprintf("%s %s",
		m.theme.Tag.Render(fmt.Sprintf("%dº", rank+1)),
		m.theme.Bold.Render(card.Title),
	)

	author := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Width(inner).
		Render(card.Author)

	meta := lipgloss.NewStyle().
		Foreground(m.theme.Info).
		Width(inner).
		Render(fmt.Sprintf("%s · %s", card.Genre, card.Level))

	score := fmt.Sprintf("%s %s",
		m.scoreBar.ViewAs(card.ScoreRatio),
		m.theme.StatusSuccess.Render(card.ScoreLabel),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		author,
		meta,
		"",
		m.theme.Normal.Render("Compatibilidade"),
		score,
	)

	return m.theme.RoundedBox.
		Width(cardWidth - 2).
		MarginRight(cardGap).
		MarginBottom(1).
		Render(content)
}
