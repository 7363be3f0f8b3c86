package components

import (
	"fmt"

	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/tui/themes"
	"github.com/estantelabs/estante/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cardWidth       = 30
	cardGap         = 2
	descriptionMax  = 140
	maxCardsPerPage = 4
)

// CarouselModel displays the filtered catalog as a paged row of book cards.
type CarouselModel struct {
	theme  themes.Theme
	cards  []viewmodel.BookCard
	page   int
	width  int
	height int
}

// NewCarouselModel creates an empty carousel.
func NewCarouselModel(theme themes.Theme) CarouselModel {
	return CarouselModel{theme: theme, width: 80, height: 24}
}

// SetBooks replaces the displayed collection and rewinds to the first page.
func (m *CarouselModel) SetBooks(books []model.Book) {
	m.cards = viewmodel.NewBookCards(books)
	m.page = 0
}

// Count returns the number of books currently displayed.
func (m CarouselModel) Count() int {
	return len(m.cards)
}

// PerPage returns how many cards fit across the current width.
func (m CarouselModel) PerPage() int {
	per := m.width / (cardWidth + cardGap)
	if per < 1 {
		per = 1
	}
	if per > maxCardsPerPage {
		per = maxCardsPerPage
	}
	return per
}

// Pages returns the total page count, never less than one.
func (m CarouselModel) Pages() int {
	if len(m.cards) == 0 {
		return 1
	}
	per := m.PerPage()
	return (len(m.cards) + per - 1) / per
}

// CanPrev reports whether a previous page exists.
func (m CarouselModel) CanPrev() bool {
	return m.page > 0
}

// CanNext reports whether a next page exists.
func (m CarouselModel) CanNext() bool {
	return m.page < m.Pages()-1
}

// Update handles messages.
func (m CarouselModel) Update(msg tea.Msg) (CarouselModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			if m.CanPrev() {
				m.page--
			}
		case "right", "l":
			if m.CanNext() {
				m.page++
			}
		case "home":
			m.page = 0
		case "end":
			m.page = m.Pages() - 1
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// Resize updates the component size and clamps the page back into range.
func (m *CarouselModel) Resize(width, height int) {
	m.width = width
	m.height = height
	if last := m.Pages() - 1; m.page > last {
		m.page = last
	}
}

// View renders the carousel.
func (m CarouselModel) View() string {
	if len(m.cards) == 0 {
		return m.renderEmpty()
	}

	per := m.PerPage()
	start := m.page * per
	end := min(start+per, len(m.cards))

	row := make([]string, 0, end-start)
	for _, card := range m.cards[start:end] {
		row = append(row, m.renderCard(card))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, row...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		"",
		m.renderFooter(),
	)
}

// renderCard renders a single book card.
func (m CarouselModel) renderCard(card viewmodel.BookCard) string {
	inner := cardWidth - 4

	title := m.theme.Bold.Width(inner).Render(card.Title)
	author := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Width(inner).
		Render(card.Author)

	tags := fmt.Sprintf("%s · %s · %s", card.Genre, card.Type, card.Level)
	meta := lipgloss.NewStyle().
		Foreground(m.theme.Info).
		Width(inner).
		Render(tags)

	year := m.theme.Normal.Render("Ano: " + card.Year)

	desc := m.theme.Normal.
		Width(inner).
		Render(viewmodel.TruncateDescription(card.Description, descriptionMax))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		author,
		"",
		meta,
		year,
		"",
		desc,
	)

	return m.theme.RoundedBox.
		Width(cardWidth - 2).
		MarginRight(cardGap).
		Render(content)
}

// renderEmpty renders the state shown when no book matches the filters.
func (m CarouselModel) renderEmpty() string {
	heading := m.theme.Subtitle.Render("Nenhum livro encontrado")
	hint := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render("Tente ajustar os filtros para encontrar mais livros.")

	return lipgloss.JoinVertical(lipgloss.Center, heading, hint)
}

// renderFooter renders the result count and page indicator.
func (m CarouselModel) renderFooter() string {
	count := fmt.Sprintf("%d livros encontrados", len(m.cards))
	if len(m.cards) == 1 {
		count = "1 livro encontrado"
	}

	footer := m.theme.Normal.Render(count)
	if m.Pages() > 1 {
		pager := fmt.Sprintf("  ◀ página %d/%d ▶", m.page+1, m.Pages())
		footer += lipgloss.NewStyle().Foreground(m.theme.Muted).Render(pager)
	}

	return footer
}
