package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/estantelabs/estante/internal/common"
	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/tui/themes"
	"github.com/estantelabs/estante/internal/validation"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form field indexes, in focus order.
const (
	fieldName = iota
	fieldEmail
	fieldAge
	fieldGenre
	fieldType
	fieldLevel
	fieldCount
)

const choiceUnset = "Selecione..."

// ProfileFormModel collects the reading profile used for recommendations.
// Text fields use textinput; genre, type and level cycle through their
// known values with the arrow keys.
type ProfileFormModel struct {
	theme      themes.Theme
	inputs     []textinput.Model
	genres     []string
	types      []string
	levels     []string
	genreIdx   int
	typeIdx    int
	levelIdx   int
	focus      int
	err        error
	submitting bool
	width      int
}

// NewProfileFormModel creates the form with empty fields. Genre choices
// arrive later, once the catalog has loaded.
func NewProfileFormModel(theme themes.Theme) ProfileFormModel {
	name := textinput.New()
	name.Placeholder = "Seu nome"
	name.CharLimit = 60
	name.Focus()

	email := textinput.New()
	email.Placeholder = "voce@exemplo.com (opcional)"
	email.CharLimit = 80

	age := textinput.New()
	age.Placeholder = "Idade (opcional)"
	age.CharLimit = 3

	return ProfileFormModel{
		theme:  theme,
		inputs: []textinput.Model{name, email, age},
		types:  model.Types(),
		levels: model.Levels(),
		width:  60,
	}
}

// SetGenres replaces the genre choices, keeping the current selection when
// it still exists.
func (m *ProfileFormModel) SetGenres(genres []string) {
	selected := m.selectedGenre()
	m.genres = genres
	m.genreIdx = 0
	for i, g := range genres {
		if g == selected {
			m.genreIdx = i + 1
			break
		}
	}
}

// SetSubmitting toggles the waiting state while a request is in flight.
func (m *ProfileFormModel) SetSubmitting(submitting bool) {
	m.submitting = submitting
}

// ShowError surfaces a submit failure on the form.
func (m *ProfileFormModel) ShowError(err error) {
	m.err = err
	m.submitting = false
}

// Update handles messages.
func (m ProfileFormModel) Update(msg tea.Msg) (ProfileFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Resize(msg.Width)
	}

	return m.updateInputs(msg)
}

// Resize fits the text inputs to the available width.
func (m *ProfileFormModel) Resize(width int) {
	m.width = width

	inputWidth := width - 4
	if inputWidth > 48 {
		inputWidth = 48
	}
	if inputWidth < 20 {
		inputWidth = 20
	}
	for i := range m.inputs {
		m.inputs[i].Width = inputWidth
	}
}

func (m ProfileFormModel) handleKey(msg tea.KeyMsg) (ProfileFormModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "left":
		m.cycleChoice(-1)
		return m, nil

	case "right":
		m.cycleChoice(1)
		return m, nil

	case "enter":
		if m.focus < fieldLevel {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m.submit()

	case "ctrl+s":
		return m.submit()
	}

	return m.updateInputs(msg)
}

// updateInputs forwards a message to the focused text input.
func (m ProfileFormModel) updateInputs(msg tea.Msg) (ProfileFormModel, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves keyboard focus, blurring text inputs as needed.
func (m *ProfileFormModel) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// cycleChoice steps the focused choice field through its values.
func (m *ProfileFormModel) cycleChoice(dir int) {
	switch m.focus {
	case fieldGenre:
		m.genreIdx = cycle(m.genreIdx, len(m.genres)+1, dir)
	case fieldType:
		m.typeIdx = cycle(m.typeIdx, len(m.types)+1, dir)
	case fieldLevel:
		m.levelIdx = cycle(m.levelIdx, len(m.levels)+1, dir)
	}
}

// cycle wraps an index through n slots. Slot zero is the unset placeholder.
func cycle(idx, n, dir int) int {
	if n <= 1 {
		return 0
	}
	return (idx + dir + n) % n
}

// submit validates the form and emits a ProfileSubmitMsg on success.
func (m ProfileFormModel) submit() (ProfileFormModel, tea.Cmd) {
	profile, err := m.buildProfile()
	if err != nil {
		m.err = err
		return m, nil
	}
	if err := validation.Validate(profile); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.submitting = true
	return m, func() tea.Msg {
		return ProfileSubmitMsg{Profile: profile}
	}
}

// buildProfile assembles a profile from the current field values.
func (m ProfileFormModel) buildProfile() (model.UserProfile, error) {
	profile := model.UserProfile{
		Name:  strings.TrimSpace(m.inputs[fieldName].Value()),
		Email: strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Genre: m.selectedGenre(),
		Type:  m.selectedType(),
		Level: m.selectedLevel(),
	}

	ageText := strings.TrimSpace(m.inputs[fieldAge].Value())
	if ageText != "" {
		age, err := strconv.Atoi(ageText)
		if err != nil {
			return profile, common.NewUserError("idade deve ser um número", err)
		}
		profile.Age = age
	}

	return profile, nil
}

func (m ProfileFormModel) selectedGenre() string {
	if m.genreIdx == 0 || m.genreIdx > len(m.genres) {
		return ""
	}
	return m.genres[m.genreIdx-1]
}

func (m ProfileFormModel) selectedType() string {
	if m.typeIdx == 0 || m.typeIdx > len(m.types) {
		return ""
	}
	return m.types[m.typeIdx-1]
}

func (m ProfileFormModel) selectedLevel() string {
	if m.levelIdx == 0 || m.levelIdx > len(m.levels) {
		return ""
	}
	return m.levels[m.levelIdx-1]
}

// View renders the form.
func (m ProfileFormModel) View() string {
	sections := []string{
		m.theme.Title.Render("Seu Perfil de Leitura"),
		m.renderTextField("Nome", fieldName),
		m.renderTextField("E-mail", fieldEmail),
		m.renderTextField("Idade", fieldAge),
		m.renderChoiceField("Gênero favorito", fieldGenre, m.genreLabel()),
		m.renderChoiceField("Tipo", fieldType, m.typeLabel()),
		m.renderChoiceField("Nível de leitura", fieldLevel, m.levelLabel()),
		"",
		m.renderFooter(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ProfileFormModel) renderTextField(label string, field int) string {
	return fmt.Sprintf("%s\n%s",
		m.renderLabel(label, field),
		m.inputs[field].View(),
	)
}

func (m ProfileFormModel) renderChoiceField(label string, field int, value string) string {
	style := m.theme.Normal
	if m.focus == field {
		style = m.theme.Selected
	}
	return fmt.Sprintf("%s\n%s",
		m.renderLabel(label, field),
		style.Render("◀ "+value+" ▶"),
	)
}

func (m ProfileFormModel) renderLabel(label string, field int) string {
	if m.focus == field {
		return lipgloss.NewStyle().
			Foreground(m.theme.Primary).
			Bold(true).
			Render(label)
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label)
}

func (m ProfileFormModel) genreLabel() string {
	if g := m.selectedGenre(); g != "" {
		return g
	}
	return choiceUnset
}

func (m ProfileFormModel) typeLabel() string {
	if t := m.selectedType(); t != "" {
		return model.TypeLabel(t)
	}
	return choiceUnset
}

func (m ProfileFormModel) levelLabel() string {
	if l := m.selectedLevel(); l != "" {
		return model.LevelLabel(l)
	}
	return choiceUnset
}

func (m ProfileFormModel) renderFooter() string {
	if m.submitting {
		return m.theme.StatusInfo.Render("Enviando perfil...")
	}
	if m.err != nil {
		return m.theme.StatusError.Render(common.UserMessage(m.err))
	}
	return lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render("Enter avança · ←/→ escolhe · Ctrl+S envia")
}
