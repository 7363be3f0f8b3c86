package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"

	"github.com/estantelabs/estante/internal/model"
)

// Event describes an interaction with a rendered chart (the terminal
// equivalent of a click on a slice or bar).
type Event struct {
	Chart string
	Label string
	Value int
}

// NotifyFunc receives chart interaction events. The mechanism is swappable:
// the TUI installs a status-line notifier, tests install a recorder.
type NotifyFunc func(Event)

// Manager owns the lifecycle of the rendered charts.
type Manager struct {
	notify  NotifyFunc
	pie     PieConfig
	bars    BarConfig
	width   int
	hasData bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithNotify installs the interaction notifier.
func WithNotify(fn NotifyFunc) ManagerOption {
	return func(m *Manager) {
		m.notify = fn
	}
}

// WithWidth sets the render width in cells.
func WithWidth(width int) ManagerOption {
	return func(m *Manager) {
		m.width = width
	}
}

// NewManager creates a chart manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		width:  60,
		notify: func(Event) {},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Update rebuilds both charts from a statistics snapshot.
func (m *Manager) Update(stats model.Statistics) {
	m.pie = GenrePie(stats)
	m.bars = LevelBars(stats)
	m.hasData = true
}

// Resize changes the render width.
func (m *Manager) Resize(width int) {
	if width > 20 {
		m.width = width
	}
}

// Destroy releases the chart state; subsequent renders show the no-data
// state until the next Update.
func (m *Manager) Destroy() {
	m.pie = PieConfig{}
	m.bars = BarConfig{}
	m.hasData = false
}

// Select reports an interaction with the index-th entry of a chart through
// the notify function. Out-of-range selections are ignored.
func (m *Manager) Select(chartID string, index int) {
	switch chartID {
	case ChartGenres:
		if index >= 0 && index < len(m.pie.Slices) {
			s := m.pie.Slices[index]
			m.notify(Event{Chart: ChartGenres, Label: s.Label, Value: s.Value})
		}
	case ChartLevels:
		if index >= 0 && index < len(m.bars.Bars) {
			b := m.bars.Bars[index]
			m.notify(Event{Chart: ChartLevels, Label: b.Label, Value: b.Value})
		}
	}
}

var (
	chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea"))
	chartMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	sliceStyles     = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#667eea")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#764ba2")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#f093fb")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#f5576c")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#4facfe")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#00f2fe")),
	}
)

// Render produces the chart identified by chartID as styled terminal text.
// Unknown IDs render empty.
func (m *Manager) Render(chartID string) string {
	switch chartID {
	case ChartGenres:
		return m.renderPie()
	case ChartLevels:
		return m.renderBars()
	default:
		return ""
	}
}

// View renders both charts stacked vertically.
func (m *Manager) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderPie(),
		"",
		m.renderBars(),
	)
}

func (m *Manager) renderPie() string {
	if !m.hasData || len(m.pie.Slices) == 0 {
		return m.renderNoData("gêneros")
	}

	lines := []string{chartTitleStyle.Render(m.pie.Title)}

	labelWidth := 0
	for _, s := range m.pie.Slices {
		if w := lipgloss.Width(s.Label); w > labelWidth {
			labelWidth = w
		}
	}

	barSpace := m.width - labelWidth - 14
	if barSpace < 8 {
		barSpace = 8
	}

	for i, s := range m.pie.Slices {
		style := sliceStyles[i%len(sliceStyles)]
		marker := "●"
		if s.Emphasized {
			marker = "◉"
		}
		bar := strings.Repeat("█", barWidth(s.Percent, barSpace))
		lines = append(lines, fmt.Sprintf("%s %-*s %s %s",
			style.Render(marker),
			labelWidth, s.Label,
			style.Render(bar),
			chartMutedStyle.Render(RoundPercent(s.Percent)),
		))
	}

	lines = append(lines, chartMutedStyle.Render(fmt.Sprintf("Total: %d", m.pie.Total)))

	return strings.Join(lines, "\n")
}

func (m *Manager) renderBars() string {
	if !m.hasData || len(m.bars.Bars) == 0 {
		return m.renderNoData("níveis")
	}

	lines := []string{chartTitleStyle.Render(m.bars.Title)}

	labelWidth := 0
	maxValue := 0
	for _, b := range m.bars.Bars {
		if w := lipgloss.Width(b.Label); w > labelWidth {
			labelWidth = w
		}
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}

	barSpace := m.width - labelWidth - 10
	if barSpace < 8 {
		barSpace = 8
	}

	for i, b := range m.bars.Bars {
		style := sliceStyles[i%len(sliceStyles)]
		length := 0
		if maxValue > 0 {
			length = barWidth(float64(b.Value)/float64(maxValue)*100, barSpace)
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %s",
			labelWidth, b.Label,
			style.Render(strings.Repeat("█", length)),
			chartMutedStyle.Render(fmt.Sprintf("%d", b.Value)),
		))
	}

	return strings.Join(lines, "\n")
}

func (m *Manager) renderNoData(dataType string) string {
	return chartMutedStyle.Render(fmt.Sprintf("Sem dados de %s\nNão há dados disponíveis para exibir este gráfico.", dataType))
}

func barWidth(pct float64, space int) int {
	n := int(pct / 100 * float64(space))
	if n < 1 && pct > 0 {
		n = 1
	}
	return n
}

// Export writes a chart snapshot to dir. Format "txt" writes the rendered
// text stripped of styling; "json" writes the chart configuration. The file
// name follows the original interface's convention, grafico_<id>.<format>.
func (m *Manager) Export(dir, chartID, format string) (string, error) {
	if !m.hasData {
		return "", fmt.Errorf("chart %q has no data to export", chartID)
	}

	var content []byte
	switch format {
	case "txt":
		rendered := m.Render(chartID)
		if rendered == "" {
			return "", fmt.Errorf("unknown chart %q", chartID)
		}
		content = []byte(stripANSI(rendered) + "\n")
	case "json":
		var cfg any
		switch chartID {
		case ChartGenres:
			cfg = m.pie
		case ChartLevels:
			cfg = m.bars
		default:
			return "", fmt.Errorf("unknown chart %q", chartID)
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode chart config: %w", err)
		}
		content = data
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}

	path := filepath.Join(dir, fmt.Sprintf("grafico_%s.%s", chartID, format))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write chart export: %w", err)
	}

	return path, nil
}

// stripANSI removes escape sequences so exported text stays readable in
// plain files.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
