package tui

import (
	"fmt"
	"log/slog"

	"github.com/estantelabs/estante/internal/api"
	"github.com/estantelabs/estante/internal/catalog"
	"github.com/estantelabs/estante/internal/charts"
	"github.com/estantelabs/estante/internal/common"
	"github.com/estantelabs/estante/internal/model"
	"github.com/estantelabs/estante/internal/service"
	"github.com/estantelabs/estante/internal/store"
	"github.com/estantelabs/estante/internal/tui/components"
	"github.com/estantelabs/estante/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab identifies the active view.
type Tab int

const (
	TabCatalog Tab = iota
	TabStatistics
	TabRecommendations
	TabProfile
	tabCount
)

// Model holds the main TUI state. It coordinates the gateway, the state
// store and the view components: every transition runs through Update, so
// data flows one way and stale fetches can never clobber newer state.
type Model struct {
	theme           themes.Theme
	config          Config
	keymap          KeyMap
	gateway         service.Gateway
	store           *store.Store
	carousel        components.CarouselModel
	statsPanel      components.StatsPanelModel
	profileForm     components.ProfileFormModel
	recommendations components.RecommendationsModel
	lastChartEvent  *charts.Event
	notice          string
	tab             Tab
	chartSel        int
	width           int
	height          int
	online          bool
	ready           bool
	showHelp        bool
	quitting        bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	lastEvent := &charts.Event{}

	return Model{
		theme:    cfg.Theme,
		config:   cfg,
		keymap:   DefaultKeyMap(),
		gateway:  cfg.Gateway,
		store:    cfg.Store,
		carousel: components.NewCarouselModel(cfg.Theme),
		statsPanel: components.NewStatsPanelModel(cfg.Theme, func(ev charts.Event) {
			*lastEvent = ev
		}),
		profileForm:     components.NewProfileFormModel(cfg.Theme),
		recommendations: components.NewRecommendationsModel(cfg.Theme),
		lastChartEvent:  lastEvent,
		width:           cfg.Width,
		height:          cfg.Height,
	}
}

// Init starts the initial loads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.checkHealth(),
		m.fetchBooks(),
		m.fetchStatistics(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case booksLoadedMsg:
		if cmd := m.handleBooksLoaded(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case statisticsLoadedMsg:
		if cmd := m.handleStatisticsLoaded(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case components.ProfileSubmitMsg:
		m.recommendations.SetLoading(true)
		m.tab = TabRecommendations
		cmds = append(cmds,
			m.fetchRecommendations(msg.Profile),
			m.registerProfile(msg.Profile),
			m.recommendations.Init(),
		)

	case recommendationsMsg:
		if cmd := m.handleRecommendations(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case profileRegisteredMsg:
		if msg.err != nil {
			slog.Debug("profile registration failed", "error", msg.err)
		}

	case healthMsg:
		m.online = msg.err == nil

	case exportDoneMsg:
		if msg.err != nil {
			m.setNotice("Falha ao exportar gráficos: " + common.UserMessage(msg.err))
		} else {
			m.setNotice(fmt.Sprintf("Gráficos exportados: %v", msg.paths))
		}
		cmds = append(cmds, clearNoticeAfter())

	case clearNoticeMsg:
		m.notice = ""
	}

	// Delegate the remaining messages to the active components.
	var cmd tea.Cmd
	m.recommendations, cmd = m.recommendations.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKey routes keyboard input. The profile form owns almost every key
// while it is active, so its text inputs work as expected.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.tab == TabProfile {
		if key == "esc" {
			m.tab = TabCatalog
			return m, nil
		}
		var cmd tea.Cmd
		m.profileForm, cmd = m.profileForm.Update(msg)
		return m, cmd
	}

	switch key {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "tab":
		return m.activateTab((m.tab + 1) % tabCount)

	case "shift+tab":
		return m.activateTab((m.tab + tabCount - 1) % tabCount)

	case "1":
		return m.activateTab(TabCatalog)
	case "2":
		return m.activateTab(TabStatistics)
	case "3":
		return m.activateTab(TabRecommendations)
	case "4":
		return m.activateTab(TabProfile)

	case "r":
		m.setNotice("Recarregando catálogo...")
		return m, tea.Batch(m.fetchBooks(), m.fetchStatistics(), m.checkHealth(), clearNoticeAfter())
	}

	switch m.tab {
	case TabCatalog:
		return m.handleCatalogKey(msg)
	case TabStatistics:
		return m.handleStatisticsKey(msg)
	}

	return m, nil
}

// activateTab switches the active view. The catalog fetches only when the
// store is empty; statistics reload on every visit so the charts stay
// current, with the load generation discarding out-of-order responses.
func (m Model) activateTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab

	switch tab {
	case TabCatalog:
		if !m.store.HasBooks() {
			return m, m.fetchBooks()
		}
	case TabStatistics:
		return m, m.fetchStatistics()
	}

	return m, nil
}

// handleCatalogKey handles filter cycling and carousel paging.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "g":
		m.cycleFilter(func(c *model.FilterCriteria, opts catalog.Options) {
			c.Genre = cycleValue(c.Genre, opts.Genres)
		})
	case "t":
		m.cycleFilter(func(c *model.FilterCriteria, opts catalog.Options) {
			c.Type = cycleValue(c.Type, opts.Types)
		})
	case "n":
		m.cycleFilter(func(c *model.FilterCriteria, opts catalog.Options) {
			c.Level = cycleValue(c.Level, opts.Levels)
		})
	case "x":
		m.store.SetCriteria(model.FilterCriteria{})
		m.refreshCarousel()
	default:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleStatisticsKey supports stepping through the genre chart entries
// and exporting both charts.
func (m Model) handleStatisticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		*m.lastChartEvent = charts.Event{}
		m.statsPanel.Charts().Select(charts.ChartGenres, m.chartSel)
		if m.lastChartEvent.Label == "" {
			// Past the last slice; wrap around to the first.
			m.chartSel = 0
			m.statsPanel.Charts().Select(charts.ChartGenres, m.chartSel)
		}
		if ev := *m.lastChartEvent; ev.Label != "" {
			m.setNotice(fmt.Sprintf("%s: %d livros", ev.Label, ev.Value))
			m.chartSel++
			return m, clearNoticeAfter()
		}

	case "e":
		return m, m.exportCharts()
	}

	return m, nil
}

// cycleFilter applies a single-criterion change and re-renders the
// carousel from data already in the store. No fetch happens here.
func (m *Model) cycleFilter(step func(*model.FilterCriteria, catalog.Options)) {
	criteria := m.store.Criteria()
	opts := catalog.DeriveOptions(m.store.Books())
	step(&criteria, opts)
	m.store.SetCriteria(criteria)
	m.refreshCarousel()
}

// cycleValue steps a criterion through unset and every option in order.
func cycleValue(current string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i == len(options)-1 {
				return ""
			}
			return options[i+1]
		}
	}
	return ""
}

// handleBooksLoaded applies a finished catalog fetch. Stale generations
// are discarded by the store; a failed fetch falls back to the bundled
// collection when enabled, with a visible notice.
func (m *Model) handleBooksLoaded(msg booksLoadedMsg) tea.Cmd {
	m.ready = true

	if msg.err != nil {
		slog.Warn("catalog load failed", "error", msg.err)

		if !m.config.FallbackEnabled {
			m.setNotice("Não foi possível carregar o catálogo: " + common.UserMessage(msg.err))
			return clearNoticeAfter()
		}

		if m.store.CompleteBooksLoad(msg.gen, api.FallbackBooks()) {
			m.afterBooksChanged()
		}
		m.setNotice("Serviço indisponível; exibindo a coleção local.")
		return clearNoticeAfter()
	}

	if m.store.CompleteBooksLoad(msg.gen, msg.books) {
		m.afterBooksChanged()
	}
	return nil
}

// afterBooksChanged re-renders everything derived from the collection.
func (m *Model) afterBooksChanged() {
	books := m.store.Books()
	m.refreshCarousel()
	m.profileForm.SetGenres(catalog.DeriveOptions(books).Genres)
}

// refreshCarousel re-applies the active criteria to the stored collection.
func (m *Model) refreshCarousel() {
	m.carousel.SetBooks(catalog.Filter(m.store.Books(), m.store.Criteria()))
}

// handleStatisticsLoaded applies a finished statistics fetch, deriving a
// local approximation from the loaded collection when the server fails.
func (m *Model) handleStatisticsLoaded(msg statisticsLoadedMsg) tea.Cmd {
	if msg.err != nil {
		slog.Warn("statistics load failed", "error", msg.err)

		if books := m.store.Books(); len(books) > 0 {
			m.statsPanel.SetStatistics(catalog.Aggregate(books), true)
		}
		m.setNotice("Estatísticas indisponíveis; usando valores calculados localmente.")
		return clearNoticeAfter()
	}

	if m.store.CompleteStatsLoad(msg.gen, msg.stats) {
		m.statsPanel.SetStatistics(*msg.stats, false)
		m.chartSel = 0
	}
	return nil
}

// handleRecommendations applies a finished recommendation request. The
// waiting state is cleared on every path, success or not.
func (m *Model) handleRecommendations(msg recommendationsMsg) tea.Cmd {
	m.profileForm.SetSubmitting(false)

	if msg.err != nil {
		slog.Warn("recommendation request failed", "error", msg.err)
		m.recommendations.ShowError("Não foi possível gerar recomendações: " + common.UserMessage(msg.err))
		return nil
	}

	m.store.SetProfile(msg.profile)
	m.store.SetRecommendations(msg.recs)
	m.recommendations.SetResults(msg.profile, msg.recs)
	m.tab = TabRecommendations
	return nil
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	contentHeight := m.height - 6
	m.carousel.Resize(m.width-2, contentHeight)
	m.statsPanel.Resize(m.width-2, contentHeight)
	m.recommendations.Resize(m.width-2, contentHeight)
	m.profileForm.Resize(m.width - 2)
	m.statsPanel.SetCompact(m.height < 20)
}

// setNotice replaces the transient status-bar notice.
func (m *Model) setNotice(text string) {
	m.notice = text
}
