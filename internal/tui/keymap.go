package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Left     key.Binding
	Right    key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Catalog  key.Binding
	Stats    key.Binding
	Recs     key.Binding
	Profile  key.Binding

	// Catalog filters
	CycleGenre key.Binding
	CycleType  key.Binding
	CycleLevel key.Binding
	ClearAll   key.Binding

	// Actions
	Select  key.Binding
	Export  key.Binding
	Refresh key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "página anterior"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "próxima página"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "próxima aba"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "aba anterior"),
		),
		Catalog: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "catálogo"),
		),
		Stats: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "estatísticas"),
		),
		Recs: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "recomendações"),
		),
		Profile: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "perfil"),
		),

		CycleGenre: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "filtrar gênero"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "filtrar tipo"),
		),
		CycleLevel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "filtrar nível"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "limpar filtros"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "selecionar"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "exportar gráficos"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recarregar"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ajuda"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "sair"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "sair"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Catalog, k.Stats, k.Recs, k.Profile},
		{k.Left, k.Right, k.NextTab, k.PrevTab},
		{k.CycleGenre, k.CycleType, k.CycleLevel, k.ClearAll},
		{k.Select, k.Export, k.Refresh},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
