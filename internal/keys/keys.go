package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation between views
	Home     key.Binding
	Create   key.Binding
	Settings key.Binding
	Admin    key.Binding
	NextView key.Binding
	PrevView key.Binding

	// Sidebar collapse
	Sidebar key.Binding

	// Scrolling inside a view
	Down key.Binding
	Up   key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Settings actions
	ToggleTheme key.Binding
	CycleSort   key.Binding
	Reset       key.Binding

	// Create form image handling
	AttachImage key.Binding
	DetachImage key.Binding

	// Admin
	Logout key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Create: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "create"),
		),
		Settings: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "settings"),
		),
		Admin: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "admin"),
		),
		NextView: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "previous view"),
		),
		Sidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "toggle sidebar"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "dark mode"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort order"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset all ideas"),
		),
		AttachImage: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "attach image"),
		),
		DetachImage: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove image"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log out"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Home, k.Create, k.Settings, k.Admin,
		k.Sidebar, k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Create, k.Settings, k.Admin, k.NextView, k.PrevView},
		{k.Up, k.Down, k.Back, k.Quit, k.Sidebar},
		{k.Command, k.Help, k.ToggleTheme, k.CycleSort, k.Reset},
		{k.AttachImage, k.DetachImage, k.Logout},
	}
}
