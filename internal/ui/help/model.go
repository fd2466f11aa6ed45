package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kidpreneur-hub/internal/keys"
	"github.com/nhle/kidpreneur-hub/internal/theme"
	"github.com/nhle/kidpreneur-hub/internal/ui/command"
)

// Model is the help overlay view.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay: every key binding, then the palette
// commands.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorText).
		MarginBottom(1)

	m.help.Width = m.width - 4
	m.help.ShowAll = true

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Keyboard Shortcuts"),
		m.help.View(m.keys),
		"",
		titleStyle.Render("Commands"),
		theme.HelpStyle.Render(": "+strings.Join(command.Known, "\n: ")),
		"",
		theme.DimmedStyle.Render("Keys 1-4, q, ? and : are ignored while typing in a form."),
	)

	return theme.PanelStyle.
		Width(max(0, m.width-4)).
		Height(max(0, m.height-4)).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
