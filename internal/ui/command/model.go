package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/theme"
)

// Action identifies what a palette command does.
type Action int

const (
	ActionNavigate Action = iota
	ActionToggleTheme
	ActionSetSort
	ActionReset
	ActionToggleSidebar
	ActionLogout
	ActionQuit
)

// Command is a parsed palette command.
type Command struct {
	Action Action
	View   model.View
	Sort   model.SortOrder
}

// CommandMsg is emitted when the user executes a command.
type CommandMsg struct {
	Command Command
}

// CancelMsg is emitted when the palette is dismissed with esc.
type CancelMsg struct{}

// Known lists every command the palette accepts, used for suggestions.
var Known = []string{
	"home",
	"create",
	"settings",
	"admin",
	"theme",
	"sort newest",
	"sort oldest",
	"reset",
	"sidebar",
	"logout",
	"quit",
}

// Parse converts palette input into a Command.
func Parse(input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	if v, ok := model.ParseView(fields[0]); ok && len(fields) == 1 {
		return Command{Action: ActionNavigate, View: v}, nil
	}

	switch fields[0] {
	case "theme", "dark":
		return Command{Action: ActionToggleTheme}, nil
	case "sort":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("usage: sort newest|oldest")
		}
		switch model.SortOrder(fields[1]) {
		case model.SortNewest, model.SortOldest:
			return Command{Action: ActionSetSort, Sort: model.SortOrder(fields[1])}, nil
		}
		return Command{}, fmt.Errorf("unknown sort order %q", fields[1])
	case "reset":
		return Command{Action: ActionReset}, nil
	case "sidebar":
		return Command{Action: ActionToggleSidebar}, nil
	case "logout":
		return Command{Action: ActionLogout}, nil
	case "quit", "q":
		return Command{Action: ActionQuit}, nil
	}

	return Command{}, fmt.Errorf("unknown command %q", input)
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	err    error
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Prompt = ": "
	ti.ShowSuggestions = true
	ti.SetSuggestions(Known)
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			input := strings.TrimSpace(m.input.Value())
			if input == "" {
				return m, nil
			}
			cmd, err := Parse(input)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.input.Reset()
			return m, func() tea.Msg {
				return CommandMsg{Command: cmd}
			}

		case "esc":
			m.err = nil
			m.input.Reset()
			return m, func() tea.Msg { return CancelMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorText).
		MarginBottom(1)

	parts := []string{titleStyle.Render("Command Palette"), m.input.View()}
	if m.err != nil {
		parts = append(parts, "", theme.StatusStyle(true).Render(m.err.Error()))
	}
	parts = append(parts, "", theme.HelpStyle.Render(strings.Join(Known, " · ")))

	return theme.PanelStyle.
		Width(max(0, m.width-4)).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
