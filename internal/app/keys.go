package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/state"
	"github.com/nhle/kidpreneur-hub/internal/theme"
)

// handleKey processes global keys. The third result reports whether the
// key was consumed; unconsumed keys go to the active view.
//
// ctrl+c and the ctrl navigation keys always work. Single-character
// shortcuts are skipped while the active view captures text input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		m.log.Info("quitting")
		return m, tea.Quit, true
	}

	switch m.overlay {
	case OverlayHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Back) {
			m.overlay = OverlayNone
		}
		return m, nil, true
	case OverlayCommand:
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.NextView):
		cmd := m.navigate(m.state.View.Next())
		return m, cmd, true
	case key.Matches(msg, m.keys.PrevView):
		cmd := m.navigate(m.state.View.Prev())
		return m, cmd, true
	case key.Matches(msg, m.keys.Sidebar):
		m.commit(state.ToggleSidebar(m.state))
		return m, nil, true
	}

	if m.capturesInput() {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Home):
		cmd := m.navigate(model.ViewHome)
		return m, cmd, true
	case key.Matches(msg, m.keys.Create):
		cmd := m.navigate(model.ViewCreate)
		return m, cmd, true
	case key.Matches(msg, m.keys.Settings):
		cmd := m.navigate(model.ViewSettings)
		return m, cmd, true
	case key.Matches(msg, m.keys.Admin):
		cmd := m.navigate(model.ViewAdmin)
		return m, cmd, true

	case key.Matches(msg, m.keys.Quit):
		if m.state.View == model.ViewHome {
			m.log.Info("quitting")
			return m, tea.Quit, true
		}

	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
		return m, nil, true

	case key.Matches(msg, m.keys.Command):
		m.overlay = OverlayCommand
		cmd := m.commandView.Focus()
		return m, cmd, true

	case key.Matches(msg, m.keys.Back):
		if m.state.View != model.ViewHome {
			cmd := m.navigate(model.ViewHome)
			return m, cmd, true
		}
	}

	return m, nil, false
}

// capturesInput reports whether the active view is consuming keys as text
// or has a dialog open.
func (m Model) capturesInput() bool {
	switch m.state.View {
	case model.ViewCreate:
		return m.create.CapturesInput()
	case model.ViewSettings:
		return m.settingsView.CapturesInput()
	case model.ViewAdmin:
		return m.adminView.CapturesInput()
	default:
		return false
	}
}

// navigate switches the active view and returns the command that focuses
// it. Data is never touched.
func (m *Model) navigate(v model.View) tea.Cmd {
	m.overlay = OverlayNone
	if v == m.state.View {
		return nil
	}

	m.clearStatus()
	m.commit(state.Navigate(m.state, v))
	m.log.Debug("navigate", "view", v)

	switch v {
	case model.ViewCreate:
		return m.create.Init()
	case model.ViewAdmin:
		return m.adminView.Init()
	default:
		return nil
	}
}

// statusLine combines the transient status message with the key hints.
func (m Model) statusLine() string {
	hints := m.keyHints()
	if m.statusMsg == "" {
		return hints
	}
	return theme.StatusStyle(m.statusErr).Render(m.statusMsg) + "  " + hints
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.overlay {
	case OverlayHelp:
		return "? close help | esc back"
	case OverlayCommand:
		return "enter execute | tab complete | esc back"
	}

	switch m.state.View {
	case model.ViewCreate:
		if m.create.Picking() {
			return "enter select | h back | esc cancel"
		}
		return "tab next | enter submit | ctrl+o image | ctrl+x remove | esc back"
	case model.ViewSettings:
		if m.settingsView.CapturesInput() {
			return "enter confirm | esc cancel"
		}
		return "t dark mode | s sort | enter choose sort | R reset | esc back"
	case model.ViewAdmin:
		if m.state.Admin.LoggedIn {
			return "L log out | esc back"
		}
		return "enter next | esc back"
	default:
		return "1-4 views | j/k scroll | ctrl+b sidebar | : command | ? help | q quit"
	}
}
