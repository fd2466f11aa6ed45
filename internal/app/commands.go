package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/state"
	"github.com/nhle/kidpreneur-hub/internal/ui/admin"
	"github.com/nhle/kidpreneur-hub/internal/ui/command"
)

// executeCommand runs a command from the command palette.
func (m Model) executeCommand(c command.Command) (tea.Model, tea.Cmd) {
	m.log.Debug("command", "action", c.Action)

	switch c.Action {
	case command.ActionNavigate:
		cmd := m.navigate(c.View)
		return m, cmd

	case command.ActionToggleTheme:
		m.commit(state.ToggleTheme(m.state))
		return m, nil

	case command.ActionSetSort:
		m.commit(state.SetSortOrder(m.state, c.Sort))
		m.setStatus("Sorting: "+m.state.Prefs.SortOrder.Label(), false)
		return m, nil

	case command.ActionReset:
		// The confirmation dialog lives on the settings view.
		navCmd := m.navigate(model.ViewSettings)
		resetCmd := m.settingsView.StartReset()
		return m, tea.Batch(navCmd, resetCmd)

	case command.ActionToggleSidebar:
		m.commit(state.ToggleSidebar(m.state))
		return m, nil

	case command.ActionLogout:
		if !m.state.Admin.LoggedIn {
			m.setStatus("Not logged in", false)
			return m, nil
		}
		return m, func() tea.Msg { return admin.LogoutMsg{} }

	case command.ActionQuit:
		m.log.Info("quitting")
		return m, tea.Quit
	}

	return m, nil
}
