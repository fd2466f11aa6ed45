package app

import (
	"github.com/nhle/kidpreneur-hub/internal/theme"
)

// applyTheme switches every adaptive color to the stored preference.
// Views render from theme styles on each View call, so nothing else has
// to be rebuilt.
func (m *Model) applyTheme() {
	theme.SetDark(m.state.Prefs.DarkMode)
}

// syncViews pushes the parts of the state each view displays. Cards are
// rendered into the viewport here, so this also picks up theme changes.
func (m *Model) syncViews() {
	m.home.SetIdeas(m.state.Ideas, m.state.Prefs.SortOrder)
	m.create.SetDraft(m.state.Draft)
	m.settingsView.Set(m.state.Prefs, len(m.state.Ideas))
	m.adminView.SetSession(m.state.Admin.LoggedIn, m.state.Admin.Username, len(m.state.Ideas))
}
