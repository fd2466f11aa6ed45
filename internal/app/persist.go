package app

import (
	"context"

	"github.com/nhle/kidpreneur-hub/internal/state"
)

// commit makes next the current state, hands both snapshots to the
// persistence observer and refreshes every view. A failed write keeps the
// in-memory state and surfaces the error in the status bar.
func (m *Model) commit(next state.State) error {
	prev := m.state
	m.state = next

	var err error
	if m.observer != nil {
		if err = m.observer.Persist(context.Background(), prev, next); err != nil {
			m.log.Error("persisting state", "error", err)
			m.setStatus("Could not save: "+err.Error(), true)
		}
	}

	if prev.SidebarCollapsed != next.SidebarCollapsed {
		m.layout = m.layout.WithSidebarCollapsed(next.SidebarCollapsed)
		m.resizeViews()
	}
	if prev.Prefs.DarkMode != next.Prefs.DarkMode {
		m.log.Debug("theme changed", "dark_mode", next.Prefs.DarkMode)
		m.applyTheme()
	}
	m.syncViews()
	return err
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
	m.statusErr = false
}
