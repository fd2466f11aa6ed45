package settings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kidpreneur-hub/internal/keys"
	"github.com/nhle/kidpreneur-hub/internal/model"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeysEmitMessages(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 30)
	m.Set(model.Preferences{SortOrder: model.SortNewest}, 2)

	_, cmd := m.Update(runeKey('t'))
	if _, ok := cmd().(ToggleThemeMsg); !ok {
		t.Error("t should emit ToggleThemeMsg")
	}

	_, cmd = m.Update(runeKey('s'))
	msg, ok := cmd().(SetSortMsg)
	if !ok || msg.Order != model.SortOldest {
		t.Errorf("s emitted %#v, want SetSortMsg{oldest}", msg)
	}
}

func TestResetConfirmationCancel(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 30)
	m.Set(model.DefaultPreferences(), 3)

	m, _ = m.Update(runeKey('R'))
	if !m.CapturesInput() {
		t.Fatal("R should open the confirmation")
	}
	if !strings.Contains(m.View(), ResetQuestion) {
		t.Error("confirmation question not shown")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.CapturesInput() {
		t.Error("esc should close the confirmation")
	}
	msg, ok := cmd().(ResetMsg)
	if !ok || msg.Confirmed {
		t.Errorf("esc emitted %#v, want unconfirmed ResetMsg", msg)
	}
}

func TestViewShowsPreferences(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 30)
	m.Set(model.Preferences{DarkMode: true, SortOrder: model.SortOldest}, 0)

	view := m.View()
	for _, want := range []string{"[x]", "Dark Mode", "Oldest First", "Reset All Ideas"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
