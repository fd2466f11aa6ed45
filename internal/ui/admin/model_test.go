package admin

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kidpreneur-hub/internal/keys"
)

func TestAlertDismissal(t *testing.T) {
	for _, dismiss := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
	} {
		m := New(keys.DefaultKeyMap(), 80, 30)
		m.Init()
		m.ShowError()

		if !strings.Contains(m.View(), WrongCredentials) {
			t.Fatal("alert text not shown")
		}
		if !m.CapturesInput() {
			t.Error("alert should block other keys")
		}

		m, _ = m.Update(dismiss)
		if m.mode != modeLogin {
			t.Errorf("%s did not dismiss the alert", dismiss.String())
		}
		if m.fb.password != "" {
			t.Error("password not cleared after failed login")
		}
	}
}

func TestPanelAndLogout(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 30)
	m.Init()
	m.SetSession(true, "shivr4m", 4)

	if m.CapturesInput() {
		t.Error("panel should not capture input")
	}
	view := m.View()
	for _, want := range []string{"Admin Panel", "You can manage ideas here in the future.", "4 idea(s)"} {
		if !strings.Contains(view, want) {
			t.Errorf("panel missing %q", want)
		}
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'L'}})
	if cmd == nil {
		t.Fatal("L produced no command")
	}
	if _, ok := cmd().(LogoutMsg); !ok {
		t.Error("expected LogoutMsg")
	}

	m.SetSession(false, "", 4)
	if m.mode != modeLogin {
		t.Error("logging out should return to the login form")
	}
}

func TestEscClearsTypedCredentials(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 30)
	m.Init()
	for _, r := range "shivr4m" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.fb.password = "Password12345"

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc produced no command")
	}
	if _, ok := cmd().(CancelMsg); !ok {
		t.Error("expected CancelMsg")
	}
	if m.fb.username != "" || m.fb.password != "" {
		t.Errorf("credentials kept after esc: %q / %q", m.fb.username, m.fb.password)
	}
	if m.mode != modeLogin {
		t.Error("esc should leave the login form ready")
	}
}
