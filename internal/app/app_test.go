package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kidpreneur-hub/internal/auth"
	"github.com/nhle/kidpreneur-hub/internal/imagedata"
	"github.com/nhle/kidpreneur-hub/internal/model"
	"github.com/nhle/kidpreneur-hub/internal/state"
	"github.com/nhle/kidpreneur-hub/internal/store"
	"github.com/nhle/kidpreneur-hub/internal/theme"
	"github.com/nhle/kidpreneur-hub/internal/ui/admin"
	"github.com/nhle/kidpreneur-hub/internal/ui/command"
	"github.com/nhle/kidpreneur-hub/internal/ui/ideaform"
	"github.com/nhle/kidpreneur-hub/internal/ui/settings"
	"github.com/nhle/kidpreneur-hub/tests/testutil"
)

var testClock = time.UnixMilli(1_700_000_000_000)

func newTestApp(t *testing.T) (Model, *store.Adapter) {
	t.Helper()

	adapter, _ := testutil.NewTestAdapter(t)
	m := New(Options{
		Observer:     store.NewObserver(adapter),
		Now:          func() time.Time { return testClock },
		NewSessionID: func() string { return "session-1" },
	})
	t.Cleanup(func() { theme.SetDark(false) })

	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}), adapter
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func validRequest() model.CreateIdeaRequest {
	return model.CreateIdeaRequest{
		Name:     "Ava",
		Title:    "Lemonade drone",
		Problem:  "Thirsty neighbours",
		Solution: "Deliver lemonade by drone",
		Category: model.CategoryTech,
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	m, adapter := newTestApp(t)

	req := validRequest()
	req.Problem = "   "
	m = update(t, m, ideaform.SubmitMsg{Request: req})

	if len(m.State().Ideas) != 0 {
		t.Fatalf("ideas = %d, want 0", len(m.State().Ideas))
	}
	if !m.statusErr || !strings.Contains(m.statusMsg, "Problem") {
		t.Errorf("status = %q, want missing field feedback", m.statusMsg)
	}
	if got := m.create.Request(); got.Title != req.Title {
		t.Errorf("form lost its values: %+v", got)
	}

	ideas, err := adapter.LoadIdeas(context.Background())
	if err != nil {
		t.Fatalf("LoadIdeas: %v", err)
	}
	if len(ideas) != 0 {
		t.Errorf("persisted ideas = %d, want 0", len(ideas))
	}
}

func TestSubmitPrependsAndPersists(t *testing.T) {
	m, adapter := newTestApp(t)

	m = update(t, m, ideaform.SubmitMsg{Request: validRequest()})
	second := validRequest()
	second.Title = "Recycling robot"
	m = update(t, m, ideaform.SubmitMsg{Request: second})

	ideas := m.State().Ideas
	if len(ideas) != 2 {
		t.Fatalf("ideas = %d, want 2", len(ideas))
	}
	if ideas[0].Title != "Recycling robot" {
		t.Errorf("newest idea should be first, got %q", ideas[0].Title)
	}
	if ideas[0].ID <= ideas[1].ID {
		t.Errorf("IDs not increasing: %d then %d", ideas[1].ID, ideas[0].ID)
	}
	if !m.create.Request().IsZero() {
		t.Error("form not cleared after submission")
	}

	stored, err := adapter.LoadIdeas(context.Background())
	if err != nil {
		t.Fatalf("LoadIdeas: %v", err)
	}
	if len(stored) != 2 || stored[0].Title != "Recycling robot" {
		t.Errorf("stored = %+v", stored)
	}
}

func TestCancelKeepsDraft(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(t, m, runes("2"))

	req := validRequest()
	m = update(t, m, ideaform.CancelMsg{Request: req})

	if m.State().View != model.ViewHome {
		t.Errorf("view = %v, want home", m.State().View)
	}
	if m.State().Draft.Request.Title != req.Title {
		t.Errorf("draft lost: %+v", m.State().Draft.Request)
	}
	if !strings.Contains(m.statusMsg, "Draft kept") {
		t.Errorf("status = %q, want draft notice", m.statusMsg)
	}

	m = update(t, m, runes("2"))
	m = update(t, m, ideaform.CancelMsg{})
	if m.statusMsg != "" {
		t.Errorf("empty draft should not leave a status, got %q", m.statusMsg)
	}
	if len(m.State().Ideas) != 0 {
		t.Error("cancel must not add ideas")
	}
}

func TestLateImageIsDroppedAfterSubmit(t *testing.T) {
	m, _ := newTestApp(t)

	m = update(t, m, ideaform.ImageSelectedMsg{Path: "/tmp/cat.png"})
	ticket := state.ImageTicket{
		Generation: m.State().Draft.Generation,
		Seq:        m.State().Draft.ImageSeq,
		Path:       "/tmp/cat.png",
	}

	m = update(t, m, ideaform.SubmitMsg{Request: validRequest()})
	m = update(t, m, imagedata.LoadedMsg{Ticket: ticket, DataURL: "data:image/png;base64,AAAA"})

	if m.State().Ideas[0].HasImage() {
		t.Error("submitted idea should not have the late image")
	}
	if m.State().Draft.Request.Image != "" {
		t.Error("late image leaked into the fresh draft")
	}
}

func TestImageAttachedBeforeSubmit(t *testing.T) {
	m, _ := newTestApp(t)

	m = update(t, m, ideaform.ImageSelectedMsg{Path: "/tmp/cat.png"})
	ticket := state.ImageTicket{
		Generation: m.State().Draft.Generation,
		Seq:        m.State().Draft.ImageSeq,
		Path:       "/tmp/cat.png",
	}
	m = update(t, m, imagedata.LoadedMsg{Ticket: ticket, DataURL: "data:image/png;base64,AAAA"})
	m = update(t, m, ideaform.SubmitMsg{Request: validRequest()})

	if got := m.State().Ideas[0].Image; got != "data:image/png;base64,AAAA" {
		t.Errorf("image = %q", got)
	}
}

func TestSettingsPersistIndependently(t *testing.T) {
	m, adapter := newTestApp(t)
	ctx := context.Background()

	m = update(t, m, settings.ToggleThemeMsg{})
	if !theme.IsDark() {
		t.Error("dark palette not applied")
	}
	dark, err := adapter.LoadDarkMode(ctx)
	if err != nil || !dark {
		t.Errorf("LoadDarkMode = %v, %v", dark, err)
	}

	m = update(t, m, settings.SetSortMsg{Order: model.SortOldest})
	order, err := adapter.LoadSortOrder(ctx)
	if err != nil || order != model.SortOldest {
		t.Errorf("LoadSortOrder = %v, %v", order, err)
	}

	if _, ok, _ := adapter.KV().Get(ctx, store.KeyIdeas); ok {
		t.Error("preference changes should not write the idea collection")
	}
	if m.State().Prefs.SortOrder != model.SortOldest {
		t.Error("state not updated")
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	m, adapter := newTestApp(t)
	ctx := context.Background()

	m = update(t, m, ideaform.SubmitMsg{Request: validRequest()})

	m = update(t, m, settings.ResetMsg{Confirmed: false})
	if len(m.State().Ideas) != 1 {
		t.Fatal("declined reset removed ideas")
	}

	m = update(t, m, settings.ResetMsg{Confirmed: true})
	if len(m.State().Ideas) != 0 {
		t.Fatal("confirmed reset kept ideas")
	}
	if _, ok, err := adapter.KV().Get(ctx, store.KeyIdeas); err != nil || ok {
		t.Errorf("idea key should be removed, ok=%v err=%v", ok, err)
	}
}

type failingAuth struct{}

func (failingAuth) Authenticate(context.Context, model.AdminLoginRequest) error {
	return errors.New("keyring locked")
}

func TestAdminLogin(t *testing.T) {
	m, adapter := newTestApp(t)

	m = update(t, m, admin.LoginMsg{Request: model.AdminLoginRequest{Username: "shivr4m", Password: "nope"}})
	if m.State().Admin.LoggedIn {
		t.Fatal("wrong password logged in")
	}
	if !m.adminView.CapturesInput() {
		t.Error("alert should be showing")
	}

	m = update(t, m, admin.LoginMsg{Request: model.AdminLoginRequest{
		Username: auth.StaticUsername,
		Password: auth.StaticPassword,
	}})
	got := m.State().Admin
	if !got.LoggedIn || got.SessionID != "session-1" || got.Username != auth.StaticUsername {
		t.Errorf("admin session = %+v", got)
	}

	keys, err := adapter.KV().Keys(context.Background())
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("login must not be persisted, stored keys: %v", keys)
	}

	m = update(t, m, admin.LogoutMsg{})
	if m.State().Admin.LoggedIn {
		t.Error("logout did not clear the session")
	}
}

func TestAdminLoginBackendError(t *testing.T) {
	m, _ := newTestApp(t)
	m.auth = failingAuth{}

	m = update(t, m, admin.LoginMsg{Request: model.AdminLoginRequest{Username: "a", Password: "b"}})
	if m.State().Admin.LoggedIn {
		t.Fatal("backend error logged in")
	}
	if !m.statusErr || !strings.Contains(m.statusMsg, "keyring locked") {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestNavigationKeys(t *testing.T) {
	m, _ := newTestApp(t)

	m = update(t, m, runes("3"))
	if m.State().View != model.ViewSettings {
		t.Fatalf("view = %s, want settings", m.State().View)
	}

	m = update(t, m, runes("2"))
	if m.State().View != model.ViewCreate {
		t.Fatalf("view = %s, want create", m.State().View)
	}

	// Digits are typed into the form on the create view.
	m = update(t, m, runes("1"))
	if m.State().View != model.ViewCreate {
		t.Errorf("digit key navigated away from a text form")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.State().View != model.ViewHome {
		t.Errorf("ctrl+p from create = %s, want home", m.State().View)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if !m.State().SidebarCollapsed {
		t.Error("ctrl+b did not collapse the sidebar")
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q on home should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not produce tea.QuitMsg")
	}
}

func TestNavigationKeepsData(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(t, m, ideaform.SubmitMsg{Request: validRequest()})
	before := m.State().Ideas

	for _, v := range model.Views() {
		m = update(t, m, command.CommandMsg{Command: command.Command{Action: command.ActionNavigate, View: v}})
		if m.State().View != v {
			t.Errorf("navigate to %s landed on %s", v, m.State().View)
		}
		if len(m.State().Ideas) != len(before) || m.State().Ideas[0] != before[0] {
			t.Fatalf("navigating to %s changed the collection", v)
		}
	}
}

func TestOverlays(t *testing.T) {
	m, _ := newTestApp(t)

	m = update(t, m, runes("?"))
	if m.overlay != OverlayHelp {
		t.Fatal("? should open help")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help not rendered")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.overlay != OverlayNone {
		t.Error("esc should close help")
	}

	m = update(t, m, runes(":"))
	if m.overlay != OverlayCommand {
		t.Fatal(": should open the command palette")
	}
	m = update(t, m, command.CommandMsg{Command: command.Command{Action: command.ActionSetSort, Sort: model.SortOldest}})
	if m.overlay != OverlayNone || m.State().Prefs.SortOrder != model.SortOldest {
		t.Error("palette command not applied")
	}
}

func TestViewRendersFrame(t *testing.T) {
	m, _ := newTestApp(t)
	view := m.View()

	for _, want := range []string{"Kidpreneur Hub", "HOME", "No ideas yet. Be the first to submit!", "? help"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMissingFieldsMessage(t *testing.T) {
	got := missingFieldsMessage([]string{"title", "solution"})
	if got != "Please fill in: Title, Solution" {
		t.Errorf("missingFieldsMessage = %q", got)
	}
}
