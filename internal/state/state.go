// Package state holds the application state as an immutable snapshot and
// the pure transition functions applied to it. Every transition returns a
// new State; slices reachable from an existing State are never modified.
package state

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nhle/kidpreneur-hub/internal/model"
)

// ErrMissingFields is returned by SubmitIdea when a required field is blank.
var ErrMissingFields = errors.New("required fields missing")

// AdminSession is the session-only admin login flag. It is never persisted.
type AdminSession struct {
	LoggedIn  bool
	SessionID string
	Username  string
}

// State is a snapshot of everything the application shell owns.
type State struct {
	// Ideas is the stored collection, most recently created first.
	Ideas []model.Idea

	Prefs model.Preferences

	View             model.View
	SidebarCollapsed bool

	Admin AdminSession
	Draft Draft
}

// Initial builds the startup state from loaded data: home view, expanded
// sidebar, admin logged out, empty draft.
func Initial(ideas []model.Idea, prefs model.Preferences) State {
	return State{
		Ideas: slices.Clone(ideas),
		Prefs: prefs,
		View:  model.ViewHome,
	}
}

// SubmitIdea validates the draft and, if every required field is present,
// prepends a new idea and clears the draft. On a missing field s is
// returned unchanged together with an error wrapping ErrMissingFields.
func SubmitIdea(s State, now time.Time) (State, model.Idea, error) {
	req := s.Draft.Request
	if missing := req.Missing(); len(missing) > 0 {
		return s, model.Idea{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	idea := req.ToIdea(nextID(s.Ideas, now))

	ideas := make([]model.Idea, 0, len(s.Ideas)+1)
	ideas = append(ideas, idea)
	ideas = append(ideas, s.Ideas...)

	s.Ideas = ideas
	s.Draft = s.Draft.reset()
	return s, idea, nil
}

// nextID derives a timestamp ID that stays strictly greater than the
// newest existing ID, so two submissions within the same millisecond
// still sort deterministically.
func nextID(ideas []model.Idea, now time.Time) int64 {
	id := now.UnixMilli()
	for _, existing := range ideas {
		if existing.ID >= id {
			id = existing.ID + 1
		}
	}
	return id
}

// ResetIdeas asks confirm whether to delete every idea. On yes the
// collection is emptied; on no s is returned unchanged. The second result
// reports whether the reset happened.
func ResetIdeas(s State, confirm func() bool) (State, bool) {
	if confirm == nil || !confirm() {
		return s, false
	}
	s.Ideas = nil
	return s, true
}

// ToggleTheme flips the dark mode preference.
func ToggleTheme(s State) State {
	s.Prefs.DarkMode = !s.Prefs.DarkMode
	return s
}

// SetSortOrder sets the list presentation order. Stored order is untouched.
func SetSortOrder(s State, order model.SortOrder) State {
	s.Prefs.SortOrder = model.ParseSortOrder(string(order))
	return s
}

// Navigate switches the active view. Any view is reachable from any other.
func Navigate(s State, v model.View) State {
	s.View = v
	return s
}

// ToggleSidebar collapses or expands the sidebar for this session.
func ToggleSidebar(s State) State {
	s.SidebarCollapsed = !s.SidebarCollapsed
	return s
}

// LoginAdmin marks the admin session as logged in.
func LoginAdmin(s State, username, sessionID string) State {
	s.Admin = AdminSession{
		LoggedIn:  true,
		SessionID: sessionID,
		Username:  username,
	}
	return s
}

// LogoutAdmin clears the admin session.
func LogoutAdmin(s State) State {
	s.Admin = AdminSession{}
	return s
}

// SortIdeas returns a copy of ideas ordered by ID, descending for
// SortNewest and ascending for SortOldest. Equal IDs keep their stored
// relative order.
func SortIdeas(ideas []model.Idea, order model.SortOrder) []model.Idea {
	sorted := slices.Clone(ideas)
	slices.SortStableFunc(sorted, func(a, b model.Idea) int {
		if order == model.SortOldest {
			return compareID(a.ID, b.ID)
		}
		return compareID(b.ID, a.ID)
	})
	return sorted
}

func compareID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
