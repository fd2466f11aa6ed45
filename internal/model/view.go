package model

import "strings"

// View selects which of the four panels is rendered.
type View int

const (
	ViewHome View = iota
	ViewCreate
	ViewSettings
	ViewAdmin
)

// Views returns every view in navigation order.
func Views() []View {
	return []View{ViewHome, ViewCreate, ViewSettings, ViewAdmin}
}

// String returns the lowercase view name.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewCreate:
		return "create"
	case ViewSettings:
		return "settings"
	case ViewAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// ParseView resolves a view by name. The second result is false for
// unknown names.
func ParseView(s string) (View, bool) {
	for _, v := range Views() {
		if strings.EqualFold(strings.TrimSpace(s), v.String()) {
			return v, true
		}
	}
	return ViewHome, false
}

// Next returns the view after v, wrapping around.
func (v View) Next() View {
	views := Views()
	return views[(int(v)+1)%len(views)]
}

// Prev returns the view before v, wrapping around.
func (v View) Prev() View {
	views := Views()
	return views[(int(v)-1+len(views))%len(views)]
}
