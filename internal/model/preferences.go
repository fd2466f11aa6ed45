package model

// SortOrder controls the presentation order of the idea list.
type SortOrder string

// Sort order constants. The string values are persisted as-is.
const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// ParseSortOrder converts a persisted string to a SortOrder.
// Unknown values fall back to SortNewest.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortOldest:
		return SortOldest
	default:
		return SortNewest
	}
}

// Toggle returns the opposite sort order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortOldest {
		return SortNewest
	}
	return SortOldest
}

// Label returns the human readable label shown in settings.
func (o SortOrder) Label() string {
	if o == SortOldest {
		return "Oldest First"
	}
	return "Newest First"
}

// Preferences holds the persisted UI settings. Each field is stored
// under its own key, independently of the idea collection.
type Preferences struct {
	DarkMode  bool      `json:"dark_mode"`
	SortOrder SortOrder `json:"sort_order"`
}

// DefaultPreferences returns the preferences used when nothing is stored:
// light theme, newest first.
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:  false,
		SortOrder: SortNewest,
	}
}
