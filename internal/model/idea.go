package model

import "strings"

// Category is one of the fixed idea categories. The empty string means
// no category was chosen.
type Category string

// Category constants, in the order they are offered on the create form.
const (
	CategoryNone        Category = ""
	CategoryTech        Category = "Tech"
	CategoryEducation   Category = "Education"
	CategoryEnvironment Category = "Environment"
	CategoryFun         Category = "Fun"
)

// Categories returns the selectable categories in display order.
// CategoryNone is not included.
func Categories() []Category {
	return []Category{
		CategoryTech,
		CategoryEducation,
		CategoryEnvironment,
		CategoryFun,
	}
}

// Valid reports whether c is empty or one of the fixed categories.
func (c Category) Valid() bool {
	if c == CategoryNone {
		return true
	}
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Idea is a single submitted startup idea card. Ideas are never edited
// after creation.
//
// The JSON layout is the persisted record format and must stay stable.
type Idea struct {
	// ID is the Unix millisecond timestamp assigned at submission.
	ID int64 `json:"id"`

	// Name is the optional author name.
	Name string `json:"name"`

	Title    string `json:"title"`
	Problem  string `json:"problem"`
	Solution string `json:"solution"`

	Category Category `json:"category"`

	// Image is an optional data URL ("data:image/png;base64,...").
	Image string `json:"image"`
}

// HasImage reports whether an image is attached.
func (i Idea) HasImage() bool {
	return strings.TrimSpace(i.Image) != ""
}
