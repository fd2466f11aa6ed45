package model

import "strings"

// CreateIdeaRequest is the editable idea draft submitted from the create form.
type CreateIdeaRequest struct {
	Name     string
	Title    string
	Problem  string
	Solution string
	Category Category
	Image    string
}

// Missing returns the names of required fields that are blank, in form
// order. Whitespace-only values count as blank.
func (r CreateIdeaRequest) Missing() []string {
	var missing []string
	if strings.TrimSpace(r.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(r.Problem) == "" {
		missing = append(missing, "problem")
	}
	if strings.TrimSpace(r.Solution) == "" {
		missing = append(missing, "solution")
	}
	return missing
}

// IsZero reports whether no field of the draft has been filled in.
func (r CreateIdeaRequest) IsZero() bool {
	return r == CreateIdeaRequest{}
}

// ToIdea builds an Idea with the given ID from the request.
func (r CreateIdeaRequest) ToIdea(id int64) Idea {
	return Idea{
		ID:       id,
		Name:     r.Name,
		Title:    r.Title,
		Problem:  r.Problem,
		Solution: r.Solution,
		Category: r.Category,
		Image:    r.Image,
	}
}

// AdminLoginRequest carries the credentials typed into the admin login form.
type AdminLoginRequest struct {
	Username string
	Password string
}
