package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCreateIdeaRequestMissing(t *testing.T) {
	tests := []struct {
		name string
		req  CreateIdeaRequest
		want []string
	}{
		{
			name: "all present",
			req:  CreateIdeaRequest{Title: "t", Problem: "p", Solution: "s"},
			want: nil,
		},
		{
			name: "blank title",
			req:  CreateIdeaRequest{Problem: "p", Solution: "s"},
			want: []string{"title"},
		},
		{
			name: "whitespace counts as blank",
			req:  CreateIdeaRequest{Title: "t", Problem: "  \n", Solution: "s"},
			want: []string{"problem"},
		},
		{
			name: "optional fields do not help",
			req:  CreateIdeaRequest{Name: "Ann", Category: CategoryFun},
			want: []string{"title", "problem", "solution"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Missing()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Missing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := map[string]SortOrder{
		"newest": SortNewest,
		"oldest": SortOldest,
		"":       SortNewest,
		"bogus":  SortNewest,
	}
	for in, want := range tests {
		if got := ParseSortOrder(in); got != want {
			t.Errorf("ParseSortOrder(%q) = %q, want %q", in, got, want)
		}
	}

	if SortNewest.Toggle() != SortOldest || SortOldest.Toggle() != SortNewest {
		t.Error("Toggle should flip between newest and oldest")
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if !CategoryNone.Valid() {
		t.Error("empty category should be valid")
	}
	if Category("Cooking").Valid() {
		t.Error("unknown category should be invalid")
	}
}

func TestViewNavigation(t *testing.T) {
	if ViewAdmin.Next() != ViewHome {
		t.Errorf("ViewAdmin.Next() = %v, want home", ViewAdmin.Next())
	}
	if ViewHome.Prev() != ViewAdmin {
		t.Errorf("ViewHome.Prev() = %v, want admin", ViewHome.Prev())
	}

	for _, v := range Views() {
		parsed, ok := ParseView(v.String())
		if !ok || parsed != v {
			t.Errorf("ParseView(%q) = %v, %v", v.String(), parsed, ok)
		}
	}
	if _, ok := ParseView("dashboard"); ok {
		t.Error("ParseView should reject unknown names")
	}
}

// The JSON field names are the persisted layout shared with existing data.
func TestIdeaJSONFieldNames(t *testing.T) {
	raw := `{"id":1700000000000,"name":"Ann","title":"Lemonade Bot","problem":"Hot days","solution":"Robot lemonade stand","category":"Tech","image":""}`

	var idea Idea
	if err := json.Unmarshal([]byte(raw), &idea); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := Idea{
		ID:       1700000000000,
		Name:     "Ann",
		Title:    "Lemonade Bot",
		Problem:  "Hot days",
		Solution: "Robot lemonade stand",
		Category: CategoryTech,
	}
	if idea != want {
		t.Errorf("got %+v, want %+v", idea, want)
	}
	if idea.HasImage() {
		t.Error("HasImage() should be false for empty image")
	}
}
