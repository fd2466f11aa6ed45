package idealist

import (
	"strings"
	"testing"

	"github.com/nhle/kidpreneur-hub/internal/keys"
	"github.com/nhle/kidpreneur-hub/internal/model"
)

func TestEmptyCollection(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 80, 30)
	m.SetIdeas(nil, model.SortNewest)

	view := m.View()
	if !strings.Contains(view, EmptyText) {
		t.Errorf("empty view missing %q", EmptyText)
	}
	if !strings.Contains(view, "Kidpreneur Hub") {
		t.Error("headline missing")
	}
}

func TestIdeasFollowSortOrder(t *testing.T) {
	stored := []model.Idea{
		{ID: 3, Title: "c"},
		{ID: 1, Title: "a"},
		{ID: 2, Title: "b"},
	}

	tests := []struct {
		order model.SortOrder
		want  []int64
	}{
		{model.SortNewest, []int64{3, 2, 1}},
		{model.SortOldest, []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		m := New(keys.DefaultKeyMap(), 80, 30)
		m.SetIdeas(stored, tt.order)

		got := m.Ideas()
		for i, idea := range got {
			if idea.ID != tt.want[i] {
				t.Errorf("%s: position %d = %d, want %d", tt.order, i, idea.ID, tt.want[i])
			}
		}
		if stored[0].ID != 3 || stored[1].ID != 1 {
			t.Fatal("SetIdeas mutated the stored order")
		}
	}
}

func TestRenderCardOptionalLines(t *testing.T) {
	bare := RenderCard(model.Idea{ID: 1, Title: "Lemonade", Problem: "thirst", Solution: "lemons"}, 60)
	for _, absent := range []string{"By:", "Category:", "🖼"} {
		if strings.Contains(bare, absent) {
			t.Errorf("bare card unexpectedly contains %q", absent)
		}
	}
	for _, want := range []string{"Lemonade", "Problem:", "thirst", "Solution:", "lemons"} {
		if !strings.Contains(bare, want) {
			t.Errorf("bare card missing %q", want)
		}
	}

	full := RenderCard(model.Idea{
		ID:       2,
		Name:     "Ava",
		Title:    "Robot",
		Problem:  "chores",
		Solution: "robots",
		Category: model.CategoryTech,
		Image:    "data:image/png;base64,AAAA",
	}, 60)
	for _, want := range []string{"By:", "Ava", "Category:", "Tech", "image/png", "3 B"} {
		if !strings.Contains(full, want) {
			t.Errorf("full card missing %q", want)
		}
	}
}
