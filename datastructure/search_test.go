package datastructure

import (
	"testing"
	"time"

	"mydaytasks/model"
)

func titled(titles ...string) []model.Task {
	out := make([]model.Task, len(titles))
	for i, title := range titles {
		out[i] = model.Task{ID: title, Title: title}
	}
	return out
}

func TestSearch(t *testing.T) {
	tasks := titled("Buy milk", "Call bank", "Book flight")
	tasks = append(tasks, model.Task{ID: "gym", Title: "Gym", Description: "Leg day with the trainer"})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"prefix match", "bo", []string{"Book flight"}},
		{"case insensitive", "BOOK", []string{"Book flight"}},
		{"substring fallback", "milk", []string{"Buy milk"}},
		{"description fallback", "trainer", []string{"gym"}},
		{"no match", "zz-no-match", nil},
		{"empty query", "", []string{"Book flight", "Buy milk", "Call bank", "gym"}},
		{"blank query", "   ", []string{"Book flight", "Buy milk", "Call bank", "gym"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Search(tasks, tt.query))
			if !equalIDs(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearchCollectsAdjacentPrefixMatches(t *testing.T) {
	tasks := titled("Report draft", "Read book", "Reading list", "Rest", "Apple")
	got := ids(Search(tasks, "rea"))
	if len(got) != 2 {
		t.Fatalf("Search(rea) = %v, want two matches", got)
	}
	seen := map[string]bool{}
	for _, id := range got {
		seen[id] = true
	}
	if !seen["Read book"] || !seen["Reading list"] {
		t.Errorf("Search(rea) = %v", got)
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	tasks := titled("c", "a", "b")
	Search(tasks, "a")
	if got := ids(tasks); !equalIDs(got, []string{"c", "a", "b"}) {
		t.Errorf("input reordered to %v", got)
	}
}

func TestByDueDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day := func(n int) *time.Time {
		d := now.AddDate(0, 0, n)
		return &d
	}
	tasks := []model.Task{
		{ID: "none1"},
		{ID: "late", DueDate: day(10)},
		{ID: "none2"},
		{ID: "soon", DueDate: day(1)},
		{ID: "mid", DueDate: day(5)},
	}

	got := ByDueDate(tasks)
	if g := ids(got[:3]); !equalIDs(g, []string{"soon", "mid", "late"}) {
		t.Errorf("dated order = %v", g)
	}
	for _, tk := range got[3:] {
		if tk.DueDate != nil {
			t.Errorf("dated task %s sorted after undated", tk.ID)
		}
	}
	if tasks[0].ID != "none1" {
		t.Error("input was mutated")
	}
}

func TestSorters(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "1", Title: "beta", Priority: model.PriorityLow, Category: model.CategoryWork, CreatedAt: base, Completed: true},
		{ID: "2", Title: "Alpha", Priority: model.PriorityUrgent, Category: model.CategoryFinance, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "3", Title: "gamma", Priority: model.PriorityHigh, Category: model.CategoryHealth, CreatedAt: base.Add(time.Hour)},
	}

	tests := []struct {
		opt  model.SortOption
		want []string
	}{
		{model.SortByPriority, []string{"2", "3", "1"}},
		{model.SortByCreationDate, []string{"2", "3", "1"}},
		{model.SortByTitle, []string{"2", "1", "3"}},
		{model.SortByCategory, []string{"2", "3", "1"}},
		{model.SortByCompletionStatus, []string{"2", "3", "1"}},
		{model.SortOption("bogus"), []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.opt), func(t *testing.T) {
			if got := ids(Sort(tasks, tt.opt)); !equalIDs(got, tt.want) {
				t.Errorf("Sort(%s) = %v, want %v", tt.opt, got, tt.want)
			}
		})
	}
}
