package assistant

import (
	"context"
	"testing"
	"time"

	"mydaytasks/model"
)

var fixedNow = time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

func TestLocalParseNaturalLanguage(t *testing.T) {
	l := NewLocalWithClock(func() time.Time { return fixedNow })

	tests := []struct {
		input    string
		title    string
		priority model.Priority
		category model.Category
		due      time.Duration
		hasDue   bool
	}{
		{"Finish the office report ASAP", "Finish the office report ASAP", model.PriorityUrgent, model.CategoryWork, 0, false},
		{"important doctor visit tomorrow", "important doctor visit tomorrow", model.PriorityHigh, model.CategoryHealth, 24 * time.Hour, true},
		{"review budget, low priority, next week", "review budget, low priority, next week", model.PriorityLow, model.CategoryFinance, 7 * 24 * time.Hour, true},
		{"start the go course today", "start the go course today", model.PriorityMedium, model.CategoryLearning, 0, true},
		{"buy a phone and new shoes", "Buy new phone and shoes", model.PriorityMedium, model.CategoryPersonal, 0, false},
		{"shop for a phone", "Buy new phone", model.PriorityMedium, model.CategoryPersonal, 0, false},
		{"purchase shoes", "Buy new shoes", model.PriorityMedium, model.CategoryPersonal, 0, false},
		{"buy groceries", "Shopping task", model.PriorityMedium, model.CategoryPersonal, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := l.ParseNaturalLanguage(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tt.title {
				t.Errorf("title = %q, want %q", got.Title, tt.title)
			}
			if got.Description != "Task: "+tt.input {
				t.Errorf("description = %q", got.Description)
			}
			if got.Priority != tt.priority {
				t.Errorf("priority = %s, want %s", got.Priority, tt.priority)
			}
			if got.Category != tt.category {
				t.Errorf("category = %s, want %s", got.Category, tt.category)
			}
			if (got.DueDate != nil) != tt.hasDue {
				t.Fatalf("due = %v, want set=%v", got.DueDate, tt.hasDue)
			}
			if tt.hasDue && !got.DueDate.Equal(fixedNow.Add(tt.due)) {
				t.Errorf("due = %v, want %v", got.DueDate, fixedNow.Add(tt.due))
			}
		})
	}
}

func TestLocalEstimateTime(t *testing.T) {
	l := NewLocal()
	tests := []struct {
		title, desc string
		minutes     int
		confidence  string
	}{
		{"Quick call", "", 15, "high"},
		{"Research vendors", "", 60, "medium"},
		{"Trip", "organize the itinerary", 45, "medium"},
		{"Laundry", "", 30, "low"},
	}
	for _, tt := range tests {
		got, _ := l.EstimateTime(context.Background(), tt.title, tt.desc)
		if got.EstimatedMinutes != tt.minutes || got.Confidence != tt.confidence {
			t.Errorf("EstimateTime(%q) = %d/%s, want %d/%s", tt.title, got.EstimatedMinutes, got.Confidence, tt.minutes, tt.confidence)
		}
		if got.Reasoning == "" {
			t.Errorf("EstimateTime(%q) has no reasoning", tt.title)
		}
	}
}

func TestLocalBreakdown(t *testing.T) {
	l := NewLocal()
	tests := []struct {
		input string
		first string
		count int
		total int
	}{
		{"Plan the offsite", "Research and gather information", 3, 95},
		{"learn Go generics", "Review materials and resources", 3, 165},
		{"buy a new phone", "Research phone models and features", 4, 180},
		{"buy running shoes", "Determine shoe requirements", 4, 110},
		{"buy a lamp", "Research products and options", 3, 90},
		{"paint the fence", "Research and preparation", 3, 110},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := l.Breakdown(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got.Subtasks) != tt.count {
				t.Fatalf("got %d subtasks, want %d", len(got.Subtasks), tt.count)
			}
			if got.Subtasks[0].Title != tt.first {
				t.Errorf("first = %q, want %q", got.Subtasks[0].Title, tt.first)
			}
			if got.TotalEstimatedTime != tt.total {
				t.Errorf("total = %d, want %d", got.TotalEstimatedTime, tt.total)
			}
			for _, st := range got.Subtasks {
				if !st.Priority.Valid() || !st.Category.Valid() {
					t.Errorf("subtask %q has invalid enum values", st.Title)
				}
			}
		})
	}
}
