package services

import (
	"strings"
	"testing"
	"time"

	"mydaytasks/model"
)

func findInsight(insights []Insight, title string) (Insight, bool) {
	for _, in := range insights {
		if in.Title == title {
			return in, true
		}
	}
	return Insight{}, false
}

func TestGenerateInsightsEmpty(t *testing.T) {
	if got := GenerateInsights(nil, time.Now()); len(got) != 0 {
		t.Errorf("expected no insights, got %d", len(got))
	}
}

func TestGenerateInsights(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	tasks := []model.Task{
		{ID: "1", Priority: model.PriorityUrgent, Category: model.CategoryWork, CreatedAt: now.Add(-4 * 24 * time.Hour), Completed: true},
		{ID: "2", Priority: model.PriorityUrgent, Category: model.CategoryWork, CreatedAt: now},
		{ID: "3", Priority: model.PriorityLow, Category: model.CategoryWork, CreatedAt: now, DueDate: &past},
		{ID: "4", Priority: model.PriorityUrgent, Category: model.CategoryHealth, CreatedAt: now, Completed: true},
	}

	got := GenerateInsights(tasks, now)

	rate, ok := findInsight(got, "Completion Rate")
	if !ok || rate.Value != "50.0%" || rate.Description != "Good progress, keep it up!" {
		t.Errorf("completion rate = %+v", rate)
	}

	dur, _ := findInsight(got, "Average Task Duration")
	if dur.Value != "2d" {
		t.Errorf("average duration = %+v", dur)
	}

	focus, _ := findInsight(got, "Priority Focus")
	if !strings.HasPrefix(focus.Description, "Most tasks are urgent priority.") || focus.Value != "75%" {
		t.Errorf("priority focus = %+v", focus)
	}

	balance, _ := findInsight(got, "Category Balance")
	if balance.Description != "Heavy focus on work. Consider diversifying your tasks." {
		t.Errorf("category balance = %+v", balance)
	}

	urgent, ok := findInsight(got, "Urgent Tasks Alert")
	if !ok || urgent.Value != "1" || !strings.Contains(urgent.Description, "1 urgent task pending") {
		t.Errorf("urgent alert = %+v", urgent)
	}

	overdue, ok := findInsight(got, "Overdue Tasks")
	if !ok || overdue.Value != "1" {
		t.Errorf("overdue alert = %+v", overdue)
	}

	var tips []string
	for _, in := range got {
		if in.Title == "Smart Tip" {
			tips = append(tips, in.Description)
		}
	}
	if len(tips) != 2 {
		t.Fatalf("tips = %v", tips)
	}
	if !strings.HasPrefix(tips[0], "Low task volume") || !strings.HasPrefix(tips[1], "Add due dates") {
		t.Errorf("tips = %v", tips)
	}
}
