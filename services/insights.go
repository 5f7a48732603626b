package services

import (
	"fmt"
	"math"
	"time"

	"mydaytasks/model"
)

type Insight struct {
	Type        string `json:"type"` // productivity, time, priority, category or recommendation
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       string `json:"value,omitempty"`
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// GenerateInsights summarises the task list as of now. An empty list has
// no insights.
func GenerateInsights(tasks []model.Task, now time.Time) []Insight {
	if len(tasks) == 0 {
		return []Insight{}
	}

	var completed, urgent, overdue, recent, dated int
	var ageDays float64
	priorities := map[model.Priority]int{}
	categories := map[model.Category]int{}

	for _, t := range tasks {
		priorities[t.Priority]++
		categories[t.Category]++
		if t.Completed {
			completed++
			ageDays += now.Sub(t.CreatedAt).Hours() / 24
		}
		if t.Priority == model.PriorityUrgent && !t.Completed {
			urgent++
		}
		if t.DueDate != nil {
			dated++
			if t.DueDate.Before(now) && !t.Completed {
				overdue++
			}
		}
		if t.CreatedAt.After(now.Add(-7 * 24 * time.Hour)) {
			recent++
		}
	}

	total := len(tasks)
	var out []Insight

	rate := float64(completed) / float64(total) * 100
	desc := "Consider breaking down complex tasks"
	switch {
	case rate >= 70:
		desc = "Excellent productivity!"
	case rate >= 50:
		desc = "Good progress, keep it up!"
	}
	out = append(out, Insight{Type: "productivity", Title: "Completion Rate", Description: desc, Value: fmt.Sprintf("%.1f%%", rate)})

	avg := 0
	if completed > 0 {
		avg = int(math.Round(ageDays / float64(completed)))
	}
	if avg > 0 {
		out = append(out, Insight{Type: "time", Title: "Average Task Duration",
			Description: fmt.Sprintf("Tasks typically take %d days to complete", avg), Value: fmt.Sprintf("%dd", avg)})
	} else {
		out = append(out, Insight{Type: "time", Title: "Average Task Duration",
			Description: "Track your task completion times for better planning", Value: "N/A"})
	}

	top := model.PriorityLow
	for _, p := range []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent} {
		if priorities[p] > priorities[top] {
			top = p
		}
	}
	out = append(out, Insight{Type: "priority", Title: "Priority Focus",
		Description: fmt.Sprintf("Most tasks are %s priority. %s", top, priorityAdvice(top)),
		Value:       fmt.Sprintf("%.0f%%", float64(priorities[top])/float64(total)*100)})

	out = append(out, Insight{Type: "category", Title: "Category Balance",
		Description: categoryAdvice(categories, total), Value: fmt.Sprint(len(categories))})

	if urgent > 0 {
		out = append(out, Insight{Type: "recommendation", Title: "Urgent Tasks Alert",
			Description: fmt.Sprintf("You have %d urgent task%s pending. Focus on these first!", urgent, plural(urgent)),
			Value:       fmt.Sprint(urgent)})
	}
	if overdue > 0 {
		out = append(out, Insight{Type: "recommendation", Title: "Overdue Tasks",
			Description: fmt.Sprintf("You have %d overdue task%s. Consider rescheduling or delegating.", overdue, plural(overdue)),
			Value:       fmt.Sprint(overdue)})
	}

	var tips []string
	switch {
	case total > 20:
		tips = append(tips, "You have many tasks. Consider batch processing similar tasks.")
	case total < 5:
		tips = append(tips, "Low task volume. Great time to plan and set new goals!")
	}
	if recent > 10 {
		tips = append(tips, "High task creation rate. Focus on completion over creation.")
	}
	if float64(dated) < float64(total)*0.3 {
		tips = append(tips, "Add due dates to more tasks for better time management.")
	}
	if len(tips) > 2 {
		tips = tips[:2]
	}
	for _, tip := range tips {
		out = append(out, Insight{Type: "recommendation", Title: "Smart Tip", Description: tip})
	}

	return out
}

func priorityAdvice(p model.Priority) string {
	switch p {
	case model.PriorityUrgent:
		return "Consider if all tasks truly need urgent attention."
	case model.PriorityHigh:
		return "Good focus on important tasks."
	case model.PriorityMedium:
		return "Balanced approach to task prioritization."
	case model.PriorityLow:
		return "Consider elevating important tasks to higher priority."
	}
	return ""
}

func categoryAdvice(counts map[model.Category]int, total int) string {
	maxCat := model.Categories[0]
	for _, c := range model.Categories {
		if counts[c] > counts[maxCat] {
			maxCat = c
		}
	}
	pct := float64(counts[maxCat]) / float64(total) * 100
	switch {
	case pct > 60:
		return fmt.Sprintf("Heavy focus on %s. Consider diversifying your tasks.", maxCat)
	case pct < 20:
		return "Good balance across categories."
	}
	return "Well-distributed task categories."
}
