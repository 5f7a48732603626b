package assistant

import (
	"context"
	"strings"
	"time"

	"mydaytasks/model"
)

// Local answers every request from keyword rules. It never fails.
type Local struct {
	now func() time.Time
}

func NewLocal() *Local {
	return &Local{now: time.Now}
}

// NewLocalWithClock is NewLocal with a fixed time source for relative due
// dates.
func NewLocalWithClock(now func() time.Time) *Local {
	return &Local{now: now}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func (l *Local) ParseNaturalLanguage(ctx context.Context, input string) (ParsedTask, error) {
	lower := strings.ToLower(input)

	priority := model.PriorityMedium
	switch {
	case containsAny(lower, "urgent", "asap"):
		priority = model.PriorityUrgent
	case containsAny(lower, "high priority", "important"):
		priority = model.PriorityHigh
	case containsAny(lower, "low priority", "not urgent"):
		priority = model.PriorityLow
	}

	category := model.CategoryPersonal
	switch {
	case containsAny(lower, "work", "job", "office"):
		category = model.CategoryWork
	case containsAny(lower, "health", "exercise", "doctor"):
		category = model.CategoryHealth
	case containsAny(lower, "money", "finance", "budget"):
		category = model.CategoryFinance
	case containsAny(lower, "learn", "study", "course"):
		category = model.CategoryLearning
	}

	var due *time.Time
	now := l.now()
	switch {
	case strings.Contains(lower, "today"):
		due = &now
	case strings.Contains(lower, "tomorrow"):
		d := now.Add(24 * time.Hour)
		due = &d
	case strings.Contains(lower, "next week"):
		d := now.Add(7 * 24 * time.Hour)
		due = &d
	}

	title := input
	if containsAny(lower, "buy", "shop", "purchase") {
		phone := strings.Contains(lower, "phone")
		shoes := strings.Contains(lower, "shoes")
		switch {
		case phone && shoes:
			title = "Buy new phone and shoes"
		case phone:
			title = "Buy new phone"
		case shoes:
			title = "Buy new shoes"
		default:
			title = "Shopping task"
		}
	}

	return ParsedTask{
		Title:       title,
		Description: "Task: " + input,
		Priority:    priority,
		Category:    category,
		DueDate:     due,
	}, nil
}

func (l *Local) EstimateTime(ctx context.Context, title, description string) (TimeEstimate, error) {
	text := strings.ToLower(title + " " + description)

	switch {
	case containsAny(text, "quick", "simple", "easy"):
		return TimeEstimate{EstimatedMinutes: 15, Confidence: "high", Reasoning: "Task appears to be simple and straightforward"}, nil
	case containsAny(text, "research", "study", "learn"):
		return TimeEstimate{EstimatedMinutes: 60, Confidence: "medium", Reasoning: "Learning and research tasks typically take 45-90 minutes"}, nil
	case containsAny(text, "plan", "organize", "prepare"):
		return TimeEstimate{EstimatedMinutes: 45, Confidence: "medium", Reasoning: "Planning tasks usually require 30-60 minutes"}, nil
	}
	return TimeEstimate{EstimatedMinutes: 30, Confidence: "low", Reasoning: "Default estimation based on typical task duration"}, nil
}

func sub(title, description string, minutes int, p model.Priority, c model.Category) Subtask {
	return Subtask{Title: title, Description: description, EstimatedTime: minutes, Priority: p, Category: c}
}

func (l *Local) Breakdown(ctx context.Context, description string) (Breakdown, error) {
	lower := strings.ToLower(description)

	const (
		medium = model.PriorityMedium
		high   = model.PriorityHigh
	)

	var subtasks []Subtask
	switch {
	case containsAny(lower, "plan", "organize"):
		subtasks = []Subtask{
			sub("Research and gather information", "Collect all necessary details and requirements", 30, high, model.CategoryWork),
			sub("Create timeline and milestones", "Break down the project into phases with deadlines", 45, high, model.CategoryWork),
			sub("Assign responsibilities", "Determine who will handle each part of the task", 20, medium, model.CategoryWork),
		}
	case containsAny(lower, "study", "learn"):
		subtasks = []Subtask{
			sub("Review materials and resources", "Go through study materials and identify key concepts", 60, high, model.CategoryLearning),
			sub("Create study schedule", "Plan study sessions and allocate time for practice", 15, medium, model.CategoryLearning),
			sub("Practice and apply knowledge", "Complete exercises and apply what you've learned", 90, high, model.CategoryLearning),
		}
	case containsAny(lower, "buy", "shop", "purchase"):
		switch {
		case strings.Contains(lower, "phone"):
			subtasks = []Subtask{
				sub("Research phone models and features", "Compare different phone brands, models, and specifications", 45, high, model.CategoryPersonal),
				sub("Check prices and deals", "Compare prices across different stores and online retailers", 30, medium, model.CategoryFinance),
				sub("Visit stores or order online", "Go to physical stores or place online order", 60, high, model.CategoryPersonal),
				sub("Set up and transfer data", "Configure new phone and transfer contacts/apps", 45, medium, model.CategoryPersonal),
			}
		case strings.Contains(lower, "shoes"):
			subtasks = []Subtask{
				sub("Determine shoe requirements", "Identify style, size, comfort, and purpose needed", 15, medium, model.CategoryPersonal),
				sub("Research brands and styles", "Look for shoes that match your requirements and budget", 30, medium, model.CategoryPersonal),
				sub("Try on and test comfort", "Visit stores to try different pairs and walk around", 45, high, model.CategoryPersonal),
				sub("Make purchase decision", "Choose the best option and complete the purchase", 20, high, model.CategoryFinance),
			}
		default:
			subtasks = []Subtask{
				sub("Research products and options", "Compare different products, brands, and prices", 30, medium, model.CategoryPersonal),
				sub("Set budget and priorities", "Determine how much to spend and what's most important", 15, high, model.CategoryFinance),
				sub("Make purchase", "Buy the selected items from chosen retailer", 45, high, model.CategoryPersonal),
			}
		}
	default:
		subtasks = []Subtask{
			sub("Research and preparation", "Gather information and prepare necessary resources", 30, medium, model.CategoryWork),
			sub("Execute main task", "Complete the primary objective", 60, high, model.CategoryWork),
			sub("Review and refine", "Check results and make improvements if needed", 20, medium, model.CategoryWork),
		}
	}

	return Breakdown{Subtasks: subtasks, TotalEstimatedTime: totalMinutes(subtasks)}, nil
}
