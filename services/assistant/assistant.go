// Package assistant turns free text into task data. A remote generative
// model is tried first when configured; a keyword heuristic answers
// otherwise.
package assistant

import (
	"context"
	"time"

	"mydaytasks/model"
)

// Assistant is implemented by both the remote and the local strategy.
type Assistant interface {
	ParseNaturalLanguage(ctx context.Context, input string) (ParsedTask, error)
	EstimateTime(ctx context.Context, title, description string) (TimeEstimate, error)
	Breakdown(ctx context.Context, description string) (Breakdown, error)
}

type ParsedTask struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    model.Priority `json:"priority"`
	Category    model.Category `json:"category"`
	DueDate     *time.Time     `json:"dueDate,omitempty"`
}

type TimeEstimate struct {
	EstimatedMinutes int    `json:"estimatedMinutes"`
	Confidence       string `json:"confidence"` // low, medium or high
	Reasoning        string `json:"reasoning"`
}

type Subtask struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	EstimatedTime int            `json:"estimatedTime"` // minutes
	Priority      model.Priority `json:"priority"`
	Category      model.Category `json:"category"`
}

type Breakdown struct {
	Subtasks           []Subtask `json:"subtasks"`
	TotalEstimatedTime int       `json:"totalEstimatedTime"`
}

func totalMinutes(subtasks []Subtask) int {
	total := 0
	for _, st := range subtasks {
		total += st.EstimatedTime
	}
	return total
}
