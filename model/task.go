package model

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// PriorityValues maps each priority to its rank, higher is more important.
var PriorityValues = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

// Rank returns the priority rank, 0 for an unknown priority.
func (p Priority) Rank() int {
	return PriorityValues[p]
}

func (p Priority) Valid() bool {
	_, ok := PriorityValues[p]
	return ok
}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryFinance  Category = "finance"
	CategoryLearning Category = "learning"
)

// Categories lists the closed set of categories in display order.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryHealth,
	CategoryFinance,
	CategoryLearning,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Task struct {
	ID          string     `json:"id" firestore:"id"`
	Title       string     `json:"title" firestore:"title"`
	Description string     `json:"description" firestore:"description"`
	Completed   bool       `json:"completed" firestore:"completed"`
	Priority    Priority   `json:"priority" firestore:"priority"`
	Category    Category   `json:"category" firestore:"category"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"createdat"`
	DueDate     *time.Time `json:"dueDate,omitempty" firestore:"duedate,omitempty"`
	Next        string     `json:"next,omitempty" firestore:"next,omitempty"` // id of the task that follows this one
}

// TaskPatch is a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title        *string
	Description  *string
	Completed    *bool
	Priority     *Priority
	Category     *Category
	DueDate      *time.Time
	ClearDueDate bool
	Next         *string
}

// Apply returns a copy of t with the patch merged in.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.Next != nil {
		t.Next = *p.Next
	}
	return t
}

type SortOption string

const (
	SortByPriority         SortOption = "priority"
	SortByDueDate          SortOption = "dueDate"
	SortByCreationDate     SortOption = "creationDate"
	SortByTitle            SortOption = "title"
	SortByCategory         SortOption = "category"
	SortByCompletionStatus SortOption = "completionStatus"
)

func (s SortOption) Valid() bool {
	switch s {
	case SortByPriority, SortByDueDate, SortByCreationDate, SortByTitle, SortByCategory, SortByCompletionStatus:
		return true
	}
	return false
}
