package dto

import (
	"time"

	"mydaytasks/model"
)

type CreateTaskRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Priority    model.Priority `json:"priority" binding:"omitempty,priority"`
	Category    model.Category `json:"category" binding:"omitempty,category"`
	DueDate     *time.Time     `json:"dueDate"`
	Completed   bool           `json:"completed"`
}

type UpdateTaskRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Completed    *bool           `json:"completed"`
	Priority     *model.Priority `json:"priority" binding:"omitempty,priority"`
	Category     *model.Category `json:"category" binding:"omitempty,category"`
	DueDate      *time.Time      `json:"dueDate"`
	ClearDueDate bool            `json:"clearDueDate"`
	Next         *string         `json:"next"`
}

func (r UpdateTaskRequest) Patch() model.TaskPatch {
	return model.TaskPatch{
		Title:        r.Title,
		Description:  r.Description,
		Completed:    r.Completed,
		Priority:     r.Priority,
		Category:     r.Category,
		DueDate:      r.DueDate,
		ClearDueDate: r.ClearDueDate,
		Next:         r.Next,
	}
}

type TaskQuery struct {
	Query    string           `form:"q"`
	Category model.Category   `form:"category" binding:"omitempty,category"`
	Priority model.Priority   `form:"priority" binding:"omitempty,priority"`
	Sort     model.SortOption `form:"sort" binding:"omitempty,sortoption"`
}
