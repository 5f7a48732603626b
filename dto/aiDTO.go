package dto

import "mydaytasks/model"

type ParseRequest struct {
	Input string `json:"input" binding:"required"`
}

type EstimateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type BreakdownRequest struct {
	Description string `json:"description" binding:"required"`
}

type SubtaskItem struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Priority    model.Priority `json:"priority" binding:"omitempty,priority"`
	Category    model.Category `json:"category" binding:"omitempty,category"`
}

// SubtasksRequest adds subtasks as tasks. With AfterID set they are inserted
// in order behind that task, each linked to the one after it.
type SubtasksRequest struct {
	Subtasks []SubtaskItem `json:"subtasks" binding:"required,min=1,dive"`
	AfterID  string        `json:"afterId"`
}
