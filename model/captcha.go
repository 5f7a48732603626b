package model

type AssessmentResult struct {
	Score   float32  `json:"score"`
	Action  string   `json:"action"`
	Reasons []string `json:"reasons,omitempty"`
}
