package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"google.golang.org/genai"

	"mydaytasks/model"
)

const defaultGeminiModel = "gemini-pro"

var (
	ErrNoJSON        = errors.New("no JSON found in response")
	ErrEmptyResponse = errors.New("empty response from model")
)

var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

// Gemini asks the Gemini API. Each call is a single request with no retry;
// callers are expected to fall back on error.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// GeminiOption adjusts the client config before the client is built.
type GeminiOption func(*genai.ClientConfig)

// WithBaseURL sends requests to url instead of the public endpoint.
func WithBaseURL(url string) GeminiOption {
	return func(cc *genai.ClientConfig) { cc.HTTPOptions.BaseURL = url }
}

func WithHTTPClient(c *http.Client) GeminiOption {
	return func(cc *genai.ClientConfig) { cc.HTTPClient = c }
}

func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration, opts ...GeminiOption) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cc)
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model, timeout: timeout}, nil
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generateContent failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// decodeJSON pulls the outermost {...} block out of model text and decodes it.
func decodeJSON(text string, v any) error {
	raw := jsonObject.FindString(text)
	if raw == "" {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to decode model JSON: %w", err)
	}
	return nil
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func orPriority(p model.Priority) model.Priority {
	if p.Valid() {
		return p
	}
	return model.PriorityMedium
}

func orCategory(c model.Category, fallback model.Category) model.Category {
	if c.Valid() {
		return c
	}
	return fallback
}

func (g *Gemini) ParseNaturalLanguage(ctx context.Context, input string) (ParsedTask, error) {
	prompt := fmt.Sprintf(`Parse this natural language task description into structured task data:
"%s"

Extract:
- title (required): A clear, concise task title based on the input
- description (optional): Brief explanation of what needs to be done
- priority (low, medium, high, urgent): Based on urgency and importance
- category (work, personal, health, finance, learning): Most appropriate category
- due date (if mentioned): ISO date format if date is mentioned, null otherwise

Return ONLY valid JSON without any additional text or explanations:
{
  "title": "Task title here",
  "description": "Task description here",
  "priority": "medium",
  "category": "personal",
  "dueDate": null
}`, input)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return ParsedTask{}, err
	}

	var raw struct {
		Title       string         `json:"title"`
		Description string         `json:"description"`
		Priority    model.Priority `json:"priority"`
		Category    model.Category `json:"category"`
		DueDate     *string        `json:"dueDate"`
	}
	if err := decodeJSON(text, &raw); err != nil {
		return ParsedTask{}, err
	}

	parsed := ParsedTask{
		Title:       strings.TrimSpace(raw.Title),
		Description: raw.Description,
		Priority:    orPriority(raw.Priority),
		Category:    orCategory(raw.Category, model.CategoryPersonal),
	}
	if parsed.Title == "" {
		parsed.Title = input
	}
	if raw.DueDate != nil {
		parsed.DueDate = parseDate(*raw.DueDate)
	}
	return parsed, nil
}

func (g *Gemini) EstimateTime(ctx context.Context, title, description string) (TimeEstimate, error) {
	prompt := fmt.Sprintf(`Estimate how long this task will take to complete. Consider:
- Task complexity
- Required skills
- Potential obstacles

Task: "%s"
Description: "%s"

Return as JSON:
{
  "estimatedMinutes": 45,
  "confidence": "medium",
  "reasoning": "This task involves research and planning, typically takes 30-60 minutes"
}`, title, description)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return TimeEstimate{}, err
	}

	var est TimeEstimate
	if err := decodeJSON(text, &est); err != nil {
		return TimeEstimate{}, err
	}
	if est.EstimatedMinutes <= 0 {
		return TimeEstimate{}, fmt.Errorf("invalid estimate %d minutes", est.EstimatedMinutes)
	}
	switch est.Confidence {
	case "low", "medium", "high":
	default:
		est.Confidence = "medium"
	}
	return est, nil
}

func (g *Gemini) Breakdown(ctx context.Context, description string) (Breakdown, error) {
	prompt := fmt.Sprintf(`Break down this task into 5-8 specific, actionable subtasks. For each subtask, provide:
- A clear, specific title
- A brief description
- Estimated time in minutes (be realistic)
- Priority (low, medium, high, urgent)
- Category (work, personal, health, finance, learning)

Task: "%s"

Return as JSON format:
{
  "subtasks": [
    {
      "title": "Subtask title",
      "description": "What needs to be done",
      "estimatedTime": 30,
      "priority": "medium",
      "category": "work"
    }
  ],
  "totalEstimatedTime": 120
}`, description)

	text, err := g.generate(ctx, prompt)
	if err != nil {
		return Breakdown{}, err
	}

	var b Breakdown
	if err := decodeJSON(text, &b); err != nil {
		return Breakdown{}, err
	}

	subtasks := make([]Subtask, 0, len(b.Subtasks))
	for _, st := range b.Subtasks {
		st.Title = strings.TrimSpace(st.Title)
		if st.Title == "" {
			continue
		}
		st.Priority = orPriority(st.Priority)
		st.Category = orCategory(st.Category, model.CategoryWork)
		if st.EstimatedTime < 0 {
			st.EstimatedTime = 0
		}
		subtasks = append(subtasks, st)
	}
	if len(subtasks) == 0 {
		return Breakdown{}, fmt.Errorf("model returned no subtasks")
	}

	b.Subtasks = subtasks
	if b.TotalEstimatedTime <= 0 {
		b.TotalEstimatedTime = totalMinutes(subtasks)
	}
	return b, nil
}
