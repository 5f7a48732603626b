package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mydaytasks/dto"
	"mydaytasks/model"
	"mydaytasks/services"
	"mydaytasks/services/assistant"
	"mydaytasks/storage"
)

// MockAssistant implements assistant.Assistant with overridable funcs.
type MockAssistant struct {
	ParseFunc     func(ctx context.Context, input string) (assistant.ParsedTask, error)
	EstimateFunc  func(ctx context.Context, title, description string) (assistant.TimeEstimate, error)
	BreakdownFunc func(ctx context.Context, description string) (assistant.Breakdown, error)
}

func (m *MockAssistant) ParseNaturalLanguage(ctx context.Context, input string) (assistant.ParsedTask, error) {
	return m.ParseFunc(ctx, input)
}

func (m *MockAssistant) EstimateTime(ctx context.Context, title, description string) (assistant.TimeEstimate, error) {
	return m.EstimateFunc(ctx, title, description)
}

func (m *MockAssistant) Breakdown(ctx context.Context, description string) (assistant.Breakdown, error) {
	return m.BreakdownFunc(ctx, description)
}

func setupRouter(t *testing.T, ai assistant.Assistant) (*gin.Engine, *services.TaskState) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		t.Fatalf("RegisterValidators: %v", err)
	}

	n := 0
	state := services.NewTaskState(storage.NewMemoryStore(), services.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}))
	state.Load(context.Background())

	router := gin.New()
	AIController(router, ai, state)
	return router, state
}

func post(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestParseWithLocalAssistant(t *testing.T) {
	router, _ := setupRouter(t, assistant.WithFallback(nil, assistant.NewLocal()))

	w := post(router, "/ai/parse", gin.H{"input": "Urgent: finish the budget report for work"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got assistant.ParsedTask
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.Priority != model.PriorityUrgent || got.Category != model.CategoryWork {
		t.Errorf("got %+v", got)
	}

	if w := post(router, "/ai/parse", gin.H{}); w.Code != http.StatusBadRequest {
		t.Errorf("missing input status = %d, want 400", w.Code)
	}
}

func TestEstimateAndBreakdown(t *testing.T) {
	mock := &MockAssistant{
		EstimateFunc: func(ctx context.Context, title, description string) (assistant.TimeEstimate, error) {
			if title != "Write report" {
				t.Errorf("title = %q", title)
			}
			return assistant.TimeEstimate{EstimatedMinutes: 45, Confidence: "medium"}, nil
		},
		BreakdownFunc: func(ctx context.Context, description string) (assistant.Breakdown, error) {
			return assistant.Breakdown{}, errors.New("remote down")
		},
	}
	router, _ := setupRouter(t, mock)

	w := post(router, "/ai/estimate", gin.H{"title": "Write report"})
	var est assistant.TimeEstimate
	json.Unmarshal(w.Body.Bytes(), &est)
	if w.Code != http.StatusOK || est.EstimatedMinutes != 45 {
		t.Errorf("estimate: %d %+v", w.Code, est)
	}

	if w := post(router, "/ai/breakdown", gin.H{"description": "Write report"}); w.Code != http.StatusBadGateway {
		t.Errorf("breakdown status = %d, want 502", w.Code)
	}
}

func TestAddSubtasksAfterTask(t *testing.T) {
	router, state := setupRouter(t, assistant.NewLocal())
	parent, _ := state.Add(context.Background(), services.TaskInput{Title: "Plan a party"})
	state.Add(context.Background(), services.TaskInput{Title: "Unrelated"})

	w := post(router, "/ai/subtasks", gin.H{
		"afterId": parent.ID,
		"subtasks": []gin.H{
			{"title": "Guest list", "priority": "high"},
			{"title": "Book venue", "category": "finance"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var titles []string
	for _, task := range state.All() {
		titles = append(titles, task.Title)
	}
	want := []string{"Plan a party", "Guest list", "Book venue", "Unrelated"}
	if fmt.Sprint(titles) != fmt.Sprint(want) {
		t.Errorf("sequence = %v, want %v", titles, want)
	}

	next, ok := state.NextTask(parent.ID)
	if !ok || next.Title != "Guest list" {
		t.Errorf("next of parent = %+v", next)
	}
}

func TestAddSubtasksValidation(t *testing.T) {
	router, state := setupRouter(t, assistant.NewLocal())

	cases := []gin.H{
		{},
		{"subtasks": []gin.H{}},
		{"subtasks": []gin.H{{"description": "no title"}}},
		{"subtasks": []gin.H{{"title": "x", "priority": "critical"}}},
	}
	for i, body := range cases {
		if w := post(router, "/ai/subtasks", body); w.Code != http.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, w.Code)
		}
	}

	if w := post(router, "/ai/subtasks", gin.H{"afterId": "missing", "subtasks": []gin.H{{"title": "x"}}}); w.Code != http.StatusNotFound {
		t.Errorf("unknown afterId status = %d, want 404", w.Code)
	}
	if len(state.All()) != 0 {
		t.Errorf("validation failures created tasks: %+v", state.All())
	}
}

func TestAddSubtasksIsAllOrNothing(t *testing.T) {
	router, state := setupRouter(t, assistant.NewLocal())

	w := post(router, "/ai/subtasks", gin.H{"subtasks": []gin.H{{"title": "first"}, {"title": "   "}}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if w.Body.String() != `{"errors":{"title":"Title is required"}}` {
		t.Errorf("body = %s", w.Body.String())
	}
	if n := len(state.All()); n != 0 {
		t.Errorf("rejected request left %d tasks behind", n)
	}
}
