package ai

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	taskcontroller "mydaytasks/controller/task"
	"mydaytasks/dto"
	"mydaytasks/services"
	"mydaytasks/services/assistant"
)

func AIController(router *gin.Engine, ai assistant.Assistant, state *services.TaskState, auth ...gin.HandlerFunc) {
	routes := router.Group("/ai", auth...)
	{
		routes.POST("/parse", func(c *gin.Context) { Parse(c, ai) })
		routes.POST("/estimate", func(c *gin.Context) { Estimate(c, ai) })
		routes.POST("/breakdown", func(c *gin.Context) { BreakdownTask(c, ai) })
		routes.POST("/subtasks", func(c *gin.Context) { AddSubtasks(c, state) })
	}
}

func assistantError(c *gin.Context, err error) {
	log.Printf("assistant request failed: %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "AI assistant unavailable"})
}

func Parse(c *gin.Context, ai assistant.Assistant) {
	var req dto.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		taskcontroller.BindError(c, err)
		return
	}

	parsed, err := ai.ParseNaturalLanguage(c.Request.Context(), req.Input)
	if err != nil {
		assistantError(c, err)
		return
	}
	c.JSON(http.StatusOK, parsed)
}

func Estimate(c *gin.Context, ai assistant.Assistant) {
	var req dto.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		taskcontroller.BindError(c, err)
		return
	}

	estimate, err := ai.EstimateTime(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		assistantError(c, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}

func BreakdownTask(c *gin.Context, ai assistant.Assistant) {
	var req dto.BreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		taskcontroller.BindError(c, err)
		return
	}

	breakdown, err := ai.Breakdown(c.Request.Context(), req.Description)
	if err != nil {
		assistantError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// AddSubtasks turns suggested subtasks into tasks, in request order.
func AddSubtasks(c *gin.Context, state *services.TaskState) {
	var req dto.SubtasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		taskcontroller.BindError(c, err)
		return
	}

	inputs := make([]services.TaskInput, 0, len(req.Subtasks))
	for _, st := range req.Subtasks {
		inputs = append(inputs, services.TaskInput{
			Title:       st.Title,
			Description: st.Description,
			Priority:    st.Priority,
			Category:    st.Category,
		})
	}

	created, err := state.AddMany(c.Request.Context(), req.AfterID, inputs)
	if err != nil {
		taskcontroller.StateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tasks": created, "count": len(created)})
}
