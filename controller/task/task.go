package task

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mydaytasks/dto"
	"mydaytasks/services"
)

func TaskController(router *gin.Engine, state *services.TaskState, auth ...gin.HandlerFunc) {
	routes := router.Group("/task", auth...)
	{
		routes.GET("", func(c *gin.Context) { ListTasks(c, state) })
		routes.POST("", func(c *gin.Context) { CreateTask(c, state) })
		routes.GET("/top", func(c *gin.Context) { TopTask(c, state) })
		routes.GET("/queue", func(c *gin.Context) { QueueTasks(c, state) })
		routes.GET("/:id", func(c *gin.Context) { GetTask(c, state) })
		routes.PUT("/:id", func(c *gin.Context) { UpdateTask(c, state) })
		routes.PATCH("/:id/complete", func(c *gin.Context) { CompleteTask(c, state) })
		routes.DELETE("/:id", func(c *gin.Context) { DeleteTask(c, state) })
		routes.GET("/:id/next", func(c *gin.Context) { NextTask(c, state) })
		routes.POST("/:id/after", func(c *gin.Context) { CreateTaskAfter(c, state) })
	}
}

// BindError answers a request whose body or query failed to bind.
func BindError(c *gin.Context, err error) {
	if fields, ok := dto.FieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
}

// StateError maps task state errors to responses.
func StateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, services.ErrTitleRequired):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"title": "Title is required"}})
	case errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidNext):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("task request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func taskInput(req dto.CreateTaskRequest) services.TaskInput {
	return services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
	}
}

func ListTasks(c *gin.Context, state *services.TaskState) {
	var query dto.TaskQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BindError(c, err)
		return
	}

	tasks := state.View(services.ViewOptions{
		Query:    query.Query,
		Category: query.Category,
		Priority: query.Priority,
		Sort:     query.Sort,
	})
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

func CreateTask(c *gin.Context, state *services.TaskState) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindError(c, err)
		return
	}

	task, err := state.Add(c.Request.Context(), taskInput(req))
	if err != nil {
		StateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func CreateTaskAfter(c *gin.Context, state *services.TaskState) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindError(c, err)
		return
	}

	task, err := state.AddAfter(c.Request.Context(), c.Param("id"), taskInput(req))
	if err != nil {
		StateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func GetTask(c *gin.Context, state *services.TaskState) {
	task, ok := state.Get(c.Param("id"))
	if !ok {
		StateError(c, services.ErrTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, task)
}

func UpdateTask(c *gin.Context, state *services.TaskState) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BindError(c, err)
		return
	}

	task, err := state.Update(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		StateError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func CompleteTask(c *gin.Context, state *services.TaskState) {
	task, err := state.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		StateError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context, state *services.TaskState) {
	if err := state.Delete(c.Request.Context(), c.Param("id")); err != nil {
		StateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// NextTask answers {"next": null} when the task is the last in sequence.
func NextTask(c *gin.Context, state *services.TaskState) {
	id := c.Param("id")
	if _, ok := state.Get(id); !ok {
		StateError(c, services.ErrTaskNotFound)
		return
	}
	next, ok := state.NextTask(id)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"next": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": next})
}

func TopTask(c *gin.Context, state *services.TaskState) {
	task, ok := state.Top()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No tasks"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func QueueTasks(c *gin.Context, state *services.TaskState) {
	tasks := state.Queue()
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}
