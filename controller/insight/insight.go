package insight

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mydaytasks/services"
)

func InsightController(router *gin.Engine, state *services.TaskState, auth ...gin.HandlerFunc) {
	routes := router.Group("/insights", auth...)
	routes.GET("", func(c *gin.Context) {
		GetInsights(c, state)
	})
}

func GetInsights(c *gin.Context, state *services.TaskState) {
	insights := services.GenerateInsights(state.All(), time.Now())
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
