package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Handlers все обработчики API
type Handlers struct {
	Inspect *InspectHandler
	Dedup   *DedupHandler
	Compare *CompareHandler
	Jobs    *JobsHandler
}

// RegisterRoutes регистрирует маршруты API в Gin роутере
func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", handleHealth)

	api := router.Group("/api")
	{
		api.POST("/files/inspect", h.Inspect.HandleInspect)
		api.POST("/dedup", h.Dedup.HandleDedup)
		api.POST("/compare", h.Compare.HandleCompare)

		api.GET("/jobs", h.Jobs.HandleListJobs)
		api.GET("/jobs/:id", h.Jobs.HandleGetJob)
		api.GET("/jobs/:id/download", h.Jobs.HandleDownload)
	}
}

// handleHealth проверка живости
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
