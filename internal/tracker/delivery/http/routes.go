package http

import (
	"task-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Mutating routes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/state", h.State)
	rg.GET("/categories", h.Categories)
	rg.GET("/timeline", h.Timeline)

	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("/next", h.StartNext)
		tasks.POST("/clear", h.Clear)
	}

	reservations := rg.Group("/reservations", mw.RateLimit())
	{
		reservations.POST("", h.Reserve)
		reservations.POST("/promote", h.Promote)
		reservations.DELETE("/:index", h.RemoveReservation)
	}

	export := rg.Group("/export")
	{
		export.GET("/today", h.ExportToday)
		export.GET("/all", h.ExportAll)
	}
}
