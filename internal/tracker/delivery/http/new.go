package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker/internal/tracker"
	"task-tracker/pkg/log"
)

// Handler is the public interface for the tracker HTTP delivery layer.
type Handler interface {
	State(c *gin.Context)
	Categories(c *gin.Context)
	StartNext(c *gin.Context)
	Clear(c *gin.Context)
	Reserve(c *gin.Context)
	Promote(c *gin.Context)
	RemoveReservation(c *gin.Context)
	Timeline(c *gin.Context)
	ExportToday(c *gin.Context)
	ExportAll(c *gin.Context)
}

type handler struct {
	l             log.Logger
	uc            tracker.UseCase
	timelineWidth float64
}

// New creates a new HTTP handler for the tracker domain.
// timelineWidth is used when a timeline request carries no width.
func New(l log.Logger, uc tracker.UseCase, timelineWidth float64) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		timelineWidth: timelineWidth,
	}
}
