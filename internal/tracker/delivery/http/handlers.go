package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/model"
	"task-tracker/internal/tracker"
	"task-tracker/pkg/response"
)

// State godoc
// @Summary     Live day
// @Description Returns the current task, the finished history, pending reservations and per-category totals.
// @Tags        Tracker
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/tracker/state [GET]
func (h *handler) State(c *gin.Context) {
	response.OK(c, h.newStateResp(h.uc.State(c.Request.Context())))
}

// Categories godoc
// @Summary     Selectable tasks
// @Description Returns the fixed (category, title) list in display order.
// @Tags        Tracker
// @Produce     json
// @Success     200 {array} categoryResp
// @Router      /api/v1/tracker/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	response.OK(c, h.newCategoriesResp(model.TaskKinds()))
}

// StartNext godoc
// @Summary     Switch task
// @Description Finishes the active task now and starts the given one.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       body body startNextReq true "Task by index or by category and title"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tracker/tasks/next [POST]
func (h *handler) StartNext(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartNextReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.StartNextTask(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartNextTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Clear godoc
// @Summary     Clear history
// @Description Empties the finished list. The active task and reservations are kept.
// @Tags        Tracker
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tracker/tasks/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ClearAllTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearAllTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Reserve godoc
// @Summary     Reserve a task switch
// @Description Queues a switch at an HHMM time of today or at an absolute start time.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       body body reserveReq true "Task and time"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Time is invalid or not in the future"
// @Router      /api/v1/tracker/reservations [POST]
func (h *handler) Reserve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReserveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	kind, err := req.kind()
	if err != nil {
		response.Error(c, err)
		return
	}

	var output tracker.StateOutput
	if req.Start != nil {
		output, err = h.uc.ReserveTask(ctx, tracker.ReserveTaskInput{Start: *req.Start, Category: kind.Category, Title: kind.Title})
	} else {
		output, err = h.uc.ReserveAt(ctx, tracker.ReserveAtInput{HHMM: req.HHMM, Category: kind.Category, Title: kind.Title})
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Reserve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Promote godoc
// @Summary     Start the next reservation now
// @Description Promotes the earliest reservation regardless of its time. The boundary is the reservation's start.
// @Tags        Tracker
// @Produce     json
// @Success     200 {object} promoteResp
// @Failure     409 {object} response.Resp "No reservation"
// @Router      /api/v1/tracker/reservations/promote [POST]
func (h *handler) Promote(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.StartNextReservingTask(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartNextReservingTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPromoteResp(output))
}

// RemoveReservation godoc
// @Summary     Cancel a reservation
// @Tags        Tracker
// @Produce     json
// @Param       index path int true "Position in the reservation list"
// @Success     200 {object} stateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Index out of range"
// @Router      /api/v1/tracker/reservations/{index} [DELETE]
func (h *handler) RemoveReservation(c *gin.Context) {
	ctx := c.Request.Context()

	idx, err := h.processIndexParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.RemoveReservingTask(ctx, idx)
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveReservingTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Timeline godoc
// @Summary     Timeline projection
// @Description Pixel positions of every task bar, hour gridline, reservation marker and the now marker.
// @Tags        Tracker
// @Produce     json
// @Param       width query number false "Total width in pixels"
// @Success     200 {object} timelineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tracker/timeline [GET]
func (h *handler) Timeline(c *gin.Context) {
	req, err := h.processTimelineReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.uc.Timeline(c.Request.Context(), req.Width))
}

// ExportToday godoc
// @Summary     Download today
// @Description The live day in its persisted JSON layout.
// @Tags        Export
// @Produce     json
// @Success     200 {object} object
// @Router      /api/v1/tracker/export/today [GET]
func (h *handler) ExportToday(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.ExportToday(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportToday: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	name := strings.ReplaceAll(h.uc.State(ctx).DayKey, "/", "-")
	h.attachment(c, fmt.Sprintf("tracker-%s.json", name), data)
}

// ExportAll godoc
// @Summary     Download every day
// @Description Object keyed by day key. Today's entry is the live state.
// @Tags        Export
// @Produce     json
// @Success     200 {object} object
// @Router      /api/v1/tracker/export/all [GET]
func (h *handler) ExportAll(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.ExportAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.attachment(c, "tracker-all.json", data)
}

func (h *handler) attachment(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
