package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processStartNextReq(c *gin.Context) (startNextReq, error) {
	var req startNextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processReserveReq(c *gin.Context) (reserveReq, error) {
	var req reserveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processIndexParam(c *gin.Context) (int, error) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, errInvalidIndex
	}
	return idx, nil
}

// processTimelineReq falls back to the configured width when none is given.
func (h *handler) processTimelineReq(c *gin.Context) (timelineReq, error) {
	var req timelineReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidWidth
	}
	if req.Width == 0 {
		req.Width = h.timelineWidth
	}
	if req.Width <= 0 {
		return req, errInvalidWidth
	}
	return req, nil
}
