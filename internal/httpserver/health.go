package httpserver

import (
	"time"

	"task-tracker/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "task-tracker"
)

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Day     string `json:"day,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Service: ServiceName, Version: HealthVersion}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck answers once the live day is loaded and reports its key.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := newHealthResp("ready")
	resp.Day = srv.trackerUC.State(c.Request.Context()).DayKey
	response.OK(c, resp)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	resp := newHealthResp("alive")
	resp.Uptime = time.Since(srv.startedAt).Truncate(time.Second).String()
	response.OK(c, resp)
}
