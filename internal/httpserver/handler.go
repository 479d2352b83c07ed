package httpserver

import (
	"context"

	"task-tracker/internal/model"
	trackerHTTP "task-tracker/internal/tracker/delivery/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "task-tracker/docs"
)

const (
	apiPrefix       = "/api/v1"
	trackerPrefix   = "/tracker"
	telegramWebhook = "/webhook/telegram"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery(), srv.mw.RequestID())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Info(ctx, "HTTP server running in production environment")
	}

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	h := trackerHTTP.New(srv.l, srv.trackerUC, srv.timelineWidth)
	trackerHTTP.RegisterRoutes(srv.gin.Group(apiPrefix).Group(trackerPrefix), h, srv.mw)
	srv.l.Infof(ctx, "Tracker routes registered at %s%s", apiPrefix, trackerPrefix)

	if srv.telegramHandler == nil {
		srv.l.Info(ctx, "Telegram handler not configured, skipping webhook route")
		return nil
	}
	srv.gin.POST(telegramWebhook, srv.mw.RateLimit(), srv.telegramHandler.HandleWebhook)
	srv.l.Infof(ctx, "Telegram webhook registered at POST %s", telegramWebhook)

	return nil
}
