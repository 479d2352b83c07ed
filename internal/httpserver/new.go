package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/middleware"
	"task-tracker/internal/tracker"
	tgDelivery "task-tracker/internal/tracker/delivery/telegram"
	"task-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	startedAt   time.Time

	// Tracker domain
	trackerUC       tracker.UseCase
	timelineWidth   float64
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	// Tracker domain
	TrackerUC     tracker.UseCase
	TimelineWidth float64

	// Optional Telegram command webhook
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, cfg.RateLimitPerMin),
		startedAt:       time.Now(),
		trackerUC:       cfg.TrackerUC,
		timelineWidth:   cfg.TimelineWidth,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.trackerUC == nil {
		return errors.New("tracker use case is required")
	}
	return nil
}
