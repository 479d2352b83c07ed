package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-tracker/config"
	"task-tracker/internal/httpserver"
	"task-tracker/internal/scheduler"
	tgDelivery "task-tracker/internal/tracker/delivery/telegram"
	"task-tracker/internal/tracker/repository/blob"
	"task-tracker/internal/tracker/usecase"
	"task-tracker/pkg/blobstore"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
	"task-tracker/pkg/telegram"
)

// @title       Task Tracker API
// @description Personal time tracking: task switches, reservations, timeline and export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		OutputPath:   cfg.Logger.OutputPath,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Driver)

	// 3. Storage
	store, err := blobstore.Open(blobstore.Config{
		Driver:     cfg.Storage.Driver,
		Dir:        cfg.Storage.Dir,
		SQLitePath: cfg.Storage.SQLitePath,
		CacheSize:  cfg.Storage.CacheSize,
		CacheTTL:   cfg.Storage.CacheTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer store.Close()

	// 4. Tracker domain
	dates, err := datemath.NewParser(cfg.Tracker.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}
	dayRepo := blob.New(store, dates, logger)
	trackerUC := usecase.New(ctx, logger, dayRepo, dates, nil)

	// 5. Telegram (optional)
	var (
		telegramHandler tgDelivery.Handler
		notifiers       []scheduler.Notifier
	)
	if cfg.Telegram.Enabled() {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, trackerUC, bot, cfg.Telegram.ChatID)
		notifiers = append(notifiers, tgDelivery.NewNotifier(bot, cfg.Telegram.ChatID))

		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" && cfg.Telegram.NgrokAPI != "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.Telegram.NgrokAPI)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := bot.SetWebhook(ctx, webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. Reservation scheduler
	sched := scheduler.New(logger, trackerUC, cfg.Tracker.PollInterval, notifiers...)
	sched.Start(ctx)
	defer sched.Stop()

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TrackerUC:       trackerUC,
		TimelineWidth:   cfg.Tracker.TimelineWidth,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
