package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/tracker"
	pkgLog "task-tracker/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the part of the bot client this package needs.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	l      pkgLog.Logger
	uc     tracker.UseCase
	bot    Sender
	chatID int64
}

// New creates a new Telegram delivery handler. Only messages from chatID are served.
func New(l pkgLog.Logger, uc tracker.UseCase, bot Sender, chatID int64) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		chatID: chatID,
	}
}
