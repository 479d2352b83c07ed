package telegram

import (
	"context"
	"fmt"

	"task-tracker/internal/model"
)

// Notifier posts reservation promotions to the configured chat.
type Notifier struct {
	bot    Sender
	chatID int64
}

func NewNotifier(bot Sender, chatID int64) *Notifier {
	return &Notifier{bot: bot, chatID: chatID}
}

func (n *Notifier) NotifyPromotion(ctx context.Context, task model.Task) error {
	text := fmt.Sprintf("⏰ %s 予約開始: %s＞%s", task.Start.Format("15:04"), task.Category, task.Title)
	return n.bot.SendMessage(ctx, n.chatID, text)
}
