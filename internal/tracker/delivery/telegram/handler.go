package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/model"
	"task-tracker/internal/tracker"
	pkgResponse "task-tracker/pkg/response"
	pkgTelegram "task-tracker/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Commands only touch local state, so the reply is sent before acknowledging.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (edits, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	if msg.Chat.ID != h.chatID {
		h.l.Warnf(ctx, "telegram handler: ignoring message from chat %d", msg.Chat.ID)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	reply := h.processMessage(ctx, msg.Text)
	if err := h.bot.SendMessage(ctx, msg.Chat.ID, reply); err != nil {
		h.l.Errorf(ctx, "telegram handler: reply failed: %v", err)
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs one command and returns the reply text.
func (h *handler) processMessage(ctx context.Context, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return helpText
	}

	// "/now@my_bot" in group chats.
	cmd, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	switch cmd {
	case "/start", "/help":
		return helpText
	case "/now":
		return formatNow(h.uc.State(ctx))
	case "/list":
		return formatCategories(model.TaskKinds())
	case "/switch":
		return h.switchTask(ctx, args)
	case "/reserve":
		return h.reserve(ctx, args)
	case "/cancel":
		return h.cancel(ctx, args)
	case "/clear":
		out, err := h.uc.ClearAllTasks(ctx)
		if err != nil {
			return errorMessage(err)
		}
		return "履歴をクリアしました\n\n" + formatNow(out)
	default:
		return helpText
	}
}

func (h *handler) switchTask(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return "使い方: /switch N"
	}
	kind, err := kindArg(args[0])
	if err != nil {
		return errorMessage(err)
	}

	out, err := h.uc.StartNextTask(ctx, tracker.StartNextTaskInput{Category: kind.Category, Title: kind.Title})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.StartNextTask: %v", err)
		return errorMessage(err)
	}
	return formatNow(out)
}

func (h *handler) reserve(ctx context.Context, args []string) string {
	if len(args) != 2 {
		return "使い方: /reserve HHMM N"
	}
	kind, err := kindArg(args[1])
	if err != nil {
		return errorMessage(err)
	}

	out, err := h.uc.ReserveAt(ctx, tracker.ReserveAtInput{HHMM: args[0], Category: kind.Category, Title: kind.Title})
	if err != nil {
		return errorMessage(err)
	}
	return "予約しました\n\n" + formatReservations(out.Reserving)
}

func (h *handler) cancel(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return "使い方: /cancel N"
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return errorMessage(errNotANumber)
	}

	out, err := h.uc.RemoveReservingTask(ctx, idx)
	if err != nil {
		return errorMessage(err)
	}
	return "予約を取り消しました\n\n" + formatReservations(out.Reserving)
}

func kindArg(raw string) (model.TaskKind, error) {
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return model.TaskKind{}, errNotANumber
	}
	kind, ok := model.TaskKindAt(idx)
	if !ok {
		return model.TaskKind{}, fmt.Errorf("%w: %d", tracker.ErrUnknownTask, idx)
	}
	return kind, nil
}
