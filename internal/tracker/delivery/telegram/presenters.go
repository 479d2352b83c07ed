package telegram

import (
	"fmt"
	"strings"

	"task-tracker/internal/model"
	"task-tracker/internal/tracker"
)

const helpText = `/now 現在のタスク
/list タスク一覧
/switch N タスクNを開始
/reserve HHMM N HH:MMにタスクNを予約
/cancel N 予約Nを取り消し
/clear 履歴をクリア`

func formatNow(out tracker.StateOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", out.Header)
	fmt.Fprintf(&sb, "%s＞%s (%s〜 %s)\n", out.Current.Category, out.Current.Title, out.Current.StartClock, out.ElapsedCompact)

	if len(out.Finished) > 0 {
		sb.WriteString("\n")
		for _, t := range out.Finished {
			fmt.Fprintf(&sb, "%s-%s %s %s＞%s\n", t.StartClock, t.FinishClock, t.DurationClock, t.Category, t.Title)
		}
	}
	if len(out.Reserving) > 0 {
		sb.WriteString("\n")
		sb.WriteString(formatReservations(out.Reserving))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatReservations(views []tracker.TaskView) string {
	if len(views) == 0 {
		return "予約なし"
	}
	var sb strings.Builder
	sb.WriteString("予約:\n")
	for i, v := range views {
		fmt.Fprintf(&sb, "%d. %s %s＞%s\n", i, v.Start.Format("15:04"), v.Category, v.Title)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatCategories(kinds []model.TaskKind) string {
	var sb strings.Builder
	for i, k := range kinds {
		fmt.Fprintf(&sb, "%d. %s＞%s\n", i, k.Category, k.Title)
	}
	return strings.TrimRight(sb.String(), "\n")
}
