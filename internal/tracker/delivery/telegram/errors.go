package telegram

import (
	"errors"

	"task-tracker/internal/tracker"
)

var errNotANumber = errors.New("not a number")

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errNotANumber):
		return "番号は数字で指定してください"
	case errors.Is(err, tracker.ErrUnknownTask):
		return "その番号のタスクはありません (/list)"
	case errors.Is(err, tracker.ErrInvalidReservationTime):
		return "時刻は HHMM で指定してください (例: 930, 1330)"
	case errors.Is(err, tracker.ErrReservationNotInFuture):
		return "過去の時刻は予約できません"
	case errors.Is(err, tracker.ErrReservationIndexOutOfRange):
		return "その番号の予約はありません"
	default:
		return "エラー: " + err.Error()
	}
}
