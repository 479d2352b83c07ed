package tracker

import (
	"time"

	"task-tracker/internal/model"
)

// --- UseCase Inputs ---

type StartNextTaskInput struct {
	Category string
	Title    string
}

// ReserveTaskInput schedules a switch at an absolute instant.
type ReserveTaskInput struct {
	Start    time.Time
	Category string
	Title    string
}

// ReserveAtInput schedules a switch at an HHMM time of the current day (930 = 09:30).
type ReserveAtInput struct {
	HHMM     string
	Category string
	Title    string
}

// --- UseCase Outputs ---

// TaskView is a Task with its formatted fields.
type TaskView struct {
	Category      string
	Title         string
	Start         time.Time
	Finish        *time.Time
	StartClock    string
	FinishClock   string
	Duration      time.Duration
	DurationClock string
}

// CategoryTotal is the finished time spent on one category.
type CategoryTotal struct {
	Category string
	Duration time.Duration
}

// StateOutput is the read model of the live day.
type StateOutput struct {
	DayKey         string
	Date           time.Time
	Now            time.Time
	Header         string // "YEAR/MONTH/DAY HH:MM:SS", month zero-indexed like DayKey
	Current        TaskView
	Elapsed        time.Duration
	ElapsedCompact string
	Finished       []TaskView
	Reserving      []TaskView
	Totals         []CategoryTotal
	State          model.DayState
}

// PromoteOutput reports what a scheduler check did.
type PromoteOutput struct {
	Promoted bool
	Task     model.Task
	State    StateOutput
}
