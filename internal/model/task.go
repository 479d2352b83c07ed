package model

import (
	"sort"
	"time"
)

// Task is one interval of work under a (category, title) pair.
// Finish is nil while the task is active and for reservations.
type Task struct {
	Start    time.Time
	Finish   *time.Time
	Category string
	Title    string
}

// IsActive reports whether the task has not finished yet.
func (t Task) IsActive() bool {
	return t.Finish == nil
}

// Duration returns the finished length of the task, or the time elapsed until now when active.
func (t Task) Duration(now time.Time) time.Duration {
	if t.IsActive() {
		return now.Sub(t.Start)
	}
	return t.Finish.Sub(t.Start)
}

// Finished returns a copy of t with Finish set to at.
func (t Task) Finished(at time.Time) Task {
	t.Finish = &at
	return t
}

// DayState is everything recorded for one calendar day.
type DayState struct {
	CurrentTask    Task
	FinishedTasks  []Task
	ReservingTasks []Task
	Date           time.Time
}

// NewDayState returns the state of a day seen for the first time: a Break task starting at now.
func NewDayState(now time.Time) DayState {
	return DayState{
		CurrentTask:    DefaultTask.Begin(now),
		FinishedTasks:  []Task{},
		ReservingTasks: []Task{},
		Date:           now,
	}
}

// Clone deep-copies the slices so callers can read a snapshot without racing mutations.
func (s DayState) Clone() DayState {
	out := s
	out.FinishedTasks = append([]Task(nil), s.FinishedTasks...)
	out.ReservingTasks = append([]Task(nil), s.ReservingTasks...)
	if out.FinishedTasks == nil {
		out.FinishedTasks = []Task{}
	}
	if out.ReservingTasks == nil {
		out.ReservingTasks = []Task{}
	}
	return out
}

// SortByStart orders tasks by start time. Equal starts keep their order.
func SortByStart(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Start.Before(tasks[j].Start)
	})
}
