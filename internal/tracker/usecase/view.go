package usecase

import (
	"context"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/timeline"
	"task-tracker/internal/tracker"
	"task-tracker/pkg/timefmt"
)

func (uc *implUseCase) State(ctx context.Context) tracker.StateOutput {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.stateOutput(uc.clock())
}

// Timeline projects the current task, then the finished ones, then the reservation markers.
func (uc *implUseCase) Timeline(ctx context.Context, width float64) timeline.Projection {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tasks := make([]model.Task, 0, len(uc.state.FinishedTasks)+1)
	tasks = append(tasks, uc.state.CurrentTask)
	tasks = append(tasks, uc.state.FinishedTasks...)

	return uc.projector.Project(tasks, uc.state.ReservingTasks, uc.clock(), width)
}

// stateOutput must be called with mu held.
func (uc *implUseCase) stateOutput(now time.Time) tracker.StateOutput {
	snapshot := uc.state.Clone()
	elapsed := snapshot.CurrentTask.Duration(now)

	out := tracker.StateOutput{
		DayKey:         uc.repo.DayKey(snapshot.Date),
		Date:           snapshot.Date,
		Now:            now,
		Header:         uc.dates.DayKey(now) + " " + timefmt.FormatClock(now),
		Current:        toTaskView(snapshot.CurrentTask, now),
		Elapsed:        elapsed,
		ElapsedCompact: timefmt.FormatDurationCompact(elapsed),
		Finished:       make([]tracker.TaskView, 0, len(snapshot.FinishedTasks)),
		Reserving:      make([]tracker.TaskView, 0, len(snapshot.ReservingTasks)),
		Totals:         categoryTotals(snapshot.FinishedTasks, now),
		State:          snapshot,
	}
	for _, t := range snapshot.FinishedTasks {
		out.Finished = append(out.Finished, toTaskView(t, now))
	}
	for _, t := range snapshot.ReservingTasks {
		out.Reserving = append(out.Reserving, toTaskView(t, now))
	}
	return out
}

func toTaskView(t model.Task, now time.Time) tracker.TaskView {
	v := tracker.TaskView{
		Category:   t.Category,
		Title:      t.Title,
		Start:      t.Start,
		StartClock: timefmt.FormatClock(t.Start),
	}
	if !t.IsActive() {
		finish := *t.Finish
		v.Finish = &finish
		v.FinishClock = timefmt.FormatClock(finish)
	}
	// Reservations have no length yet.
	if !t.IsActive() || !t.Start.After(now) {
		v.Duration = t.Duration(now)
		if v.Duration < 0 {
			v.Duration = 0
		}
	}
	v.DurationClock = timefmt.FormatDurationClock(v.Duration)
	return v
}

// categoryTotals sums finished time per category in order of first appearance.
func categoryTotals(finished []model.Task, now time.Time) []tracker.CategoryTotal {
	totals := make([]tracker.CategoryTotal, 0)
	index := make(map[string]int)
	for _, t := range finished {
		d := t.Duration(now)
		if d < 0 {
			d = 0
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, tracker.CategoryTotal{Category: t.Category})
		}
		totals[i].Duration += d
	}
	return totals
}
