package usecase

import (
	"context"

	"task-tracker/internal/model"
	"task-tracker/internal/tracker"
)

// StartNextTask closes the active task at now and starts input's task at the same instant.
func (uc *implUseCase) StartNextTask(ctx context.Context, input tracker.StartNextTaskInput) (tracker.StateOutput, error) {
	if !model.IsKnownTaskKind(input.Category, input.Title) {
		uc.l.Warnf(ctx, "internal.tracker.usecase.StartNextTask: unknown task %q＞%q", input.Category, input.Title)
		return tracker.StateOutput{}, tracker.ErrUnknownTask
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.clock()
	kind := model.TaskKind{Category: input.Category, Title: input.Title}
	uc.switchTo(kind.Begin(now))
	uc.l.Infof(ctx, "internal.tracker.usecase.StartNextTask: %s＞%s at %s", input.Category, input.Title, now.Format("15:04:05"))

	err := uc.persist(ctx, "StartNextTask")
	return uc.stateOutput(now), err
}

// ClearAllTasks drops the finished history; the active task and reservations stay.
func (uc *implUseCase) ClearAllTasks(ctx context.Context) (tracker.StateOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cleared := len(uc.state.FinishedTasks)
	uc.state.FinishedTasks = []model.Task{}
	uc.l.Infof(ctx, "internal.tracker.usecase.ClearAllTasks: cleared %d tasks", cleared)

	err := uc.persist(ctx, "ClearAllTasks")
	return uc.stateOutput(uc.clock()), err
}

// switchTo finishes the active task where next begins and makes next active.
// A boundary earlier than the active task's start is moved up to it so no
// finished task ever ends before it started.
func (uc *implUseCase) switchTo(next model.Task) {
	prev := uc.state.CurrentTask
	boundary := next.Start
	if boundary.Before(prev.Start) {
		boundary = prev.Start
	}

	next.Start = boundary
	next.Finish = nil
	uc.state.FinishedTasks = append(uc.state.FinishedTasks, prev.Finished(boundary))
	uc.state.CurrentTask = next
}
