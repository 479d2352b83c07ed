package usecase

import (
	"context"
	"errors"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/tracker"
	"task-tracker/pkg/datemath"
)

// ReserveTask queues a switch at input.Start, which must be strictly after now.
// The queue stays sorted by start.
func (uc *implUseCase) ReserveTask(ctx context.Context, input tracker.ReserveTaskInput) (tracker.StateOutput, error) {
	if !model.IsKnownTaskKind(input.Category, input.Title) {
		uc.l.Warnf(ctx, "internal.tracker.usecase.ReserveTask: unknown task %q＞%q", input.Category, input.Title)
		return tracker.StateOutput{}, tracker.ErrUnknownTask
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if now := uc.clock(); !input.Start.After(now) {
		uc.l.Warnf(ctx, "internal.tracker.usecase.ReserveTask: rejected %s, not after %s",
			input.Start.In(uc.dates.Location()).Format(time.RFC3339), now.Format(time.RFC3339))
		return tracker.StateOutput{}, tracker.ErrReservationNotInFuture
	}

	return uc.reserveLocked(ctx, input)
}

// ReserveAt resolves an HHMM time of today and queues the switch. Times that
// do not parse, are out of range or are not after now are rejected and nothing is queued.
func (uc *implUseCase) ReserveAt(ctx context.Context, input tracker.ReserveAtInput) (tracker.StateOutput, error) {
	if !model.IsKnownTaskKind(input.Category, input.Title) {
		uc.l.Warnf(ctx, "internal.tracker.usecase.ReserveAt: unknown task %q＞%q", input.Category, input.Title)
		return tracker.StateOutput{}, tracker.ErrUnknownTask
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	start, err := uc.dates.TimeOfDay(input.HHMM, uc.clock())
	if err != nil {
		uc.l.Warnf(ctx, "internal.tracker.usecase.ReserveAt: rejected %q: %v", input.HHMM, err)
		switch {
		case errors.Is(err, datemath.ErrNotInFuture):
			return tracker.StateOutput{}, tracker.ErrReservationNotInFuture
		default:
			return tracker.StateOutput{}, tracker.ErrInvalidReservationTime
		}
	}

	return uc.reserveLocked(ctx, tracker.ReserveTaskInput{
		Start:    start,
		Category: input.Category,
		Title:    input.Title,
	})
}

func (uc *implUseCase) reserveLocked(ctx context.Context, input tracker.ReserveTaskInput) (tracker.StateOutput, error) {
	start := input.Start.In(uc.dates.Location())
	uc.state.ReservingTasks = append(uc.state.ReservingTasks, model.Task{
		Start:    start,
		Category: input.Category,
		Title:    input.Title,
	})
	model.SortByStart(uc.state.ReservingTasks)
	uc.l.Infof(ctx, "internal.tracker.usecase.ReserveTask: %s＞%s at %s (%d pending)",
		input.Category, input.Title, start.Format("15:04"), len(uc.state.ReservingTasks))

	err := uc.persist(ctx, "ReserveTask")
	return uc.stateOutput(uc.clock()), err
}

// RemoveReservingTask drops the reservation at index in the current order.
func (uc *implUseCase) RemoveReservingTask(ctx context.Context, index int) (tracker.StateOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	pending := uc.state.ReservingTasks
	if index < 0 || index >= len(pending) {
		uc.l.Warnf(ctx, "internal.tracker.usecase.RemoveReservingTask: index %d out of range [0,%d)", index, len(pending))
		return tracker.StateOutput{}, tracker.ErrReservationIndexOutOfRange
	}

	removed := pending[index]
	next := make([]model.Task, 0, len(pending)-1)
	next = append(next, pending[:index]...)
	uc.state.ReservingTasks = append(next, pending[index+1:]...)
	uc.l.Infof(ctx, "internal.tracker.usecase.RemoveReservingTask: removed %s＞%s at %s",
		removed.Category, removed.Title, removed.Start.Format("15:04"))

	err := uc.persist(ctx, "RemoveReservingTask")
	return uc.stateOutput(uc.clock()), err
}

// StartNextReservingTask promotes the earliest reservation regardless of its time.
// The outgoing task finishes at the reservation's start, not at now.
func (uc *implUseCase) StartNextReservingTask(ctx context.Context) (tracker.StateOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(uc.state.ReservingTasks) == 0 {
		uc.l.Errorf(ctx, "internal.tracker.usecase.StartNextReservingTask: called with no reservation")
		return uc.stateOutput(uc.clock()), tracker.ErrNoReservation
	}

	uc.promoteLocked(ctx)
	err := uc.persist(ctx, "StartNextReservingTask")
	return uc.stateOutput(uc.clock()), err
}

// PromoteDue is the scheduler check: promote the earliest reservation once
// its start is not after now. Nothing happens otherwise.
func (uc *implUseCase) PromoteDue(ctx context.Context) (tracker.PromoteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.clock()
	if len(uc.state.ReservingTasks) == 0 || now.Before(uc.state.ReservingTasks[0].Start) {
		return tracker.PromoteOutput{}, nil
	}

	promoted := uc.promoteLocked(ctx)
	err := uc.persist(ctx, "PromoteDue")
	return tracker.PromoteOutput{
		Promoted: true,
		Task:     promoted,
		State:    uc.stateOutput(now),
	}, err
}

func (uc *implUseCase) promoteLocked(ctx context.Context) model.Task {
	next := uc.state.ReservingTasks[0]
	uc.state.ReservingTasks = append([]model.Task{}, uc.state.ReservingTasks[1:]...)
	uc.switchTo(next)

	promoted := uc.state.CurrentTask
	uc.l.Infof(ctx, "internal.tracker.usecase.promote: %s＞%s from %s",
		promoted.Category, promoted.Title, promoted.Start.Format("15:04:05"))
	return promoted
}
