package tracker

import (
	"context"

	"task-tracker/internal/timeline"
)

// UseCase is the task log of the running session: one live DayState,
// persisted after every mutation.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// State returns a snapshot of the live day with display-ready fields.
	State(ctx context.Context) StateOutput

	// StartNextTask finishes the active task now and starts the given one.
	StartNextTask(ctx context.Context, input StartNextTaskInput) (StateOutput, error)
	// StartNextReservingTask promotes the earliest reservation, using its start as the boundary.
	StartNextReservingTask(ctx context.Context) (StateOutput, error)
	// PromoteDue promotes the earliest reservation only when its start has passed.
	PromoteDue(ctx context.Context) (PromoteOutput, error)
	// ClearAllTasks empties the finished list.
	ClearAllTasks(ctx context.Context) (StateOutput, error)

	// Reservations
	ReserveTask(ctx context.Context, input ReserveTaskInput) (StateOutput, error)
	ReserveAt(ctx context.Context, input ReserveAtInput) (StateOutput, error)
	RemoveReservingTask(ctx context.Context, index int) (StateOutput, error)

	// Timeline projects the live day onto a horizontal axis of the given width.
	Timeline(ctx context.Context, width float64) timeline.Projection

	// Export
	ExportToday(ctx context.Context) ([]byte, error)
	ExportAll(ctx context.Context) ([]byte, error)
}
