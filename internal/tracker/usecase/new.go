package usecase

import (
	"context"
	"sync"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/timeline"
	"task-tracker/internal/tracker/repository"
	"task-tracker/pkg/datemath"
	pkgLog "task-tracker/pkg/log"
)

// Clock returns the current instant. Tests substitute a fixed one.
type Clock func() time.Time

// implUseCase owns the live DayState of the session. Every operation runs
// under mu so HTTP handlers, the scheduler and chat commands see one
// mutation at a time.
type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.DayRepository
	dates     *datemath.Parser
	projector *timeline.Projector
	now       Clock

	mu    sync.Mutex
	state model.DayState
}

// New loads today's state from repo and returns the tracker UseCase.
// A load failure is logged and the session starts from a fresh day.
func New(
	ctx context.Context,
	l pkgLog.Logger,
	repo repository.DayRepository,
	dates *datemath.Parser,
	clock Clock,
) *implUseCase {
	if clock == nil {
		clock = time.Now
	}

	uc := &implUseCase{
		l:         l,
		repo:      repo,
		dates:     dates,
		projector: timeline.New(dates),
		now:       clock,
	}

	state, err := repo.Load(ctx, uc.clock())
	if err != nil {
		l.Errorf(ctx, "internal.tracker.usecase.New: load failed, starting a new day: %v", err)
	}
	uc.state = state
	l.Infof(ctx, "internal.tracker.usecase.New: session day %s, current %s＞%s, %d finished, %d reserved",
		repo.DayKey(state.Date), state.CurrentTask.Category, state.CurrentTask.Title,
		len(state.FinishedTasks), len(state.ReservingTasks))

	return uc
}

func (uc *implUseCase) clock() time.Time {
	return uc.now().In(uc.dates.Location())
}

// persist writes the live state. The in-memory mutation stands even when the write fails.
func (uc *implUseCase) persist(ctx context.Context, op string) error {
	if err := uc.repo.Save(ctx, uc.state); err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.%s: save: %v", op, err)
		return err
	}
	return nil
}
