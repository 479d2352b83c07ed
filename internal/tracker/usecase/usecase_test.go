package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/tracker/repository"
	"task-tracker/internal/tracker/repository/blob"
	"task-tracker/pkg/blobstore"
	"task-tracker/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Set(t time.Time) { c.now = t }

type rejectingStore struct {
	*blobstore.Memory
}

func (s rejectingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("read-only")
}

var jst = time.FixedZone("JST", 9*60*60)

func at(h, m int) time.Time {
	return time.Date(2024, 5, 1, h, m, 0, 0, jst)
}

type fixture struct {
	uc    *implUseCase
	clock *fakeClock
	repo  repository.DayRepository
	store blobstore.Store
}

func newFixture(t *testing.T, start time.Time) *fixture {
	t.Helper()
	return newFixtureWithStore(t, start, blobstore.NewMemory())
}

func newFixtureWithStore(t *testing.T, start time.Time, store blobstore.Store) *fixture {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	clock := &fakeClock{now: start}
	r := blob.New(store, dates, &mockLogger{})
	uc := New(context.Background(), &mockLogger{}, r, dates, clock.Now)
	return &fixture{uc: uc, clock: clock, repo: r, store: store}
}

func (f *fixture) reload(t *testing.T) model.DayState {
	t.Helper()
	state, err := f.repo.Load(context.Background(), f.clock.Now())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return state
}

// checkTimeline asserts that finished tasks are back-to-back and the current task starts where the last one ended.
func checkTimeline(t *testing.T, s model.DayState) {
	t.Helper()
	for i, task := range s.FinishedTasks {
		if task.Finish == nil {
			t.Fatalf("finished[%d] has no finish", i)
		}
		if task.Finish.Before(task.Start) {
			t.Errorf("finished[%d] ends before it starts: %v < %v", i, *task.Finish, task.Start)
		}
		if i > 0 && !task.Start.Equal(*s.FinishedTasks[i-1].Finish) {
			t.Errorf("finished[%d] starts at %v, previous ended at %v", i, task.Start, *s.FinishedTasks[i-1].Finish)
		}
	}
	if n := len(s.FinishedTasks); n > 0 && !s.CurrentTask.Start.Equal(*s.FinishedTasks[n-1].Finish) {
		t.Errorf("current starts at %v, last finished ended at %v", s.CurrentTask.Start, *s.FinishedTasks[n-1].Finish)
	}
	if s.CurrentTask.Finish != nil {
		t.Errorf("current task has a finish")
	}
}
