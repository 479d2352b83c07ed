// Package scheduler promotes due reservations on a fixed polling interval.
package scheduler

import (
	"context"
	"sync"
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/tracker"
	pkgLog "task-tracker/pkg/log"
)

const DefaultInterval = 10 * time.Second

// Promoter is the check-and-promote step. tracker.UseCase satisfies it.
type Promoter interface {
	PromoteDue(ctx context.Context) (tracker.PromoteOutput, error)
}

// Notifier is told about every promotion. Errors are logged and otherwise ignored.
type Notifier interface {
	NotifyPromotion(ctx context.Context, task model.Task) error
}

type Scheduler struct {
	promoter  Promoter
	notifiers []Notifier
	interval  time.Duration
	l         pkgLog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(l pkgLog.Logger, promoter Promoter, interval time.Duration, notifiers ...Notifier) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		promoter:  promoter,
		notifiers: notifiers,
		interval:  interval,
		l:         l,
	}
}

// Start launches the polling loop. It stops when ctx is canceled or Stop is called.
// Calling Start on a running scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
	s.l.Infof(ctx, "internal.scheduler.Start: polling reservations every %s", s.interval)
}

// Stop cancels the loop and waits for an in-flight check to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Info(context.Background(), "internal.scheduler.run: stopped")
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Check runs a single poll: promote the earliest reservation if it is due and notify.
func (s *Scheduler) Check(ctx context.Context) bool {
	out, err := s.promoter.PromoteDue(ctx)
	if err != nil {
		s.l.Errorf(ctx, "internal.scheduler.Check: %v", err)
	}
	if !out.Promoted {
		return false
	}

	for _, n := range s.notifiers {
		if err := n.NotifyPromotion(ctx, out.Task); err != nil {
			s.l.Warnf(ctx, "internal.scheduler.Check: notify: %v", err)
		}
	}
	return true
}
