package model_test

import (
	"testing"
	"time"

	"task-tracker/internal/model"
)

func TestNewDayState(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	s := model.NewDayState(now)

	if !s.CurrentTask.IsActive() {
		t.Errorf("default task must be active")
	}
	if s.CurrentTask.Category != "休憩" || s.CurrentTask.Title != "休憩" {
		t.Errorf("unexpected default task: %+v", s.CurrentTask)
	}
	if !s.CurrentTask.Start.Equal(now) || !s.Date.Equal(now) {
		t.Errorf("default task should start at creation time")
	}
	if len(s.FinishedTasks) != 0 || len(s.ReservingTasks) != 0 {
		t.Errorf("new day should have no history")
	}
}

func TestTaskDuration(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	active := model.Task{Start: start}

	if got := active.Duration(start.Add(time.Minute)); got != time.Minute {
		t.Errorf("active Duration() = %v, want 1m", got)
	}

	done := active.Finished(start.Add(time.Hour))
	if done.IsActive() {
		t.Errorf("finished task reported active")
	}
	if got := done.Duration(start.Add(5 * time.Hour)); got != time.Hour {
		t.Errorf("finished Duration() = %v, want 1h", got)
	}
	if !active.IsActive() {
		t.Errorf("Finished must not mutate the receiver")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := model.NewDayState(time.Now())
	s.FinishedTasks = append(s.FinishedTasks, model.Task{Category: "作業"})

	c := s.Clone()
	c.FinishedTasks[0].Category = "会議"

	if s.FinishedTasks[0].Category != "作業" {
		t.Errorf("Clone shares backing array with the original")
	}
}

func TestTaxonomy(t *testing.T) {
	kinds := model.TaskKinds()
	if len(kinds) != 11 {
		t.Fatalf("expected 11 task kinds, got %d", len(kinds))
	}
	if kinds[len(kinds)-1] != model.DefaultTask {
		t.Errorf("Break should be the last entry")
	}
	if !model.IsKnownTaskKind("作業", "プログラミング") {
		t.Errorf("作業/プログラミング should be known")
	}
	if model.IsKnownTaskKind("作業", "定例") {
		t.Errorf("titles are bound to their category")
	}
	if _, ok := model.TaskKindAt(11); ok {
		t.Errorf("index 11 is out of range")
	}
	if k, ok := model.TaskKindAt(3); !ok || k.Title != "プログラミング" {
		t.Errorf("TaskKindAt(3) = %+v", k)
	}
}
