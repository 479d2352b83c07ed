package http

import (
	"time"

	"task-tracker/internal/model"
	"task-tracker/internal/timeline"
	"task-tracker/internal/tracker"
	"task-tracker/pkg/timefmt"
)

// --- Request DTOs ---

// taskReq names a task either by its position in the category list or by (category, title).
type taskReq struct {
	Index    *int   `json:"index"`
	Category string `json:"category"`
	Title    string `json:"title"`
}

func (r taskReq) validate() error {
	if r.Index == nil && (r.Category == "" || r.Title == "") {
		return errTaskRequired
	}
	return nil
}

func (r taskReq) kind() (model.TaskKind, error) {
	if r.Index != nil {
		k, ok := model.TaskKindAt(*r.Index)
		if !ok {
			return model.TaskKind{}, errUnknownTaskAt
		}
		return k, nil
	}
	return model.TaskKind{Category: r.Category, Title: r.Title}, nil
}

type startNextReq struct {
	taskReq
}

func (r startNextReq) toInput() (tracker.StartNextTaskInput, error) {
	k, err := r.kind()
	if err != nil {
		return tracker.StartNextTaskInput{}, err
	}
	return tracker.StartNextTaskInput{Category: k.Category, Title: k.Title}, nil
}

// reserveReq schedules by HHMM of today ("1330") or by an absolute start time.
type reserveReq struct {
	taskReq
	HHMM  string     `json:"hhmm"`
	Start *time.Time `json:"start"`
}

func (r reserveReq) validate() error {
	if err := r.taskReq.validate(); err != nil {
		return err
	}
	if (r.HHMM == "") == (r.Start == nil) {
		return errWhenRequired
	}
	return nil
}

type timelineReq struct {
	Width float64 `form:"width"`
}

// --- Response DTOs ---

type taskResp struct {
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Start       time.Time  `json:"start"`
	Finish      *time.Time `json:"finish"`
	StartClock  string     `json:"start_clock"`
	FinishClock string     `json:"finish_clock,omitempty"`
	DurationMs  int64      `json:"duration_ms"`
	Duration    string     `json:"duration"`
}

func newTaskResp(v tracker.TaskView) taskResp {
	return taskResp{
		Category:    v.Category,
		Title:       v.Title,
		Start:       v.Start,
		Finish:      v.Finish,
		StartClock:  v.StartClock,
		FinishClock: v.FinishClock,
		DurationMs:  v.Duration.Milliseconds(),
		Duration:    v.DurationClock,
	}
}

func newTaskResps(views []tracker.TaskView) []taskResp {
	out := make([]taskResp, len(views))
	for i, v := range views {
		out[i] = newTaskResp(v)
	}
	return out
}

type totalResp struct {
	Category   string `json:"category"`
	DurationMs int64  `json:"duration_ms"`
	Duration   string `json:"duration"`
}

type stateResp struct {
	DayKey    string      `json:"day_key"`
	Clock     string      `json:"clock"`
	Current   taskResp    `json:"current"`
	Elapsed   string      `json:"elapsed"`
	Finished  []taskResp  `json:"finished"`
	Reserving []taskResp  `json:"reserving"`
	Totals    []totalResp `json:"totals"`
}

func (h *handler) newStateResp(out tracker.StateOutput) stateResp {
	totals := make([]totalResp, len(out.Totals))
	for i, t := range out.Totals {
		totals[i] = totalResp{
			Category:   t.Category,
			DurationMs: t.Duration.Milliseconds(),
			Duration:   timefmt.FormatDurationClock(t.Duration),
		}
	}
	return stateResp{
		DayKey:    out.DayKey,
		Clock:     out.Header,
		Current:   newTaskResp(out.Current),
		Elapsed:   out.ElapsedCompact,
		Finished:  newTaskResps(out.Finished),
		Reserving: newTaskResps(out.Reserving),
		Totals:    totals,
	}
}

type categoryResp struct {
	Index    int    `json:"index"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Default  bool   `json:"default"`
}

func (h *handler) newCategoriesResp(kinds []model.TaskKind) []categoryResp {
	out := make([]categoryResp, len(kinds))
	for i, k := range kinds {
		out[i] = categoryResp{Index: i, Category: k.Category, Title: k.Title, Default: k == model.DefaultTask}
	}
	return out
}

type promoteResp struct {
	Promoted taskResp  `json:"promoted"`
	State    stateResp `json:"state"`
}

func (h *handler) newPromoteResp(out tracker.StateOutput) promoteResp {
	return promoteResp{
		Promoted: newTaskResp(out.Current),
		State:    h.newStateResp(out),
	}
}

type timelineResp = timeline.Projection
