package blob

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"task-tracker/internal/model"
)

// timeLayout matches Date.prototype.toJSON: UTC with milliseconds.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type taskDoc struct {
	Start    *string `json:"start"`
	Finish   *string `json:"finish"`
	Category string  `json:"category"`
	Title    string  `json:"title"`
}

type dayDoc struct {
	CurrentTask    taskDoc   `json:"currentTask"`
	FinishedTasks  []taskDoc `json:"finishedTasks"`
	ReservingTasks []taskDoc `json:"reservingTasks"`
	Date           *string   `json:"date"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseTime(field string, s *string, loc *time.Location) (time.Time, error) {
	if s == nil {
		return time.Time{}, fmt.Errorf("%s: missing", field)
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t.In(loc), nil
}

func encodeTask(t model.Task, withFinish bool) taskDoc {
	start := formatTime(t.Start)
	doc := taskDoc{Start: &start, Category: t.Category, Title: t.Title}
	if withFinish {
		doc.Finish = formatTimePtr(t.Finish)
	}
	return doc
}

func encodeDay(s model.DayState) ([]byte, error) {
	date := formatTime(s.Date)
	doc := dayDoc{
		CurrentTask:    encodeTask(s.CurrentTask, true),
		FinishedTasks:  make([]taskDoc, 0, len(s.FinishedTasks)),
		ReservingTasks: make([]taskDoc, 0, len(s.ReservingTasks)),
		Date:           &date,
	}
	for _, t := range s.FinishedTasks {
		doc.FinishedTasks = append(doc.FinishedTasks, encodeTask(t, true))
	}
	for _, t := range s.ReservingTasks {
		doc.ReservingTasks = append(doc.ReservingTasks, encodeTask(t, false))
	}
	return json.Marshal(doc)
}

// decodeDay rebuilds a DayState. The current task's finish is dropped: older
// snapshots stored finish == start for the running task. Reservations come
// back sorted by start whatever order they were stored in.
func decodeDay(raw []byte, loc *time.Location) (model.DayState, error) {
	var doc dayDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.DayState{}, err
	}

	var (
		s   model.DayState
		err error
	)

	if s.Date, err = parseTime("date", doc.Date, loc); err != nil {
		return model.DayState{}, err
	}
	if s.CurrentTask, err = decodeTask("currentTask", doc.CurrentTask, false, loc); err != nil {
		return model.DayState{}, err
	}

	s.FinishedTasks = make([]model.Task, 0, len(doc.FinishedTasks))
	for i, d := range doc.FinishedTasks {
		t, err := decodeTask(fmt.Sprintf("finishedTasks[%d]", i), d, true, loc)
		if err != nil {
			return model.DayState{}, err
		}
		if t.Finish.Before(t.Start) {
			return model.DayState{}, fmt.Errorf("finishedTasks[%d]: finish before start", i)
		}
		s.FinishedTasks = append(s.FinishedTasks, t)
	}

	s.ReservingTasks = make([]model.Task, 0, len(doc.ReservingTasks))
	for i, d := range doc.ReservingTasks {
		t, err := decodeTask(fmt.Sprintf("reservingTasks[%d]", i), d, false, loc)
		if err != nil {
			return model.DayState{}, err
		}
		s.ReservingTasks = append(s.ReservingTasks, t)
	}
	model.SortByStart(s.ReservingTasks)

	return s, nil
}

func decodeTask(field string, d taskDoc, withFinish bool, loc *time.Location) (model.Task, error) {
	start, err := parseTime(field+".start", d.Start, loc)
	if err != nil {
		return model.Task{}, err
	}
	if d.Category == "" || d.Title == "" {
		return model.Task{}, errors.New(field + ": category and title are required")
	}

	t := model.Task{Start: start, Category: d.Category, Title: d.Title}
	if withFinish {
		finish, err := parseTime(field+".finish", d.Finish, loc)
		if err != nil {
			return model.Task{}, err
		}
		t.Finish = &finish
	}
	return t, nil
}
