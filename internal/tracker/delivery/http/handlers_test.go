package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/middleware"
	"task-tracker/internal/timeline"
	"task-tracker/internal/tracker"
	pkgLog "task-tracker/pkg/log"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockUseCase struct {
	state  tracker.StateOutput
	err    error
	export []byte

	startInput   tracker.StartNextTaskInput
	reserveInput tracker.ReserveTaskInput
	atInput      tracker.ReserveAtInput
	removed      int
	width        float64
	calls        []string
}

func (m *mockUseCase) State(ctx context.Context) tracker.StateOutput {
	return m.state
}
func (m *mockUseCase) StartNextTask(ctx context.Context, input tracker.StartNextTaskInput) (tracker.StateOutput, error) {
	m.calls = append(m.calls, "StartNextTask")
	m.startInput = input
	return m.state, m.err
}
func (m *mockUseCase) StartNextReservingTask(ctx context.Context) (tracker.StateOutput, error) {
	m.calls = append(m.calls, "StartNextReservingTask")
	return m.state, m.err
}
func (m *mockUseCase) PromoteDue(ctx context.Context) (tracker.PromoteOutput, error) {
	return tracker.PromoteOutput{}, m.err
}
func (m *mockUseCase) ClearAllTasks(ctx context.Context) (tracker.StateOutput, error) {
	m.calls = append(m.calls, "ClearAllTasks")
	return m.state, m.err
}
func (m *mockUseCase) ReserveTask(ctx context.Context, input tracker.ReserveTaskInput) (tracker.StateOutput, error) {
	m.calls = append(m.calls, "ReserveTask")
	m.reserveInput = input
	return m.state, m.err
}
func (m *mockUseCase) ReserveAt(ctx context.Context, input tracker.ReserveAtInput) (tracker.StateOutput, error) {
	m.calls = append(m.calls, "ReserveAt")
	m.atInput = input
	return m.state, m.err
}
func (m *mockUseCase) RemoveReservingTask(ctx context.Context, index int) (tracker.StateOutput, error) {
	m.calls = append(m.calls, "RemoveReservingTask")
	m.removed = index
	return m.state, m.err
}
func (m *mockUseCase) Timeline(ctx context.Context, width float64) timeline.Projection {
	m.width = width
	return timeline.Projection{Width: width, StartHour: 8}
}
func (m *mockUseCase) ExportToday(ctx context.Context) ([]byte, error) {
	return m.export, m.err
}
func (m *mockUseCase) ExportAll(ctx context.Context) ([]byte, error) {
	return m.export, m.err
}

// ── Test Helpers ───────────────────────────────────────────────────────────

func sampleState() tracker.StateOutput {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return tracker.StateOutput{
		DayKey: "2024/4/1",
		Header: "2024/4/1 09:30:00",
		Current: tracker.TaskView{
			Category: "作業", Title: "特許", Start: start,
			StartClock: "09:00:00", Duration: 30 * time.Minute, DurationClock: "00:30:00",
		},
		ElapsedCompact: "30分0秒",
		Finished:       []tracker.TaskView{},
		Reserving:      []tracker.TaskView{},
		Totals:         []tracker.CategoryTotal{{Category: "休憩", Duration: time.Hour}},
	}
}

func newTestEngine(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(pkgLog.NewNop(), uc, 960)
	RegisterRoutes(r.Group("/api/v1/tracker"), h, middleware.New(pkgLog.NewNop(), 0))
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestState(t *testing.T) {
	uc := &mockUseCase{state: sampleState()}
	w, env := do(t, newTestEngine(uc), http.MethodGet, "/api/v1/tracker/state", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var got stateResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("data: %v", err)
	}
	if got.DayKey != "2024/4/1" || got.Clock != "2024/4/1 09:30:00" || got.Elapsed != "30分0秒" {
		t.Errorf("state = %+v", got)
	}
	if got.Current.Duration != "00:30:00" || got.Current.DurationMs != 1_800_000 {
		t.Errorf("current = %+v", got.Current)
	}
	if len(got.Totals) != 1 || got.Totals[0].Duration != "01:00:00" {
		t.Errorf("totals = %+v", got.Totals)
	}
}

func TestCategories(t *testing.T) {
	w, env := do(t, newTestEngine(&mockUseCase{}), http.MethodGet, "/api/v1/tracker/categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got []categoryResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(got) != 11 || got[0].Category != "会議" || got[0].Title != "定例" {
		t.Fatalf("categories = %+v", got)
	}
	if last := got[len(got)-1]; !last.Default || last.Title != "休憩" {
		t.Errorf("last = %+v, want default break", last)
	}
}

func TestStartNext(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantInput  tracker.StartNextTaskInput
	}{
		{name: "By name", body: `{"category":"作業","title":"特許"}`, wantStatus: http.StatusOK, wantInput: tracker.StartNextTaskInput{Category: "作業", Title: "特許"}},
		{name: "By index", body: `{"index":3}`, wantStatus: http.StatusOK, wantInput: tracker.StartNextTaskInput{Category: "作業", Title: "プログラミング"}},
		{name: "Index out of list", body: `{"index":42}`, wantStatus: http.StatusBadRequest},
		{name: "Missing task", body: `{"category":"作業"}`, wantStatus: http.StatusBadRequest},
		{name: "Malformed body", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "Unknown task", body: `{"category":"作業","title":"昼寝"}`, ucErr: tracker.ErrUnknownTask, wantStatus: http.StatusBadRequest},
		{name: "Save failure", body: `{"index":0}`, ucErr: errors.New("disk full"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{state: sampleState(), err: tt.ucErr}
			w, _ := do(t, newTestEngine(uc), http.MethodPost, "/api/v1/tracker/tasks/next", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK && uc.startInput != tt.wantInput {
				t.Errorf("input = %+v, want %+v", uc.startInput, tt.wantInput)
			}
		})
	}
}

func TestReserve(t *testing.T) {
	start := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
		wantCall   string
	}{
		{name: "HHMM", body: `{"index":0,"hhmm":"1330"}`, wantStatus: http.StatusOK, wantCall: "ReserveAt"},
		{name: "Absolute start", body: `{"category":"会議","title":"臨時","start":"2024-05-01T13:00:00Z"}`, wantStatus: http.StatusOK, wantCall: "ReserveTask"},
		{name: "Both times", body: `{"index":0,"hhmm":"1330","start":"2024-05-01T13:00:00Z"}`, wantStatus: http.StatusBadRequest},
		{name: "No time", body: `{"index":0}`, wantStatus: http.StatusBadRequest},
		{name: "Past time", body: `{"index":0,"hhmm":"0700"}`, ucErr: tracker.ErrReservationNotInFuture, wantStatus: http.StatusUnprocessableEntity, wantCall: "ReserveAt"},
		{name: "Bad time", body: `{"index":0,"hhmm":"2561"}`, ucErr: tracker.ErrInvalidReservationTime, wantStatus: http.StatusUnprocessableEntity, wantCall: "ReserveAt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{state: sampleState(), err: tt.ucErr}
			w, _ := do(t, newTestEngine(uc), http.MethodPost, "/api/v1/tracker/reservations", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCall == "" {
				if len(uc.calls) != 0 {
					t.Errorf("use case called: %v", uc.calls)
				}
				return
			}
			if len(uc.calls) != 1 || uc.calls[0] != tt.wantCall {
				t.Fatalf("calls = %v, want [%s]", uc.calls, tt.wantCall)
			}
			switch tt.wantCall {
			case "ReserveAt":
				if uc.atInput.Category != "会議" || uc.atInput.Title != "定例" {
					t.Errorf("input = %+v", uc.atInput)
				}
			case "ReserveTask":
				if !uc.reserveInput.Start.Equal(start) || uc.reserveInput.Title != "臨時" {
					t.Errorf("input = %+v", uc.reserveInput)
				}
			}
		})
	}
}

func TestPromote(t *testing.T) {
	uc := &mockUseCase{state: sampleState()}
	w, env := do(t, newTestEngine(uc), http.MethodPost, "/api/v1/tracker/reservations/promote", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got promoteResp
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("data: %v", err)
	}
	if got.Promoted.Title != "特許" {
		t.Errorf("promoted = %+v", got.Promoted)
	}

	uc = &mockUseCase{err: tracker.ErrNoReservation}
	w, _ = do(t, newTestEngine(uc), http.MethodPost, "/api/v1/tracker/reservations/promote", "")
	if w.Code != http.StatusConflict {
		t.Errorf("empty queue status = %d, want 409", w.Code)
	}
}

func TestRemoveReservation(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		ucErr      error
		wantStatus int
	}{
		{name: "Valid", path: "/api/v1/tracker/reservations/1", wantStatus: http.StatusOK},
		{name: "Not a number", path: "/api/v1/tracker/reservations/first", wantStatus: http.StatusBadRequest},
		{name: "Out of range", path: "/api/v1/tracker/reservations/9", ucErr: tracker.ErrReservationIndexOutOfRange, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{state: sampleState(), err: tt.ucErr}
			w, _ := do(t, newTestEngine(uc), http.MethodDelete, tt.path, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.name == "Valid" && uc.removed != 1 {
				t.Errorf("removed = %d", uc.removed)
			}
		})
	}
}

func TestClear(t *testing.T) {
	uc := &mockUseCase{state: sampleState()}
	w, _ := do(t, newTestEngine(uc), http.MethodPost, "/api/v1/tracker/tasks/clear", "")
	if w.Code != http.StatusOK || len(uc.calls) != 1 || uc.calls[0] != "ClearAllTasks" {
		t.Errorf("status = %d, calls = %v", w.Code, uc.calls)
	}
}

func TestTimeline(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantWidth  float64
	}{
		{name: "Default width", query: "", wantStatus: http.StatusOK, wantWidth: 960},
		{name: "Given width", query: "?width=1200", wantStatus: http.StatusOK, wantWidth: 1200},
		{name: "Negative width", query: "?width=-5", wantStatus: http.StatusBadRequest},
		{name: "Not a number", query: "?width=wide", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w, _ := do(t, newTestEngine(uc), http.MethodGet, "/api/v1/tracker/timeline"+tt.query, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && uc.width != tt.wantWidth {
				t.Errorf("width = %v, want %v", uc.width, tt.wantWidth)
			}
		})
	}
}

func TestExport(t *testing.T) {
	payload := []byte(`{"2024/4/1":{"date":"2024-04-30T23:00:00.000Z"}}`)

	tests := []struct {
		path     string
		filename string
	}{
		{path: "/api/v1/tracker/export/today", filename: `attachment; filename="tracker-2024-4-1.json"`},
		{path: "/api/v1/tracker/export/all", filename: `attachment; filename="tracker-all.json"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			uc := &mockUseCase{state: sampleState(), export: payload}
			w, _ := do(t, newTestEngine(uc), http.MethodGet, tt.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if got := w.Header().Get("Content-Disposition"); got != tt.filename {
				t.Errorf("Content-Disposition = %q, want %q", got, tt.filename)
			}
			if !bytes.Equal(w.Body.Bytes(), payload) {
				t.Errorf("body = %s", w.Body.String())
			}
		})
	}

	uc := &mockUseCase{err: errors.New("store offline")}
	w, _ := do(t, newTestEngine(uc), http.MethodGet, "/api/v1/tracker/export/all", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("failed export status = %d, want 500", w.Code)
	}
}
