package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-tracker/internal/httpserver"
	"task-tracker/internal/tracker/repository/blob"
	"task-tracker/internal/tracker/usecase"
	"task-tracker/pkg/blobstore"
	"task-tracker/pkg/datemath"
	pkgLog "task-tracker/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newServer(t *testing.T, mutate func(*httpserver.Config)) http.Handler {
	t.Helper()

	dates, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Fatal(err)
	}
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, dates.Location())

	l := pkgLog.NewNop()
	repo := blob.New(blobstore.NewMemory(), dates, l)
	uc := usecase.New(context.Background(), l, repo, dates, func() time.Time { return now })

	cfg := httpserver.Config{
		Logger:        l,
		Port:          8080,
		Mode:          gin.TestMode,
		Environment:   "test",
		TrackerUC:     uc,
		TimelineWidth: 960,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	srv, err := httpserver.New(l, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v (%s)", path, err, w.Body.String())
		}
	}
	return w, env
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*httpserver.Config)
	}{
		{"missing mode", func(c *httpserver.Config) { c.Mode = "" }},
		{"missing port", func(c *httpserver.Config) { c.Port = 0 }},
		{"missing use case", func(c *httpserver.Config) { c.TrackerUC = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, _ := datemath.NewParser("UTC")
			l := pkgLog.NewNop()
			cfg := httpserver.Config{
				Logger:    l,
				Port:      8080,
				Mode:      gin.TestMode,
				TrackerUC: usecase.New(context.Background(), l, blob.New(blobstore.NewMemory(), dates, l), dates, nil),
			}
			tt.mutate(&cfg)
			if _, err := httpserver.New(l, cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w, env := get(t, h, path)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			var data map[string]string
			if err := json.Unmarshal(env.Data, &data); err != nil {
				t.Fatal(err)
			}
			if data["service"] != httpserver.ServiceName {
				t.Errorf("service = %q", data["service"])
			}
		})
	}

	t.Run("ready reports the day key", func(t *testing.T) {
		_, env := get(t, h, "/ready")
		var data map[string]string
		_ = json.Unmarshal(env.Data, &data)
		if data["day"] != "2024/4/1" {
			t.Errorf("day = %q, want 2024/4/1", data["day"])
		}
	})
}

func TestDomainRoutes(t *testing.T) {
	h := newServer(t, nil)

	w, env := get(t, h, "/api/v1/tracker/state")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var state struct {
		DayKey  string `json:"day_key"`
		Current struct {
			Category string `json:"category"`
		} `json:"current"`
	}
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatal(err)
	}
	if state.DayKey != "2024/4/1" || state.Current.Category != "休憩" {
		t.Errorf("state = %+v", state)
	}

	if w, _ := get(t, h, "/api/v1/tracker/timeline"); w.Code != http.StatusOK {
		t.Errorf("timeline status = %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	h := newServer(t, nil)

	w, _ := get(t, h, "/live")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID on response")
	}
}

func TestTelegramRoute(t *testing.T) {
	t.Run("absent without handler", func(t *testing.T) {
		h := newServer(t, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader("{}")))
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("mounted with handler", func(t *testing.T) {
		called := false
		h := newServer(t, func(c *httpserver.Config) {
			c.TelegramHandler = handlerFunc(func(c *gin.Context) {
				called = true
				c.Status(http.StatusOK)
			})
		})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader("{}")))
		if w.Code != http.StatusOK || !called {
			t.Errorf("status = %d, called = %v", w.Code, called)
		}
	})
}

type handlerFunc func(c *gin.Context)

func (f handlerFunc) HandleWebhook(c *gin.Context) { f(c) }
