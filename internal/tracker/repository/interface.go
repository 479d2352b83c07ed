package repository

import (
	"context"
	"encoding/json"
	"time"

	"task-tracker/internal/model"
)

// DayRepository persists one DayState per calendar day.
type DayRepository interface {
	// Load returns the state stored for now's day. A missing or unreadable
	// snapshot yields a fresh day starting at now; only store failures are errors.
	Load(ctx context.Context, now time.Time) (model.DayState, error)
	// Save overwrites the snapshot of state's own day.
	Save(ctx context.Context, state model.DayState) error
	// ListDays returns every stored day key in calendar order, skipping keys that are not day keys.
	ListDays(ctx context.Context) ([]string, error)
	// LoadRaw returns the stored JSON of a day without decoding timestamps.
	LoadRaw(ctx context.Context, key string) (json.RawMessage, error)
	// Encode renders state in the stored JSON layout.
	Encode(state model.DayState) ([]byte, error)
	// DayKey is the storage key of t's day.
	DayKey(t time.Time) string
}
