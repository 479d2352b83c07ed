package blob

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"task-tracker/internal/model"
	repo "task-tracker/internal/tracker/repository"
)

// Load reads now's day. A snapshot that fails to decode is logged and replaced by a fresh day.
func (r *implRepository) Load(ctx context.Context, now time.Time) (model.DayState, error) {
	now = now.In(r.dates.Location())
	key := r.dates.DayKey(now)

	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.l.Errorf(ctx, "%s: get %s: %v", r.dsn("Load"), key, err)
		return model.NewDayState(now), fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	if !ok {
		r.l.Infof(ctx, "%s: no snapshot for %s, starting a new day", r.dsn("Load"), key)
		return model.NewDayState(now), nil
	}

	state, err := decodeDay([]byte(raw), r.dates.Location())
	if err != nil {
		r.l.Warnf(ctx, "%s: snapshot %s is unreadable, starting a new day: %v", r.dsn("Load"), key, err)
		return model.NewDayState(now), nil
	}
	return state, nil
}

// Save writes state under the key of state.Date.
func (r *implRepository) Save(ctx context.Context, state model.DayState) error {
	key := r.dates.DayKey(state.Date)

	raw, err := encodeDay(state)
	if err != nil {
		r.l.Errorf(ctx, "%s: encode %s: %v", r.dsn("Save"), key, err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	if err := r.store.Set(ctx, key, string(raw)); err != nil {
		r.l.Errorf(ctx, "%s: set %s: %v", r.dsn("Save"), key, err)
		return fmt.Errorf("%w: %v", repo.ErrFailedToSave, err)
	}
	return nil
}

// ListDays returns the stored day keys in calendar order. Keys that are not
// day keys are logged and left out.
func (r *implRepository) ListDays(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDays"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	type day struct {
		key string
		at  time.Time
	}
	days := make([]day, 0, len(keys))
	for _, key := range keys {
		at, err := r.dates.ParseDayKey(key)
		if err != nil {
			r.l.Warnf(ctx, "%s: skipping %v", r.dsn("ListDays"), err)
			continue
		}
		days = append(days, day{key: key, at: at})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].at.Before(days[j].at) })

	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.key
	}
	return out, nil
}

func (r *implRepository) LoadRaw(ctx context.Context, key string) (json.RawMessage, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.l.Errorf(ctx, "%s: get %s: %v", r.dsn("LoadRaw"), key, err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToLoad, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", repo.ErrDayNotFound, key)
	}
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("%w: %s", repo.ErrCorruptRecord, key)
	}
	return json.RawMessage(raw), nil
}

func (r *implRepository) Encode(state model.DayState) ([]byte, error) {
	return encodeDay(state)
}

func (r *implRepository) DayKey(t time.Time) string {
	return r.dates.DayKey(t)
}
