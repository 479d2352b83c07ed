package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"task-tracker/internal/tracker/repository"
)

// ExportToday serializes the live day in its persisted layout.
func (uc *implUseCase) ExportToday(ctx context.Context) ([]byte, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	data, err := uc.repo.Encode(uc.state)
	if err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.ExportToday: %v", err)
		return nil, err
	}
	return data, nil
}

// ExportAll returns one object mapping every stored day key to its snapshot.
// The live day is written under its own key so unsaved changes are included.
func (uc *implUseCase) ExportAll(ctx context.Context) ([]byte, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	keys, err := uc.repo.ListDays(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.ExportAll: list: %v", err)
		return nil, err
	}

	days := make(map[string]json.RawMessage, len(keys)+1)
	for _, key := range keys {
		raw, err := uc.repo.LoadRaw(ctx, key)
		if err != nil {
			if errors.Is(err, repository.ErrCorruptRecord) || errors.Is(err, repository.ErrDayNotFound) {
				uc.l.Warnf(ctx, "internal.tracker.usecase.ExportAll: skipping %s: %v", key, err)
				continue
			}
			uc.l.Errorf(ctx, "internal.tracker.usecase.ExportAll: load %s: %v", key, err)
			return nil, err
		}
		days[key] = raw
	}

	today, err := uc.repo.Encode(uc.state)
	if err != nil {
		uc.l.Errorf(ctx, "internal.tracker.usecase.ExportAll: encode live day: %v", err)
		return nil, err
	}
	days[uc.repo.DayKey(uc.state.Date)] = today

	return json.Marshal(days)
}
