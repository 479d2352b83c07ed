package blob

import (
	"fmt"

	"task-tracker/internal/tracker/repository"
	"task-tracker/pkg/blobstore"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
)

type implRepository struct {
	store blobstore.Store
	dates *datemath.Parser
	l     log.Logger
}

// New creates a DayRepository on top of a blob store.
func New(store blobstore.Store, dates *datemath.Parser, l log.Logger) repository.DayRepository {
	if store == nil {
		panic("tracker/repository/blob: store is required")
	}
	if dates == nil {
		panic("tracker/repository/blob: date parser is required")
	}
	return &implRepository{store: store, dates: dates, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("tracker/repository/blob.%s", method)
}
