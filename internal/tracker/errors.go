package tracker

import "errors"

// Domain-specific errors for the tracker package.
var (
	ErrUnknownTask                = errors.New("category/title is not in the task list")
	ErrNoReservation              = errors.New("no reservation to promote")
	ErrReservationIndexOutOfRange = errors.New("reservation index out of range")
	ErrInvalidReservationTime     = errors.New("reservation time must be HHMM with hour < 24 and minute < 60")
	ErrReservationNotInFuture     = errors.New("reservation time must be in the future")
)
