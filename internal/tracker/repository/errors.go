package repository

import "errors"

var (
	ErrFailedToLoad  = errors.New("failed to load day")
	ErrFailedToSave  = errors.New("failed to save day")
	ErrFailedToList  = errors.New("failed to list days")
	ErrDayNotFound   = errors.New("day not found")
	ErrCorruptRecord = errors.New("stored day is not valid JSON")
)
