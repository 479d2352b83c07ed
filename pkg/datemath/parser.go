package datemath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidClock = errors.New("invalid HHMM time of day")
	ErrNotInFuture  = errors.New("time of day is not in the future")
	ErrInvalidKey   = errors.New("invalid day key")
)

// Parser resolves calendar days and times of day in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Tokyo". "Local" uses the host zone.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// DayKey returns the storage key of t's calendar day as "YEAR/MONTH/DAY".
// MONTH is zero-indexed (January = 0) and nothing is padded; blobs written by
// earlier versions of the tracker use the same layout.
func (p *Parser) DayKey(t time.Time) string {
	t = t.In(p.location)
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month())-1, t.Day())
}

// ParseDayKey is the inverse of DayKey. It returns midnight of the day.
func (p *Parser) ParseDayKey(key string) (time.Time, error) {
	parts := strings.Split(key, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		nums[i] = n
	}
	if nums[1] < 0 || nums[1] > 11 || nums[2] < 1 || nums[2] > 31 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	day := time.Date(nums[0], time.Month(nums[1]+1), nums[2], 0, 0, 0, 0, p.location)
	if day.Day() != nums[2] {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return day, nil
}

// ParseHHMM splits an integer-encoded time of day (930 = 09:30). Only one to
// four plain digits are accepted, so signs are rejected.
func ParseHHMM(raw string) (hour, minute int, err error) {
	digits := strings.TrimSpace(raw)
	if len(digits) == 0 || len(digits) > 4 || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}

	hour, minute = n/100, n%100
	if minute >= 60 || hour >= 24 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}
	return hour, minute, nil
}

// TimeOfDay resolves raw HHMM on now's calendar day and requires the result
// to be strictly after now.
func (p *Parser) TimeOfDay(raw string, now time.Time) (time.Time, error) {
	hour, minute, err := ParseHHMM(raw)
	if err != nil {
		return time.Time{}, err
	}

	day := p.StartOfDay(now)
	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
	if !at.After(now) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrNotInFuture, at.Format("15:04"))
	}
	return at, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// HourOfDay returns t as fractional hours since midnight (09:30 = 9.5).
func (p *Parser) HourOfDay(t time.Time) float64 {
	t = t.In(p.location)
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600 +
		float64(t.Nanosecond())/float64(time.Hour)
}
