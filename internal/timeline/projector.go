// Package timeline maps task intervals onto a horizontal pixel axis that
// starts at the earliest task hour and ends at midnight.
package timeline

import (
	"math"
	"time"

	"task-tracker/internal/model"
	"task-tracker/pkg/datemath"
)

const endHour = 24

// Bar is one task drawn from Left to Right.
type Bar struct {
	Category string  `json:"category"`
	Title    string  `json:"title"`
	Left     float64 `json:"left"`
	Right    float64 `json:"right"`
	Active   bool    `json:"active"`
}

// Gridline marks a whole hour.
type Gridline struct {
	Hour int     `json:"hour"`
	X    float64 `json:"x"`
}

// Marker is a pending reservation at its scheduled position.
type Marker struct {
	Category string  `json:"category"`
	Title    string  `json:"title"`
	X        float64 `json:"x"`
}

// Projection is everything needed to draw one frame.
type Projection struct {
	Width        float64    `json:"width"`
	StartHour    int        `json:"start_hour"`
	PxPerHour    float64    `json:"px_per_hour"`
	Bars         []Bar      `json:"bars"`
	Gridlines    []Gridline `json:"gridlines"`
	Reservations []Marker   `json:"reservations"`
	NowX         float64    `json:"now_x"`
}

// Projector holds the timezone used to read hours of day.
type Projector struct {
	dates *datemath.Parser
}

func New(dates *datemath.Parser) *Projector {
	return &Projector{dates: dates}
}

// Project lays out tasks (current task first, then finished ones) and the
// reservation queue against now. Tasks with no finish, or a finish equal to
// their start, extend to now.
func (p *Projector) Project(tasks, reservations []model.Task, now time.Time, width float64) Projection {
	startHour := p.StartHour(tasks, now)
	scale := width / float64(endHour-startHour)

	x := func(t time.Time) float64 {
		return (p.dates.HourOfDay(t) - float64(startHour)) * scale
	}

	proj := Projection{
		Width:        width,
		StartHour:    startHour,
		PxPerHour:    scale,
		Bars:         make([]Bar, 0, len(tasks)),
		Gridlines:    make([]Gridline, 0, endHour-startHour+1),
		Reservations: make([]Marker, 0, len(reservations)),
		NowX:         x(now),
	}

	for _, t := range tasks {
		right := now
		if !t.IsActive() && !t.Finish.Equal(t.Start) {
			right = *t.Finish
		}
		proj.Bars = append(proj.Bars, Bar{
			Category: t.Category,
			Title:    t.Title,
			Left:     x(t.Start),
			Right:    x(right),
			Active:   t.IsActive(),
		})
	}

	for h := startHour; h <= endHour; h++ {
		proj.Gridlines = append(proj.Gridlines, Gridline{Hour: h, X: float64(h-startHour) * scale})
	}

	for _, r := range reservations {
		proj.Reservations = append(proj.Reservations, Marker{
			Category: r.Category,
			Title:    r.Title,
			X:        x(r.Start),
		})
	}

	return proj
}

// StartHour is the smallest hour of day among the tasks' starts.
// An empty list falls back to now's hour.
func (p *Projector) StartHour(tasks []model.Task, now time.Time) int {
	if len(tasks) == 0 {
		return int(math.Floor(p.dates.HourOfDay(now)))
	}

	start := endHour + 1
	for _, t := range tasks {
		if h := int(math.Floor(p.dates.HourOfDay(t.Start))); h < start {
			start = h
		}
	}
	return start
}
