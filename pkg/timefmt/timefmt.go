// Package timefmt renders instants and durations for the tracker views.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// FormatClock renders t as zero-padded HH:MM:SS using t's own calendar fields.
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// FormatDurationClock renders d as zero-padded HH:MM:SS. Hours are not wrapped at 24.
// Sub-second remainders are truncated; negative durations render as zero.
func FormatDurationClock(d time.Duration) string {
	h, m, s := split(d)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatDurationCompact renders d as e.g. "1時間1分1秒".
// The hour segment is dropped when zero, the minute segment only when hours and minutes are both zero.
func FormatDurationCompact(d time.Duration) string {
	h, m, s := split(d)

	var sb strings.Builder
	if h > 0 {
		fmt.Fprintf(&sb, "%d時間", h)
	}
	if h > 0 || m > 0 {
		fmt.Fprintf(&sb, "%d分", m)
	}
	fmt.Fprintf(&sb, "%d秒", s)
	return sb.String()
}

func split(d time.Duration) (h, m, s int64) {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return total / 3600, total / 60 % 60, total % 60
}
