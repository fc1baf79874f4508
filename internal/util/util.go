// Package util holds small formatting helpers for user-facing text.
package util

import (
	"fmt"
	"time"
)

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders a size in binary units with one decimal, e.g. "5.0 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

// FormatDuration renders a token lifetime for mail bodies, e.g. "30 minutes" or "1 hour 30 minutes".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Minute)
	if duration < time.Minute {
		return "less than a minute"
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	switch {
	case h == 0:
		return plural(m, "minute")
	case m == 0:
		return plural(h, "hour")
	default:
		return plural(h, "hour") + " " + plural(m, "minute")
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}

	return fmt.Sprintf("%d %ss", n, word)
}
