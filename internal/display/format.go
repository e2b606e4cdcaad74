package display

import (
	"fmt"
	"time"
)

// FormatDuration returns a compact duration label ("45s", "3m05s", "1h02m").
func FormatDuration(d time.Duration) string {
	s := int(d.Seconds())
	if s < 60 {
		return fmt.Sprintf("%ds", s)
	}
	if s < 3600 {
		return fmt.Sprintf("%dm%02ds", s/60, s%60)
	}
	return fmt.Sprintf("%dh%02dm", s/3600, (s%3600)/60)
}

// FormatCount returns "<n> file" or "<n> files".
func FormatCount(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
