package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration formats a duration for logs and CLI output (e.g. "250ms",
// "45s", "5m10s", "1h30m", "3d0h").
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	const day = 24 * time.Hour
	if duration < day {
		h := int(duration.Hours())
		m := int(duration.Minutes()) % 60

		return fmt.Sprintf("%dh%dm", h, m)
	}

	d := int(duration / day)
	h := int(duration.Hours()) % 24

	return fmt.Sprintf("%dd%dh", d, h)
}

// SplitList splits a comma-separated flag value, dropping blanks.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
