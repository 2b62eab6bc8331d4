package timesheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDuration renders d as "HH:MM". Hours are not wrapped at 24.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, int64(d/time.Hour), int64(d%time.Hour/time.Minute))
}

// ParseClock parses "H:MM" or "HH:MM" (hours may exceed 23) into a duration.
func ParseClock(s string) (time.Duration, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid duration %q: expected HH:MM", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("invalid hours in %q", s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 || len(m) != 2 {
		return 0, fmt.Errorf("invalid minutes in %q", s)
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}
