package holiday

import (
	"context"
	"slices"
	"strings"
	"time"

	"arbeitszeit/timesheet"
)

type Options struct {
	Exclude      []string
	SkipWeekends bool
}

// Credit spreads the weekly target evenly over a five-day week.
func Credit(weekly time.Duration) time.Duration {
	return weekly / 5
}

// Entries keeps the holidays inside the months spanned by from and to and
// credits each with Credit(weekly). Holidays sharing a date collapse into one
// entry. holidays must be ascending.
func Entries(holidays []Holiday, from, to timesheet.Date, weekly time.Duration, opts Options) []timesheet.NonWorkdayEntry {
	credit := Credit(weekly)
	var entries []timesheet.NonWorkdayEntry
	for _, h := range holidays {
		if m := h.Date.Month(); m < from.Month() || m > to.Month() {
			continue
		}
		if slices.Contains(opts.Exclude, h.Name) {
			continue
		}
		if opts.SkipWeekends && isWeekend(h.Date) {
			continue
		}
		if n := len(entries); n > 0 && entries[n-1].Date == h.Date {
			entries[n-1].Label = strings.Join([]string{entries[n-1].Label, h.Name}, " / ")
			continue
		}
		entries = append(entries, timesheet.NonWorkdayEntry{Date: h.Date, Label: h.Name, Credit: credit})
	}
	return entries
}

func isWeekend(d timesheet.Date) bool {
	wd := d.Time().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

type Calendar struct {
	client Client
	weekly time.Duration
	opts   Options
}

func NewCalendar(client Client, weekly time.Duration, opts Options) *Calendar {
	return &Calendar{client: client, weekly: weekly, opts: opts}
}

// NonWorkdays fetches every year between from and to and returns the
// credited entries for the months they span.
func (c *Calendar) NonWorkdays(ctx context.Context, from, to timesheet.Date) ([]timesheet.NonWorkdayEntry, error) {
	var all []Holiday
	for y := from.Time().Year(); y <= to.Time().Year(); y++ {
		hs, err := c.client.Fetch(ctx, y)
		if err != nil {
			return nil, err
		}
		all = append(all, hs...)
	}
	return Entries(all, from, to, c.weekly, c.opts), nil
}
