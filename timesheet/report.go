package timesheet

import "time"

type Report struct {
	Days  []DayRecord   `json:"days"`
	Total time.Duration `json:"total"`
}

// Build runs the whole pipeline: consolidate sessions per day, derive worked
// durations, merge non-workdays by date and sum the total.
func Build(sessions []SessionRecord, entries []NonWorkdayEntry) (Report, error) {
	days, err := Consolidate(sessions)
	if err != nil {
		return Report{}, err
	}
	if err := CalculateAll(days); err != nil {
		return Report{}, err
	}
	days, err = MergeNonWorkdays(days, entries)
	if err != nil {
		return Report{}, err
	}
	return Report{Days: days, Total: Total(days)}, nil
}

// Span returns the first and last date of the report.
func (r Report) Span() (first, last Date, ok bool) {
	if len(r.Days) == 0 {
		return "", "", false
	}
	return r.Days[0].Date, r.Days[len(r.Days)-1].Date, true
}

// Months lists the distinct "2006-01" keys covered by the report, ascending.
func (r Report) Months() []string {
	var months []string
	for _, d := range r.Days {
		m := d.Date.Month()
		if len(months) == 0 || months[len(months)-1] != m {
			months = append(months, m)
		}
	}
	return months
}

// ForMonth returns the subset of the report inside month ("2006-01") with
// its own total.
func (r Report) ForMonth(month string) Report {
	var days []DayRecord
	for _, d := range r.Days {
		if d.Date.Month() == month {
			days = append(days, d)
		}
	}
	return Report{Days: days, Total: Total(days)}
}

func (r Report) TotalBreak() time.Duration {
	var total time.Duration
	for _, d := range r.Days {
		total += d.Break
	}
	return total
}
