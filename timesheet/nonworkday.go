package timesheet

import "time"

// NonWorkdayEntry is a date credited with a fixed worked duration, such as a
// public holiday.
type NonWorkdayEntry struct {
	Date   Date          `json:"date"`
	Label  string        `json:"label"`
	Credit time.Duration `json:"credit"`
}

func NewNonWorkdayRecord(e NonWorkdayEntry) DayRecord {
	return DayRecord{
		Date:       e.Date,
		Worked:     durationPtr(e.Credit),
		Label:      e.Label,
		NonWorkday: true,
	}
}

// MergeNonWorkdays returns a new sequence with every entry placed before the
// first day whose date is later than the entry's, or appended at the end.
// Both inputs must be ascending. The scan resumes from the last insertion
// point, so the merge is linear in len(days)+len(entries). On error days is
// left untouched and no partial result is returned.
func MergeNonWorkdays(days []DayRecord, entries []NonWorkdayEntry) ([]DayRecord, error) {
	merged := make([]DayRecord, 0, len(days)+len(entries))
	next := 0
	for i, e := range entries {
		if i > 0 && !entries[i-1].Date.Before(e.Date) {
			prev := entries[i-1]
			return nil, &OrderingViolationError{PrevEntry: &prev, NextEntry: &e}
		}
		for next < len(days) && !days[next].Date.After(e.Date) {
			if days[next].Date == e.Date {
				return nil, &DuplicateDateError{Date: e.Date, Label: e.Label}
			}
			merged = append(merged, days[next])
			next++
		}
		merged = append(merged, NewNonWorkdayRecord(e))
	}
	return append(merged, days[next:]...), nil
}
