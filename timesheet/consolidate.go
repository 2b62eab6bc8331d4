package timesheet

// Consolidate merges same-date sessions into one DayRecord per date. The first
// session's start is kept, the last session's end wins, and the idle time
// between sessions is added to the day's break together with each session's
// own break. The input is never modified.
func Consolidate(sessions []SessionRecord) ([]DayRecord, error) {
	days := make([]DayRecord, 0, len(sessions))
	for i, s := range sessions {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if i == 0 {
			days = append(days, newDayRecord(s))
			continue
		}

		prev := sessions[i-1]
		if err := checkSessionOrder(prev, s); err != nil {
			return nil, err
		}
		if s.Date != prev.Date {
			days = append(days, newDayRecord(s))
			continue
		}

		acc := &days[len(days)-1]
		acc.End = timePtr(s.End)
		acc.Break += s.Start.Sub(prev.End) + s.Break
	}
	return days, nil
}

// checkSessionOrder requires ascending dates and, within a date, sessions that
// start no earlier than the previous one ended.
func checkSessionOrder(prev, next SessionRecord) error {
	if next.Date.Before(prev.Date) || (next.Date == prev.Date && next.Start.Before(prev.End)) {
		return &OrderingViolationError{Prev: &prev, Next: &next}
	}
	return nil
}
