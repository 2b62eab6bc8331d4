package timesheet

import "time"

// DayRecord is one calendar day of the report. Workdays carry the consolidated
// interval, non-workdays only a label and a credited worked duration.
type DayRecord struct {
	Date       Date           `json:"date"`
	Start      *time.Time     `json:"start,omitempty"`
	End        *time.Time     `json:"end,omitempty"`
	Break      time.Duration  `json:"break"`
	Worked     *time.Duration `json:"worked,omitempty"`
	Label      string         `json:"label,omitempty"`
	NonWorkday bool           `json:"non_workday,omitempty"`
}

func newDayRecord(s SessionRecord) DayRecord {
	return DayRecord{
		Date:  s.Date,
		Start: timePtr(s.Start),
		End:   timePtr(s.End),
		Break: s.Break,
	}
}

// Presence is the time between the first clock-in and the last clock-out.
func (d DayRecord) Presence() time.Duration {
	if d.Start == nil || d.End == nil {
		return 0
	}
	return d.End.Sub(*d.Start)
}

// WorkedOrZero returns the worked duration, treating an uncalculated day as zero.
func (d DayRecord) WorkedOrZero() time.Duration {
	if d.Worked == nil {
		return 0
	}
	return *d.Worked
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
