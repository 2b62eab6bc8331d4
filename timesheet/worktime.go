package timesheet

import "fmt"

// CalculateWorktime sets d.Worked to (End - Start) - Break. Non-workdays
// already carry their credit and are left alone.
func CalculateWorktime(d *DayRecord) error {
	if d.NonWorkday {
		return nil
	}
	if d.Start == nil || d.End == nil {
		return fmt.Errorf("%s: workday without start or end", d.Date)
	}
	worked := d.Presence() - d.Break
	if worked < 0 {
		return &NegativeDurationError{Day: *d, Worked: worked}
	}
	d.Worked = durationPtr(worked)
	return nil
}

func CalculateAll(days []DayRecord) error {
	for i := range days {
		if err := CalculateWorktime(&days[i]); err != nil {
			return err
		}
	}
	return nil
}
