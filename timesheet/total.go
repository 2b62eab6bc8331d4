package timesheet

import "time"

// Total sums the worked durations of days. Days without a worked duration
// count as zero.
func Total(days []DayRecord) time.Duration {
	var total time.Duration
	for _, d := range days {
		total += d.WorkedOrZero()
	}
	return total
}
