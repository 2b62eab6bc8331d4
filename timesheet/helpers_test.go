package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(t *testing.T, date, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	require.NoError(t, err)
	return ts
}

func session(t *testing.T, date, start, end, brk string) SessionRecord {
	t.Helper()
	b, err := ParseClock(brk)
	require.NoError(t, err)
	return SessionRecord{
		Date:  Date(date),
		Start: at(t, date, start),
		End:   at(t, date, end),
		Break: b,
	}
}

func clock(t *testing.T, s string) time.Duration {
	t.Helper()
	d, err := ParseClock(s)
	require.NoError(t, err)
	return d
}

func dates(days []DayRecord) []Date {
	out := make([]Date, len(days))
	for i, d := range days {
		out[i] = d.Date
	}
	return out
}
