package view

import (
	"fmt"
	"strings"
	"time"

	"arbeitszeit/timesheet"
)

var monthNames = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// SpanLabel names the period between first and last: "5 2024" for a single
// month, "Q2 2024" for a calendar quarter, "5-7 2024" within a year and
// "12 2024 - 1 2025" across years.
func SpanLabel(first, last timesheet.Date) string {
	f, l := first.Time(), last.Time()
	if f.Year() != l.Year() {
		return fmt.Sprintf("%d %d - %d %d", f.Month(), f.Year(), l.Month(), l.Year())
	}
	switch {
	case f.Month() == l.Month():
		return fmt.Sprintf("%d %d", f.Month(), f.Year())
	case f.Month()%3 == 1 && l.Month()-f.Month() == 2:
		return fmt.Sprintf("Q%d %d", (f.Month()-1)/3+1, f.Year())
	default:
		return fmt.Sprintf("%d-%d %d", f.Month(), l.Month(), f.Year())
	}
}

func OutputName(name string, first, last timesheet.Date, ext string) string {
	return strings.Join(strings.Fields(fmt.Sprintf("Arbeitszeit %s %s", name, SpanLabel(first, last))), " ") + "." + ext
}

// Subject uses the German month name when the report covers a single month.
func Subject(name string, first, last timesheet.Date) string {
	f, l := first.Time(), last.Time()
	span := SpanLabel(first, last)
	if f.Year() == l.Year() && f.Month() == l.Month() {
		span = fmt.Sprintf("%s %d", MonthName(f.Month()), f.Year())
	}
	return strings.Join(strings.Fields(fmt.Sprintf("Arbeitszeit %s %s", name, span)), " ")
}
