package main

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"arbeitszeit/holiday"
	"arbeitszeit/timesheet"
)

// renderHolidays lists hs with their credit; month 0 lists the whole year.
func renderHolidays(w io.Writer, hs []holiday.Holiday, month int, credit time.Duration) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Datum", "Feiertag", "Gutschrift", "Hinweis"})
	for _, h := range hs {
		if month != 0 && int(h.Date.Time().Month()) != month {
			continue
		}
		t.AppendRow(table.Row{h.Date.Time().Format("02.01.2006"), h.Name, timesheet.FormatDuration(credit), h.Note})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
