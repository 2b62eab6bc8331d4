package view

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"arbeitszeit/timesheet"
)

const (
	buttonSend   = "Senden"
	buttonCancel = "Abbrechen"
)

// Confirm shows the report and asks whether it should be sent. It blocks
// until the user answers or leaves with Escape.
func Confirm(rp timesheet.Report, title string) (bool, error) {
	app := tview.NewApplication()
	confirmed := false

	tbl := newReportTable(rp)
	modal := tview.NewModal().
		SetText(fmt.Sprintf("%s\n\nGesamt: %s", title, timesheet.FormatDuration(rp.Total))).
		AddButtons([]string{buttonSend, buttonCancel}).
		SetDoneFunc(func(_ int, label string) {
			confirmed = label == buttonSend
			app.Stop()
		})

	pages := tview.NewPages().
		AddPage("report", tbl, true, true).
		AddPage("confirm", modal, true, false)

	tbl.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			pages.ShowPage("confirm")
			app.SetFocus(modal)
		case tcell.KeyEscape:
			app.Stop()
		}
	})

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetText(fmt.Sprintf("%s  (Enter: senden, Esc: abbrechen)", title)), 1, 1, false).
		AddItem(pages, 0, 1, true)

	if err := app.SetRoot(root, true).SetFocus(tbl).Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

func newReportTable(rp timesheet.Report) *tview.Table {
	table := tview.NewTable().SetBorders(true)

	for col, h := range Headers {
		table.SetCell(0, col, tview.NewTableCell(h).SetAlign(tview.AlignCenter).SetSelectable(false))
	}

	offset := 1
	for i, d := range rp.Days {
		row := i + offset
		table.SetCell(row, 0, dateToCell(d.Date))
		table.SetCell(row, 1, newTimeCell(d.Start))
		table.SetCell(row, 2, newTimeCell(d.End))
		table.SetCell(row, 3, tview.NewTableCell(presenceToString(d)).SetAlign(tview.AlignCenter))
		table.SetCell(row, 4, tview.NewTableCell(breakToString(d)).SetAlign(tview.AlignCenter))
		table.SetCell(row, 5, tview.NewTableCell(timesheet.FormatDuration(d.WorkedOrZero())).SetAlign(tview.AlignCenter))
		table.SetCell(row, 6, tview.NewTableCell(d.Label))
	}

	last := len(rp.Days) + offset
	table.SetCell(last, 4, tview.NewTableCell(SumLabel).SetAlign(tview.AlignCenter).SetSelectable(false))
	table.SetCell(last, 5, tview.NewTableCell(timesheet.FormatDuration(rp.Total)).SetAlign(tview.AlignCenter).SetSelectable(false))
	table.SetFixed(1, 1)
	return table
}

func dateToCell(d timesheet.Date) *tview.TableCell {
	t := d.Time()
	color := tcell.ColorWhite
	switch t.Weekday() {
	case time.Saturday:
		color = tcell.ColorBlue
	case time.Sunday:
		color = tcell.ColorRed
	}
	return tview.NewTableCell(fmt.Sprintf(" %s ", dateToString(d))).SetTextColor(color).SetAlign(tview.AlignCenter)
}

const emptyTimeStr = "--:--"

func newTimeCell(t *time.Time) *tview.TableCell {
	s := emptyTimeStr
	if t != nil {
		s = t.Format("15:04")
	}
	return tview.NewTableCell(s).SetAlign(tview.AlignCenter)
}
