// Package sheet renders a report as an xlsx workbook.
package sheet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"arbeitszeit/timesheet"
	"arbeitszeit/view"
)

const (
	SheetName = "Arbeitszeit"

	defaultFill = "00FFFF"
	headerRow   = 1
	firstRow    = 2
)

type Options struct {
	// Fill is the background colour of the worked-time column.
	Fill string
}

var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

func WriteFile(path string, rp timesheet.Report, opts Options) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(out, rp, opts); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func Write(w io.Writer, rp timesheet.Report, opts Options) error {
	f, err := build(rp, opts)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func build(rp timesheet.Report, opts Options) (*excelize.File, error) {
	if opts.Fill == "" {
		opts.Fill = defaultFill
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}
	st, err := newStyles(f, opts.Fill)
	if err != nil {
		return nil, err
	}

	for i, h := range view.Headers {
		style := st.header
		if i == workedCol-1 {
			style = st.headerFilled
		}
		if err := setCell(f, i+1, headerRow, h, style); err != nil {
			return nil, err
		}
	}

	dateWidth := len(view.Headers[0])
	for i, d := range rp.Days {
		row := firstRow + i
		if err := writeDay(f, st, row, d); err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", row, d.Date, err)
		}
		dateWidth = max(dateWidth, len(d.Date.Time().Format("02.01.2006")))
	}

	sumRow := firstRow + len(rp.Days)
	if err := setCell(f, workedCol-1, sumRow, view.SumLabel, st.sumLabel); err != nil {
		return nil, err
	}
	if err := setCell(f, workedCol, sumRow, days(rp.Total), st.sumValue); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(SheetName, "A", "A", float64(dateWidth+2)); err != nil {
		return nil, err
	}
	return f, nil
}

const (
	dateCol = iota + 1
	startCol
	endCol
	presenceCol
	breakCol
	workedCol
	commentCol
)

func writeDay(f *excelize.File, st styles, row int, d timesheet.DayRecord) error {
	if err := setCell(f, dateCol, row, serial(d.Date.Time()), st.date); err != nil {
		return err
	}
	if !d.NonWorkday {
		cells := []struct {
			col   int
			value float64
			style int
		}{
			{startCol, serial(*d.Start), st.time},
			{endCol, serial(*d.End), st.time},
			{presenceCol, days(d.Presence()), st.duration},
			{breakCol, days(d.Break), st.duration},
		}
		for _, c := range cells {
			if err := setCell(f, c.col, row, c.value, c.style); err != nil {
				return err
			}
		}
	}
	if err := setCell(f, workedCol, row, days(d.WorkedOrZero()), st.durationFilled); err != nil {
		return err
	}
	if d.Label != "" {
		return setCell(f, commentCol, row, d.Label, 0)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	switch v := value.(type) {
	case float64:
		err = f.SetCellFloat(SheetName, cell, v, -1, 64)
	default:
		err = f.SetCellValue(SheetName, cell, v)
	}
	if err != nil {
		return err
	}
	if style == 0 {
		return nil
	}
	return f.SetCellStyle(SheetName, cell, cell, style)
}

// serial converts t to an Excel serial date (days since 1899-12-30).
func serial(t time.Time) float64 {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return days(wall.Sub(excelEpoch))
}

// days converts d into a fraction of days, Excel's duration unit.
func days(d time.Duration) float64 {
	return d.Hours() / 24
}
