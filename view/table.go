package view

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"arbeitszeit/timesheet"
)

type Viewer interface {
	Do(yearMonth string) error
}

type Format string

const (
	FormatTable    = Format("table")
	FormatCSV      = Format("csv")
	FormatMarkdown = Format("markdown")
	FormatHTML     = Format("html")
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatCSV, FormatMarkdown, FormatHTML:
		return f, nil
	case "":
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown format %q: use table, csv, markdown or html", s)
}

var Headers = []string{"Datum", "Anfang", "Ende", "anwesend", "Pausen", "gearbeitet", "Kommentare"}

const SumLabel = "SUMME"

type tableViewer struct {
	repo   ViewRepository
	out    io.Writer
	format Format
}

func NewTableViewer(repo ViewRepository, out io.Writer, format Format) Viewer {
	return &tableViewer{repo: repo, out: out, format: format}
}

func (t *tableViewer) Do(yearMonth string) error {
	rp, err := t.repo.GetReport(yearMonth)
	if err != nil {
		return err
	}
	return Render(t.out, rp, t.format)
}

// Render writes the report to w in the given format.
func Render(w io.Writer, rp timesheet.Report, format Format) error {
	tw := BuildTableWriter(rp)
	tw.SetOutputMirror(w)
	switch format {
	case FormatCSV:
		tw.RenderCSV()
	case FormatMarkdown:
		tw.RenderMarkdown()
	case FormatHTML:
		tw.RenderHTML()
	default:
		tw.Render()
	}
	return nil
}

func BuildTableWriter(rp timesheet.Report) table.Writer {
	t := table.NewWriter()
	header := table.Row{}
	for _, h := range Headers {
		header = append(header, h)
	}
	t.AppendHeader(header)

	for _, d := range rp.Days {
		t.AppendRow(table.Row{
			dateToString(d.Date),
			ptrTimeToString(d.Start),
			ptrTimeToString(d.End),
			presenceToString(d),
			breakToString(d),
			timesheet.FormatDuration(d.WorkedOrZero()),
			d.Label,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", SumLabel, timesheet.FormatDuration(rp.Total), ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignCenter},
		{Number: 3, Align: text.AlignCenter},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	style.Format.Footer = text.FormatDefault
	t.SetStyle(style)
	return t
}

var week = []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

func dateToString(d timesheet.Date) string {
	t := d.Time()
	return fmt.Sprintf("%s (%s)", t.Format("02.01.2006"), week[t.Weekday()])
}

func presenceToString(d timesheet.DayRecord) string {
	if d.NonWorkday {
		return ""
	}
	return timesheet.FormatDuration(d.Presence())
}

func breakToString(d timesheet.DayRecord) string {
	if d.NonWorkday {
		return ""
	}
	return timesheet.FormatDuration(d.Break)
}

func ptrTimeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
