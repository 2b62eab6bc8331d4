// Package csvimport reads a time-tracking CSV export into session records.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"arbeitszeit/timesheet"
)

// Layout describes where the export keeps each field and how it is formatted.
type Layout struct {
	Delimiter   rune
	DateLayout  string
	TimeLayout  string
	BreakLayout string
	DateColumn  int
	StartColumn int
	EndColumn   int
	BreakColumn int
}

func DefaultLayout() Layout {
	return Layout{
		Delimiter:   ',',
		DateLayout:  "02.01.2006",
		TimeLayout:  "02.01.2006 03:04 PM",
		BreakLayout: "15:04:05",
		DateColumn:  0,
		StartColumn: 1,
		EndColumn:   2,
		BreakColumn: 6,
	}
}

type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func ParseFile(path string, layout Layout) ([]timesheet.SessionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, layout)
}

// Parse skips the header row and converts every following row. Rows are
// returned in file order; ordering is checked later by the consolidator.
func Parse(r io.Reader, layout Layout) ([]timesheet.SessionRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = layout.Delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var sessions []timesheet.SessionRecord
	for header := true; ; header = false {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		if header || isBlank(row) {
			continue
		}
		s, err := layout.parseRow(row)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, &ParseError{Line: line, Err: err}
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (l Layout) parseRow(row []string) (timesheet.SessionRecord, error) {
	field := func(i int, name string) (string, error) {
		if i >= len(row) {
			return "", fmt.Errorf("missing %s column %d", name, i)
		}
		return strings.TrimSpace(row[i]), nil
	}

	dateStr, err := field(l.DateColumn, "date")
	if err != nil {
		return timesheet.SessionRecord{}, err
	}
	date, err := time.Parse(l.DateLayout, dateStr)
	if err != nil {
		return timesheet.SessionRecord{}, fmt.Errorf("date %q: %w", dateStr, err)
	}

	startStr, err := field(l.StartColumn, "start")
	if err != nil {
		return timesheet.SessionRecord{}, err
	}
	start, err := time.Parse(l.TimeLayout, startStr)
	if err != nil {
		return timesheet.SessionRecord{}, fmt.Errorf("start %q: %w", startStr, err)
	}

	endStr, err := field(l.EndColumn, "end")
	if err != nil {
		return timesheet.SessionRecord{}, err
	}
	end, err := time.Parse(l.TimeLayout, endStr)
	if err != nil {
		return timesheet.SessionRecord{}, fmt.Errorf("end %q: %w", endStr, err)
	}

	brk, err := l.parseBreak(row)
	if err != nil {
		return timesheet.SessionRecord{}, err
	}

	s := timesheet.SessionRecord{
		Date:  timesheet.NewDate(date),
		Start: start,
		End:   end,
		Break: brk,
	}
	return s, s.Validate()
}

// parseBreak reads the break column as a clock value. An empty or absent
// column means no break.
func (l Layout) parseBreak(row []string) (time.Duration, error) {
	if l.BreakColumn >= len(row) {
		return 0, nil
	}
	v := strings.TrimSpace(row[l.BreakColumn])
	if v == "" {
		return 0, nil
	}
	t, err := time.Parse(l.BreakLayout, v)
	if err != nil {
		return 0, fmt.Errorf("break %q: %w", v, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second, nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
