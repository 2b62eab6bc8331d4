package csvimport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arbeitszeit/timesheet"
)

const export = `Date,Start,End,Duration,Description,Break description,Breaks
02.05.2024,02.05.2024 09:00 AM,02.05.2024 12:00 PM,03:00:00,Review,,00:00:00
02.05.2024,02.05.2024 01:00 PM,02.05.2024 05:00 PM,04:00:00,Review,Lunch,00:15:00
10.05.2024,10.05.2024 08:30 AM,10.05.2024 04:30 PM,08:00:00,"Planning, release",,

`

func TestParse(t *testing.T) {
	sessions, err := Parse(strings.NewReader(export), DefaultLayout())
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	first := sessions[0]
	assert.Equal(t, timesheet.Date("2024-05-02"), first.Date)
	assert.Equal(t, 9, first.Start.Hour())
	assert.Equal(t, 12, first.End.Hour())
	assert.Zero(t, first.Break)

	assert.Equal(t, 13, sessions[1].Start.Hour())
	assert.Equal(t, 15*time.Minute, sessions[1].Break)

	assert.Equal(t, timesheet.Date("2024-05-10"), sessions[2].Date)
	assert.Zero(t, sessions[2].Break)
}

func TestParse_FeedsBuild(t *testing.T) {
	sessions, err := Parse(strings.NewReader(export), DefaultLayout())
	require.NoError(t, err)

	rp, err := timesheet.Build(sessions, nil)
	require.NoError(t, err)
	require.Len(t, rp.Days, 2)
	assert.Equal(t, 6*time.Hour+45*time.Minute, *rp.Days[0].Worked)
	assert.Equal(t, 14*time.Hour+45*time.Minute, rp.Total)
}

func TestParse_Errors(t *testing.T) {
	header := "Date,Start,End,Duration,Description,Break description,Breaks\n"
	tests := []struct {
		name string
		row  string
	}{
		{"bad date", "2024-05-02,02.05.2024 09:00 AM,02.05.2024 12:00 PM,,,,\n"},
		{"bad start", "02.05.2024,9:00,02.05.2024 12:00 PM,,,,\n"},
		{"bad break", "02.05.2024,02.05.2024 09:00 AM,02.05.2024 12:00 PM,,,,fifteen\n"},
		{"missing end", "02.05.2024,02.05.2024 09:00 AM\n"},
		{"end before start", "02.05.2024,02.05.2024 12:00 PM,02.05.2024 09:00 AM,,,,\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(header+tt.row), DefaultLayout())
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, 2, pe.Line)
		})
	}
}

func TestParse_ErrorLineAfterMultilineField(t *testing.T) {
	input := "Date,Start,End,Duration,Description,Break description,Breaks\n" +
		"02.05.2024,02.05.2024 09:00 AM,02.05.2024 12:00 PM,03:00:00,\"Review\nand notes\",,00:00:00\n" +
		"03.05.2024,03.05.2024 09:00 AM,nine,,,,\n"

	_, err := Parse(strings.NewReader(input), DefaultLayout())
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Line)
}

func TestParse_SemicolonLayout(t *testing.T) {
	layout := Layout{
		Delimiter:   ';',
		DateLayout:  "2006-01-02",
		TimeLayout:  "15:04",
		BreakLayout: "15:04",
		DateColumn:  0,
		StartColumn: 1,
		EndColumn:   2,
		BreakColumn: 3,
	}
	sessions, err := Parse(strings.NewReader("day;from;to;pause\n2024-05-02;09:00;17:00;00:30\n"), layout)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 30*time.Minute, sessions[0].Break)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(export), 0644))

	sessions, err := ParseFile(path, DefaultLayout())
	require.NoError(t, err)
	assert.Len(t, sessions, 3)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultLayout())
	assert.Error(t, err)
}
