package sheet

import (
	"bytes"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"arbeitszeit/timesheet"
)

func sampleReport(t *testing.T) timesheet.Report {
	t.Helper()
	at := func(date, clock string) time.Time {
		ts, err := time.Parse("2006-01-02 15:04", date+" "+clock)
		require.NoError(t, err)
		return ts
	}
	rp, err := timesheet.Build(
		[]timesheet.SessionRecord{
			{Date: "2024-05-02", Start: at("2024-05-02", "09:00"), End: at("2024-05-02", "12:00")},
			{Date: "2024-05-02", Start: at("2024-05-02", "13:00"), End: at("2024-05-02", "17:00"), Break: 15 * time.Minute},
			{Date: "2024-05-10", Start: at("2024-05-10", "08:00"), End: at("2024-05-10", "16:00")},
		},
		[]timesheet.NonWorkdayEntry{{Date: "2024-05-09", Label: "Christi Himmelfahrt", Credit: 3 * time.Hour}},
	)
	require.NoError(t, err)
	return rp
}

func rawFloat(t *testing.T, f *excelize.File, cell string) float64 {
	t.Helper()
	v, err := f.GetCellValue(SheetName, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	n, err := strconv.ParseFloat(v, 64)
	require.NoError(t, err, cell)
	return n
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(t), Options{}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	header, err := f.GetCellValue(SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Datum", header)

	// 2024-05-02 is serial 45414.
	assert.InDelta(t, 45414, rawFloat(t, f, "A2"), 1e-9)
	assert.InDelta(t, 45414+9.0/24, rawFloat(t, f, "B2"), 1e-6)
	assert.InDelta(t, 1.25/24, rawFloat(t, f, "E2"), 1e-9)
	assert.InDelta(t, 6.75/24, rawFloat(t, f, "F2"), 1e-9)

	start, err := f.GetCellValue(SheetName, "B3")
	require.NoError(t, err)
	assert.Empty(t, start)
	label, err := f.GetCellValue(SheetName, "G3")
	require.NoError(t, err)
	assert.Equal(t, "Christi Himmelfahrt", label)
	assert.InDelta(t, 3.0/24, rawFloat(t, f, "F3"), 1e-9)

	sum, err := f.GetCellValue(SheetName, "E5")
	require.NoError(t, err)
	assert.Equal(t, "SUMME", sum)
	assert.InDelta(t, 17.75/24, rawFloat(t, f, "F5"), 1e-9)
}

func TestWrite_TotalAboveOneDay(t *testing.T) {
	var sessions []timesheet.SessionRecord
	for _, date := range []string{"2024-05-06", "2024-05-07", "2024-05-08", "2024-05-10"} {
		d := timesheet.Date(date)
		start := d.Time().Add(8 * time.Hour)
		sessions = append(sessions, timesheet.SessionRecord{Date: d, Start: start, End: start.Add(8 * time.Hour)})
	}
	rp, err := timesheet.Build(sessions, nil)
	require.NoError(t, err)
	require.Equal(t, 32*time.Hour, rp.Total)

	f, err := build(rp, Options{})
	require.NoError(t, err)
	defer f.Close()

	total := rawFloat(t, f, "F6")
	assert.Greater(t, total, 1.0)
	assert.InDelta(t, 32.0/24, total, 1e-9)

	id, err := f.GetCellStyle(SheetName, "F6")
	require.NoError(t, err)
	style, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, style.CustomNumFmt)
	assert.Equal(t, fmtDuration, *style.CustomNumFmt)
}

func TestWrite_StylesAndWidth(t *testing.T) {
	f, err := build(sampleReport(t), Options{Fill: "FFFF00"})
	require.NoError(t, err)
	defer f.Close()

	for _, cell := range []string{"A1", "A2", "B2", "E2", "F2", "E5", "F5"} {
		id, err := f.GetCellStyle(SheetName, cell)
		require.NoError(t, err)
		assert.NotZero(t, id, cell)
	}
	label, err := f.GetCellStyle(SheetName, "E5")
	require.NoError(t, err)
	value, err := f.GetCellStyle(SheetName, "F5")
	require.NoError(t, err)
	assert.NotEqual(t, label, value)

	width, err := f.GetColWidth(SheetName, "A")
	require.NoError(t, err)
	assert.Equal(t, float64(12), width)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Arbeitszeit Erika 5 2024.xlsx")
	require.NoError(t, WriteFile(path, sampleReport(t), Options{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestSerial(t *testing.T) {
	assert.Equal(t, float64(1), serial(time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.InDelta(t, 45414.5, serial(time.Date(2024, 5, 2, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))), 1e-9)
}
