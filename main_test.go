package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"arbeitszeit/holiday"
	"arbeitszeit/sheet"
)

const export = `Date,Start,End,Duration,Description,Break description,Breaks
02.05.2024,02.05.2024 09:00 AM,02.05.2024 12:00 PM,03:00:00,,,00:00:00
02.05.2024,02.05.2024 01:00 PM,02.05.2024 05:00 PM,04:00:00,,Lunch,00:15:00
10.05.2024,10.05.2024 08:00 AM,10.05.2024 04:00 PM,08:00:00,,,00:00:00
`

func setupWorkspace(t *testing.T) (configPath, csvPath, outDir string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"Tag der Arbeit": {"datum": "2024-05-01", "hinweis": ""}, "Christi Himmelfahrt": {"datum": "2024-05-09", "hinweis": ""}}`)
	}))
	t.Cleanup(srv.Close)

	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("name: Erika\nholidays:\n  endpoint: "+srv.URL+"/api/\n"), 0644))
	csvPath = filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(export), 0644))
	outDir = filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0755))
	return configPath, csvPath, outDir
}

func TestGenerateWithoutMail(t *testing.T) {
	configPath, csvPath, outDir := setupWorkspace(t)

	require.NoError(t, run([]string{"arbeitszeit", "--config", configPath, "generate", "--no-mail", "--out", outDir, csvPath}))

	path := filepath.Join(outDir, "Arbeitszeit Erika 5 2024.xlsx")
	require.FileExists(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet.SheetName)
	require.NoError(t, err)
	// header, 05-01, 05-02, 05-09, 05-10, sum
	assert.Len(t, rows, 6)

	require.NoError(t, run([]string{"arbeitszeit", "--config", configPath, "view", "--format", "csv", "2024-05"}))
}

func TestGenerateRejectsUnorderedExport(t *testing.T) {
	configPath, _, outDir := setupWorkspace(t)
	csvPath := filepath.Join(t.TempDir(), "unordered.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(`Date,Start,End,Duration,Description,Break description,Breaks
10.05.2024,10.05.2024 08:00 AM,10.05.2024 04:00 PM,,,,
02.05.2024,02.05.2024 09:00 AM,02.05.2024 12:00 PM,,,,
`), 0644))

	err := run([]string{"arbeitszeit", "--config", configPath, "generate", "--no-mail", "--out", outDir, csvPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordering violation")
}

func TestViewRejectsUnknownFormat(t *testing.T) {
	configPath, _, _ := setupWorkspace(t)
	err := run([]string{"arbeitszeit", "--config", configPath, "view", "--format", "pdf"})
	assert.Error(t, err)
}

func TestRenderHolidays(t *testing.T) {
	hs := []holiday.Holiday{
		{Name: "Neujahrstag", Date: "2024-01-01"},
		{Name: "Christi Himmelfahrt", Date: "2024-05-09"},
	}
	var buf bytes.Buffer
	renderHolidays(&buf, hs, 5, 3*time.Hour)

	assert.Contains(t, buf.String(), "Christi Himmelfahrt")
	assert.Contains(t, buf.String(), "03:00")
	assert.NotContains(t, buf.String(), "Neujahrstag")
}

func TestNoopNotificator(t *testing.T) {
	assert.NoError(t, noopNotificator{}.Notify("a", "b"))
}
