package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "15:00", conf.WeeklyWorktime)
	assert.Equal(t, "info", conf.Logger.Level)
	assert.Equal(t, ",", conf.CSV.Delimiter)
	assert.Equal(t, 6, conf.CSV.BreakColumn)
	assert.Equal(t, "BY", conf.Holidays.State)
	assert.True(t, conf.Holidays.Enabled)
	assert.Equal(t, []string{"Augsburger Friedensfest", "Buß- und Bettag"}, conf.Holidays.Exclude)
	assert.Equal(t, 10*time.Second, conf.Holidays.Timeout)
	assert.Equal(t, 4, conf.Holidays.MemoSize)
	assert.Equal(t, 587, conf.Mail.Port)
	assert.Equal(t, 30*time.Second, conf.Mail.Timeout)

	weekly, err := conf.Weekly()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Hour, weekly)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
name: Erika Mustermann
weeklyWorktime: "20:00"
logger:
  level: debug
holidays:
  state: BE
  timeout: 3s
  skipWeekends: true
mail:
  from: erika@example.com
  to: office@example.com
  timeout: 5s
`)
	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Erika Mustermann", conf.Name)
	assert.Equal(t, "20:00", conf.WeeklyWorktime)
	assert.Equal(t, "debug", conf.Logger.Level)
	assert.Equal(t, "BE", conf.Holidays.State)
	assert.Equal(t, 3*time.Second, conf.Holidays.Timeout)
	assert.True(t, conf.Holidays.SkipWeekends)
	assert.Equal(t, 5*time.Second, conf.Mail.Timeout)
	assert.NoError(t, conf.MailReady())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ARBEITSZEIT_MAIL_PASSWORD", "secret")
	t.Setenv("ARBEITSZEIT_WEEKLYWORKTIME", "10:00")

	conf, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "secret", conf.Mail.Password)
	assert.Equal(t, "10:00", conf.WeeklyWorktime)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad level", "logger:\n  level: verbose\n"},
		{"bad weekly", "weeklyWorktime: fifteen\n"},
		{"bad sender", "mail:\n  from: not-an-address\n"},
		{"bad endpoint", "holidays:\n  endpoint: feiertage\n"},
		{"bad yaml", "name: [unterminated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestConfig_MailReady(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	err = conf.MailReady()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mail.from")
	assert.Contains(t, err.Error(), "mail.to")
}

func TestXDGPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "arbeitszeit", "config.yaml"), DefaultConfigPath())

	data, err := DataDir()
	require.NoError(t, err)
	assert.DirExists(t, data)
}
