// Package config loads the YAML configuration with environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/spf13/viper"

	"arbeitszeit/timesheet"
)

type Config struct {
	Name           string        `mapstructure:"name"`
	WeeklyWorktime string        `mapstructure:"weeklyWorktime" validate:"required"`
	Logger         LoggerConfig  `mapstructure:"logger"`
	CSV            CSVConfig     `mapstructure:"csv"`
	Holidays       HolidayConfig `mapstructure:"holidays"`
	Mail           MailConfig    `mapstructure:"mail"`
	Output         OutputConfig  `mapstructure:"output"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required|in:debug,info,warn,error"`
}

type CSVConfig struct {
	Delimiter   string `mapstructure:"delimiter" validate:"required|maxLen:1"`
	DateLayout  string `mapstructure:"dateLayout" validate:"required"`
	TimeLayout  string `mapstructure:"timeLayout" validate:"required"`
	BreakLayout string `mapstructure:"breakLayout" validate:"required"`
	DateColumn  int    `mapstructure:"dateColumn" validate:"min:0"`
	StartColumn int    `mapstructure:"startColumn" validate:"min:0"`
	EndColumn   int    `mapstructure:"endColumn" validate:"min:0"`
	BreakColumn int    `mapstructure:"breakColumn" validate:"min:0"`
}

type HolidayConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Endpoint     string        `mapstructure:"endpoint" validate:"required"`
	State        string        `mapstructure:"state" validate:"required"`
	Exclude      []string      `mapstructure:"exclude"`
	SkipWeekends bool          `mapstructure:"skipWeekends"`
	CacheTTL     time.Duration `mapstructure:"cacheTTL"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"required"`
	MemoSize     int           `mapstructure:"memoSize" validate:"min:1"`
}

type MailConfig struct {
	From     string        `mapstructure:"from" validate:"email"`
	To       string        `mapstructure:"to" validate:"email"`
	Body     string        `mapstructure:"body"`
	Server   string        `mapstructure:"server"`
	Port     int           `mapstructure:"port" validate:"required|min:1|max:65535"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"required"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "")
	v.SetDefault("weeklyWorktime", "15:00")
	v.SetDefault("logger.level", "info")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.dateLayout", "02.01.2006")
	v.SetDefault("csv.timeLayout", "02.01.2006 03:04 PM")
	v.SetDefault("csv.breakLayout", "15:04:05")
	v.SetDefault("csv.dateColumn", 0)
	v.SetDefault("csv.startColumn", 1)
	v.SetDefault("csv.endColumn", 2)
	v.SetDefault("csv.breakColumn", 6)

	v.SetDefault("holidays.enabled", true)
	v.SetDefault("holidays.endpoint", "https://feiertage-api.de/api/")
	v.SetDefault("holidays.state", "BY")
	v.SetDefault("holidays.exclude", []string{"Augsburger Friedensfest", "Buß- und Bettag"})
	v.SetDefault("holidays.skipWeekends", false)
	v.SetDefault("holidays.cacheTTL", 7*24*time.Hour)
	v.SetDefault("holidays.timeout", 10*time.Second)
	v.SetDefault("holidays.memoSize", 4)

	v.SetDefault("mail.from", "")
	v.SetDefault("mail.to", "")
	v.SetDefault("mail.body", "Dies ist eine automatisierte Email, an die die Arbeitszeit angehängt wird.")
	v.SetDefault("mail.server", "smtp.office365.com")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.timeout", 30*time.Second)

	v.SetDefault("output.dir", ".")
}

// Load reads the YAML file at path. A missing file leaves the defaults in
// place; ARBEITSZEIT_* environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ARBEITSZEIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", filepath.Base(path), err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) Validate() error {
	v := validate.Struct(c)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %w", v.Errors)
	}
	if _, err := c.Weekly(); err != nil {
		return fmt.Errorf("invalid config: weeklyWorktime: %w", err)
	}
	if u, err := url.ParseRequestURI(c.Holidays.Endpoint); err != nil || u.Host == "" {
		return fmt.Errorf("invalid config: holidays.endpoint %q is not an absolute URL", c.Holidays.Endpoint)
	}
	return nil
}

// Weekly returns the weekly target duration.
func (c *Config) Weekly() (time.Duration, error) {
	return timesheet.ParseClock(c.WeeklyWorktime)
}

// MailReady reports whether the mail section is complete enough to send.
func (c *Config) MailReady() error {
	var missing []string
	if c.Mail.From == "" {
		missing = append(missing, "mail.from")
	}
	if c.Mail.To == "" {
		missing = append(missing, "mail.to")
	}
	if c.Mail.Server == "" {
		missing = append(missing, "mail.server")
	}
	if len(missing) > 0 {
		return fmt.Errorf("mail is not configured: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Logger.Level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
