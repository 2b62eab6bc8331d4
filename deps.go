package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexflint/go-filemutex"
	"github.com/tidwall/buntdb"

	"arbeitszeit/config"
	"arbeitszeit/holiday"
	"arbeitszeit/mail"
	"arbeitszeit/timesheet"
)

type deps struct {
	conf     *config.Config
	logger   *slog.Logger
	db       *buntdb.DB
	reporter timesheet.Reporter
	holidays holiday.Client
	calendar *holiday.Calendar
	notifier Notificator
}

func newDeps(configPath string) (*deps, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(dir, conf.SlogLevel())
	if err != nil {
		return nil, err
	}
	db, err := initDB(dir)
	if err != nil {
		return nil, err
	}
	fm, err := filemutex.New(filepath.Join(dir, "arbeitszeit.lock"))
	if err != nil {
		db.Close()
		return nil, err
	}
	weekly, err := conf.Weekly()
	if err != nil {
		db.Close()
		return nil, err
	}

	repo := timesheet.NewReportRepository(db)
	client := holiday.NewClient(holiday.ClientConfig{
		Endpoint: conf.Holidays.Endpoint,
		State:    conf.Holidays.State,
		Timeout:  conf.Holidays.Timeout,
		CacheTTL: conf.Holidays.CacheTTL,
		MemoSize: conf.Holidays.MemoSize,
	}, repo, logger)

	return &deps{
		conf:     conf,
		logger:   logger,
		db:       db,
		reporter: timesheet.NewReporter(repo, logger, fm),
		holidays: client,
		calendar: holiday.NewCalendar(client, weekly, holiday.Options{
			Exclude:      conf.Holidays.Exclude,
			SkipWeekends: conf.Holidays.SkipWeekends,
		}),
		notifier: newNotificator(),
	}, nil
}

func (d *deps) mailSender(password string) mail.Sender {
	return mail.NewSMTPSender(mail.SMTPConfig{
		Host:     d.conf.Mail.Server,
		Port:     d.conf.Mail.Port,
		Username: d.conf.Mail.Username,
		Password: password,
		Timeout:  d.conf.Mail.Timeout,
	}, d.logger)
}

func (d *deps) Close() error {
	return d.db.Close()
}

func initDB(dir string) (*buntdb.DB, error) {
	return buntdb.Open(filepath.Join(dir, "arbeitszeit.db"))
}

func newLogger(dir string, level slog.Level) (*slog.Logger, error) {
	logFile, err := os.OpenFile(filepath.Join(dir, "log.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	return slog.New(
		slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: level,
		}),
	), nil
}
