package timesheet

import (
	"fmt"
	"log/slog"
)

// Locker serialises store writes across processes.
type Locker interface {
	Lock() error
	Unlock() error
}

type Reporter interface {
	Generate(sessions []SessionRecord, entries []NonWorkdayEntry) (Report, error)
	Report(month string) (*Report, error)
	Months() ([]string, error)
	State(month string) (ReportState, error)
	MarkSent(months ...string) error
}

func NewReporter(repo ReportRepository, logger *slog.Logger, mux Locker) Reporter {
	return &reporter{
		repo:   repo,
		mux:    mux,
		logger: logger,
	}
}

type reporter struct {
	repo   ReportRepository
	mux    Locker
	logger *slog.Logger
}

// Generate builds the report and stores one entry per covered month in a
// single transaction. A stored month is replaced by the new one, so an export
// must cover every day of the months it touches. New months become drafts;
// months already sent keep their state. Nothing is stored when building or
// saving fails.
func (r *reporter) Generate(sessions []SessionRecord, entries []NonWorkdayEntry) (Report, error) {
	rp, err := Build(sessions, entries)
	if err != nil {
		return Report{}, err
	}
	r.logger.Debug("report built",
		slog.Int("sessions", len(sessions)),
		slog.Int("days", len(rp.Days)),
		slog.Int("non_workdays", len(entries)),
		slog.String("total", FormatDuration(rp.Total)))

	reports := make(map[string]Report)
	for _, month := range rp.Months() {
		reports[month] = rp.ForMonth(month)
	}

	if err := r.mux.Lock(); err != nil {
		return Report{}, fmt.Errorf("lock store: %w", err)
	}
	defer r.mux.Unlock()

	sent, err := r.repo.SaveDrafts(reports)
	if err != nil {
		return Report{}, fmt.Errorf("save reports: %w", err)
	}
	for _, month := range sent {
		r.logger.Info("regenerated a sent report", slog.String("month", month))
	}
	return rp, nil
}

func (r *reporter) Report(month string) (*Report, error) {
	return r.repo.GetReport(month)
}

func (r *reporter) Months() ([]string, error) {
	return r.repo.ListMonths()
}

func (r *reporter) State(month string) (ReportState, error) {
	return r.repo.GetState(month)
}

func (r *reporter) MarkSent(months ...string) error {
	if err := r.mux.Lock(); err != nil {
		return fmt.Errorf("lock store: %w", err)
	}
	defer r.mux.Unlock()

	for _, month := range months {
		r.logger.Debug("mark sent", slog.String("month", month))
		if err := r.repo.SaveState(month, ReportStateSent); err != nil {
			return err
		}
	}
	return nil
}
