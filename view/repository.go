package view

import (
	"fmt"
	"time"

	"arbeitszeit/timesheet"
)

type ViewRepository interface {
	// GetReport returns the stored report of yearMonth ("2006-01"). An empty
	// yearMonth selects the latest stored month.
	GetReport(yearMonth string) (timesheet.Report, error)
}

type viewRepository struct {
	reporter timesheet.Reporter
}

func NewViewRepository(reporter timesheet.Reporter) ViewRepository {
	return &viewRepository{reporter}
}

func (r *viewRepository) GetReport(yearMonth string) (timesheet.Report, error) {
	if yearMonth == "" {
		months, err := r.reporter.Months()
		if err != nil {
			return timesheet.Report{}, err
		}
		if len(months) == 0 {
			return timesheet.Report{}, fmt.Errorf("no reports stored yet")
		}
		yearMonth = months[len(months)-1]
	}
	if err := validateMonth(yearMonth); err != nil {
		return timesheet.Report{}, err
	}

	rp, err := r.reporter.Report(yearMonth)
	if err != nil {
		return timesheet.Report{}, err
	}
	if rp == nil {
		return timesheet.Report{}, fmt.Errorf("no report stored for %s", yearMonth)
	}
	return *rp, nil
}

func validateMonth(yearMonth string) error {
	if _, err := time.Parse("2006-01", yearMonth); err != nil {
		return fmt.Errorf("invalid month %q ex: 2024-03", yearMonth)
	}
	return nil
}
