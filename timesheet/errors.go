package timesheet

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidSession    = errors.New("invalid session")
	ErrOrderingViolation = errors.New("ordering violation")
	ErrNegativeDuration  = errors.New("negative worked duration")
	ErrDuplicateDate     = errors.New("duplicate date")
)

// OrderingViolationError reports two adjacent inputs that are out of order.
// Exactly one of the Session or Entry pairs is set.
type OrderingViolationError struct {
	Prev, Next           *SessionRecord
	PrevEntry, NextEntry *NonWorkdayEntry
}

func (e *OrderingViolationError) Error() string {
	if e.Prev != nil && e.Next != nil {
		return fmt.Sprintf("%s: session %s %s-%s followed by %s %s-%s",
			ErrOrderingViolation,
			e.Prev.Date, e.Prev.Start.Format("15:04"), e.Prev.End.Format("15:04"),
			e.Next.Date, e.Next.Start.Format("15:04"), e.Next.End.Format("15:04"))
	}
	if e.PrevEntry != nil && e.NextEntry != nil {
		return fmt.Sprintf("%s: non-workday %s (%s) followed by %s (%s)",
			ErrOrderingViolation, e.PrevEntry.Date, e.PrevEntry.Label, e.NextEntry.Date, e.NextEntry.Label)
	}
	return ErrOrderingViolation.Error()
}

func (e *OrderingViolationError) Unwrap() error {
	return ErrOrderingViolation
}

type NegativeDurationError struct {
	Day    DayRecord
	Worked time.Duration
}

func (e *NegativeDurationError) Error() string {
	return fmt.Sprintf("%s: %s presence %s, break %s, worked %s",
		ErrNegativeDuration, e.Day.Date, FormatDuration(e.Day.Presence()), FormatDuration(e.Day.Break), FormatDuration(e.Worked))
}

func (e *NegativeDurationError) Unwrap() error {
	return ErrNegativeDuration
}

type DuplicateDateError struct {
	Date  Date
	Label string
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("%s: non-workday %q on %s collides with a workday", ErrDuplicateDate, e.Label, e.Date)
}

func (e *DuplicateDateError) Unwrap() error {
	return ErrDuplicateDate
}
