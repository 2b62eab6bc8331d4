package timesheet

import (
	"fmt"
	"time"
)

// SessionRecord is one clock-in/clock-out interval with its own break.
type SessionRecord struct {
	Date  Date          `json:"date"`
	Start time.Time     `json:"start"`
	End   time.Time     `json:"end"`
	Break time.Duration `json:"break"`
}

func (s SessionRecord) Span() time.Duration {
	return s.End.Sub(s.Start)
}

func (s SessionRecord) Validate() error {
	if !s.Start.Before(s.End) {
		return fmt.Errorf("%w: %s starts at %s but ends at %s", ErrInvalidSession, s.Date, s.Start.Format("15:04"), s.End.Format("15:04"))
	}
	if s.Break < 0 {
		return fmt.Errorf("%w: %s has negative break %s", ErrInvalidSession, s.Date, s.Break)
	}
	if s.Break > s.Span() {
		return fmt.Errorf("%w: %s break %s exceeds session length %s", ErrInvalidSession, s.Date, s.Break, s.Span())
	}
	return nil
}
