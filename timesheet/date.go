package timesheet

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date in "2006-01-02" form. Zero-padded ISO dates order
// lexicographically, so comparisons cover year, month and day together.
type Date string

func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(DateLayout, string(d))
	return t
}

func (d Date) Before(other Date) bool {
	return d < other
}

func (d Date) After(other Date) bool {
	return d > other
}

// Month returns the "2006-01" key the date belongs to.
func (d Date) Month() string {
	if len(d) < 7 {
		return ""
	}
	return string(d[:7])
}

func (d Date) String() string {
	return string(d)
}
