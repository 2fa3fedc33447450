package core

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day and no timezone.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current local calendar date.
func Today() Date {
	y, m, d := time.Now().Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses an exact YYYY-MM-DD date. Anything else, including
// trailing content or a time component, is rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrBadDate, s)
	}
	return Date{Time: t}, nil
}

// OnOrAfter reports whether d falls on or after other.
func (d Date) OnOrAfter(other Date) bool {
	return !d.Before(other.Time)
}

// Within reports whether d falls inside [lo, hi], boundaries included.
func (d Date) Within(lo, hi Date) bool {
	return !d.Before(lo.Time) && !d.After(hi.Time)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a quoted YYYY-MM-DD string. A field that does not
// parse makes the whole record set unreadable, which callers treat as fatal.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	d.Time = t
	return nil
}

// DateOrderOK reports whether end falls on or after start. Equal start and
// end dates are allowed (a one-day trip).
func DateOrderOK(start, end Date) bool {
	return end.OnOrAfter(start)
}
