package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire layout of a calendar day.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time component. The zero value is
// the zero time and reports IsZero.
type Date struct {
	t time.Time
}

// NewDate returns the calendar day y-m-d.
func NewDate(y int, m time.Month, d int) Date {
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a "2006-01-02" string. Timestamps with a time part
// (RFC3339) are accepted and truncated to their day.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals. It panics on malformed input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays returns the day n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Between reports whether from <= d <= to.
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

// Weekday returns the day of week, Sunday = 0.
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns midnight UTC of d.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	v, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b Date) int {
	return int(b.t.Sub(a.t).Hours() / 24)
}
