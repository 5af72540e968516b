package manifest

import (
	"fmt"
	"strings"
	"time"
)

// LayoutISO is the canonical on-disk form for calendar dates.
const LayoutISO = "2006-01-02"

// Date is a pure calendar date. Any timestamp-bearing input collapses to
// year/month/day; time-of-day and timezone are never persisted.
type Date struct {
	time.Time
}

// NewDate builds a Date from a point in time, discarding everything below
// day resolution.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

var dateLayouts = []string{
	LayoutISO,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseDate parses v leniently against the accepted date layouts. The
// second return is false when nothing matches; callers treat that as an
// absent value, never as an error.
func ParseDate(v string) (Date, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return NewDate(t), true
		}
	}
	return Date{}, false
}

// Equal compares two dates as calendar days.
func (d Date) Equal(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

func (d Date) String() string {
	return d.Format(LayoutISO)
}

// MarshalYAML renders the canonical YYYY-MM-DD form.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// UnmarshalYAML accepts anything ParseDate does.
func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, ok := ParseDate(raw)
	if !ok {
		return fmt.Errorf("invalid date %q", raw)
	}
	*d = parsed
	return nil
}
