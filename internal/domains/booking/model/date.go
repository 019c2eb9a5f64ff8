package model

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"villa/shared/constant"
)

// Date is a calendar day. It is always held as midnight UTC so comparisons and
// day arithmetic never see a zone offset.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf keeps the calendar day t has in its own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts YYYY-MM-DD only.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(constant.ISODateFormat, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return Date{t: t}, nil
}

func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) AddDays(days int) Date { return Date{t: d.t.AddDate(0, 0, days)} }

func (d Date) Year() int { return d.t.Year() }

func (d Date) Month() time.Month { return d.t.Month() }

func (d Date) Day() int { return d.t.Day() }

func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// DaysUntil counts whole days to other, rounding any partial day up.
func (d Date) DaysUntil(other Date) int {
	return int(math.Ceil(other.t.Sub(d.t).Hours() / constant.HoursPerDay))
}

func (d Date) String() string {
	if d.t.IsZero() {
		return constant.Empty
	}

	return d.t.Format(constant.ISODateFormat)
}

// Display renders the day the way the guest reads it, e.g. "15 Mar 2025".
func (d Date) Display() string {
	return d.t.Format(constant.DisplayDateFormat)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String()) //nolint:wrapcheck
}

// UnmarshalJSON accepts YYYY-MM-DD, an empty string, or a full RFC3339
// timestamp whose calendar day is kept.
func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if value == constant.Empty {
		*d = Date{}

		return nil
	}

	if parsed, err := ParseDate(value); err == nil {
		*d = parsed

		return nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value, err)
	}

	*d = DateOf(t)

	return nil
}
