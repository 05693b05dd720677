package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day without time of day or zone.
type Date struct {
	t time.Time // midnight UTC of the day
}

func DateOf(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOfTime returns the calendar day of t in t's location.
func DateOfTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return DateOf(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts "2006-01-02" or an RFC3339 instant, keeping the local calendar day of the instant.
func ParseDate(s string) (Date, error) {
	if d, err := time.Parse(DateLayout, s); err == nil {
		return Date{t: d}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, errors.New("invalid date '" + s + "', expect format " + DateLayout)
	}
	return DateOfTime(t.Local()), nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// In returns the midnight of the day in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, loc)
}

func (d Date) Before(o Date) bool {
	return d.t.Before(o.t)
}

func (d Date) After(o Date) bool {
	return d.t.After(o.t)
}

// DaysSince counts calendar days from o to d, negative when d is earlier.
func (d Date) DaysSince(o Date) int {
	return int(d.t.Sub(o.t).Hours() / 24)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
