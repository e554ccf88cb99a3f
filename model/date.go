package model

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/Swyamk/rjagro-sub000/sorting"
)

// DateLayout is the wire layout of plain dates.
const DateLayout = "2006-01-02"

// Date is a date or timestamp on the wire. The original text is kept, so a
// record encodes back the way it was received. A Date which could not be
// parsed is zero and sorts like a missing value.
type Date struct {
	time.Time
	raw string
}

// NewDate wraps t as a plain date.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate reads s with the formats the backend uses.
func ParseDate(s string) (Date, bool) {
	t, ok := sorting.ParseDate(s)
	if !ok {
		return Date{raw: s}, false
	}

	return Date{Time: t, raw: s}, true
}

// Today returns the current date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*d, _ = ParseDate(s)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.raw == "" && d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

// String returns the text the date was parsed from, or the plain date.
func (d Date) String() string {
	if d.raw != "" {
		return d.raw
	}

	if d.IsZero() {
		return ""
	}

	return d.Format(DateLayout)
}

// SortValue implements sorting.Valuer.
func (d Date) SortValue() sorting.Value {
	if d.IsZero() {
		return nil
	}

	return d.Time
}
