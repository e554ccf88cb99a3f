// Package model holds the typed dashboard entities as the backend
// serializes them.
package model

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/Swyamk/rjagro-sub000/sorting"
)

// Amount is a decimal quantity or money value. The backend sends decimals as
// strings ("1250.00"), older endpoints as numbers; both decode. Strings are
// read leniently: thousands separators are dropped and anything unparsable
// is 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*a = Amount(sorting.ParseNumber(s))
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*a = 0
		return nil
	}

	*a = Amount(f)
	return nil
}

// Float64 returns the amount as a float64.
func (a Amount) Float64() float64 {
	return float64(a)
}

// String formats the amount with two decimals.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

// ParseAmount reads a user supplied amount like the backend decoding does.
func ParseAmount(s string) Amount {
	return Amount(sorting.ParseNumber(s))
}
