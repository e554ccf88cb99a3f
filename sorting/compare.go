// Package sorting orders dashboard table rows. It holds the value
// comparator, the three state sort cycle bound to column header
// activation, and the pure transform producing a sorted copy of a list.
//
// Nothing in here fails: malformed values degrade to a weaker comparison
// (dates fall back to strings, missing values sort first).
package sorting

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Value is a single sortable cell value. Supported dynamic types are nil
// (absent), time.Time, the Go integer and float kinds, json.Number, string,
// bool and Valuer. Non nil pointers are dereferenced, nil pointers are
// absent.
type Value = interface{}

// Prefixes a string must carry to be considered a date. Matching is only
// the first half of detection; the string must also parse.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`),
	regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`),
}

// Layouts accepted when turning a string into a time. Zone-less layouts are
// read as UTC. Two digit groups before the year are month first.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"01/02/2006",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01-02-2006",
	"01-02-2006 15:04:05",
}

// CompareValues orders a before b for an ascending sort: it returns a
// negative number when a sorts first, a positive one when b does and zero
// for ties. Callers negate the result for descending order.
//
// Absent values sort before everything else. If either side is a
// time.Time or a date-like string, both sides are read as dates and
// compared by instant. Two numbers compare numerically. Everything else
// compares as lower cased strings.
func CompareValues(a, b Value) int {
	a, aPresent := present(a)
	b, bPresent := present(b)

	switch {
	case !aPresent && !bPresent:
		return 0
	case !aPresent:
		return -1
	case !bPresent:
		return 1
	}

	if IsDateLike(a) || IsDateLike(b) {
		dateA, okA := toTime(a)
		dateB, okB := toTime(b)
		if !okA || !okB {
			return 0
		}

		return dateA.Compare(dateB)
	}

	numA, okA := toNumber(a)
	numB, okB := toNumber(b)
	if okA && okB {
		return compareFloats(numA, numB)
	}

	return strings.Compare(strings.ToLower(toString(a)), strings.ToLower(toString(b)))
}

// IsDateLike reports whether value is a time.Time, including the zero
// time, or a string starting with one of the known date shapes that also
// parses as a date. Absent values and empty strings are never date-like.
func IsDateLike(value Value) bool {
	value, ok := present(value)
	if !ok {
		return false
	}

	switch v := value.(type) {
	case time.Time:
		return true
	case string:
		if v == "" || !matchesDatePattern(v) {
			return false
		}
		_, parsed := ParseDate(v)
		return parsed
	default:
		return false
	}
}

// ParseDate reads s with every supported layout and reports whether one of
// them matched.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func matchesDatePattern(s string) bool {
	for _, pattern := range datePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}

	return false
}

// Valuer is implemented by types that know their own sort value, e.g. a
// wire date wrapping a time. A nil sort value is absent.
type Valuer interface {
	SortValue() Value
}

// present strips pointers, unwraps Valuers and reports whether anything is
// left.
func present(value Value) (Value, bool) {
	if value == nil {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	value = rv.Interface()
	if valuer, ok := value.(Valuer); ok {
		return present(valuer.SortValue())
	}

	return value, true
}

// toTime coerces a value into an instant the way a date constructor would:
// times pass, strings are parsed, numbers are epoch milliseconds.
func toTime(value Value) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		return ParseDate(v)
	}

	if n, ok := toNumber(value); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return time.UnixMilli(int64(n)).UTC(), true
	}

	return time.Time{}, false
}

func toNumber(value Value) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}

	// Named numeric types, e.g. amounts decoded from the wire.
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}

	return 0, false
}

// compareFloats returns 0 whenever NaN is involved.
func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func toString(value Value) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	}

	if n, ok := toNumber(value); ok {
		return formatNumber(n)
	}

	if s, ok := value.(interface{ String() string }); ok {
		return s.String()
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String()
	}

	b, err := json.Marshal(value)
	if err != nil {
		return ""
	}

	return string(b)
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}

	return strconv.FormatFloat(n, 'f', -1, 64)
}
