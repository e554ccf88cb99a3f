package sorting

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DateField reads key like Field and coerces it into a time. Values that
// cannot be read as a date are absent.
func DateField[T any](item T, key string) Value {
	return DateOf(Field(item, key))
}

// NumericField reads key like Field and coerces it into a number. Numeric
// strings are parsed, everything else unparsable becomes 0.
func NumericField[T any](item T, key string) Value {
	return NumberOf(Field(item, key))
}

// StringField reads key like Field and lower cases it, giving a case
// insensitive column. Empty, zero and absent values become "".
func StringField[T any](item T, key string) Value {
	return TextOf(Field(item, key))
}

// NestedPath returns an extractor that ignores the column key and walks a
// dotted path ("farmer.name") through nested maps and structs.
func NestedPath[T any](path string) Extractor[T] {
	parts := strings.Split(path, ".")

	return func(item T, _ string) Value {
		var current Value = item
		for _, part := range parts {
			current = fieldOf(reflect.ValueOf(current), part)
			if current == nil {
				return nil
			}
		}

		return current
	}
}

// DateOf coerces value into a time: times pass, strings are parsed, numbers
// are epoch milliseconds. Anything else is absent.
func DateOf(value Value) Value {
	value, ok := present(value)
	if !ok {
		return nil
	}

	if t, ok := toTime(value); ok {
		return t
	}

	return nil
}

// NumberOf coerces value into a float64. Strings are read like a lenient
// float parser: the longest numeric prefix counts, thousands separators are
// dropped, and anything without a numeric prefix is 0. Absent values are 0.
func NumberOf(value Value) float64 {
	value, ok := present(value)
	if !ok {
		return 0
	}

	if n, ok := toNumber(value); ok {
		if math.IsNaN(n) {
			return 0
		}
		return n
	}

	if s, ok := value.(string); ok {
		return ParseNumber(s)
	}

	return 0
}

// TextOf lower cases the string form of value. Empty, zero and absent
// values become "".
func TextOf(value Value) string {
	value, ok := present(value)
	if !ok || isFalsy(value) {
		return ""
	}

	return strings.ToLower(toString(value))
}

// ParseNumber parses the longest float prefix of s after removing thousands
// separators and surrounding blanks. It returns 0 when there is none.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))

	end := numericPrefix(s)
	if end == 0 {
		return 0
	}

	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(n) {
		return 0
	}

	return n
}

// numericPrefix returns the length of the longest prefix of s that looks
// like a decimal float: sign, digits, fraction, exponent.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		fraction := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			fraction++
		}
		if digits > 0 || fraction > 0 {
			i = j
			digits += fraction
		}
	}

	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exponent := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exponent++
		}
		if exponent > 0 {
			i = j
		}
	}

	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isFalsy(value Value) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case bool:
		return !v
	case time.Time:
		return false
	}

	if n, ok := toNumber(value); ok {
		return n == 0 || math.IsNaN(n)
	}

	return false
}
