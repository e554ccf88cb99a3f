package filter

import (
	"fmt"
	"strings"

	rjagro "github.com/Swyamk/rjagro-sub000"
)

// PlainString compares case insensitive against the string form of a
// record value.
type PlainString struct {
	*Common
}

func (filter PlainString) ParseValue(value interface{}) (string, error) {
	stringVal, canCast := value.(string)
	if canCast {
		return strings.ToLower(stringVal), nil
	}

	return "", fmt.Errorf("cannot read %v as string", value)
}

func (filter PlainString) Matches(recordValue, value interface{}, filterMode rjagro.FilterMode) (bool, error) {
	op, err := filter.Operator(value, filterMode)
	if err != nil {
		return false, err
	}

	expected, err := filter.ParseValue(value)
	if err != nil {
		return false, err
	}

	if recordValue == nil {
		return filter.absentMatches(op), nil
	}

	actual := strings.ToLower(fmt.Sprint(recordValue))
	if op == OperatorContains {
		return strings.Contains(actual, expected), nil
	}

	return filter.compared(strings.Compare(actual, expected), op)
}
