package filter

import (
	"fmt"
	"time"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

// Date compares record values as instants. Record values which are no
// dates behave like missing values.
type Date struct {
	*Common
}

func (filter Date) ParseValue(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		if t, ok := sorting.ParseDate(v); ok {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot read %v as date", value)
}

func (filter Date) Matches(recordValue, value interface{}, filterMode rjagro.FilterMode) (bool, error) {
	op, err := filter.Operator(value, filterMode)
	if err != nil {
		return false, err
	}

	if op == OperatorContains {
		return false, &UnsupportedOperatorError{operator: op}
	}

	expected, err := filter.ParseValue(value)
	if err != nil {
		return false, err
	}

	actual, ok := sorting.DateOf(recordValue).(time.Time)
	if !ok {
		return filter.absentMatches(op), nil
	}

	return filter.compared(actual.Compare(expected), op)
}
