package filter

import (
	"fmt"
	"strconv"
	"strings"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

type Numeric struct {
	*Common
}

// ParseValue reads a filter operand as a number. Unlike record values,
// operands must parse completely.
func (filter Numeric) ParseValue(value interface{}) (float64, error) {
	stringValue, canCast := value.(string)
	if canCast {
		number, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(stringValue), ",", ""), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read %q as number", stringValue)
		}

		return number, nil
	}

	switch value.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return sorting.NumberOf(value), nil
	}

	return 0, fmt.Errorf("cannot read %v as number", value)
}

func (filter Numeric) Matches(recordValue, value interface{}, filterMode rjagro.FilterMode) (bool, error) {
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

	return filter.compared(sorting.CompareValues(sorting.NumberOf(recordValue), expected), op)
}
