package filter

import (
	"fmt"
	"strings"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

type Boolean struct {
	*Common
}

func (filter Boolean) ParseValue(value interface{}) (bool, error) {
	boolean, canCast := value.(bool)
	if canCast {
		return boolean, nil
	}

	booleanString, canCast := value.(string)
	if canCast {
		return booleanString == "1" || strings.ToLower(booleanString) == "true", nil
	}

	switch value.(type) {
	case float64, int, int64, uint64:
		return sorting.NumberOf(value) != 0, nil
	}

	return false, fmt.Errorf("cannot read %v as boolean", value)
}

func (filter Boolean) Matches(recordValue, value interface{}, filterMode rjagro.FilterMode) (bool, error) {
	op, err := filter.Operator(value, filterMode)
	if err != nil {
		return false, err
	}

	if op != OperatorEqual && op != OperatorNotEqual {
		return false, &UnsupportedOperatorError{operator: op}
	}

	expected, err := filter.ParseValue(value)
	if err != nil {
		return false, err
	}

	if recordValue == nil {
		return filter.absentMatches(op), nil
	}

	actual, err := filter.ParseValue(recordValue)
	if err != nil {
		return false, err
	}

	return (actual == expected) == (op == OperatorEqual), nil
}
