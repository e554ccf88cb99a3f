package filter

import (
	"fmt"

	rjagro "github.com/Swyamk/rjagro-sub000"
)

// Common maps filter modes onto operators, and applies operators to the
// result of a three way comparison.
type Common struct {
}

func (filter Common) Operator(_ interface{}, filterMode rjagro.FilterMode) (Operator, error) {
	switch filterMode {
	case rjagro.FilterEquals:
		return OperatorEqual, nil
	case rjagro.FilterGreater:
		return OperatorGreater, nil
	case rjagro.FilterGreaterEquals:
		return OperatorGreaterEquals, nil
	case rjagro.FilterLesser:
		return OperatorLesser, nil
	case rjagro.FilterLesserEquals:
		return OperatorLesserEquals, nil
	case rjagro.FilterNotEquals:
		return OperatorNotEqual, nil
	case rjagro.FilterContains:
		return OperatorContains, nil
	default:
		return "", fmt.Errorf("unknown filter mode %s", filterMode)
	}
}

// absentMatches reports whether a missing record value passes op. Only a
// negated comparison accepts it.
func (filter Common) absentMatches(op Operator) bool {
	return op == OperatorNotEqual || op == OperatorNotLike
}

// compared applies an ordering operator to the result of a comparison
// between the record value and the filter value.
func (filter Common) compared(comparison int, op Operator) (bool, error) {
	switch op {
	case OperatorEqual:
		return comparison == 0, nil
	case OperatorNotEqual:
		return comparison != 0, nil
	case OperatorGreater:
		return comparison > 0, nil
	case OperatorGreaterEquals:
		return comparison >= 0, nil
	case OperatorLesser:
		return comparison < 0, nil
	case OperatorLesserEquals:
		return comparison <= 0, nil
	default:
		return false, &UnsupportedOperatorError{operator: op}
	}
}

// UnsupportedOperatorError indicates that a filter cannot apply an operator,
// e.g. GREATER on a boolean column.
type UnsupportedOperatorError struct {
	operator Operator
}

func (e UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("operator %s is not supported by this filter", e.operator)
}
