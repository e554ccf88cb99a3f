// Package filter holds the in-memory column filters. A filter parses the
// operand of a request filter and decides whether a record value passes.
package filter

import (
	"errors"
	"strings"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/config"
)

// Operator is the comparison a FilterMode resolves to.
type Operator string

const (
	OperatorLike          Operator = "LIKE"
	OperatorNotLike       Operator = "NOT LIKE"
	OperatorEqual         Operator = "="
	OperatorNotEqual      Operator = "!="
	OperatorGreater       Operator = "GREATER"
	OperatorGreaterEquals Operator = "GREATER_EQUALS"
	OperatorLesser        Operator = "LESSER"
	OperatorLesserEquals  Operator = "LESSER_EQUALS"
	OperatorContains      Operator = "CONTAINS"
)

// ErrUnknownFilter indicates that a column names a filter which is not registered.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter is the common interface for filtering a single column.
type Filter interface {
	// Operator resolves the operator a filter value is applied with.
	Operator(value interface{}, filterMode rjagro.FilterMode) (Operator, error)

	// Matches reports whether the record value passes the filter value under filterMode.
	// A nil record value is a missing value.
	Matches(recordValue, value interface{}, filterMode rjagro.FilterMode) (bool, error)
}

var filters = map[string]Filter{
	"BooleanFilter":     Boolean{Common: &Common{}},
	"StringFilter":      PlainString{Common: &Common{}},
	"StringRegExFilter": RegexString{Common: &Common{}},
	"EnumFilter":        PlainString{Common: &Common{}},
	"NumericFilter":     Numeric{Common: &Common{}},
	"DateFilter":        Date{Common: &Common{}},
	"DateTimeFilter":    Date{Common: &Common{}},
}

// ByName returns the filter registered under name.
func ByName(name string) (Filter, error) {
	filter, exists := filters[name]
	if !exists {
		return nil, ErrUnknownFilter
	}

	return filter, nil
}

// ForColumn returns the filter named by the column, or one matching the
// column type when the column names none.
func ForColumn(column config.TableSchemaColumn) (Filter, error) {
	if column.Filter != "" {
		return ByName(column.Filter)
	}

	switch strings.ToLower(column.Type) {
	case "boolean":
		return ByName("BooleanFilter")
	case "integer", "numeric":
		return ByName("NumericFilter")
	case "date", "datetime":
		return ByName("DateFilter")
	case "string", "":
		return ByName("StringFilter")
	default:
		return ByName("EnumFilter")
	}
}
