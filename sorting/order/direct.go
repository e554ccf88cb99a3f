package order

import (
	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

// Direct is the default implementation of a Sorter, which simply sorts by the given
// value, without any other kind of processing or conversion.
type Direct struct {
}

func (direct Direct) SortValue(value interface{}, column config.TableSchemaColumn, locale string) (sorting.Value, error) {
	return value, nil
}

// Numeric sorts by the numeric reading of a value. Numeric strings are
// parsed, everything else counts as 0.
type Numeric struct {
}

func (numeric Numeric) SortValue(value interface{}, column config.TableSchemaColumn, locale string) (sorting.Value, error) {
	return sorting.NumberOf(value), nil
}

// Date sorts by the instant a value denotes. Values which are no dates are
// absent, and thus sort first.
type Date struct {
}

func (date Date) SortValue(value interface{}, column config.TableSchemaColumn, locale string) (sorting.Value, error) {
	return sorting.DateOf(value), nil
}

// Text sorts case insensitive by the string form of a value.
type Text struct {
}

func (text Text) SortValue(value interface{}, column config.TableSchemaColumn, locale string) (sorting.Value, error) {
	return sorting.TextOf(value), nil
}
