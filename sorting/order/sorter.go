// Package order holds the per column strategies turning a raw record value
// into the value a column sorts by. Schemas select a strategy by name via
// TableSchemaColumn.Order; columns without one get a strategy matching their
// type.
package order

import (
	"errors"
	"strings"

	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

// ErrUnknownSorter indicates that a column names an order strategy which
// is not registered.
var ErrUnknownSorter = errors.New("unknown order strategy")

// Sorter is the common interface for sorting a single column.
type Sorter interface {
	// SortValue takes the resolved value of a record for column, and converts it into the value the
	// column is ordered by, in respect to the given locale.
	SortValue(value interface{}, column config.TableSchemaColumn, locale string) (sorting.Value, error)
}

// Registry resolves Sorter implementations by name.
type Registry struct {
	sorters map[string]Sorter
}

// NewRegistry creates a Registry with all built in strategies. The enum
// strategies translate through mapper and translator.
func NewRegistry(mapper config.EnumMapper, translator config.Translator) Registry {
	return Registry{
		sorters: map[string]Sorter{
			"":               Direct{},
			"DirectOrder":    Direct{},
			"NumericOrder":   Numeric{},
			"DateOrder":      Date{},
			"TextOrder":      Text{},
			"EnumOrder":      NewEnumSorter(mapper, translator),
			"ShortEnumOrder": NewShortEnumSorter(mapper, translator),
			"LongEnumOrder":  NewLongEnumSorter(mapper, translator),
		},
	}
}

// Register adds or replaces a named strategy.
func (registry Registry) Register(name string, sorter Sorter) {
	registry.sorters[name] = sorter
}

// Sorter returns the strategy registered under name.
func (registry Registry) Sorter(name string) (Sorter, error) {
	sorter, exists := registry.sorters[name]
	if !exists {
		return nil, ErrUnknownSorter
	}

	return sorter, nil
}

// ForColumn returns the strategy named by the column, or one matching the
// column type when the column names none.
func (registry Registry) ForColumn(column config.TableSchemaColumn) (Sorter, error) {
	if column.Order != "" {
		return registry.Sorter(column.Order)
	}

	switch strings.ToLower(column.Type) {
	case "integer", "numeric":
		return registry.Sorter("NumericOrder")
	case "date", "datetime":
		return registry.Sorter("DateOrder")
	case "string":
		return registry.Sorter("TextOrder")
	case "boolean", "":
		return registry.Sorter("")
	default:
		return registry.Sorter("EnumOrder")
	}
}
