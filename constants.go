package rjagro

// Order describes a direction to order a column by. The empty Order means
// the natural (unsorted) order of a list.
type Order string

const (
	// OrderAsc describes ascending column order.
	OrderAsc Order = "asc"

	// OrderDesc describes descending column order.
	OrderDesc Order = "desc"

	// OrderNone describes the natural, unsorted order.
	OrderNone Order = ""
)

// Reverse flips ascending and descending. OrderNone stays OrderNone.
func (order Order) Reverse() Order {
	switch order {
	case OrderAsc:
		return OrderDesc
	case OrderDesc:
		return OrderAsc
	default:
		return OrderNone
	}
}

// FilterMode is an abstract definition of a mode to filter a column by.
type FilterMode string

const (
	// FilterEquals indicates that the column must match the filter value exactly.
	FilterEquals FilterMode = "EQUALS"

	// FilterGreater indicates that the column must be greater than the filter value.
	FilterGreater FilterMode = "GREATER"

	// FilterGreaterEquals indicates that the column must be greater or equal to the filter value.
	FilterGreaterEquals FilterMode = "GREATER_EQUALS"

	// FilterLesser indicates that the column must be lesser than the filter value.
	FilterLesser FilterMode = "LESSER"

	// FilterLesserEquals indicates that the column must be lesser or equal to the filter value.
	FilterLesserEquals FilterMode = "LESSER_EQUALS"

	// FilterNotEquals indicates that the column must NOT match the exact filter value.
	FilterNotEquals FilterMode = "NOT_EQUALS"

	// FilterContains indicates that the column must contain the filter value.
	FilterContains FilterMode = "CONTAINS"
)

// ParseFilterMode maps a user supplied mode name onto a FilterMode. The
// second return value is false for unknown names.
func ParseFilterMode(mode string) (FilterMode, bool) {
	switch FilterMode(mode) {
	case FilterEquals, FilterGreater, FilterGreaterEquals, FilterLesser,
		FilterLesserEquals, FilterNotEquals, FilterContains:
		return FilterMode(mode), true
	}

	return "", false
}
