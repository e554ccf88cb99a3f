package sorting

import (
	rjagro "github.com/Swyamk/rjagro-sub000"
)

// Config is the sort state of one table view: the active column key and
// its direction. The zero Config is Unsorted. Direction is rjagro.OrderNone
// exactly when Key is empty.
type Config struct {
	Key       string       `json:"key"`
	Direction rjagro.Order `json:"direction"`
}

// Unsorted is the natural order of a list.
var Unsorted = Config{}

// Ascending returns the ascending sort state for key.
func Ascending(key string) Config {
	if key == "" {
		return Unsorted
	}

	return Config{Key: key, Direction: rjagro.OrderAsc}
}

// Descending returns the descending sort state for key.
func Descending(key string) Config {
	if key == "" {
		return Unsorted
	}

	return Config{Key: key, Direction: rjagro.OrderDesc}
}

// IsSorted reports whether the config requests any ordering at all.
func (c Config) IsSorted() bool {
	return c.Key != "" && (c.Direction == rjagro.OrderAsc || c.Direction == rjagro.OrderDesc)
}

// Normalize maps every config that does not request an ordering onto
// Unsorted, restoring the key/direction invariant.
func (c Config) Normalize() Config {
	if !c.IsSorted() {
		return Unsorted
	}

	return c
}

// Toggle advances the sort state after the header of column key was
// activated. Repeated activation of the same column cycles
// ascending, descending, unsorted; activating another column always starts
// at ascending.
func Toggle(current Config, key string) Config {
	if key == "" {
		return Unsorted
	}

	if current.Key != key {
		return Ascending(key)
	}

	switch current.Direction {
	case rjagro.OrderAsc:
		return Descending(key)
	case rjagro.OrderDesc:
		return Unsorted
	default:
		return Ascending(key)
	}
}

// SortIcon is the indicator a column header shows for the current sort state.
type SortIcon string

const (
	// IconNeutral marks a column the table is not sorted by.
	IconNeutral SortIcon = "neutral"

	// IconAscending marks the column the table is sorted by, ascending.
	IconAscending SortIcon = "ascending"

	// IconDescending marks the column the table is sorted by, descending.
	IconDescending SortIcon = "descending"
)

// Icon returns the indicator for column key. Every column except the
// active one is neutral.
func Icon(current Config, key string) SortIcon {
	if current.Key != key || !current.IsSorted() {
		return IconNeutral
	}

	if current.Direction == rjagro.OrderAsc {
		return IconAscending
	}

	return IconDescending
}
