package order

import (
	"github.com/Swyamk/rjagro-sub000/config"
)

// ShortEnumSorter is an extended EnumSorter, which suffixes ".short" when retrieving translations.
type ShortEnumSorter struct {
	*EnumSorter
}

// NewShortEnumSorter creates a new ShortEnumSorter instance.
func NewShortEnumSorter(mapper config.EnumMapper, translator config.Translator) Sorter {
	return ShortEnumSorter{
		EnumSorter: newEnumSorter(mapper, translator, ".short"),
	}
}
