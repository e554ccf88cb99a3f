package order

import (
	"github.com/Swyamk/rjagro-sub000/config"
)

// LongEnumSorter is an extended EnumSorter, which suffixes ".long" when retrieving translations.
type LongEnumSorter struct {
	*EnumSorter
}

// NewLongEnumSorter creates a new LongEnumSorter instance.
func NewLongEnumSorter(mapper config.EnumMapper, translator config.Translator) Sorter {
	return LongEnumSorter{
		EnumSorter: newEnumSorter(mapper, translator, ".long"),
	}
}
