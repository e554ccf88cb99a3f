package order

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/birkirb/loggers.v1/log"

	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

// EnumSorter is the base implementation to sort columns by a translated enum.
// Every enum key is mapped to its rank in the list of translated labels, so
// a column of enum keys orders alphabetically by what the user reads.
type EnumSorter struct {
	mapper     config.EnumMapper
	translator config.Translator

	suffix string
	ranks  *sync.Map // map[rankKey]map[string]int
}

type rankKey struct {
	enum, locale string
}

// NewEnumSorter creates a new EnumSorter instance.
func NewEnumSorter(mapper config.EnumMapper, translator config.Translator) Sorter {
	return newEnumSorter(mapper, translator, "")
}

func newEnumSorter(mapper config.EnumMapper, translator config.Translator, suffix string) *EnumSorter {
	return &EnumSorter{
		mapper:     mapper,
		translator: translator,
		suffix:     suffix,
		ranks:      &sync.Map{},
	}
}

func (sorter EnumSorter) entriesSortedByTranslation(enum config.Enum, locale string) []config.KeyWithTranslation {
	keys := enum.Entries()

	labels := make(map[string]string, len(keys))
	for _, entry := range keys {
		translation, err := sorter.translator.Translate(locale, entry.TranslationKey+sorter.suffix)
		if err != nil {
			// These are just warnings, not breaking errors
			log.Println(err)
		}

		labels[entry.EnumKey] = strings.ToLower(translation)
	}

	// Entries come ordered by key, which keeps equal labels deterministic.
	sort.SliceStable(keys, func(i, j int) bool {
		return labels[keys[i].EnumKey] < labels[keys[j].EnumKey]
	})

	return keys
}

func (sorter EnumSorter) rankTable(enumName, locale string) (map[string]int, error) {
	key := rankKey{enum: enumName, locale: locale}
	if cached, ok := sorter.ranks.Load(key); ok {
		return cached.(map[string]int), nil
	}

	enum, err := sorter.mapper.Enum(enumName)
	if err != nil {
		return nil, fmt.Errorf("cannot order by enum %s: %w", enumName, err)
	}

	entries := sorter.entriesSortedByTranslation(enum, locale)

	ranks := make(map[string]int, len(entries))
	for i, entry := range entries {
		ranks[entry.EnumKey] = i
	}

	sorter.ranks.Store(key, ranks)

	return ranks, nil
}

func (sorter EnumSorter) SortValue(value interface{}, column config.TableSchemaColumn, locale string) (sorting.Value, error) {
	ranks, err := sorter.rankTable(column.Type, locale)
	if err != nil {
		return nil, err
	}

	key, ok := value.(string)
	if !ok {
		return nil, nil
	}

	rank, known := ranks[key]
	if !known {
		log.WithFields("enum", column.Type, "key", key).Debug("Value is not part of enum, sorting it first")
		return nil, nil
	}

	return rank, nil
}
