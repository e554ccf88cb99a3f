package sorting

import (
	"reflect"
	"slices"
	"strings"
	"sync"

	rjagro "github.com/Swyamk/rjagro-sub000"
)

// Extractor maps a row and a column key onto the value the column sorts by.
// Extractors encode per table knowledge such as computed columns or
// numeric strings.
type Extractor[T any] func(item T, key string) Value

// SortData returns a sorted copy of list. The input is never modified.
// When cfg does not request an ordering the copy keeps the input order.
// Ties keep their relative order. A nil extractor reads the field named by
// the key, see Field.
func SortData[T any](list []T, cfg Config, extract Extractor[T]) []T {
	sorted := slices.Clone(list)
	if !cfg.IsSorted() || len(sorted) < 2 {
		return sorted
	}

	if extract == nil {
		extract = Field[T]
	}

	// Extract once per row, the comparator runs O(n log n) times.
	keyed := make([]keyedRow[T], len(sorted))
	for i, item := range sorted {
		keyed[i] = keyedRow[T]{item: item, value: extract(item, cfg.Key)}
	}

	descending := cfg.Direction == rjagro.OrderDesc
	slices.SortStableFunc(keyed, func(a, b keyedRow[T]) int {
		comparison := CompareValues(a.value, b.value)
		if descending {
			return -comparison
		}
		return comparison
	})

	for i := range keyed {
		sorted[i] = keyed[i].item
	}

	return sorted
}

// SortDataBy orders a copy of list by several configs, the first one taking
// precedence. Configs that do not request an ordering are skipped; if none
// remains the copy keeps the input order.
func SortDataBy[T any](list []T, configs []Config, extract Extractor[T]) []T {
	sorted := slices.Clone(list)

	active := make([]Config, 0, len(configs))
	for _, cfg := range configs {
		if cfg.IsSorted() {
			active = append(active, cfg)
		}
	}

	if len(active) == 0 || len(sorted) < 2 {
		return sorted
	}

	if extract == nil {
		extract = Field[T]
	}

	keyed := make([]multiKeyedRow[T], len(sorted))
	for i, item := range sorted {
		values := make([]Value, len(active))
		for k, cfg := range active {
			values[k] = extract(item, cfg.Key)
		}
		keyed[i] = multiKeyedRow[T]{item: item, values: values}
	}

	slices.SortStableFunc(keyed, func(a, b multiKeyedRow[T]) int {
		for k, cfg := range active {
			comparison := CompareValues(a.values[k], b.values[k])
			if comparison == 0 {
				continue
			}
			if cfg.Direction == rjagro.OrderDesc {
				return -comparison
			}
			return comparison
		}
		return 0
	})

	for i := range keyed {
		sorted[i] = keyed[i].item
	}

	return sorted
}

type keyedRow[T any] struct {
	item  T
	value Value
}

type multiKeyedRow[T any] struct {
	item   T
	values []Value
}

// Field is the default extractor: it reads key from maps with string keys,
// and from structs (or pointers to structs) by json tag or field name.
// Anything it cannot read is absent.
func Field[T any](item T, key string) Value {
	return fieldOf(reflect.ValueOf(item), key)
}

func fieldOf(rv reflect.Value, key string) Value {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		found := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !found.IsValid() {
			return nil
		}
		return found.Interface()
	case reflect.Struct:
		index, ok := structFieldIndex(rv.Type(), key)
		if !ok {
			return nil
		}
		field, err := rv.FieldByIndexErr(index)
		if err != nil {
			return nil
		}
		return field.Interface()
	default:
		return nil
	}
}

var fieldIndexCache sync.Map // map[fieldCacheKey][]int

type fieldCacheKey struct {
	typ reflect.Type
	key string
}

func structFieldIndex(typ reflect.Type, key string) ([]int, bool) {
	cacheKey := fieldCacheKey{typ: typ, key: key}
	if cached, ok := fieldIndexCache.Load(cacheKey); ok {
		index, _ := cached.([]int)
		return index, index != nil
	}

	var index []int
	for _, field := range reflect.VisibleFields(typ) {
		if !field.IsExported() || field.Anonymous {
			continue
		}

		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == key || (name == "" && field.Name == key) {
			index = field.Index
			break
		}
	}

	fieldIndexCache.Store(cacheKey, index)

	return index, index != nil
}
