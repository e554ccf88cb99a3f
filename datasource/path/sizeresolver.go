package path

import (
	"reflect"

	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/datasource"
)

// SizeResolver resolves to the number of elements below the column path,
// e.g. the allocation lines of an allocation. Missing values count 0.
type SizeResolver struct {
}

func (sizeResolver SizeResolver) ResolveValue(record datasource.Record, columnSchema config.TableSchemaColumn) interface{} {
	value := SimpleResolver{}.ResolveValue(record, columnSchema)
	if value == nil {
		return 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len()
	default:
		return 0
	}
}
