// Package path holds the PathResolver implementations, reading column values
// out of flat or nested backend records.
package path

import (
	"strings"

	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/datasource"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

// SimpleResolver reads the column path from the record. A flat key wins,
// so backend columns containing dots stay readable; otherwise the path is
// walked through nested objects ("farmer.name").
type SimpleResolver struct {
}

func (simpleResolver SimpleResolver) ResolveValue(record datasource.Record, columnSchema config.TableSchemaColumn) interface{} {
	path := columnSchema.Path

	if value, exists := record[path]; exists {
		return value
	}

	if !strings.Contains(path, ".") {
		return nil
	}

	return sorting.NestedPath[datasource.Record](path)(record, path)
}
