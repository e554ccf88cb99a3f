package datasource

import "github.com/Swyamk/rjagro-sub000/config"

// PathResolver reads the value of a column from a record. A missing value
// is reported as nil.
type PathResolver interface {
	ResolveValue(record Record, columnSchema config.TableSchemaColumn) interface{}
}
