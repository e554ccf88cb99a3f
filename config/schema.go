package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/birkirb/loggers.v1/log"
)

var (
	// ErrUnknownSchema indicates that a requested schema is not
	// known to a SchemaMapper.
	ErrUnknownSchema = errors.New("unknown schema")

	// ErrUnknownColumn indicates that a requested column is
	// not known to a TableSchema.
	ErrUnknownColumn = errors.New("unknown column")
)

// UnresolvableSchemaError indicates that a schema that was required to be
// resolved during schema loading could not be found.
type UnresolvableSchemaError struct {
	schema string
}

func (e UnresolvableSchemaError) Error() string {
	return fmt.Sprintf("cannot resolve table schema %s", e.schema)
}

// UnknownColumnTypeError indicates that a unknown column type (neither
// primitive nor known enum type) was found during integrity checking of
// a TableSchema.
type UnknownColumnTypeError struct {
	schema     string
	column     string
	columnType string
}

func (e UnknownColumnTypeError) Error() string {
	return fmt.Sprintf("unknown column type %s in column %s of schema %s", e.columnType, e.column, e.schema)
}

// InvalidDefaultSortError indicates that the default sort of a schema names
// an unknown column, an unknown direction, or only one of both.
type InvalidDefaultSortError struct {
	schema string
	sort   SortSpec
}

func (e InvalidDefaultSortError) Error() string {
	return fmt.Sprintf("invalid default sort %q/%q in schema %s", e.sort.Key, e.sort.Direction, e.schema)
}

// TableSchemaExclusion is a column path prefix that is removed after a
// table schema was resolved.
type TableSchemaExclusion string

// SortSpec is the serialized form of a sort state: a column key and a
// direction of "asc", "desc" or "" (unsorted).
type SortSpec struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// TableSchema describes a single dashboard table: which backend resource
// feeds it, how it is sorted initially and which columns it has.
type TableSchema struct {
	Entity      string                      `json:"entity"`
	Resource    string                      `json:"resource"`
	DefaultSort SortSpec                    `json:"defaultSort"`
	Extensions  []TableSchemaExtensionTable `json:"extensions"`
	Exclusions  []TableSchemaExclusion      `json:"exclusions"`
	Columns     []TableSchemaColumn         `json:"columns"`
}

var validColumnTypes = map[string]struct{}{
	"boolean":  {},
	"integer":  {},
	"numeric":  {},
	"string":   {},
	"date":     {},
	"datetime": {},
}

// IsPrimitiveType reports whether columnType is one of the built in column
// types. Anything else must name an enum.
func IsPrimitiveType(columnType string) bool {
	_, exists := validColumnTypes[strings.ToLower(columnType)]
	return exists
}

// ValidateIntegrity checks that every column type is either primitive or a
// enum known to mapper.
func (schema TableSchema) ValidateIntegrity(mapper EnumMapper) error {
	for _, column := range schema.Columns {
		if IsPrimitiveType(column.Type) {
			continue
		}

		if _, err := mapper.Enum(column.Type); err != nil {
			return &UnknownColumnTypeError{
				schema:     schema.Entity,
				column:     column.Path,
				columnType: column.Type,
			}
		}
	}

	return nil
}

// ResolvedTableSchema is a TableSchema with all extensions pulled in and
// all exclusions removed.
type ResolvedTableSchema struct {
	originalSchema TableSchema
	columns        []TableSchemaColumn
	columnsMap     map[string]TableSchemaColumn
}

// NewResolvedTableSchema resolves a standalone schema which has no
// extensions. It is mostly useful for code defined tables and tests.
func NewResolvedTableSchema(schema TableSchema) ResolvedTableSchema {
	columns := make([]TableSchemaColumn, len(schema.Columns))
	copy(columns, schema.Columns)

	return newResolved(schema, removeExcluded(columns, schema.Exclusions))
}

func newResolved(schema TableSchema, columns []TableSchemaColumn) ResolvedTableSchema {
	columnsMap := make(map[string]TableSchemaColumn, len(columns))
	for _, column := range columns {
		columnsMap[column.Path] = column
	}

	return ResolvedTableSchema{
		originalSchema: schema,
		columns:        columns,
		columnsMap:     columnsMap,
	}
}

// OriginalSchema returns the original TableSchema without extended columns.
func (resolvedTableSchema ResolvedTableSchema) OriginalSchema() TableSchema {
	return resolvedTableSchema.originalSchema
}

// Column retrieves the TableSchemaColumn of a single column key, or
// returns an ErrUnknownColumn, if the column does not exist.
func (resolvedTableSchema ResolvedTableSchema) Column(key string) (TableSchemaColumn, error) {
	column, exists := resolvedTableSchema.columnsMap[key]
	if !exists {
		return TableSchemaColumn{}, ErrUnknownColumn
	}

	return column, nil
}

// Columns returns all columns in resolved order.
func (resolvedTableSchema ResolvedTableSchema) Columns() []TableSchemaColumn {
	columns := make([]TableSchemaColumn, len(resolvedTableSchema.columns))
	copy(columns, resolvedTableSchema.columns)

	return columns
}

// ValidateDefaultSort checks that the default sort is either empty, or names
// a known, sortable column together with a direction.
func (resolvedTableSchema ResolvedTableSchema) ValidateDefaultSort() error {
	spec := resolvedTableSchema.originalSchema.DefaultSort
	invalid := &InvalidDefaultSortError{schema: resolvedTableSchema.originalSchema.Entity, sort: spec}

	if spec.Key == "" && spec.Direction == "" {
		return nil
	}

	if spec.Key == "" || (spec.Direction != "asc" && spec.Direction != "desc") {
		return invalid
	}

	column, err := resolvedTableSchema.Column(spec.Key)
	if err != nil || !column.Sortable {
		return invalid
	}

	return nil
}

// TableSchemaColumn is a single column of a TableSchema.
type TableSchemaColumn struct {
	Title         string                 `json:"title"`
	Path          string                 `json:"path"`
	Type          string                 `json:"type"`
	Filter        string                 `json:"filter"`
	Order         string                 `json:"order"`
	PathResolver  string                 `json:"pathResolver"`
	Sortable      bool                   `json:"sortable"`
	FrontendHints map[string]interface{} `json:"frontendHints"`
}

// TableSchemaExtensionTable pulls the columns of another schema into a
// schema. A non empty Key nests the pulled columns below Key, so "name" of
// the extension becomes "Key.name".
type TableSchemaExtensionTable struct {
	Title string `json:"title"`
	Table string `json:"table"`
	Key   string `json:"key"`
}

// SchemaMapper maps schema names to schemas and their resolved form.
type SchemaMapper struct {
	schemas         map[string]TableSchema
	resolvedSchemas map[string]ResolvedTableSchema
	byResource      map[string]string
}

// NewSchemaMapperFromFolder builds a new schema mapper from a given folder,
// recursively loading all schema jsons which are found in there.
func NewSchemaMapperFromFolder(schemaRoot string) (SchemaMapper, error) {
	// Normalize the path, and eliminate separator inconsistencies
	normalizedRoot, err := filepath.Abs(schemaRoot)
	if err != nil {
		return SchemaMapper{}, err
	}

	schemas := make(map[string]TableSchema)
	walkErr := filepath.WalkDir(normalizedRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if filepath.Ext(path) != dotJSON {
			log.WithField("file", path).Debug("Ignoring file, as not a json file!")
			return nil
		}

		schema := TableSchema{}
		if err := readJSON(path, &schema); err != nil {
			return err
		}

		schemas[normalizeSchemaKey(path, normalizedRoot)] = schema

		return nil
	})
	if walkErr != nil {
		return SchemaMapper{}, walkErr
	}

	log.WithField("count", len(schemas)).Info("Successfully loaded schemas")

	return NewSchemaMapper(schemas)
}

// NewSchemaMapper resolves the given schemas, keyed by schema name.
func NewSchemaMapper(schemas map[string]TableSchema) (SchemaMapper, error) {
	resolvedSchemas := make(map[string]ResolvedTableSchema, len(schemas))
	byResource := make(map[string]string)

	for name, schema := range schemas {
		columns, err := resolveColumns(schema, schemas, nil)
		if err != nil {
			return SchemaMapper{}, err
		}

		resolvedSchemas[name] = newResolved(schema, removeExcluded(columns, schema.Exclusions))

		if schema.Resource != "" {
			byResource[schema.Resource] = name
		}
	}

	return SchemaMapper{
		schemas:         schemas,
		resolvedSchemas: resolvedSchemas,
		byResource:      byResource,
	}, nil
}

// normalizeSchemaKey calculates the name of a schema by its path relative
// to the root of all schemas, lower cased and with "/" as separator.
func normalizeSchemaKey(schemaPath, schemaRoot string) string {
	relative, err := filepath.Rel(schemaRoot, schemaPath)
	if err != nil {
		relative = filepath.Base(schemaPath)
	}

	relative = strings.TrimSuffix(relative, filepath.Ext(relative))

	return strings.ToLower(filepath.ToSlash(relative))
}

// Schema retrieves a specific schema from the mapper if existing, or returns
// a ErrUnknownSchema otherwise.
func (schemaMapper SchemaMapper) Schema(schema string) (TableSchema, error) {
	found, exists := schemaMapper.schemas[schema]
	if !exists {
		return TableSchema{}, ErrUnknownSchema
	}

	return found, nil
}

// Names returns all schema names, sorted.
func (schemaMapper SchemaMapper) Names() []string {
	names := make([]string, 0, len(schemaMapper.schemas))
	for name := range schemaMapper.schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Schemas returns all schemas which the mapper knows, in no particular order.
func (schemaMapper SchemaMapper) Schemas() []TableSchema {
	schemas := make([]TableSchema, 0, len(schemaMapper.schemas))
	for _, v := range schemaMapper.schemas {
		schemas = append(schemas, v)
	}

	return schemas
}

// ResolvedSchema retrieves a specific resolved schema from the mapper if existing,
// or returns a ErrUnknownSchema otherwise.
func (schemaMapper SchemaMapper) ResolvedSchema(schema string) (ResolvedTableSchema, error) {
	resolved, exists := schemaMapper.resolvedSchemas[schema]
	if !exists {
		return ResolvedTableSchema{}, ErrUnknownSchema
	}

	return resolved, nil
}

// ResolvedSchemaForResource looks up the resolved schema which is fed by the
// given backend resource.
func (schemaMapper SchemaMapper) ResolvedSchemaForResource(resource string) (ResolvedTableSchema, error) {
	name, exists := schemaMapper.byResource[resource]
	if !exists {
		return ResolvedTableSchema{}, ErrUnknownSchema
	}

	return schemaMapper.ResolvedSchema(name)
}

// ResolvedSchemas returns all resolved schemas which the mapper knows, mapped by
// their name.
func (schemaMapper SchemaMapper) ResolvedSchemas() map[string]ResolvedTableSchema {
	schemas := make(map[string]ResolvedTableSchema, len(schemaMapper.resolvedSchemas))
	for k, v := range schemaMapper.resolvedSchemas {
		schemas[k] = v
	}

	return schemas
}

// ValidateIntegrity iteratively checks all schemas known to the mapper: column
// types must be known, and default sorts must point at sortable columns.
func (schemaMapper SchemaMapper) ValidateIntegrity(mapper EnumMapper) error {
	for _, name := range schemaMapper.Names() {
		if err := schemaMapper.schemas[name].ValidateIntegrity(mapper); err != nil {
			return err
		}

		if err := schemaMapper.resolvedSchemas[name].ValidateDefaultSort(); err != nil {
			return err
		}
	}

	return nil
}

func removeExcluded(columns []TableSchemaColumn, exclusions []TableSchemaExclusion) []TableSchemaColumn {
	if len(exclusions) == 0 {
		return columns
	}

	kept := make([]TableSchemaColumn, 0, len(columns))
	removed := 0
	for _, column := range columns {
		if isExcluded(column.Path, exclusions) {
			removed++
			continue
		}
		kept = append(kept, column)
	}

	log.WithField("columns", removed).Debug("Removed excluded columns from schema")

	return kept
}

func isExcluded(path string, exclusions []TableSchemaExclusion) bool {
	for _, exclusion := range exclusions {
		if strings.HasPrefix(path, string(exclusion)) {
			return true
		}
	}

	return false
}

// resolveColumns expands the extensions of schema depth first. visiting
// guards against extension cycles, which are reported as unresolvable.
func resolveColumns(schema TableSchema, allSchemas map[string]TableSchema, visiting []string) ([]TableSchemaColumn, error) {
	columns := make([]TableSchemaColumn, len(schema.Columns))
	copy(columns, schema.Columns)

	for _, extension := range schema.Extensions {
		target, exists := allSchemas[extension.Table]
		if !exists {
			return nil, &UnresolvableSchemaError{schema: extension.Table}
		}

		for _, seen := range visiting {
			if seen == extension.Table {
				return nil, &UnresolvableSchemaError{schema: extension.Table}
			}
		}

		extended, err := resolveColumns(target, allSchemas, append(visiting, extension.Table))
		if err != nil {
			return nil, err
		}

		for _, column := range extended {
			if extension.Key != "" {
				column.Path = extension.Key + "." + column.Path
			}
			columns = append(columns, column)
		}
	}

	return columns, nil
}
