// Package memsource implements a datasource.Connector which filters, sorts
// and pages full resource lists in memory, the way the dashboard views do
// after fetching a list from the backend.
package memsource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/birkirb/loggers.v1/log"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/datasource"
	"github.com/Swyamk/rjagro-sub000/datasource/filter"
	"github.com/Swyamk/rjagro-sub000/datasource/path"
	"github.com/Swyamk/rjagro-sub000/sorting/order"
)

// Connector is the entry point for in-memory table views.
type Connector struct {
	provider   datasource.Provider
	enumMapper config.EnumMapper
	translator config.Translator
	sorters    order.Registry
}

// NewConnector creates a Connector fetching its records from provider.
func NewConnector(provider datasource.Provider, enumMapper config.EnumMapper, translator config.Translator) datasource.Connector {
	return &Connector{
		provider:   provider,
		enumMapper: enumMapper,
		translator: translator,
		sorters:    order.NewRegistry(enumMapper, translator),
	}
}

func (th Connector) ValidateRequest(request datasource.Request) error {
	schema := request.Schema

	if len(request.Columns) == 0 {
		return errors.New("no columns selected")
	}

	if _, err := th.translator.Language(request.Locale); err != nil {
		return fmt.Errorf("unknown locale %s", request.Locale)
	}

	for _, column := range request.Columns {
		columnPath := column.Path

		if _, err := schema.Column(columnPath); err != nil {
			return fmt.Errorf("unknown column %s", columnPath)
		}

		if _, err := path.Resolver(column.PathResolver); err != nil {
			return fmt.Errorf("unknown path resolver %s on column %s", column.PathResolver, columnPath)
		}

		if _, err := filter.ForColumn(column); err != nil {
			return fmt.Errorf("unknown filter %s on column %s", column.Filter, columnPath)
		}

		if _, err := th.sorters.ForColumn(column); err != nil {
			return fmt.Errorf("unknown order %s on column %s", column.Order, columnPath)
		}
	}

	for _, filterGroup := range request.Filters {
		columnPath := filterGroup.Path()

		if _, err := schema.Column(columnPath); errors.Is(err, config.ErrUnknownColumn) {
			return fmt.Errorf("unknown filter column %s", columnPath)
		}

		for _, f := range filterGroup.Filters() {
			if _, ok := rjagro.ParseFilterMode(string(f.FilterMode())); !ok {
				return fmt.Errorf("unknown filter mode %s on column %s", f.FilterMode(), columnPath)
			}
		}
	}

	for _, columnOrder := range request.Orders {
		columnPath := columnOrder.Path()

		column, err := schema.Column(columnPath)
		if errors.Is(err, config.ErrUnknownColumn) {
			return fmt.Errorf("unknown order column %s", columnPath)
		}

		switch columnOrder.Direction() {
		case rjagro.OrderAsc, rjagro.OrderDesc, rjagro.OrderNone:
		default:
			return fmt.Errorf("unknown order direction %s on column %s", columnOrder.Direction(), columnPath)
		}

		if columnOrder.Direction() != rjagro.OrderNone && !column.Sortable {
			return fmt.Errorf("column %s is not sortable", columnPath)
		}
	}

	return nil
}

func (th Connector) FetchData(ctx context.Context, request datasource.Request) (*datasource.Result, uint64, uint64, error) {
	start := time.Now()

	schema := request.Schema
	resource := schema.OriginalSchema().Resource
	if resource == "" {
		resource = schema.OriginalSchema().Entity
	}

	records, err := th.provider.Fetch(ctx, resource)
	if err != nil {
		return nil, 0, 0, err
	}

	totalCount := uint64(len(records))

	records = globalSearch(records, request.Columns, request.GlobalSearch)

	records, err = th.filterRecords(records, request.Filters, schema)
	if err != nil {
		return nil, 0, 0, err
	}

	filteredCount := uint64(len(records))

	if err := ctx.Err(); err != nil {
		return nil, 0, 0, err
	}

	records, err = th.orderRecords(records, request.Orders, schema, request.Locale)
	if err != nil {
		return nil, 0, 0, err
	}

	records = page(records, request.Limit, request.Offset)

	dataResult := make(datasource.Result, len(records))
	for i, record := range records {
		row := make(map[string]interface{}, len(request.Columns))
		for _, column := range request.Columns {
			row[column.Path] = resolveValue(record, column)
		}

		dataResult[i] = row
	}

	log.WithFields(
		"resource", resource,
		"time", time.Since(start),
		"totalCount", totalCount,
		"filteredCount", filteredCount,
		"count", len(dataResult),
	).Info("Data fetched")

	return &dataResult, totalCount, filteredCount, nil
}

func resolveValue(record datasource.Record, column config.TableSchemaColumn) interface{} {
	resolver, err := path.Resolver(column.PathResolver)
	if err != nil {
		log.WithFields(
			"path", column.Path,
			"resolver", column.PathResolver,
		).Warn("Unknown path resolver - using default path resolver")
		resolver = path.SimpleResolver{}
	}

	return resolver.ResolveValue(record, column)
}

// globalSearch keeps the records where any selected column contains term,
// case insensitive.
func globalSearch(records []datasource.Record, columns []config.TableSchemaColumn, term string) []datasource.Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}

	matching := make([]datasource.Record, 0, len(records))
	for _, record := range records {
		for _, column := range columns {
			value := resolveValue(record, column)
			if value != nil && strings.Contains(strings.ToLower(fmt.Sprint(value)), term) {
				matching = append(matching, record)
				break
			}
		}
	}

	return matching
}

func (th Connector) filterRecords(records []datasource.Record, filters []datasource.FilterGroup,
	schema config.ResolvedTableSchema) ([]datasource.Record, error) {
	if len(filters) == 0 {
		return records, nil
	}

	type resolvedGroup struct {
		column config.TableSchemaColumn
		filter filter.Filter
		group  datasource.FilterGroup
	}

	groups := make([]resolvedGroup, len(filters))
	for i, filterGroup := range filters {
		column, err := schema.Column(filterGroup.Path())
		if err != nil {
			return nil, err
		}

		columnFilter, err := filter.ForColumn(column)
		if err != nil {
			return nil, err
		}

		groups[i] = resolvedGroup{column: column, filter: columnFilter, group: filterGroup}
	}

	matching := make([]datasource.Record, 0, len(records))
	for _, record := range records {
		passes := true
		for _, group := range groups {
			anyMatch, err := matchesAny(group.filter, resolveValue(record, group.column), group.group)
			if err != nil {
				return nil, fmt.Errorf("cannot filter column %s: %w", group.column.Path, err)
			}

			if !anyMatch {
				passes = false
				break
			}
		}

		if passes {
			matching = append(matching, record)
		}
	}

	return matching, nil
}

func matchesAny(columnFilter filter.Filter, value interface{}, group datasource.FilterGroup) (bool, error) {
	for _, f := range group.Filters() {
		matches, err := columnFilter.Matches(value, f.Value(), f.FilterMode())
		if err != nil {
			return false, err
		}

		if matches {
			return true, nil
		}
	}

	return false, nil
}

func page(records []datasource.Record, limit, offset uint64) []datasource.Record {
	if offset >= uint64(len(records)) {
		return []datasource.Record{}
	}

	records = records[offset:]
	if limit > 0 && limit < uint64(len(records)) {
		records = records[:limit]
	}

	return records
}
