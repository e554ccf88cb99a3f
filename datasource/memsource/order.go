package memsource

import (
	"fmt"

	"gopkg.in/birkirb/loggers.v1/log"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/datasource"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

// columnValue turns a record into the sort value of one column.
type columnValue func(record datasource.Record) (sorting.Value, error)

// orderRecords applies the requested orders as one stable multi key sort.
// Without any requested order the schema default applies; orders without a
// direction request the natural order.
func (th Connector) orderRecords(records []datasource.Record, orders []datasource.Order,
	schema config.ResolvedTableSchema, locale string) ([]datasource.Record, error) {
	if len(orders) == 0 {
		defaultSort := schema.OriginalSchema().DefaultSort
		cfg := sorting.Config{Key: defaultSort.Key, Direction: rjagro.Order(defaultSort.Direction)}.Normalize()
		if cfg.IsSorted() {
			orders = []datasource.Order{datasource.NewOrder(cfg.Key, cfg.Direction, nil)}
		}
	}

	configs := make([]sorting.Config, 0, len(orders))
	values := make(map[string]columnValue, len(orders))
	for _, columnOrder := range orders {
		cfg := sorting.Config{Key: columnOrder.Path(), Direction: columnOrder.Direction()}.Normalize()
		if !cfg.IsSorted() {
			continue
		}

		value, err := th.columnValue(columnOrder, schema, locale)
		if err != nil {
			return nil, err
		}

		configs = append(configs, cfg)
		values[cfg.Key] = value
	}

	if len(configs) == 0 {
		return records, nil
	}

	var extractErr error
	sorted := sorting.SortDataBy(records, configs, func(record datasource.Record, key string) sorting.Value {
		value, err := values[key](record)
		if err != nil && extractErr == nil {
			extractErr = err
		}

		return value
	})

	if extractErr != nil {
		return nil, extractErr
	}

	return sorted, nil
}

func (th Connector) columnValue(columnOrder datasource.Order, schema config.ResolvedTableSchema, locale string) (columnValue, error) {
	column, err := schema.Column(columnOrder.Path())
	if err != nil {
		column = config.TableSchemaColumn{
			Path: columnOrder.Path(),
		}
		log.WithFields(
			"path", columnOrder.Path(),
			"schema", schema.OriginalSchema().Entity,
		).Warn("Ordering on column which is unknown to schema - using direct order")
	}

	if sortKeys := columnOrder.SortKeys(); len(sortKeys) > 0 {
		ranks := make(map[string]int, len(sortKeys))
		for i, key := range sortKeys {
			if _, seen := ranks[fmt.Sprint(key)]; !seen {
				ranks[fmt.Sprint(key)] = i
			}
		}

		return func(record datasource.Record) (sorting.Value, error) {
			value := resolveValue(record, column)
			if value == nil {
				return nil, nil
			}

			rank, known := ranks[fmt.Sprint(value)]
			if !known {
				return nil, nil
			}
			return rank, nil
		}, nil
	}

	sorter, err := th.sorters.ForColumn(column)
	if err != nil {
		return nil, err
	}

	return func(record datasource.Record) (sorting.Value, error) {
		return sorter.SortValue(resolveValue(record, column), column, locale)
	}, nil
}
