package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	rjagro "github.com/Swyamk/rjagro-sub000"
	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/datasource"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

type listOptions struct {
	sort    string
	desc    bool
	filters []string
	search  string
	limit   uint64
	offset  uint64
	columns []string
}

func listCommand(settings *Settings) *cobra.Command {
	options := listOptions{}

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List a table, sorted and filtered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(settings)
			if err != nil {
				return err
			}

			return runList(cmd.Context(), cmd.OutOrStdout(), env, args[0], options)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&options.sort, "sort", "", "column to sort by, the table's default order if empty")
	flags.BoolVar(&options.desc, "desc", false, "sort descending")
	flags.StringArrayVar(&options.filters, "filter", nil, "filter as column:MODE:value, filters on one column are or'ed")
	flags.StringVar(&options.search, "search", "", "case insensitive search over all shown columns")
	flags.Uint64Var(&options.limit, "limit", 0, "maximum number of rows, 0 for all")
	flags.Uint64Var(&options.offset, "offset", 0, "number of rows to skip")
	flags.StringSliceVar(&options.columns, "columns", nil, "columns to show, all if empty")

	return cmd
}

func runList(ctx context.Context, out io.Writer, env *environment, resource string, options listOptions) error {
	schema, err := env.resolvedSchema(resource)
	if err != nil {
		return fmt.Errorf("%w: %s", err, resource)
	}

	request, active, err := buildRequest(schema, options, env.settings.Locale)
	if err != nil {
		return err
	}

	if err := env.connector.ValidateRequest(request); err != nil {
		return err
	}

	result, total, filtered, err := env.connector.FetchData(ctx, request)
	if err != nil {
		return err
	}

	if err := renderResult(out, env, request.Columns, *result, active); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "\n%d of %d rows (%d total)\n", len(*result), filtered, total)
	return err
}

// buildRequest turns the list options into a request. The returned config
// is the order the rows come back in, which the header marks.
func buildRequest(schema config.ResolvedTableSchema, options listOptions, locale string) (datasource.Request, sorting.Config, error) {
	request := datasource.Request{
		Schema:       schema,
		GlobalSearch: options.search,
		Limit:        options.limit,
		Offset:       options.offset,
		Locale:       locale,
	}

	if len(options.columns) == 0 {
		request.Columns = schema.Columns()
	}
	for _, key := range options.columns {
		column, err := schema.Column(strings.TrimSpace(key))
		if err != nil {
			return datasource.Request{}, sorting.Config{}, fmt.Errorf("unknown column %s", key)
		}
		request.Columns = append(request.Columns, column)
	}

	filters, err := parseFilters(options.filters)
	if err != nil {
		return datasource.Request{}, sorting.Config{}, err
	}
	request.Filters = filters

	active := defaultSort(schema)
	if options.sort != "" {
		direction := rjagro.OrderAsc
		if options.desc {
			direction = rjagro.OrderDesc
		}

		request.Orders = []datasource.Order{datasource.NewOrder(options.sort, direction, nil)}
		active = sorting.Config{Key: options.sort, Direction: direction}
	}

	return request, active, nil
}

func defaultSort(schema config.ResolvedTableSchema) sorting.Config {
	spec := schema.OriginalSchema().DefaultSort
	return sorting.Config{Key: spec.Key, Direction: rjagro.Order(spec.Direction)}.Normalize()
}

// parseFilters reads "column:MODE:value" expressions. Filters on the same
// column form one group, in order of their first appearance.
func parseFilters(expressions []string) ([]datasource.FilterGroup, error) {
	var paths []string
	byPath := make(map[string][]datasource.Filter)

	for _, expression := range expressions {
		parts := strings.SplitN(expression, ":", 3)
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("invalid filter %q, expected column:MODE:value", expression)
		}

		mode, ok := rjagro.ParseFilterMode(strings.ToUpper(parts[1]))
		if !ok {
			return nil, fmt.Errorf("invalid filter %q, unknown mode %s", expression, parts[1])
		}

		path := parts[0]
		if _, seen := byPath[path]; !seen {
			paths = append(paths, path)
		}
		byPath[path] = append(byPath[path], datasource.NewFilter(mode, parts[2]))
	}

	groups := make([]datasource.FilterGroup, 0, len(paths))
	for _, path := range paths {
		groups = append(groups, datasource.NewFilterGroup(path, byPath[path]))
	}

	return groups, nil
}
