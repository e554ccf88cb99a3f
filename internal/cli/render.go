package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	tabwriter "github.com/juju/ansiterm"

	"github.com/Swyamk/rjagro-sub000/config"
	"github.com/Swyamk/rjagro-sub000/datasource"
	"github.com/Swyamk/rjagro-sub000/sorting"
)

var sortIndicators = map[sorting.SortIcon]string{
	sorting.IconNeutral:    "",
	sorting.IconAscending:  " ▲",
	sorting.IconDescending: " ▼",
}

func newTabWriter(out io.Writer) *tabwriter.TabWriter {
	return tabwriter.NewTabWriter(out, 1, 1, 2, ' ', 0)
}

func renderResult(out io.Writer, env *environment, columns []config.TableSchemaColumn, rows datasource.Result, active sorting.Config) error {
	w := newTabWriter(out)

	headers := make([]string, len(columns))
	for i, column := range columns {
		headers[i] = strings.ToUpper(env.title(column)) + sortIndicators[sorting.Icon(active, column.Path)]
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	cells := make([]string, len(columns))
	for _, row := range rows {
		for i, column := range columns {
			cells[i] = formatCell(env, column, row[column.Path])
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}

	return w.Flush()
}

func formatCell(env *environment, column config.TableSchemaColumn, value interface{}) string {
	if value == nil {
		return "-"
	}

	if !config.IsPrimitiveType(column.Type) {
		return env.enumLabel(column, fmt.Sprint(value))
	}

	switch v := value.(type) {
	case float64:
		return formatNumber(v)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case string:
		if v == "" {
			return "-"
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

// formatNumber prints whole numbers without and fractions with two decimals.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return fmt.Sprintf("%.0f", n)
	}

	return fmt.Sprintf("%.2f", n)
}
