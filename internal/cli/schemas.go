package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func schemasCommand(settings *Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "schemas [schema]",
		Short: "List the table schemas, or the columns of one schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(settings)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return renderColumns(cmd.OutOrStdout(), env, args[0])
			}

			return renderSchemas(cmd.OutOrStdout(), env)
		},
	}
}

func renderSchemas(out io.Writer, env *environment) error {
	w := newTabWriter(out)
	fmt.Fprintln(w, "SCHEMA\tRESOURCE\tCOLUMNS\tDEFAULT SORT")

	for _, name := range env.catalog.Schemas.Names() {
		schema, err := env.catalog.Schemas.ResolvedSchema(name)
		if err != nil {
			return err
		}

		resource := schema.OriginalSchema().Resource
		if resource == "" {
			resource = "-"
		}

		order := "-"
		if sort := defaultSort(schema); sort.IsSorted() {
			order = fmt.Sprintf("%s %s", sort.Key, sort.Direction)
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", name, resource, len(schema.Columns()), order)
	}

	return w.Flush()
}

func renderColumns(out io.Writer, env *environment, name string) error {
	schema, err := env.resolvedSchema(name)
	if err != nil {
		return fmt.Errorf("%w: %s", err, name)
	}

	w := newTabWriter(out)
	fmt.Fprintln(w, "PATH\tTITLE\tTYPE\tFILTER\tORDER\tSORTABLE")

	for _, column := range schema.Columns() {
		sortable := "no"
		if column.Sortable {
			sortable = "yes"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			column.Path, env.title(column), column.Type, orDash(column.Filter), orDash(column.Order), sortable)
	}

	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
