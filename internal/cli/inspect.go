package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fortuna/lahman/internal/schema"
	"github.com/fortuna/lahman/internal/schema/dialect"
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables [table]",
		Short: "List tables, or the columns of one table",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, t := range schema.Default().Tables() {
				names = append(names, t.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := schema.Default()
			if len(args) == 1 {
				t := cat.Table(args[0])
				if t == nil {
					return fmt.Errorf("unknown table %q", args[0])
				}
				renderColumns(cmd, t)
				return nil
			}
			return renderTables(cmd, cat)
		},
	}
}

func renderTables(cmd *cobra.Command, cat *schema.Catalog) error {
	ordered, err := cat.Ordered()
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Table", "Columns", "Primary Key", "References"})
	for i, tbl := range ordered {
		refs := make([]string, 0, len(tbl.ForeignKeys))
		seen := make(map[string]bool)
		for _, fk := range tbl.ForeignKeys {
			if !seen[fk.RefTable] {
				seen[fk.RefTable] = true
				refs = append(refs, fk.RefTable)
			}
		}
		t.AppendRow(table.Row{
			i + 1,
			tbl.Name,
			len(tbl.Columns),
			strings.Join(tbl.PrimaryKey.Columns, ", "),
			strings.Join(refs, ", "),
		})
	}
	t.Render()
	return nil
}

func renderColumns(cmd *cobra.Command, tbl *schema.Table) {
	key := make(map[string]bool)
	for _, c := range tbl.PrimaryKey.Columns {
		key[c] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.SetTitle(tbl.Name)
	t.AppendHeader(table.Row{"Column", "Type", "Null", "Key", "Default"})
	for _, c := range tbl.Columns {
		typ := c.Type.String()
		if c.Type == schema.Varchar && c.Length > 0 {
			typ = fmt.Sprintf("VARCHAR(%d)", c.Length)
		}
		null := "YES"
		if !c.Nullable {
			null = "NO"
		}
		var k string
		switch {
		case key[c.Name]:
			k = "PRI"
		case c.AutoIncrement:
			k = "AUTO"
		}
		var def string
		if c.Default != nil {
			def = fmt.Sprint(c.Default)
		}
		t.AppendRow(table.Row{c.Name, typ, null, k, def})
	}
	t.Render()
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the schema and report engine-specific rendering",
		Long: `Validate the schema catalog: every foreign key resolves, every key column
exists and the tables can be created in dependency order.

Also reports the index and constraint names shared between tables, with the
name each engine creates, and the foreign keys that target non-key columns,
which only MySQL enforces.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := schema.Default()
			if err := cat.Validate(); err != nil {
				return fmt.Errorf("invalid catalog: %w", err)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "catalog ok: %d tables\n", cat.Len())

			dialects := make([]dialect.Dialect, 0, len(dialect.Names()))
			for _, name := range dialect.Names() {
				d, err := dialect.ByName(name)
				if err != nil {
					return err
				}
				dialects = append(dialects, d)
			}

			shared := cat.SharedNames()
			if len(shared) > 0 {
				names := make([]string, 0, len(shared))
				for name := range shared {
					names = append(names, name)
				}
				sort.Strings(names)

				header := table.Row{"Name", "Table"}
				for _, d := range dialects {
					header = append(header, d.Name())
				}
				t := table.NewWriter()
				t.SetOutputMirror(out)
				t.SetStyle(table.StyleLight)
				t.SetTitle("Shared names")
				t.AppendHeader(header)
				for _, name := range names {
					for _, tbl := range shared[name] {
						row := table.Row{name, tbl}
						for _, d := range dialects {
							row = append(row, dialect.NewNamer(cat, d).Physical(tbl, name))
						}
						t.AppendRow(row)
					}
				}
				t.Render()
			}

			refs := cat.NonUniqueReferences()
			if len(refs) > 0 {
				header := table.Row{"Reference"}
				for _, d := range dialects {
					header = append(header, d.Name())
				}
				t := table.NewWriter()
				t.SetOutputMirror(out)
				t.SetStyle(table.StyleLight)
				t.SetTitle("Non-unique references")
				t.AppendHeader(header)
				for _, r := range refs {
					row := table.Row{r.String()}
					for _, d := range dialects {
						state := "skipped"
						if d.NonUniqueForeignKeys() {
							state = "enforced"
						}
						row = append(row, state)
					}
					t.AppendRow(row)
				}
				t.Render()
			}
			return nil
		},
	}
}
