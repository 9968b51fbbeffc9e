package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fortuna/lahman/internal/schema"
	"github.com/fortuna/lahman/internal/schema/dialect"
)

// resolveDialect returns the dialect named by flag, or the one matching the
// configured driver when flag is empty.
func resolveDialect(cmd *cobra.Command, flag string) (dialect.Dialect, error) {
	if flag == "" {
		flag = configFrom(cmd.Context()).Database.Driver
	}
	return dialect.ByName(flag)
}

func newDDLCmd() *cobra.Command {
	var (
		dialectName string
		drop        bool
	)

	cmd := &cobra.Command{
		Use:   "ddl",
		Short: "Print the schema as SQL",
		Long: `Print the CREATE TABLE statements for every table, parents first, in the
chosen dialect. Nothing is executed.`,
		Example: `  lahman ddl --dialect mysql > lahman.sql
  lahman ddl --dialect postgres --drop`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := resolveDialect(cmd, dialectName)
			if err != nil {
				return err
			}
			cat := schema.Default()
			if err := cat.Validate(); err != nil {
				return fmt.Errorf("invalid catalog: %w", err)
			}

			render := dialect.Render
			if drop {
				render = dialect.RenderDrop
			}
			stmts, err := render(cat, d)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), dialect.Script(stmts))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "", fmt.Sprintf("SQL dialect (%s); defaults to the configured driver", strings.Join(dialect.Names(), "|")))
	cmd.Flags().BoolVar(&drop, "drop", false, "print DROP TABLE statements instead, children first")
	_ = cmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
