package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fortuna/lahman/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create every table in the configured database",
		Long: `Apply pending schema migrations. Tables are created parents first so every
foreign key target exists before it is referenced. Running migrate on an up
to date database does nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(cmd.Context()); err != nil {
				return err
			}
			v, err := db.Version(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", v)
			return nil
		},
	}
}

func newRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Drop every table created by migrate",
		Long:  `Revert the most recent schema migration, dropping its tables children first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Rollback(cmd.Context()); err != nil {
				return err
			}
			v, err := db.Version(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", v)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.HealthCheck(cmd.Context()); err != nil {
				return fmt.Errorf("health check: %w", err)
			}
			statuses, err := db.Status(cmd.Context())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Version", "State", "Applied At"})
			for _, s := range statuses {
				state, applied := "pending", ""
				if s.Applied {
					state = "applied"
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				t.AppendRow(table.Row{s.Version, state, applied})
			}
			t.Render()

			logging.Debug().Str("dialect", db.Dialect().Name()).Int("migrations", len(statuses)).Msg("status")
			return nil
		},
	}
}
