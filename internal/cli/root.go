// Package cli provides the lahman command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fortuna/lahman/internal/config"
	"github.com/fortuna/lahman/internal/logging"
	"github.com/fortuna/lahman/internal/store"
)

// Version information (set at build time).
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type configKey struct{}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "lahman",
		Short: "Historical baseball statistics schema",
		Long: `lahman manages the relational schema for historical baseball statistics:
people, teams, leagues, season and postseason performance, awards and more.

It renders the schema for MySQL, PostgreSQL or SQLite and applies it as a
versioned migration.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := logging.Configure(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr()); err != nil {
				return err
			}
			if cfg.File != "" {
				logging.Debug().Str("file", cfg.File).Msg("loaded config")
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lahman.yaml)")
	config.BindFlags(rootCmd.PersistentFlags())

	_ = rootCmd.RegisterFlagCompletionFunc("driver", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Drivers(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newRollbackCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDDLCmd())
	rootCmd.AddCommand(newTablesCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// configFrom returns the configuration loaded for cmd, or the defaults.
func configFrom(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return config.Default()
}

func openDatabase(cmd *cobra.Command) (*store.Database, error) {
	cfg := configFrom(cmd.Context())
	db, err := store.NewDatabase(cmd.Context(), cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s database: %w", cfg.Database.Driver, err)
	}
	return db, nil
}
