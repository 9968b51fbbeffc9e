package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fortuna/lahman/internal/store"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "lahman %s\n", Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", GitCommit)
			_, _ = fmt.Fprintf(out, "  schema: %d\n", store.SchemaVersion)
		},
	}
}
