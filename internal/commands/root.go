package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netproof-dev/netproof/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "netproof",
		Short:   "Account statement netting reconciler",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newReconcileCommand())
	rootCmd.AddCommand(newKeysCommand())

	return rootCmd
}
