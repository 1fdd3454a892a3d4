package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nairaledger/nairaledger/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "nairaledger",
		Short:   "Tax liability and trend reporting for small businesses",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newDashboardCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}
