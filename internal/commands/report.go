package commands

import (
	"github.com/spf13/cobra"

	"github.com/nairaledger/nairaledger/internal/output"
)

func newReportCommand() *cobra.Command {
	flags := &ledgerFlags{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the per-bucket tax breakdown for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := flags.buildReporter()
			if err != nil {
				return err
			}
			rng, err := flags.parseRange()
			if err != nil {
				return err
			}
			summary, err := builder.Reports(cmd.Context(), ledgerUser, rng, flags.expenseFilter())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(output.ConsoleFormatter{}.FormatReports(summary))
			return err
		},
	}

	cmd.Flags().StringVar(&flags.ledgerPath, "ledger", "ledger.yaml", "path to the ledger file")
	cmd.Flags().StringVar(&flags.from, "from", "", "period start (YYYY-MM-DD, default 30 days ago)")
	cmd.Flags().StringVar(&flags.to, "to", "", "period end (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&flags.category, "category", "", "only include expenses in this category")
	cmd.Flags().StringVar(&flags.tag, "tag", "", "only include expenses with this tag")

	return cmd
}
