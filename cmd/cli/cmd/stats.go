package cmd

import (
	"github.com/spf13/cobra"

	"beer-recipe/core/output"
)

// statsCmd reports hop rates
var statsCmd = &cobra.Command{
	Use:   "stats [path]",
	Short: "Report the largest hop addition per liter",
	Long: `Report each recipe's largest single hop addition per liter of batch,
and the largest across all recipes. Dry hops are not counted.

Examples:
  brewcalc stats ./recipes
  brewcalc stats --format json ./recipes`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args, output.ViewHopRates)
	},
}

func init() {
	addReportFlags(statsCmd)
}
