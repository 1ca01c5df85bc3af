package cli

import (
	"github.com/spf13/cobra"

	"github.com/survtab/survtab/stats"
)

var (
	statsTimeCol  string
	statsEventCol string
)

// statsCmd prints the fixed-format statistics block for a CSV dataset.
var statsCmd = &cobra.Command{
	Use:   "stats [FILE]",
	Short: "Print descriptive statistics of a survival dataset",
	Long: `Print row count, covariate count, event ratio and observed time range of a
survival dataset in the fixed report format.

Note: the "Events Ratio" line keeps the original tool's raw-fraction scaling
(30 events in 100 rows prints 0.30%).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := readTable(cmd, argOrStdin(args))
		if err != nil {
			return err
		}

		return stats.Report(cmd.OutOrStdout(), tbl, statsTimeCol, statsEventCol)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsTimeCol, "time", "t", "name of the time column")
	statsCmd.Flags().StringVar(&statsEventCol, "event", "e", "name of the event column")
}
