package cli

import (
	"github.com/spf13/cobra"

	"github.com/survtab/survtab/label"
)

var (
	encodeTimeCol  string
	encodeEventCol string
	encodeLabelCol string
	encodeExclude  []string
	encodeOutput   string
)

// encodeCmd applies the signed-label transform to a CSV dataset.
var encodeCmd = &cobra.Command{
	Use:   "encode [FILE]",
	Short: "Encode time and event columns into one signed label column",
	Long: `Replace the time and event columns of a survival dataset with a single
signed label column: label = time for observed events, label = -time for
right-censored rows. Covariate columns keep their original order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := readTable(cmd, argOrStdin(args))
		if err != nil {
			return err
		}

		out, err := label.Encode(tbl, encodeTimeCol, encodeEventCol, encodeLabelCol,
			label.WithExclude(encodeExclude...))
		if err != nil {
			return err
		}

		return writeTable(cmd, encodeOutput, out)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVar(&encodeTimeCol, "time", "t", "name of the time column")
	encodeCmd.Flags().StringVar(&encodeEventCol, "event", "e", "name of the event column")
	encodeCmd.Flags().StringVar(&encodeLabelCol, "label", "Y", "name of the new label column")
	encodeCmd.Flags().StringSliceVar(&encodeExclude, "exclude", nil, "covariate columns to drop from the output")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "output file (default: stdout)")
}
