package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RavjeetChahal/RetroCare/pkg/monitor"
	"github.com/RavjeetChahal/RetroCare/pkg/vecfile"
)

var baselineOut string

var baselineCmd = &cobra.Command{
	Use:   "baseline <embedding-file>... -o <output-file>",
	Short: "Average enrollment embeddings into a baseline",
	Long: `Average one or more embedding files into a unit-normalized baseline.

Several enrollment recordings give a more stable baseline than a single
one; five or more recordings across different days work well.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		embeddings, err := vecfile.ReadAll(args)
		if err != nil {
			return err
		}

		svc := monitor.New(nil)
		baseline, err := svc.Baseline(embeddings)
		if err != nil {
			return err
		}

		if err := vecfile.Write(baselineOut, baseline); err != nil {
			return err
		}

		if outputJSON {
			return printJSON(map[string]any{
				"output":    baselineOut,
				"inputs":    len(embeddings),
				"dimension": len(baseline),
			})
		}
		printField("baseline", "%s", baselineOut)
		printField("inputs", "%d embeddings, %d dims", len(embeddings), len(baseline))
		return nil
	},
}

func init() {
	baselineCmd.Flags().StringVarP(&baselineOut, "output", "o", "", "output baseline file (required)")
	if err := baselineCmd.MarkFlagRequired("output"); err != nil {
		panic(fmt.Sprintf("baseline command: %v", err))
	}
}
