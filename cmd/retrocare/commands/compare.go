package commands

import (
	"github.com/spf13/cobra"

	"github.com/RavjeetChahal/RetroCare/pkg/monitor"
	"github.com/RavjeetChahal/RetroCare/pkg/vecfile"
)

var (
	compareSNR  float64
	compareHour int
)

var compareCmd = &cobra.Command{
	Use:   "compare <baseline-file> <current-file>",
	Short: "Score a current embedding against a baseline",
	Long: `Compare two embedding files and print the anomaly score.

The score is cosine distance adjusted for recording quality (--snr) and,
optionally, time of day (--hour). Scores near 0 mean the voice matches the
baseline; scores near 1 mean it has changed substantially.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		baseline, err := vecfile.Read(args[0])
		if err != nil {
			return err
		}
		current, err := vecfile.Read(args[1])
		if err != nil {
			return err
		}

		req := monitor.CompareRequest{
			Baseline: baseline,
			Current:  current,
			SNR:      compareSNR,
		}
		if cmd.Flags().Changed("hour") {
			hour := compareHour
			req.Hour = &hour
		}

		svc := monitor.New(nil) // comparison needs no model
		res, err := svc.Compare(req)
		if err != nil {
			return err
		}

		if outputJSON {
			return printJSON(res)
		}
		printField("score", "%.4f  (%s)", res.Score, scoreVerdict(res.Score))
		printField("similarity", "%.4f", res.RawSimilarity)
		printField("snr", "%.1f dB", res.SNR)
		return nil
	},
}

func init() {
	compareCmd.Flags().Float64Var(&compareSNR, "snr", 15.0, "SNR of the current recording in dB (0-30)")
	compareCmd.Flags().IntVar(&compareHour, "hour", 0, "local hour of day (0-23) for time compensation")
}
