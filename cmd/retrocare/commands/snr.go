package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RavjeetChahal/RetroCare/pkg/snr"
)

var snrSampleRate int

var snrCmd = &cobra.Command{
	Use:   "snr <pcm16-file>",
	Short: "Estimate the SNR of a raw PCM16 recording",
	Long: `Estimate the signal-to-noise ratio of a raw audio file.

The file must contain PCM16 signed little-endian mono samples (no header).
The result is a heuristic quality estimate in [0, 30] dB used to discount
anomaly scores from noisy recordings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pcm, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		samples := snr.SamplesFromPCM16(pcm)

		est := snr.New(snr.DefaultConfig())
		db := est.Estimate(samples, snrSampleRate)

		if outputJSON {
			return printJSON(map[string]any{
				"snr":         db,
				"samples":     len(samples),
				"sample_rate": snrSampleRate,
			})
		}
		printField("snr", "%.2f dB", db)
		printField("duration", "%.1fs (%d samples @ %d Hz)",
			float64(len(samples))/float64(snrSampleRate), len(samples), snrSampleRate)
		return nil
	},
}

func init() {
	snrCmd.Flags().IntVar(&snrSampleRate, "rate", 16000, "sample rate of the recording in Hz")
}
