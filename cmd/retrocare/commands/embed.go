package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RavjeetChahal/RetroCare/pkg/monitor"
	"github.com/RavjeetChahal/RetroCare/pkg/snr"
	"github.com/RavjeetChahal/RetroCare/pkg/vecfile"
)

var (
	embedOut        string
	embedSampleRate int
)

var embedCmd = &cobra.Command{
	Use:   "embed <pcm16-file>",
	Short: "Extract an embedding from a raw PCM16 recording",
	Long: `Extract a speaker embedding through the configured inference endpoint.

The input must be PCM16 signed little-endian mono audio (no header). The
embedding and the recording's estimated SNR are printed; with -o the
embedding is also written to a file for later comparison.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pcm, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		samples := snr.SamplesFromPCM16(pcm)

		extractor, err := globalConfig.NewExtractor()
		if err != nil {
			return err
		}
		svc := monitor.New(extractor)
		defer svc.Close()

		res, err := svc.Embed(cmd.Context(), samples, embedSampleRate)
		if err != nil {
			return err
		}

		if embedOut != "" {
			if err := vecfile.Write(embedOut, res.Embedding); err != nil {
				return err
			}
		}

		if outputJSON {
			return printJSON(res)
		}
		printField("embedding", "%d dims", len(res.Embedding))
		printField("snr", "%.2f dB", res.SNR)
		if embedOut != "" {
			printField("written", "%s", embedOut)
		}
		return nil
	},
}

func init() {
	embedCmd.Flags().StringVarP(&embedOut, "output", "o", "", "write the embedding to this file")
	embedCmd.Flags().IntVar(&embedSampleRate, "rate", 16000, "sample rate of the recording in Hz")
}
