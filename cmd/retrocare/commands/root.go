package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile    string
	outputJSON bool
	verbose    bool

	// Global configuration, resolved in initConfig.
	globalConfig *Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "retrocare",
	Short: "Voice anomaly detection for passive wellness monitoring",
	Long: `retrocare - voice anomaly scoring toolkit.

Compares speaker embeddings against a baseline and produces a bounded
anomaly score, adjusted for recording quality (SNR) and time of day.
Embedding extraction runs on a remote inference endpoint; scoring is
fully local.

Examples:
  # Average three enrollment embeddings into a baseline
  retrocare baseline day1.vec day2.vec day3.vec -o baseline.vec

  # Score a new recording's embedding against the baseline
  retrocare compare baseline.vec today.vec --snr 18.5 --hour 8

  # Estimate the SNR of a raw PCM16 mono 16kHz recording
  retrocare snr recording.pcm

  # Extract an embedding via the configured inference endpoint
  retrocare embed recording.pcm -o today.vec
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.retrocare/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON (for piping)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(baselineCmd)
	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(snrCmd)
}

func initConfig() {
	// Configure slog based on verbose flag
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = DefaultCLIConfig()
	}
	globalConfig = cfg
}
