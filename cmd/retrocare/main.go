// Command retrocare is the voice anomaly detection CLI.
//
// Usage:
//
//	retrocare [flags] <command> [args]
//
// Commands:
//
//	compare   - Score a current embedding against a baseline
//	baseline  - Average enrollment embeddings into a baseline
//	embed     - Extract an embedding from a raw PCM16 recording
//	snr       - Estimate the SNR of a raw PCM16 recording
//
// Configuration:
//
//	The CLI reads ~/.retrocare/config.yaml, overridable per run with
//	--config. RETROCARE_* environment variables (optionally from a .env
//	file) take precedence over the config file.
package main

import (
	"fmt"
	"os"

	"github.com/RavjeetChahal/RetroCare/cmd/retrocare/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
