package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors shared by all human-readable output.
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printField writes one aligned "label: value" line.
func printField(label, format string, args ...any) {
	fmt.Printf("%s %s\n", labelStyle.Render(label+":"), fmt.Sprintf(format, args...))
}

// scoreVerdict renders a coarse human judgement of an anomaly score.
func scoreVerdict(score float64) string {
	switch {
	case score < 0.3:
		return dimStyle.Render("within normal variation")
	case score < 0.6:
		return "noticeable change"
	default:
		return alertStyle.Render("significant change")
	}
}
