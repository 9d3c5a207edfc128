package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eth-fabric/portsync/internal/app"
	"github.com/eth-fabric/portsync/internal/audit"
	"github.com/eth-fabric/portsync/internal/config"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history [enclave]",
	Short: "Show recorded sync runs for an enclave",
	Long: `Shows the sync runs recorded for an enclave, oldest first. Without
an argument the default enclave's history is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output records as JSON lines")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	enclave := config.DefaultEnclave
	if len(args) > 0 {
		enclave = args[0]
	}

	records, err := app.Default.Audit().Records(enclave)
	if err != nil {
		return fmt.Errorf("failed to read run history: %w", err)
	}

	if len(records) == 0 {
		logInfo("No recorded runs for enclave %s", enclave)
		return nil
	}

	for _, r := range records {
		if historyJSON {
			data, err := json.Marshal(r)
			if err != nil {
				return fmt.Errorf("failed to marshal record: %w", err)
			}
			fmt.Println(string(data))
			continue
		}
		fmt.Println(formatRecord(r))
	}

	return nil
}

// formatRecord renders one run record as a single line.
func formatRecord(r audit.Record) string {
	ts := r.Timestamp.Local().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] %-7s %s", ts, r.Command, r.Outcome)
	if r.DryRun {
		line += " (dry run)"
	}
	if r.Outcome == audit.OutcomeError && r.Error != "" {
		return line + "\n    " + r.Error
	}
	if ports := formatPorts(r.Ports); ports != "" {
		line += "  " + ports
	}
	return line
}

// formatPorts renders resolved ports in binding order.
func formatPorts(ports map[string]int) string {
	var parts []string
	for _, name := range config.Bindings() {
		if port, ok := ports[name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", name, port))
		}
	}
	return strings.Join(parts, " ")
}
