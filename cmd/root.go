package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eth-fabric/portsync/internal/config"
	"github.com/eth-fabric/portsync/internal/logging"
	"github.com/eth-fabric/portsync/internal/syncer"
)

var (
	verbose     bool
	jsonOutput  bool
	kurtosisBin string
)

var rootCmd = &cobra.Command{
	Use:   "portsync",
	Short: "Sync Kurtosis enclave ports into preconf config files",
	Long: `portsync resolves the host ports Kurtosis assigned to the enclave
services and patches them into the local config files.

Each sync run:
  - Resolves ports with 'kurtosis port print'
  - Rewrites the fabric sidecar port keys in place
  - Rewrites the port inside the rbuilder cl_node_url
  - Keeps a .bak copy of every file it touches`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&kurtosisBin, "kurtosis", "", "Kurtosis binary to invoke (default \"kurtosis\")")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	_          = logging.UserError // reserved for future use
)

// renderSyncSummary builds the user-facing summary of a sync run.
func renderSyncSummary(r *syncer.Result) string {
	var b strings.Builder

	if r.DryRun {
		b.WriteString("Resolved ports (dry run, nothing written):\n")
	} else {
		b.WriteString("Updated configs using Kurtosis port print:\n")
	}
	fmt.Fprintf(&b, "  beacon_port            = %d\n", r.Ports[config.BindingBeacon])
	fmt.Fprintf(&b, "  execution_client_port  = %d\n", r.Ports[config.BindingExecution])
	fmt.Fprintf(&b, "  downstream_relay_port  = %d\n", r.Ports[config.BindingRelay])
	if port, ok := r.Ports[config.BindingBuilderBeacon]; ok {
		fmt.Fprintf(&b, "  cl_node_url port       = %d\n", port)
	}

	if len(r.Backups) > 0 {
		b.WriteString("\nBackups written as:\n")
		for _, backup := range r.Backups {
			fmt.Fprintf(&b, "  %s\n", backup)
		}
	}

	return b.String()
}

// displaySyncResult shows the outcome of a sync run to the user.
func displaySyncResult(r *syncer.Result) {
	if r == nil {
		return
	}
	fmt.Print(renderSyncSummary(r))
}
