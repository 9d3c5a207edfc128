package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eth-fabric/portsync/internal/kurtosis"
)

var enclavesCmd = &cobra.Command{
	Use:   "enclaves",
	Short: "List Kurtosis enclaves",
	Long:  `Lists the enclaves known to the local Kurtosis engine.`,
	Args:  cobra.NoArgs,
	RunE:  runEnclaves,
}

func init() {
	rootCmd.AddCommand(enclavesCmd)
}

func runEnclaves(cmd *cobra.Command, args []string) error {
	enclaves, err := kurtosisClient().Enclaves(cmd.Context())
	if err != nil {
		return err
	}

	if len(enclaves) == 0 {
		logInfo("No enclaves found. Start one with: kurtosis run <package>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UUID\tNAME\tSTATUS\tCREATED")
	fmt.Fprintln(w, "----\t----\t------\t-------")
	for _, e := range enclaves {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.UUID, e.Name, formatEnclaveStatus(e), e.Created)
	}
	return w.Flush()
}

// formatEnclaveStatus renders an enclave status with a glyph.
func formatEnclaveStatus(e kurtosis.Enclave) string {
	switch {
	case e.Running():
		return "✓ running"
	case strings.EqualFold(e.Status, "STOPPED"):
		return "● stopped"
	case e.Status == "":
		return "unknown"
	default:
		return strings.ToLower(e.Status)
	}
}
