package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eth-fabric/portsync/internal/logging"
)

var fabricCmd = &cobra.Command{
	Use:   "fabric",
	Short: "Sync only the fabric sidecar config",
	Long: `Resolves the beacon, execution, and relay ports and patches the
fabric sidecar config. The rbuilder config is left alone and the
builder beacon port is not resolved.`,
	Args: cobra.NoArgs,
	RunE: runFabric,
}

func init() {
	addSyncFlags(fabricCmd)
	fabricCmd.Flags().StringVar(&fabricConfig, "fabric-config", "", "Path to the fabric sidecar config")
	_ = fabricCmd.MarkFlagRequired("fabric-config")
	rootCmd.AddCommand(fabricCmd)
}

func runFabric(cmd *cobra.Command, args []string) error {
	s, err := newSyncer()
	if err != nil {
		return err
	}

	logging.Debug("starting fabric sync", "enclave", syncEnclave)

	result, err := s.Fabric(cmd.Context(), syncOptions())
	if err != nil {
		return err
	}

	displaySyncResult(result)
	return nil
}
