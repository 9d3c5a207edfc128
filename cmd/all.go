package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eth-fabric/portsync/internal/logging"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Sync the fabric and rbuilder configs",
	Long: `Resolves all four enclave ports and patches both config files:
the fabric sidecar port keys and the port inside the rbuilder
cl_node_url.

Each file gets a .bak copy of its previous content before the write.`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	addSyncFlags(allCmd)
	allCmd.Flags().StringVar(&fabricConfig, "fabric-config", "", "Path to the fabric sidecar config")
	allCmd.Flags().StringVar(&rbuilderConfig, "rbuilder-config", "", "Path to the rbuilder config")
	_ = allCmd.MarkFlagRequired("fabric-config")
	_ = allCmd.MarkFlagRequired("rbuilder-config")
	rootCmd.AddCommand(allCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	s, err := newSyncer()
	if err != nil {
		return err
	}

	logging.Debug("starting full sync", "enclave", syncEnclave)

	result, err := s.Full(cmd.Context(), syncOptions())
	if err != nil {
		return err
	}

	displaySyncResult(result)
	return nil
}
