package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eth-fabric/portsync/internal/logging"
	"github.com/eth-fabric/portsync/internal/syncer"
	"github.com/eth-fabric/portsync/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactive enclave picker",
	Long: `Opens an interactive TUI for choosing the enclave to sync.

Use arrow keys or j/k to navigate, / to filter, Enter to select.

Actions:
  Enter  - Sync the selected enclave
  p      - Resolve and print the selected enclave's ports
  q/Esc  - Quit

When --fabric-config is not given, a short wizard collects the config
paths after the enclave is chosen. Leaving the rbuilder path empty in
the wizard syncs the fabric config only.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().StringVar(&portMapPath, "port-map", "", "TOML file overriding the service/port-id bindings")
	pickCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and patch in memory but write nothing")
	pickCmd.Flags().StringVar(&fabricConfig, "fabric-config", "", "Path to the fabric sidecar config")
	pickCmd.Flags().StringVar(&rbuilderConfig, "rbuilder-config", "", "Path to the rbuilder config")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	logging.Debug("picker mode started")

	enclaves, err := kurtosisClient().Enclaves(cmd.Context())
	if err != nil {
		return err
	}

	if len(enclaves) == 0 {
		logInfo("No enclaves found. Start one with: kurtosis run <package>")
		return nil
	}

	result, err := tui.RunPicker(enclaves, tui.PickerOptions{
		Targets: tui.Targets{
			FabricConfig:   fabricConfig,
			RbuilderConfig: rbuilderConfig,
		},
	})
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionSync:
		if result.Enclave != nil && result.Targets != nil {
			return syncPicked(cmd, result)
		}

	case tui.ActionPorts:
		if result.Enclave != nil {
			return printPorts(cmd.Context(), result.Enclave.Name, nil)
		}

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}

// syncPicked runs a sync against the enclave and targets the picker
// returned. An empty rbuilder path means fabric only.
func syncPicked(cmd *cobra.Command, picked tui.PickerResult) error {
	s, err := newSyncer()
	if err != nil {
		return err
	}

	opts := syncer.Options{
		Enclave:        picked.Enclave.Name,
		FabricConfig:   picked.Targets.FabricConfig,
		RbuilderConfig: picked.Targets.RbuilderConfig,
		DryRun:         dryRun,
	}

	logging.Debug("syncing picked enclave", "enclave", opts.Enclave, "fabric", opts.FabricConfig, "rbuilder", opts.RbuilderConfig)

	var result *syncer.Result
	if opts.RbuilderConfig != "" {
		result, err = s.Full(cmd.Context(), opts)
	} else {
		result, err = s.Fabric(cmd.Context(), opts)
	}
	if err != nil {
		return err
	}

	displaySyncResult(result)
	return nil
}
