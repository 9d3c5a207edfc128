package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eth-fabric/portsync/internal/app"
	"github.com/eth-fabric/portsync/internal/config"
	"github.com/eth-fabric/portsync/internal/kurtosis"
	"github.com/eth-fabric/portsync/internal/syncer"
)

// Flag values shared by the sync commands.
var (
	syncEnclave    string
	portMapPath    string
	dryRun         bool
	fabricConfig   string
	rbuilderConfig string
)

// addEnclaveFlags registers the flags every kurtosis-querying command takes.
func addEnclaveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&syncEnclave, "enclave", "e", config.DefaultEnclave, "Kurtosis enclave to query")
	cmd.Flags().StringVar(&portMapPath, "port-map", "", "TOML file overriding the service/port-id bindings")
}

// addSyncFlags registers the flags the file-patching commands take.
func addSyncFlags(cmd *cobra.Command) {
	addEnclaveFlags(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and patch in memory but write nothing")
}

// kurtosisClient returns the CLI wrapper, honoring --kurtosis.
func kurtosisClient() *kurtosis.Client {
	if kurtosisBin != "" {
		return kurtosis.NewClient(kurtosisBin, app.Default.Executor)
	}
	return app.Default.Kurtosis()
}

// loadPortMap returns the active port map. Without --port-map the
// built-in bindings are used.
func loadPortMap() (*config.PortMap, error) {
	if portMapPath == "" {
		return config.DefaultPortMap(), nil
	}
	return config.LoadPortMap(app.Default.FS, portMapPath)
}

// newSyncer builds the sync pipeline from the app defaults and flags.
func newSyncer() (*syncer.Syncer, error) {
	pm, err := loadPortMap()
	if err != nil {
		return nil, err
	}
	s := syncer.New(kurtosisClient(), app.Default.FS, pm, syncer.WithAudit(app.Default.Audit()))
	return s, nil
}

// syncOptions collects the per-run options from the shared flags.
func syncOptions() syncer.Options {
	return syncer.Options{
		Enclave:        syncEnclave,
		FabricConfig:   fabricConfig,
		RbuilderConfig: rbuilderConfig,
		DryRun:         dryRun,
	}
}
