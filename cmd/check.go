package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eth-fabric/portsync/internal/app"
	"github.com/eth-fabric/portsync/internal/errors"
	"github.com/eth-fabric/portsync/internal/syncer"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the config files are ready for a sync",
	Long: `Checks that the config files exist, parse as TOML, and contain the
keys a sync would patch. Runs offline: Kurtosis is not queried and no
file is modified.

The rbuilder config is only checked when --rbuilder-config is given.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&fabricConfig, "fabric-config", "", "Path to the fabric sidecar config")
	checkCmd.Flags().StringVar(&rbuilderConfig, "rbuilder-config", "", "Path to the rbuilder config")
	_ = checkCmd.MarkFlagRequired("fabric-config")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	fsys := app.Default.FS

	ok := displayChecks(fabricConfig, syncer.CheckFabric(fsys, fabricConfig))
	if rbuilderConfig != "" {
		if !displayChecks(rbuilderConfig, syncer.CheckRbuilder(fsys, rbuilderConfig)) {
			ok = false
		}
	}

	if !ok {
		return errors.ValidationError("one or more checks failed")
	}

	logSuccess("All checks passed")
	return nil
}

// displayChecks prints one file's check results and reports whether
// they all passed.
func displayChecks(path string, checks []syncer.Check) bool {
	fmt.Printf("%s\n", path)
	for _, c := range checks {
		mark := "✓"
		if !c.OK {
			mark = "✗"
		}
		if c.Detail != "" {
			fmt.Printf("  %s %s (%s)\n", mark, c.Name, c.Detail)
		} else {
			fmt.Printf("  %s %s\n", mark, c.Name)
		}
	}
	fmt.Println()
	return syncer.AllOK(checks)
}
