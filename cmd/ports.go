package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eth-fabric/portsync/internal/app"
	"github.com/eth-fabric/portsync/internal/config"
	"github.com/eth-fabric/portsync/internal/syncer"
)

var portsCmd = &cobra.Command{
	Use:   "ports [binding...]",
	Short: "Resolve enclave ports without touching any file",
	Long: `Resolves the host ports Kurtosis assigned to the enclave services
and prints them. No config file is read or written.

With no arguments all bindings are resolved. Otherwise only the named
bindings are, e.g.:

  portsync ports beacon relay`,
	ValidArgs: config.Bindings(),
	Args:      cobra.OnlyValidArgs,
	RunE:      runPorts,
}

func init() {
	addEnclaveFlags(portsCmd)
	rootCmd.AddCommand(portsCmd)
}

func runPorts(cmd *cobra.Command, args []string) error {
	return printPorts(cmd.Context(), syncEnclave, args)
}

// printPorts resolves the named bindings (all of them when the list is
// empty) and prints a table. Shared with the picker's ports action.
func printPorts(ctx context.Context, enclave string, bindings []string) error {
	if len(bindings) == 0 {
		bindings = config.Bindings()
	}

	pm, err := loadPortMap()
	if err != nil {
		return err
	}

	s := syncer.New(kurtosisClient(), app.Default.FS, pm)
	ports, err := s.Resolve(ctx, enclave, bindings)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BINDING\tSERVICE\tPORT ID\tPORT")
	fmt.Fprintln(w, "-------\t-------\t-------\t----")
	for _, name := range bindings {
		b, err := pm.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", name, b.Service, b.PortID, ports[name])
	}
	return w.Flush()
}
