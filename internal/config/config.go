package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/eth-fabric/portsync/internal/errors"
	"github.com/eth-fabric/portsync/internal/system"
)

const (
	// DefaultEnclave is the enclave queried when none is given.
	DefaultEnclave = "preconf-testnet"

	// DefaultKurtosisBin is the kurtosis binary looked up on PATH.
	DefaultKurtosisBin = "kurtosis"
)

// Binding names for the ports this tool manages.
const (
	BindingBeacon        = "beacon"
	BindingExecution     = "execution"
	BindingRelay         = "relay"
	BindingBuilderBeacon = "builder-beacon"
)

// Bindings returns all binding names in resolution order.
func Bindings() []string {
	return []string{BindingBeacon, BindingExecution, BindingRelay, BindingBuilderBeacon}
}

// Binding identifies the enclave service and port ID behind a named port.
type Binding struct {
	Service string `toml:"service"`
	PortID  string `toml:"port_id"`
}

// PortMap maps binding names to enclave services.
type PortMap struct {
	Bindings map[string]Binding `toml:"bindings"`
}

// DefaultPortMap returns the port map for the standard enclave layout.
func DefaultPortMap() *PortMap {
	return &PortMap{
		Bindings: map[string]Binding{
			BindingBeacon:        {Service: "cl-1-lighthouse-geth", PortID: "http"},
			BindingExecution:     {Service: "el-1-geth-lighthouse", PortID: "rpc"},
			BindingRelay:         {Service: "mev-relay-api", PortID: "http"},
			BindingBuilderBeacon: {Service: "cl-2-lighthouse-reth-builder", PortID: "http"},
		},
	}
}

// LoadPortMap loads a port map file and overlays it on the defaults.
// A binding present in the file replaces the default binding of the
// same name; bindings absent from the file keep their defaults.
func LoadPortMap(fsys system.FileSystem, path string) (*PortMap, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.PortMapError(fmt.Sprintf("failed to read port map %s", path), err)
	}

	var overlay PortMap
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, errors.PortMapError(fmt.Sprintf("failed to parse port map %s", path), err)
	}

	pm := DefaultPortMap()
	for name, b := range overlay.Bindings {
		pm.Bindings[name] = b
	}

	return pm, nil
}

// Lookup returns the binding for a name.
func (pm *PortMap) Lookup(name string) (Binding, error) {
	b, ok := pm.Bindings[name]
	if !ok {
		return Binding{}, errors.PortMapError(fmt.Sprintf("unknown binding %q", name), nil)
	}
	return b, nil
}

// Validate checks that every named binding is fully specified.
func (pm *PortMap) Validate(names ...string) error {
	for _, name := range names {
		b, ok := pm.Bindings[name]
		if !ok {
			return errors.PortMapError(fmt.Sprintf("port map has no binding for %q", name), nil)
		}
		if b.Service == "" {
			return errors.PortMapError(fmt.Sprintf("binding %q has no service", name), nil)
		}
		if b.PortID == "" {
			return errors.PortMapError(fmt.Sprintf("binding %q has no port_id", name), nil)
		}
	}
	return nil
}

// StateDir returns the directory for run history and other tool state.
// Honors XDG_STATE_HOME, falling back to ~/.local/state/portsync.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "portsync")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "portsync")
	}
	return filepath.Join(home, ".local", "state", "portsync")
}
