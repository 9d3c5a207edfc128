package testutil

import (
	"embed"

	"github.com/BurntSushi/toml"

	"github.com/eth-fabric/portsync/internal/config"
)

//go:embed fixtures/*.toml fixtures/*.txt
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// loadText loads a fixture as a string.
func loadText(name string) (string, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadPortMap decodes a port map fixture without overlaying defaults,
// so tests see exactly what the file defines.
func loadPortMap(name string) (*config.PortMap, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var pm config.PortMap
	if err := toml.Unmarshal(data, &pm); err != nil {
		return nil, err
	}
	return &pm, nil
}

// FabricConfig returns the fabric sidecar config fixture text.
func FabricConfig() (string, error) {
	return loadText("fabric.toml")
}

// RbuilderConfig returns the rbuilder config fixture text.
func RbuilderConfig() (string, error) {
	return loadText("rbuilder.toml")
}

// EnclaveList returns canned "kurtosis enclave ls" output.
func EnclaveList() (string, error) {
	return loadText("enclave_ls.txt")
}

// ValidPortMap returns the fully specified port map fixture.
func ValidPortMap() (*config.PortMap, error) {
	return loadPortMap("portmap.toml")
}

// IncompletePortMap returns the port map fixture whose relay binding
// lacks a port ID.
func IncompletePortMap() (*config.PortMap, error) {
	return loadPortMap("portmap_incomplete.toml")
}
