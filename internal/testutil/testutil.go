// Package testutil provides test utilities for integration tests
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/eth-fabric/portsync/internal/app"
	"github.com/eth-fabric/portsync/internal/config"
	"github.com/eth-fabric/portsync/internal/system"
)

// TestEnv holds the test environment: fixture configs on disk, a mock
// kurtosis executor, and an App wired to both.
type TestEnv struct {
	T              *testing.T
	TmpDir         string
	FabricConfig   string
	RbuilderConfig string
	StateDir       string
	Executor       *system.MockExecutor
	App            *app.App
	cleanup        func()
}

// NewTestEnv creates a test environment with the fixture configs and a
// mock executor, and installs its App as the process default.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	stateDir := filepath.Join(tmpDir, "state")

	fabricPath := filepath.Join(tmpDir, "fabric.toml")
	rbuilderPath := filepath.Join(tmpDir, "rbuilder.toml")
	writeFixture(t, "fabric.toml", fabricPath)
	writeFixture(t, "rbuilder.toml", rbuilderPath)

	executor := system.NewMockExecutor()

	testApp := app.New(
		app.WithExecutor(executor),
		app.WithStateDir(stateDir),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)

	return &TestEnv{
		T:              t,
		TmpDir:         tmpDir,
		FabricConfig:   fabricPath,
		RbuilderConfig: rbuilderPath,
		StateDir:       stateDir,
		Executor:       executor,
		App:            testApp,
		cleanup: func() {
			app.SetDefault(originalDefault)
		},
	}
}

// Cleanup restores the original app default
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
	}
}

// StubPort cans a "kurtosis port print" response for one service port.
func (e *TestEnv) StubPort(enclave, service, portID string, port int) {
	e.T.Helper()

	pattern := fmt.Sprintf("kurtosis port print %s %s %s", enclave, service, portID)
	e.Executor.AddResponse(pattern, []byte(fmt.Sprintf("127.0.0.1:%d", port)), nil)
}

// StubDefaultPorts cans responses for every default binding, handing
// out ports counting up from base. Returns the binding to port map the
// stubs will produce.
func (e *TestEnv) StubDefaultPorts(enclave string, base int) map[string]int {
	e.T.Helper()

	pm := config.DefaultPortMap()
	ports := make(map[string]int)
	for i, name := range config.Bindings() {
		b, err := pm.Lookup(name)
		if err != nil {
			e.T.Fatalf("Failed to look up binding %s: %v", name, err)
		}
		port := base + i
		e.StubPort(enclave, b.Service, b.PortID, port)
		ports[name] = port
	}
	return ports
}

// StubEnclaveList cans the "kurtosis enclave ls" response from the
// fixture.
func (e *TestEnv) StubEnclaveList() {
	e.T.Helper()

	out, err := EnclaveList()
	if err != nil {
		e.T.Fatalf("Failed to load enclave list fixture: %v", err)
	}
	e.Executor.AddResponse("kurtosis enclave ls", []byte(out), nil)
}

// ReadConfig returns the current content of a config file in the
// environment.
func (e *TestEnv) ReadConfig(path string) string {
	e.T.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// WritePortMap writes a port map file into the environment and returns
// its path.
func (e *TestEnv) WritePortMap(text string) string {
	e.T.Helper()

	path := filepath.Join(e.TmpDir, "portmap.toml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		e.T.Fatalf("Failed to write port map: %v", err)
	}
	return path
}

// writeFixture copies an embedded fixture to a real file.
func writeFixture(t *testing.T, name, dest string) {
	t.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
}
