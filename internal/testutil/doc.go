// Package testutil provides test fixtures and utilities.
//
// This package contains embedded TOML fixtures and helper functions for
// setting up sync scenarios in tests.
//
// # Fixtures
//
// Fixtures are embedded using go:embed:
//
//	fixtures/fabric.toml
//	fixtures/rbuilder.toml
//	fixtures/portmap.toml
//	fixtures/portmap_incomplete.toml
//	fixtures/enclave_ls.txt
//
// # Loading Fixtures
//
// Helper functions load fixtures as text or typed values:
//
//	text, err := testutil.FabricConfig()
//	pm, err := testutil.ValidPortMap()
//	pm, err := testutil.IncompletePortMap()
//
// # Raw Fixture Access
//
// For custom parsing or testing edge cases:
//
//	data, err := testutil.LoadFixture("fabric.toml")
//
// # Test Environments
//
// NewTestEnv copies the fixture configs into a temp dir, wires a mock
// kurtosis executor into an App, and installs it as the default:
//
//	func TestSync(t *testing.T) {
//	    env := testutil.NewTestEnv(t)
//	    defer env.Cleanup()
//
//	    env.StubDefaultPorts("preconf-testnet", 58976)
//	    // run commands against env.FabricConfig / env.RbuilderConfig
//	}
package testutil
