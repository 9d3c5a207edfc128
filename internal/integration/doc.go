// Package integration provides workflow tests for the full sync
// pipeline and a harness for tests that require a live Kurtosis
// engine.
//
// Workflow tests run everywhere: they drive the syncer, config, and
// audit packages together over fixture files and a mock executor.
//
// Live tests are skipped unless the PORTSYNC_INTEGRATION_TESTS
// environment variable is set. These tests require:
//   - the kurtosis binary on PATH
//   - a running enclave to resolve ports from
//
// # Test Harness
//
// Harness manages live test environments:
//
//	func TestMyIntegration(t *testing.T) {
//	    h := integration.NewHarness(t) // Skips if env var not set
//	    h.RequireEnclave()             // Skips if the enclave is down
//
//	    fabric := h.WriteFabricConfig()
//	    result, err := h.NewSyncer().Fabric(ctx, syncer.Options{
//	        Enclave:      h.Enclave(),
//	        FabricConfig: fabric,
//	    })
//	    // ...
//	}
//
// # Harness Features
//
// The harness provides:
//   - Isolated temporary directories for target configs
//   - Fixture config writers (WriteFabricConfig, WriteRbuilderConfig)
//   - Enclave readiness waiting (WaitForEnclave)
//   - Patch assertions against files on disk (AssertPatched)
//
// # Running Live Tests
//
//	PORTSYNC_INTEGRATION_TESTS=1 go test -v ./internal/integration/...
//
// The enclave under test defaults to preconf-testnet and can be
// overridden with PORTSYNC_TEST_ENCLAVE.
package integration
