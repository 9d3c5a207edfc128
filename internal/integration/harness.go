// Package integration houses tests that exercise complete sync
// workflows, plus a harness for running them against a live Kurtosis
// engine.
//
// Live tests are skipped unless the PORTSYNC_INTEGRATION_TESTS
// environment variable is set. They require:
// - the kurtosis binary on PATH
// - a running enclave (default preconf-testnet, override with
//   PORTSYNC_TEST_ENCLAVE)
package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eth-fabric/portsync/internal/config"
	"github.com/eth-fabric/portsync/internal/kurtosis"
	"github.com/eth-fabric/portsync/internal/syncer"
	"github.com/eth-fabric/portsync/internal/system"
	"github.com/eth-fabric/portsync/internal/testutil"
)

// Harness drives live tests against a real Kurtosis engine.
type Harness struct {
	t       *testing.T
	tempDir string
	enclave string
	client  *kurtosis.Client
}

// NewHarness creates a live test harness.
// It will skip the test if PORTSYNC_INTEGRATION_TESTS is not set or
// the kurtosis binary is not on PATH.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	if os.Getenv("PORTSYNC_INTEGRATION_TESTS") == "" {
		t.Skip("integration tests disabled (set PORTSYNC_INTEGRATION_TESTS=1 to enable)")
	}

	if _, err := exec.LookPath(config.DefaultKurtosisBin); err != nil {
		t.Skipf("kurtosis binary not found: %v", err)
	}

	return &Harness{
		t:       t,
		tempDir: t.TempDir(),
		enclave: testEnclaveName(),
		client:  kurtosis.NewClient(config.DefaultKurtosisBin, system.DefaultExecutor()),
	}
}

// testEnclaveName returns the enclave live tests run against.
func testEnclaveName() string {
	if name := os.Getenv("PORTSYNC_TEST_ENCLAVE"); name != "" {
		return name
	}
	return config.DefaultEnclave
}

// Enclave returns the enclave name under test.
func (h *Harness) Enclave() string {
	return h.enclave
}

// Client returns the kurtosis client.
func (h *Harness) Client() *kurtosis.Client {
	return h.client
}

// NewSyncer builds a syncer against the real engine and file system.
func (h *Harness) NewSyncer() *syncer.Syncer {
	return syncer.New(h.client, system.DefaultFS(), config.DefaultPortMap())
}

// RequireEnclave skips the test unless the enclave under test exists
// and is running.
func (h *Harness) RequireEnclave() {
	h.t.Helper()

	enclaves, err := h.client.Enclaves(context.Background())
	if err != nil {
		h.t.Skipf("failed to list enclaves: %v", err)
	}

	for _, e := range enclaves {
		if e.Name == h.enclave {
			if !e.Running() {
				h.t.Skipf("enclave %s is not running", h.enclave)
			}
			return
		}
	}

	h.t.Skipf("enclave %s not found", h.enclave)
}

// WaitForEnclave polls until the enclave under test reports RUNNING.
func (h *Harness) WaitForEnclave(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("enclave %s not running after %v", h.enclave, timeout)
		case <-ticker.C:
			enclaves, err := h.client.Enclaves(ctx)
			if err != nil {
				continue
			}
			for _, e := range enclaves {
				if e.Name == h.enclave && e.Running() {
					return nil
				}
			}
		}
	}
}

// WriteFabricConfig writes the fabric fixture into the harness temp
// dir and returns its path.
func (h *Harness) WriteFabricConfig() string {
	return h.writeFixtureFile("fabric.toml", testutil.FabricConfig)
}

// WriteRbuilderConfig writes the rbuilder fixture into the harness
// temp dir and returns its path.
func (h *Harness) WriteRbuilderConfig() string {
	return h.writeFixtureFile("rbuilder.toml", testutil.RbuilderConfig)
}

func (h *Harness) writeFixtureFile(name string, load func() (string, error)) string {
	h.t.Helper()

	text, err := load()
	if err != nil {
		h.t.Fatalf("Failed to load fixture %s: %v", name, err)
	}

	path := filepath.Join(h.tempDir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		h.t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// ReadFile returns the current content of a file under the harness.
func (h *Harness) ReadFile(path string) string {
	h.t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		h.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// AssertPatched fails the test unless the file at path contains the
// given key = value line.
func (h *Harness) AssertPatched(path, key string, port int) {
	h.t.Helper()

	want := fmt.Sprintf("%s = %d", key, port)
	if !strings.Contains(h.ReadFile(path), want) {
		h.t.Errorf("%s should contain %q", path, want)
	}
}
