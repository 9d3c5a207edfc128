// Live tests exercise the sync pipeline against a real Kurtosis
// engine and a running enclave.
//
// Run with: PORTSYNC_INTEGRATION_TESTS=1 go test -v ./internal/integration/...

package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/eth-fabric/portsync/internal/config"
	"github.com/eth-fabric/portsync/internal/syncer"
)

func TestLive_EnclaveIsListed(t *testing.T) {
	h := NewHarness(t)
	h.RequireEnclave()

	enclaves, err := h.Client().Enclaves(context.Background())
	if err != nil {
		t.Fatalf("failed to list enclaves: %v", err)
	}

	found := false
	for _, e := range enclaves {
		if e.Name == h.Enclave() {
			found = true
			if e.UUID == "" {
				t.Error("enclave row should carry a UUID")
			}
		}
	}
	if !found {
		t.Errorf("enclave %s missing from listing", h.Enclave())
	}
}

func TestLive_ResolveDefaultBindings(t *testing.T) {
	h := NewHarness(t)
	h.RequireEnclave()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ports, err := h.NewSyncer().Resolve(ctx, h.Enclave(), config.Bindings())
	if err != nil {
		t.Fatalf("failed to resolve ports: %v", err)
	}

	for _, name := range config.Bindings() {
		port, ok := ports[name]
		if !ok {
			t.Errorf("binding %s missing from resolution", name)
			continue
		}
		if port < 1 || port > 65535 {
			t.Errorf("binding %s resolved to port %d, outside the valid range", name, port)
		}
	}
}

func TestLive_FullSync(t *testing.T) {
	h := NewHarness(t)
	h.RequireEnclave()

	fabric := h.WriteFabricConfig()
	rbuilder := h.WriteRbuilderConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := h.NewSyncer().Full(ctx, syncer.Options{
		Enclave:        h.Enclave(),
		FabricConfig:   fabric,
		RbuilderConfig: rbuilder,
	})
	if err != nil {
		t.Fatalf("full sync failed: %v", err)
	}

	h.AssertPatched(fabric, "beacon_port", result.Ports[config.BindingBeacon])
	h.AssertPatched(fabric, "execution_client_port", result.Ports[config.BindingExecution])
	h.AssertPatched(fabric, "downstream_relay_port", result.Ports[config.BindingRelay])

	if len(result.Backups) != 2 {
		t.Errorf("expected 2 backups, got %d", len(result.Backups))
	}
	for _, b := range result.Backups {
		if !strings.HasSuffix(b, ".bak") {
			t.Errorf("backup %s should end in .bak", b)
		}
	}
}
