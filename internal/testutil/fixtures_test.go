package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/eth-fabric/portsync/internal/config"
)

func TestFabricConfigFixture(t *testing.T) {
	text, err := FabricConfig()
	if err != nil {
		t.Fatalf("FabricConfig() error: %v", err)
	}

	for _, key := range []string{"beacon_port", "execution_client_port", "downstream_relay_port"} {
		if !strings.Contains(text, key) {
			t.Errorf("fabric fixture should contain %s", key)
		}
	}
}

func TestRbuilderConfigFixture(t *testing.T) {
	text, err := RbuilderConfig()
	if err != nil {
		t.Fatalf("RbuilderConfig() error: %v", err)
	}

	if !strings.Contains(text, `cl_node_url = "http://`) {
		t.Error("rbuilder fixture should contain an http cl_node_url")
	}
}

func TestValidPortMapFixture(t *testing.T) {
	pm, err := ValidPortMap()
	if err != nil {
		t.Fatalf("ValidPortMap() error: %v", err)
	}

	if err := pm.Validate(config.Bindings()...); err != nil {
		t.Errorf("valid port map should pass validation: %v", err)
	}

	b, err := pm.Lookup(config.BindingBeacon)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if b.Service != "cl-1-teku-besu" {
		t.Errorf("beacon service = %q, want the fixture override", b.Service)
	}
}

func TestIncompletePortMapFixture(t *testing.T) {
	pm, err := IncompletePortMap()
	if err != nil {
		t.Fatalf("IncompletePortMap() error: %v", err)
	}

	if err := pm.Validate(config.BindingRelay); err == nil {
		t.Error("incomplete port map should fail validation")
	}
}

func TestLoadFixture_NotFound(t *testing.T) {
	_, err := LoadFixture("nonexistent.toml")
	if err == nil {
		t.Error("LoadFixture should error for nonexistent file")
	}
}

func TestTestEnv(t *testing.T) {
	env := NewTestEnv(t)
	defer env.Cleanup()

	if !strings.Contains(env.ReadConfig(env.FabricConfig), "beacon_port = 4000") {
		t.Error("fabric fixture should be on disk")
	}

	ports := env.StubDefaultPorts("preconf-testnet", 58976)
	if ports[config.BindingBeacon] != 58976 {
		t.Errorf("beacon port = %d, want base", ports[config.BindingBeacon])
	}
	if ports[config.BindingBuilderBeacon] != 58979 {
		t.Errorf("builder-beacon port = %d, want base+3", ports[config.BindingBuilderBeacon])
	}

	got, err := env.App.Kurtosis().ResolvePort(context.Background(), "preconf-testnet", "cl-1-lighthouse-geth", "http")
	if err != nil {
		t.Fatalf("ResolvePort failed: %v", err)
	}
	if got != 58976 {
		t.Errorf("resolved port = %d, want 58976", got)
	}
}

func TestTestEnvEnclaveList(t *testing.T) {
	env := NewTestEnv(t)
	defer env.Cleanup()

	env.StubEnclaveList()

	enclaves, err := env.App.Kurtosis().Enclaves(context.Background())
	if err != nil {
		t.Fatalf("Enclaves failed: %v", err)
	}
	if len(enclaves) != 2 {
		t.Fatalf("got %d enclaves, want 2", len(enclaves))
	}
	if enclaves[0].Name != "preconf-testnet" || !enclaves[0].Running() {
		t.Errorf("enclaves[0] = %+v, want running preconf-testnet", enclaves[0])
	}
}
