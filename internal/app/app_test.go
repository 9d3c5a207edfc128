package app

import (
	"testing"

	"github.com/eth-fabric/portsync/internal/system"
)

func TestNew(t *testing.T) {
	app := New()

	if app == nil {
		t.Fatal("New() returned nil")
	}

	if app.FS == nil {
		t.Error("FS should not be nil")
	}
	if app.Executor == nil {
		t.Error("Executor should not be nil")
	}
	if app.KurtosisBin != "kurtosis" {
		t.Errorf("KurtosisBin = %q, want kurtosis", app.KurtosisBin)
	}
	if app.StateDir == "" {
		t.Error("StateDir should not be empty")
	}
}

func TestNew_WithFileSystem(t *testing.T) {
	mockFS := system.NewMockFS()

	app := New(WithFileSystem(mockFS))

	if app.FS != system.FileSystem(mockFS) {
		t.Error("WithFileSystem did not set the file system")
	}
}

func TestNew_WithExecutor(t *testing.T) {
	mockExec := system.NewMockExecutor()

	app := New(WithExecutor(mockExec))

	if app.Executor != system.CommandExecutor(mockExec) {
		t.Error("WithExecutor did not set the executor")
	}
}

func TestNew_WithKurtosisBin(t *testing.T) {
	app := New(WithKurtosisBin("/opt/kurtosis/bin/kurtosis"))

	if app.KurtosisBin != "/opt/kurtosis/bin/kurtosis" {
		t.Errorf("KurtosisBin = %q", app.KurtosisBin)
	}

	client := app.Kurtosis()
	if client.Bin != "/opt/kurtosis/bin/kurtosis" {
		t.Errorf("client.Bin = %q, want the configured binary", client.Bin)
	}
}

func TestNew_WithStateDir(t *testing.T) {
	dir := t.TempDir()

	app := New(WithStateDir(dir))

	if app.StateDir != dir {
		t.Errorf("StateDir = %q, want %q", app.StateDir, dir)
	}
	if app.Audit() == nil {
		t.Error("Audit() should return a logger")
	}
}

func TestSetDefault(t *testing.T) {
	original := Default
	defer SetDefault(original)

	custom := New(WithKurtosisBin("custom-kurtosis"))
	SetDefault(custom)

	if Default != custom {
		t.Error("SetDefault did not replace the default instance")
	}

	ResetDefault()
	if Default == custom {
		t.Error("ResetDefault should restore a fresh instance")
	}
	if Default.KurtosisBin != "kurtosis" {
		t.Errorf("reset default KurtosisBin = %q, want kurtosis", Default.KurtosisBin)
	}
}
