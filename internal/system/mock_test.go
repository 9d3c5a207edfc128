package system

import (
	"context"
	"fmt"
	"io/fs"
	"testing"
)

func TestMockFS_ReadWriteFile(t *testing.T) {
	mockFS := NewMockFS()

	// Write a file
	content := []byte("beacon_port = 4000\n")
	err := mockFS.WriteFile("/etc/fabric/config.toml", content, 0644)
	if err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	// Read it back
	data, err := mockFS.ReadFile("/etc/fabric/config.toml")
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}

	if string(data) != string(content) {
		t.Errorf("ReadFile = %q, want %q", string(data), string(content))
	}
}

func TestMockFS_ReadFile_NotExists(t *testing.T) {
	mockFS := NewMockFS()

	_, err := mockFS.ReadFile("/nonexistent")
	if err != fs.ErrNotExist {
		t.Errorf("ReadFile error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_Stat(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/test/file.toml", []byte("content"), 0644)

	info, err := mockFS.Stat("/test/file.toml")
	if err != nil {
		t.Fatalf("Stat error: %v", err)
	}
	if info.Name() != "file.toml" {
		t.Errorf("Name = %q, want %q", info.Name(), "file.toml")
	}
	if info.Size() != int64(len("content")) {
		t.Errorf("Size = %d, want %d", info.Size(), len("content"))
	}

	if _, err := mockFS.Stat("/nonexistent"); err != fs.ErrNotExist {
		t.Errorf("Stat error = %v, want fs.ErrNotExist", err)
	}
}

func TestMockFS_Exists(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/test/file.toml", []byte("x"), 0644)

	if !mockFS.Exists("/test/file.toml") {
		t.Error("Exists should return true for added file")
	}
	if mockFS.Exists("/other") {
		t.Error("Exists should return false for missing file")
	}
}

func TestMockFS_ErrorInjection(t *testing.T) {
	mockFS := NewMockFS()
	mockFS.AddFile("/test/file.toml", []byte("x"), 0644)

	readErr := fmt.Errorf("injected read failure")
	mockFS.ReadFileErr = readErr
	if _, err := mockFS.ReadFile("/test/file.toml"); err != readErr {
		t.Errorf("ReadFile error = %v, want injected error", err)
	}
	mockFS.ReadFileErr = nil

	writeErr := fmt.Errorf("injected write failure")
	mockFS.WriteFileErr = writeErr
	if err := mockFS.WriteFile("/test/file.toml", []byte("y"), 0644); err != writeErr {
		t.Errorf("WriteFile error = %v, want injected error", err)
	}
	mockFS.WriteFileErr = nil

	// Content untouched by the failed write
	data, _ := mockFS.GetFile("/test/file.toml")
	if string(data) != "x" {
		t.Errorf("file content = %q, want %q after failed write", string(data), "x")
	}
}

func TestMockExecutor_RecordsCommands(t *testing.T) {
	exec := NewMockExecutor()

	_, _, err := exec.Execute(context.Background(), "kurtosis", "port", "print", "e", "s", "http")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(exec.Commands) != 1 {
		t.Fatalf("recorded %d commands, want 1", len(exec.Commands))
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("LastCommand found nothing")
	}
	if cmd.Name != "kurtosis" {
		t.Errorf("Name = %q, want kurtosis", cmd.Name)
	}
	if len(cmd.Args) != 5 || cmd.Args[0] != "port" {
		t.Errorf("Args = %v", cmd.Args)
	}
}

func TestMockExecutor_PatternPrecedence(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("kurtosis", []byte("generic"), nil)
	exec.AddResponse("kurtosis port", []byte("subcommand"), nil)
	exec.AddResponse("kurtosis port print e s http", []byte("127.0.0.1:58976"), nil)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"full command line wins", []string{"port", "print", "e", "s", "http"}, "127.0.0.1:58976"},
		{"first arg pattern", []string{"port", "print", "other"}, "subcommand"},
		{"bare command", []string{"version"}, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := exec.Execute(context.Background(), "kurtosis", tt.args...)
			if err != nil {
				t.Fatalf("Execute error: %v", err)
			}
			if string(stdout) != tt.want {
				t.Errorf("stdout = %q, want %q", string(stdout), tt.want)
			}
		})
	}
}

func TestMockExecutor_DefaultResponse(t *testing.T) {
	exec := NewMockExecutor()
	exec.DefaultResponse = MockResponse{
		Stderr: []byte("engine is not running"),
		Err:    fmt.Errorf("exit status 1"),
	}

	stdout, stderr, err := exec.Execute(context.Background(), "kurtosis", "enclave", "ls")
	if err == nil {
		t.Fatal("Expected error from default response")
	}
	if len(stdout) != 0 {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if string(stderr) != "engine is not running" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	exec := NewMockExecutor()

	_, _, _ = exec.Execute(context.Background(), "kurtosis", "enclave", "ls")
	exec.Reset()

	if len(exec.Commands) != 0 {
		t.Errorf("recorded %d commands after Reset, want 0", len(exec.Commands))
	}
	if _, ok := exec.LastCommand(); ok {
		t.Error("LastCommand should find nothing after Reset")
	}
}
