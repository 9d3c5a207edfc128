package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogger_LogAndRecords(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	now := time.Now().Truncate(time.Millisecond)

	records := []Record{
		{
			Timestamp: now,
			RunID:     "run-1",
			Enclave:   "preconf-testnet",
			Command:   "all",
			Ports:     map[string]int{"beacon": 58976, "execution": 59031, "relay": 59120, "builder-beacon": 60115},
			Backups:   []string{"/cfg/fabric.toml.bak", "/cfg/rbuilder.toml.bak"},
			Outcome:   OutcomeSuccess,
		},
		{
			Timestamp: now.Add(time.Minute),
			RunID:     "run-2",
			Enclave:   "preconf-testnet",
			Command:   "fabric",
			Outcome:   OutcomeError,
			Error:     "key \"beacon_port\" not found in config",
		},
	}

	for _, r := range records {
		if err := logger.Log(r); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	result, err := logger.Records("preconf-testnet")
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}

	if len(result) != len(records) {
		t.Fatalf("got %d records, want %d", len(result), len(records))
	}

	for i, r := range result {
		if r.RunID != records[i].RunID {
			t.Errorf("record %d: run ID = %q, want %q", i, r.RunID, records[i].RunID)
		}
		if r.Command != records[i].Command {
			t.Errorf("record %d: command = %q, want %q", i, r.Command, records[i].Command)
		}
		if r.Outcome != records[i].Outcome {
			t.Errorf("record %d: outcome = %q, want %q", i, r.Outcome, records[i].Outcome)
		}
	}

	first := result[0]
	if first.Ports["beacon"] != 58976 {
		t.Errorf("beacon port = %d, want 58976", first.Ports["beacon"])
	}
	if len(first.Backups) != 2 {
		t.Errorf("got %d backups, want 2", len(first.Backups))
	}

	second := result[1]
	if second.Error == "" {
		t.Error("failed run should carry its error message")
	}
}

func TestLogger_RecordsEmpty(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	result, err := logger.Records("nonexistent")
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}

	if len(result) != 0 {
		t.Errorf("got %d records, want 0", len(result))
	}
}

func TestLogger_FillsTimestampAndRunID(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	if err := logger.Log(Record{Enclave: "devnet-2", Command: "fabric", Outcome: OutcomeSuccess}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	records, err := logger.Records("devnet-2")
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if r.Timestamp.IsZero() {
		t.Error("timestamp should be set automatically")
	}
	if r.RunID == "" {
		t.Error("run ID should be generated automatically")
	}
}

func TestLogger_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	if err := logger.Log(Record{Enclave: "e", Command: "all", Outcome: OutcomeSuccess}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	// Corrupt the log with a partial line
	path := filepath.Join(dir, "runs", "e.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	if _, err := f.WriteString("{broken json\n"); err != nil {
		t.Fatalf("failed to corrupt log: %v", err)
	}
	f.Close()

	if err := logger.Log(Record{Enclave: "e", Command: "fabric", Outcome: OutcomeSuccess}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	records, err := logger.Records("e")
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2 (malformed line skipped)", len(records))
	}
}

func TestLogger_EnclaveNameCannotEscapeStateDir(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	if err := logger.Log(Record{Enclave: "../../outside", Command: "all", Outcome: OutcomeSuccess}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	// The record lands inside the state dir regardless of the name
	if _, err := os.Stat(filepath.Join(dir, "..", "..", "outside.jsonl")); err == nil {
		t.Fatal("record escaped the state directory")
	}

	entries, err := os.ReadDir(filepath.Join(dir, "runs"))
	if err != nil {
		t.Fatalf("failed to read runs dir: %v", err)
	}
	found := false
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".jsonl") {
			found = true
		}
	}
	if !found {
		t.Error("no run log written under the runs directory")
	}
}

func TestLogger_RecordOrder(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	base := time.Now()
	for i := 0; i < 5; i++ {
		logger.Log(Record{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Enclave:   "order-test",
			Command:   "fabric",
			Outcome:   OutcomeSuccess,
		})
	}

	records, _ := logger.Records("order-test")
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}

	// Records should be in chronological order (append-only)
	for i := 1; i < len(records); i++ {
		if records[i].Timestamp.Before(records[i-1].Timestamp) {
			t.Errorf("record %d timestamp before record %d", i, i-1)
		}
	}
}
