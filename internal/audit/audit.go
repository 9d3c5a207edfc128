// Package audit records the outcome of sync runs.
// Records are stored as JSON Lines (JSONL) files, one per enclave.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/google/uuid"
)

// Outcome classifies how a run ended.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// Record represents a single sync run.
type Record struct {
	Timestamp time.Time      `json:"timestamp"`
	RunID     string         `json:"run_id"`
	Enclave   string         `json:"enclave"`
	Command   string         `json:"command"`
	Ports     map[string]int `json:"ports,omitempty"`
	Backups   []string       `json:"backups,omitempty"`
	DryRun    bool           `json:"dry_run,omitempty"`
	Outcome   Outcome        `json:"outcome"`
	Error     string         `json:"error,omitempty"`
}

// Logger writes and reads run records per enclave.
// Records are stored in {stateDir}/runs/{enclave}.jsonl.
type Logger struct {
	stateDir string
}

// NewLogger creates a new audit logger rooted at stateDir.
func NewLogger(stateDir string) *Logger {
	return &Logger{stateDir: stateDir}
}

// recordPath returns the path to the JSONL run log for an enclave.
// The enclave name comes from user input, so it is joined with
// SecureJoin to keep the path inside the runs directory.
func (l *Logger) recordPath(enclave string) (string, error) {
	root := filepath.Join(l.stateDir, "runs")
	return securejoin.SecureJoin(root, enclave+".jsonl")
}

// Log appends a record to the enclave's run log. A zero timestamp is
// filled with the current time and an empty run ID with a fresh UUID.
func (l *Logger) Log(record Record) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if record.RunID == "" {
		record.RunID = uuid.New().String()
	}

	path, err := l.recordPath(record.Enclave)
	if err != nil {
		return fmt.Errorf("failed to resolve run log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create run log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	return nil
}

// Records reads all records for an enclave in chronological order.
func (l *Logger) Records(enclave string) ([]Record, error) {
	path, err := l.recordPath(enclave)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve run log path: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open run log: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			continue // Skip malformed lines
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return records, fmt.Errorf("error reading run log: %w", err)
	}

	return records, nil
}
