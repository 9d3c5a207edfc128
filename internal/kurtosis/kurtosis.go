// Package kurtosis wraps the kurtosis CLI for port and enclave queries.
package kurtosis

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/eth-fabric/portsync/internal/errors"
	"github.com/eth-fabric/portsync/internal/logging"
	"github.com/eth-fabric/portsync/internal/system"
)

// portPattern extracts the trailing port from "port print" output,
// which looks like "127.0.0.1:58976".
var portPattern = regexp.MustCompile(`:(\d+)$`)

// columnGap splits tabular kurtosis output. Creation times contain
// single spaces, so columns are separated by runs of two or more.
var columnGap = regexp.MustCompile(`\s{2,}`)

// Client runs kurtosis commands through a CommandExecutor.
type Client struct {
	// Bin is the kurtosis binary to invoke.
	Bin string

	executor system.CommandExecutor
}

// NewClient creates a client for the given kurtosis binary.
// An empty bin uses "kurtosis"; a nil executor uses the system default.
func NewClient(bin string, executor system.CommandExecutor) *Client {
	if bin == "" {
		bin = "kurtosis"
	}
	if executor == nil {
		executor = system.DefaultExecutor()
	}
	return &Client{Bin: bin, executor: executor}
}

// ResolvePort runs "kurtosis port print" for a service port and returns
// the host port number from the trailing ":<digits>" of its output.
func (c *Client) ResolvePort(ctx context.Context, enclave, service, portID string) (int, error) {
	args := []string{"port", "print", enclave, service, portID}
	cmdline := shellquote.Join(append([]string{c.Bin}, args...)...)
	logging.Debug("resolving port", "command", cmdline)

	stdout, stderr, err := c.executor.Execute(ctx, c.Bin, args...)
	if err != nil {
		if detail := strings.TrimSpace(string(stderr)); detail != "" {
			err = fmt.Errorf("%s: %w", detail, err)
		}
		return 0, errors.ResolutionFailed(enclave, service, portID, err)
	}

	out := strings.TrimSpace(string(stdout))
	m := portPattern.FindStringSubmatch(out)
	if m == nil {
		return 0, errors.UnexpectedPortOutput(cmdline, out)
	}

	port, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, errors.UnexpectedPortOutput(cmdline, out)
	}

	logging.Debug("resolved port", "service", service, "port_id", portID, "port", port)
	return port, nil
}

// Enclave describes one row of "kurtosis enclave ls" output.
type Enclave struct {
	UUID    string
	Name    string
	Status  string
	Created string
}

// Running reports whether the enclave status is RUNNING.
func (e Enclave) Running() bool {
	return strings.EqualFold(e.Status, "RUNNING")
}

// Enclaves runs "kurtosis enclave ls" and parses the listed enclaves.
func (c *Client) Enclaves(ctx context.Context) ([]Enclave, error) {
	stdout, stderr, err := c.executor.Execute(ctx, c.Bin, "enclave", "ls")
	if err != nil {
		if detail := strings.TrimSpace(string(stderr)); detail != "" {
			err = fmt.Errorf("%s: %w", detail, err)
		}
		return nil, errors.EnclaveListFailed(err)
	}

	return parseEnclaveList(string(stdout)), nil
}

// parseEnclaveList reads tabular ls output. The first non-empty line is
// the column header and is skipped; rows without at least a UUID and a
// name are ignored.
func parseEnclaveList(out string) []Enclave {
	var enclaves []Enclave
	sawHeader := false

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !sawHeader {
			sawHeader = true
			continue
		}

		fields := columnGap.Split(line, 4)
		if len(fields) < 2 {
			continue
		}

		e := Enclave{UUID: fields[0], Name: fields[1]}
		if len(fields) > 2 {
			e.Status = fields[2]
		}
		if len(fields) > 3 {
			e.Created = fields[3]
		}
		enclaves = append(enclaves, e)
	}

	return enclaves
}
