package errors

import (
	"errors"
	"fmt"
)

// Exit codes for portsync
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitResolution    = 2
	ExitKeyNotFound   = 3
	ExitInvalidURL    = 4
	ExitConfigMissing = 5
	ExitPortMap       = 6
)

// SyncError is the base error type for portsync
type SyncError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SyncError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SyncError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SyncError) ExitCode() int {
	return e.Code
}

// New creates a new SyncError
func New(code int, message string) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SyncError
func Wrap(code int, message string, cause error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ResolutionFailed returns an error for a failed port lookup
func ResolutionFailed(enclave, service, portID string, cause error) *SyncError {
	return Wrap(ExitResolution, fmt.Sprintf("failed to resolve port for %s %s in enclave %s", service, portID, enclave), cause)
}

// UnexpectedPortOutput returns an error for unparseable port print output
func UnexpectedPortOutput(command, output string) *SyncError {
	return New(ExitResolution, fmt.Sprintf("unexpected output from %s: %q", command, output))
}

// KeyNotFound returns an error for a config key that matched no line
func KeyNotFound(key string) *SyncError {
	return New(ExitKeyNotFound, fmt.Sprintf("key %q not found in config", key))
}

// InvalidURL returns an error for a URL value that cannot be split
func InvalidURL(key, url string) *SyncError {
	return New(ExitInvalidURL, fmt.Sprintf("%s is not an http(s) URL: %q", key, url))
}

// ConfigNotFound returns an error for a missing target config file
func ConfigNotFound(path string) *SyncError {
	return New(ExitConfigMissing, fmt.Sprintf("config file not found: %s", path))
}

// PortMapError returns an error for port map issues
func PortMapError(message string, cause error) *SyncError {
	return Wrap(ExitPortMap, message, cause)
}

// EnclaveListFailed returns an error for a failed enclave listing
func EnclaveListFailed(cause error) *SyncError {
	return Wrap(ExitResolution, "failed to list enclaves", cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SyncError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
