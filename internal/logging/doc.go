// Package logging provides logging utilities for portsync.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("resolving port", "enclave", enclave, "service", service)
//	logging.Warn("audit append failed", "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Resolving ports from enclave %s...", enclave)
//	logging.UserSuccess("Updated %s", path)
//	logging.UserWarning("Enclave %s is not running", enclave)
//	logging.UserError("Failed to patch config: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// # Status Indicators
//
// User functions prepend status indicators:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
