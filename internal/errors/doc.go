// Package errors provides typed errors with exit codes for portsync.
//
// # Error Types
//
// SyncError is the base error type that wraps an error with an exit code:
//
//	type SyncError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess       = 0  // Success
//	ExitGeneralError  = 1  // General/unknown errors
//	ExitResolution    = 2  // kurtosis port lookup failed
//	ExitKeyNotFound   = 3  // Config key matched no line
//	ExitInvalidURL    = 4  // URL value could not be split
//	ExitConfigMissing = 5  // Target config file does not exist
//	ExitPortMap       = 6  // Port map invalid or incomplete
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.ResolutionFailed("preconf-testnet", "mev-relay-api", "http", err)
//	errors.KeyNotFound("beacon_port")
//	errors.InvalidURL("cl_node_url", "not-a-url")
//	errors.ConfigNotFound("/etc/fabric/config.toml")
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
