// Package config provides configuration types and defaults for portsync.
//
// # Port Map
//
// The port map ties each named port binding to the enclave service and
// port ID that backs it. The built-in defaults match the standard
// preconf-testnet layout:
//
//	beacon         -> cl-1-lighthouse-geth / http
//	execution      -> el-1-geth-lighthouse / rpc
//	relay          -> mev-relay-api / http
//	builder-beacon -> cl-2-lighthouse-reth-builder / http
//
// A TOML port map file can override individual bindings:
//
//	[bindings.relay]
//	service = "my-relay"
//	port_id = "api"
//
// Bindings absent from the file keep their defaults. A binding that is
// present but incomplete fails Validate with a port map error.
//
// # State Directory
//
// StateDir locates the per-user directory for run history, honoring
// XDG_STATE_HOME and falling back to ~/.local/state/portsync.
package config
