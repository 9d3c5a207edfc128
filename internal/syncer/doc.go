// Package syncer orchestrates port synchronization for portsync.
//
// This package sequences the pipeline that copies dynamically
// allocated enclave ports into the target config files: resolve every
// port, patch each document in memory, then commit each file with a
// backup.
//
// # Syncer
//
// Syncer holds the pipeline dependencies:
//
//	s := syncer.New(kurtosisClient, fsys, portMap,
//	    syncer.WithAudit(auditLogger),
//	)
//
//	result, err := s.Full(ctx, syncer.Options{
//	    Enclave:        "preconf-testnet",
//	    FabricConfig:   "/cfg/fabric.toml",
//	    RbuilderConfig: "/cfg/rbuilder.toml",
//	})
//
// # Pipeline
//
// Both entry points run the same linear pipeline:
//
//  1. Resolve every required port (fail fast, before any file is read)
//  2. Patch the fabric config in memory and commit it with a backup
//  3. Patch the rbuilder config and commit it (Full only)
//
// Any failure aborts the remaining steps; files not yet committed are
// left untouched. A failure after the fabric commit leaves the fabric
// file modified; there is no rollback.
//
// # Variants
//
//   - Full: four ports, both configs (beacon_port,
//     execution_client_port, downstream_relay_port in the fabric
//     config; the cl_node_url port in the rbuilder config)
//   - Fabric: three ports, fabric config only
//
// # Preflight
//
// CheckFabric and CheckRbuilder inspect a target file without invoking
// kurtosis or writing anything, reporting one verdict per requirement.
package syncer
