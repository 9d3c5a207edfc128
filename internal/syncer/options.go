package syncer

// Options holds the inputs for one sync run.
type Options struct {
	// Enclave is the kurtosis enclave to query (required)
	Enclave string

	// FabricConfig is the path to the fabric sidecar config (required)
	FabricConfig string

	// RbuilderConfig is the path to the rbuilder config (Full only)
	RbuilderConfig string

	// DryRun resolves ports and patches in memory but skips both
	// commits, leaving the files and their backups untouched
	DryRun bool
}

// Result holds the outcome of a successful sync run.
type Result struct {
	// Enclave is the enclave the ports were resolved from
	Enclave string

	// Ports maps binding names to their resolved host ports
	Ports map[string]int

	// Backups lists the backup files written, in commit order
	Backups []string

	// DryRun reports whether the commits were skipped
	DryRun bool
}
