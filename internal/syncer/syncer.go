package syncer

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/eth-fabric/portsync/internal/audit"
	"github.com/eth-fabric/portsync/internal/backup"
	"github.com/eth-fabric/portsync/internal/config"
	"github.com/eth-fabric/portsync/internal/errors"
	"github.com/eth-fabric/portsync/internal/logging"
	"github.com/eth-fabric/portsync/internal/patch"
	"github.com/eth-fabric/portsync/internal/system"
)

// Resolver resolves one named service port inside an enclave.
// kurtosis.Client is the production implementation.
type Resolver interface {
	ResolvePort(ctx context.Context, enclave, service, portID string) (int, error)
}

// fabricKeys are the fabric config keys and the binding that fills
// each, in patch order.
var fabricKeys = []struct {
	key     string
	binding string
}{
	{"beacon_port", config.BindingBeacon},
	{"execution_client_port", config.BindingExecution},
	{"downstream_relay_port", config.BindingRelay},
}

// rbuilderURLKey is the rbuilder field whose URL port is rewritten.
const rbuilderURLKey = "cl_node_url"

// Audit command names.
const (
	commandAll    = "all"
	commandFabric = "fabric"
)

// Syncer runs the resolve, patch, commit pipeline.
type Syncer struct {
	resolver Resolver
	fsys     system.FileSystem
	portMap  *config.PortMap
	audit    *audit.Logger
}

// Option is a function that configures the Syncer
type Option func(*Syncer)

// WithAudit attaches a run history logger. Audit writes are
// best-effort: a failed append is logged at debug level and never
// fails the run.
func WithAudit(l *audit.Logger) Option {
	return func(s *Syncer) {
		s.audit = l
	}
}

// New creates a Syncer from its dependencies.
func New(resolver Resolver, fsys system.FileSystem, portMap *config.PortMap, opts ...Option) *Syncer {
	s := &Syncer{
		resolver: resolver,
		fsys:     fsys,
		portMap:  portMap,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Full syncs both configs: the three scalar ports in the fabric config
// and the cl_node_url port in the rbuilder config.
func (s *Syncer) Full(ctx context.Context, opts Options) (*Result, error) {
	logging.Debug("starting full sync", "enclave", opts.Enclave, "dry_run", opts.DryRun)

	if opts.RbuilderConfig == "" {
		err := errors.ValidationError("rbuilder config path is required")
		s.record(commandAll, opts, nil, err)
		return nil, err
	}

	result, err := s.sync(ctx, opts)
	s.record(commandAll, opts, result, err)
	return result, err
}

// Fabric syncs only the fabric config; the rbuilder config is not
// touched and the builder-beacon port is not resolved.
func (s *Syncer) Fabric(ctx context.Context, opts Options) (*Result, error) {
	logging.Debug("starting fabric sync", "enclave", opts.Enclave, "dry_run", opts.DryRun)

	opts.RbuilderConfig = ""
	result, err := s.sync(ctx, opts)
	s.record(commandFabric, opts, result, err)
	return result, err
}

// Resolve resolves the named bindings in order. Every binding must be
// present and complete in the port map before the first lookup runs.
func (s *Syncer) Resolve(ctx context.Context, enclave string, bindings []string) (map[string]int, error) {
	if enclave == "" {
		return nil, errors.ValidationError("enclave name is required")
	}
	if err := s.portMap.Validate(bindings...); err != nil {
		return nil, err
	}

	ports := make(map[string]int, len(bindings))
	for _, name := range bindings {
		b, err := s.portMap.Lookup(name)
		if err != nil {
			return nil, err
		}
		port, err := s.resolver.ResolvePort(ctx, enclave, b.Service, b.PortID)
		if err != nil {
			return nil, err
		}
		ports[name] = port
	}

	return ports, nil
}

// sync is the shared pipeline: resolve every port first, then patch
// and commit each config in turn. The first failure aborts the rest;
// files not yet committed stay untouched.
func (s *Syncer) sync(ctx context.Context, opts Options) (*Result, error) {
	if opts.FabricConfig == "" {
		return nil, errors.ValidationError("fabric config path is required")
	}

	bindings := []string{config.BindingBeacon, config.BindingExecution, config.BindingRelay}
	if opts.RbuilderConfig != "" {
		bindings = append(bindings, config.BindingBuilderBeacon)
	}

	ports, err := s.Resolve(ctx, opts.Enclave, bindings)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Enclave: opts.Enclave,
		Ports:   ports,
		DryRun:  opts.DryRun,
	}

	fabricText, err := s.read(opts.FabricConfig)
	if err != nil {
		return nil, err
	}
	for _, fk := range fabricKeys {
		if fabricText, err = patch.SetScalar(fabricText, fk.key, ports[fk.binding]); err != nil {
			return nil, err
		}
	}
	if err := s.commit(opts.FabricConfig, fabricText, result); err != nil {
		return nil, err
	}

	if opts.RbuilderConfig != "" {
		rbuilderText, err := s.read(opts.RbuilderConfig)
		if err != nil {
			return nil, err
		}
		rbuilderText, err = patch.SetURLPort(rbuilderText, rbuilderURLKey, ports[config.BindingBuilderBeacon])
		if err != nil {
			return nil, err
		}
		if err := s.commit(opts.RbuilderConfig, rbuilderText, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// read loads a target config as text.
func (s *Syncer) read(path string) (string, error) {
	data, err := s.fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.ConfigNotFound(path)
		}
		return "", errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("failed to read %s", path), err)
	}
	return string(data), nil
}

// commit writes the patched text with a backup, or skips the write on
// a dry run.
func (s *Syncer) commit(path, text string, result *Result) error {
	if result.DryRun {
		logging.Debug("dry run, skipping commit", "path", path)
		return nil
	}

	bak, err := backup.WriteWithBackup(s.fsys, path, text)
	if err != nil {
		return err
	}

	logging.Debug("committed config", "path", path, "backup", bak)
	result.Backups = append(result.Backups, bak)
	return nil
}

// record appends the run outcome to the audit log, if one is attached.
func (s *Syncer) record(command string, opts Options, result *Result, runErr error) {
	if s.audit == nil {
		return
	}

	rec := audit.Record{
		Enclave: opts.Enclave,
		Command: command,
		DryRun:  opts.DryRun,
		Outcome: audit.OutcomeSuccess,
	}
	if result != nil {
		rec.Ports = result.Ports
		rec.Backups = result.Backups
	}
	if runErr != nil {
		rec.Outcome = audit.OutcomeError
		rec.Error = runErr.Error()
	}

	if err := s.audit.Log(rec); err != nil {
		logging.Debug("audit append failed", "error", err)
	}
}
