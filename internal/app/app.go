// Package app provides the application context for portsync.
// It allows dependency injection for testing.
package app

import (
	"github.com/eth-fabric/portsync/internal/audit"
	"github.com/eth-fabric/portsync/internal/config"
	"github.com/eth-fabric/portsync/internal/kurtosis"
	"github.com/eth-fabric/portsync/internal/system"
)

// App holds the application dependencies
type App struct {
	// FS is the file system used for config reads and writes
	FS system.FileSystem

	// Executor runs external commands
	Executor system.CommandExecutor

	// KurtosisBin is the kurtosis binary to invoke
	KurtosisBin string

	// StateDir is the directory for run history
	StateDir string
}

// Option is a function that configures the App
type Option func(*App)

// WithFileSystem sets a custom file system
func WithFileSystem(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithKurtosisBin sets the kurtosis binary to invoke
func WithKurtosisBin(bin string) Option {
	return func(a *App) {
		a.KurtosisBin = bin
	}
}

// WithStateDir sets the directory for run history
func WithStateDir(dir string) Option {
	return func(a *App) {
		a.StateDir = dir
	}
}

// New creates a new App with the given options.
// Dependencies not provided via options use the OS-backed defaults.
func New(opts ...Option) *App {
	app := &App{
		FS:          system.DefaultFS(),
		Executor:    system.DefaultExecutor(),
		KurtosisBin: config.DefaultKurtosisBin,
		StateDir:    config.StateDir(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Kurtosis returns a client for the configured kurtosis binary.
func (a *App) Kurtosis() *kurtosis.Client {
	return kurtosis.NewClient(a.KurtosisBin, a.Executor)
}

// Audit returns the run history logger rooted at the state dir.
func (a *App) Audit() *audit.Logger {
	return audit.NewLogger(a.StateDir)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
