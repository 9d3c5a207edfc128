// Package app provides the application context for portsync.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    FS          system.FileSystem      // Config file reads and writes
//	    Executor    system.CommandExecutor // External command execution
//	    KurtosisBin string                 // kurtosis binary to invoke
//	    StateDir    string                 // Run history location
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	app := app.New()
//
//	// Testing with custom dependencies
//	app := app.New(
//	    app.WithFileSystem(mockFS),
//	    app.WithExecutor(mockExec),
//	    app.WithStateDir(t.TempDir()),
//	)
//
// # Available Options
//
//	WithFileSystem(fs)    // Custom file system
//	WithExecutor(exec)    // Custom command executor
//	WithKurtosisBin(bin)  // Alternate kurtosis binary
//	WithStateDir(dir)     // Custom run history directory
package app
