// Package tui provides terminal user interface components for portsync.
//
// This package uses the Bubble Tea framework to create interactive terminal
// interfaces, primarily for the pick command's enclave picker.
//
// # Enclave Picker
//
// The picker displays enclaves grouped by status and allows selection:
//
//	opts := tui.PickerOptions{Targets: tui.Targets{FabricConfig: fabricPath}}
//	result, err := tui.RunPicker(enclaves, opts)
//	switch result.Action {
//	case tui.ActionSync:
//	    // Sync result.Targets against result.Enclave
//	case tui.ActionPorts:
//	    // Resolve and print ports for result.Enclave
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// # Picker Features
//
//   - Lists all enclaves grouped by status (RUNNING first)
//   - Keyboard navigation (j/k or arrows), headers auto-skipped
//   - Quick actions: Enter (sync), p (ports), q (quit)
//   - Color-coded status indicators
//   - Path wizard when the command line did not name the configs to patch
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
