package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// wizardStep identifies the current step.
type wizardStep int

const (
	stepFabric wizardStep = iota
	stepRbuilder
	stepConfirm
)

// wizardModel collects the config paths for a sync run against an
// already chosen enclave.
type wizardModel struct {
	step    wizardStep
	enclave string

	// Step 1: fabric config path
	fabricInput textinput.Model

	// Step 2: rbuilder config path, empty to skip
	rbuilderInput textinput.Model

	// Collected values
	fabricPath   string
	rbuilderPath string

	width  int
	height int
}

// wizardStyles
var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardLabelStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func newWizardModel(enclave string, defaults Targets) wizardModel {
	fi := textinput.New()
	fi.Placeholder = "/path/to/fabric.toml"
	fi.Focus()
	fi.CharLimit = 256
	fi.Width = 60
	fi.ShowSuggestions = true
	if defaults.FabricConfig != "" {
		fi.SetValue(defaults.FabricConfig)
	}

	ri := textinput.New()
	ri.Placeholder = "/path/to/rbuilder.toml"
	ri.CharLimit = 256
	ri.Width = 60
	ri.ShowSuggestions = true
	if defaults.RbuilderConfig != "" {
		ri.SetValue(defaults.RbuilderConfig)
	}

	return wizardModel{
		step:          stepFabric,
		enclave:       enclave,
		fabricInput:   fi,
		rbuilderInput: ri,
	}
}

func (w *wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (w *wizardModel) setSize(width, height int) {
	w.width = width
	w.height = height
}

// Update processes a message and returns (done, targets, cmd).
// done=true with non-nil targets means the wizard completed.
// done=true with nil targets means the wizard was cancelled.
func (w *wizardModel) Update(msg tea.Msg) (bool, *Targets, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			return true, nil, nil
		case tea.KeyEsc:
			return w.handleBack()
		}
	}

	switch w.step {
	case stepFabric:
		return w.updateFabric(msg)
	case stepRbuilder:
		return w.updateRbuilder(msg)
	case stepConfirm:
		return w.updateConfirm(msg)
	}

	return false, nil, nil
}

func (w *wizardModel) handleBack() (bool, *Targets, tea.Cmd) {
	switch w.step {
	case stepFabric:
		// Esc at first step cancels wizard
		return true, nil, nil
	case stepRbuilder:
		w.step = stepFabric
		w.rbuilderInput.Blur()
		w.fabricInput.Focus()
		return false, nil, textinput.Blink
	case stepConfirm:
		w.step = stepRbuilder
		w.rbuilderInput.Focus()
		return false, nil, textinput.Blink
	}
	return false, nil, nil
}

func (w *wizardModel) updateFabric(msg tea.Msg) (bool, *Targets, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		path := strings.TrimSpace(w.fabricInput.Value())
		if path == "" {
			return false, nil, nil
		}
		w.fabricPath = path
		w.step = stepRbuilder
		w.fabricInput.Blur()
		w.rbuilderInput.Focus()
		return false, nil, textinput.Blink
	}

	var cmd tea.Cmd
	w.fabricInput, cmd = w.fabricInput.Update(msg)

	// Update path suggestions after each keystroke
	updatePathSuggestions(&w.fabricInput)

	return false, nil, cmd
}

func (w *wizardModel) updateRbuilder(msg tea.Msg) (bool, *Targets, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		// Empty means a fabric-only run
		w.rbuilderPath = strings.TrimSpace(w.rbuilderInput.Value())
		w.step = stepConfirm
		w.rbuilderInput.Blur()
		return false, nil, nil
	}

	var cmd tea.Cmd
	w.rbuilderInput, cmd = w.rbuilderInput.Update(msg)

	updatePathSuggestions(&w.rbuilderInput)

	return false, nil, cmd
}

func (w *wizardModel) updateConfirm(msg tea.Msg) (bool, *Targets, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "y":
			return true, &Targets{
				FabricConfig:   w.fabricPath,
				RbuilderConfig: w.rbuilderPath,
			}, nil
		case "n":
			// Restart wizard
			w.step = stepFabric
			w.fabricPath = ""
			w.rbuilderPath = ""
			w.rbuilderInput.Blur()
			w.fabricInput.Focus()
			return false, nil, textinput.Blink
		}
	}
	return false, nil, nil
}

func (w *wizardModel) View() string {
	var b strings.Builder

	b.WriteString(wizardTitleStyle.Render("Sync " + w.enclave))
	b.WriteString("\n")
	b.WriteString(w.progressBar())
	b.WriteString("\n\n")

	switch w.step {
	case stepFabric:
		b.WriteString(wizardLabelStyle.Render("Fabric config:"))
		b.WriteString("\n")
		b.WriteString(w.fabricInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Enter the path to the fabric sidecar config. Tab to complete."))
	case stepRbuilder:
		b.WriteString(wizardLabelStyle.Render("Rbuilder config:"))
		b.WriteString("\n")
		b.WriteString(w.rbuilderInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizardDimStyle.Render("Enter to confirm, leave empty to sync the fabric config only."))
	case stepConfirm:
		variant := "full"
		if w.rbuilderPath == "" {
			variant = "fabric only"
		}
		b.WriteString(wizardLabelStyle.Render("Confirm:"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Enclave:  %s\n", wizardValueStyle.Render(w.enclave)))
		b.WriteString(fmt.Sprintf("  Fabric:   %s\n", wizardValueStyle.Render(truncatePath(w.fabricPath, 48))))
		if w.rbuilderPath != "" {
			b.WriteString(fmt.Sprintf("  Rbuilder: %s\n", wizardValueStyle.Render(truncatePath(w.rbuilderPath, 48))))
		}
		b.WriteString(fmt.Sprintf("  Variant:  %s\n", wizardValueStyle.Render(variant)))
		b.WriteString("\n")
		b.WriteString(wizardDimStyle.Render("Enter to sync, n to restart, Esc to go back."))
	}

	return b.String()
}

func (w *wizardModel) progressBar() string {
	steps := []struct {
		num  int
		name string
	}{
		{1, "Fabric"},
		{2, "Rbuilder"},
		{3, "Confirm"},
	}

	var parts []string
	for _, s := range steps {
		label := fmt.Sprintf("%d. %s", s.num, s.name)
		if s.num == int(w.step)+1 {
			parts = append(parts, wizardActiveStepStyle.Render(label))
		} else {
			parts = append(parts, wizardStepStyle.Render(label))
		}
	}

	return strings.Join(parts, wizardDimStyle.Render(" > "))
}

// updatePathSuggestions fills the input's tab completions with
// directories and TOML files matching the typed prefix.
func updatePathSuggestions(ti *textinput.Model) {
	val := ti.Value()
	if val == "" {
		ti.SetSuggestions(nil)
		return
	}

	// Expand ~ to home directory
	expanded := val
	if strings.HasPrefix(val, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = home + val[1:]
		}
	}

	dir := expanded
	prefix := ""

	info, err := os.Stat(expanded)
	if err != nil || !info.IsDir() {
		dir = filepath.Dir(expanded)
		prefix = filepath.Base(expanded)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		ti.SetSuggestions(nil)
		return
	}

	var suggestions []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.IsDir() && !strings.HasSuffix(name, ".toml") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix)) {
			continue
		}
		full := filepath.Join(dir, name)
		// Convert back to use ~ if original used ~
		if strings.HasPrefix(val, "~") {
			if home, err := os.UserHomeDir(); err == nil {
				full = "~" + strings.TrimPrefix(full, home)
			}
		}
		suggestions = append(suggestions, full)
	}

	ti.SetSuggestions(suggestions)
}
