// Package tui provides terminal user interface components for portsync
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eth-fabric/portsync/internal/kurtosis"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionSync
	ActionPorts
	ActionQuit
)

// Targets holds the config paths a sync run patches.
type Targets struct {
	FabricConfig   string
	RbuilderConfig string
}

// PickerResult holds the result of the picker
type PickerResult struct {
	Action  Action
	Enclave *kurtosis.Enclave

	// Targets is set for ActionSync. It carries the flag values when
	// they were given and the wizard's answers otherwise.
	Targets *Targets
}

// enclaveItem implements list.Item for enclave display
type enclaveItem struct {
	enclave kurtosis.Enclave
}

func (i enclaveItem) Title() string {
	return i.enclave.Name
}

func (i enclaveItem) Description() string {
	statusIcon := "●"
	if i.enclave.Running() {
		statusIcon = "✓"
	}

	status := strings.ToLower(i.enclave.Status)
	if status == "" {
		status = "unknown"
	}

	desc := fmt.Sprintf("%s %s | %s", statusIcon, status, shortUUID(i.enclave.UUID))
	if i.enclave.Created != "" {
		desc += " | " + i.enclave.Created
	}
	return desc
}

func (i enclaveItem) FilterValue() string {
	return i.enclave.Name
}

// shortUUID trims a full enclave UUID to the 12-character short form
// kurtosis prints by default.
func shortUUID(uuid string) string {
	if len(uuid) <= 12 {
		return uuid
	}
	return uuid[:12]
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// PickerOptions configures the picker.
type PickerOptions struct {
	// Targets are the config paths from the command line. When
	// FabricConfig is empty, the picker opens a path wizard after the
	// enclave is chosen.
	Targets Targets
}

// Model is the bubbletea model for the enclave picker
type Model struct {
	list        list.Model
	wizard      *wizardModel
	enclave     *kurtosis.Enclave
	defaults    Targets
	needTargets bool
	result      PickerResult
	quitting    bool
	width       int
	height      int
}

// NewPicker creates a new enclave picker
func NewPicker(enclaves []kurtosis.Enclave, opts PickerOptions) Model {
	items := buildGroupedItems(enclaves)

	l := list.New(items, newGroupedDelegate(), 80, 20)
	l.Title = "portsync - Select Enclave"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("enclave", "enclaves")
	l.Styles.Title = titleStyle

	m := Model{
		list:        l,
		defaults:    opts.Targets,
		needTargets: opts.Targets.FabricConfig == "",
	}
	skipHeaders(&m.list, 1)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.wizard != nil {
		return m.updateWizard(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(enclaveItem); ok {
				return m.choose(item.enclave)
			}

		case "p":
			if item, ok := m.list.SelectedItem().(enclaveItem); ok {
				e := item.enclave
				m.result = PickerResult{Action: ActionPorts, Enclave: &e}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if keyMsg, ok := msg.(tea.KeyMsg); ok && isHeaderSelected(&m.list) {
		skipHeaders(&m.list, navigationDirection(keyMsg))
	}
	return m, cmd
}

// choose finishes selection, or hands over to the path wizard when the
// command line did not name the configs to patch.
func (m Model) choose(e kurtosis.Enclave) (tea.Model, tea.Cmd) {
	m.enclave = &e

	if m.needTargets {
		w := newWizardModel(e.Name, m.defaults)
		m.wizard = &w
		m.wizard.setSize(m.width, m.height)
		return m, m.wizard.Init()
	}

	targets := m.defaults
	m.result = PickerResult{Action: ActionSync, Enclave: &e, Targets: &targets}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
		m.wizard.setSize(ws.Width, ws.Height)
		return m, nil
	}

	done, targets, cmd := m.wizard.Update(msg)
	if !done {
		return m, cmd
	}
	if targets == nil {
		// Cancelled, back to the enclave list
		m.wizard = nil
		m.enclave = nil
		return m, nil
	}

	m.result = PickerResult{Action: ActionSync, Enclave: m.enclave, Targets: targets}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.wizard != nil {
		return m.wizard.View()
	}

	help := helpStyle.Render("[enter] Sync  [p] Ports  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive enclave picker
func RunPicker(enclaves []kurtosis.Enclave, opts PickerOptions) (PickerResult, error) {
	if len(enclaves) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(enclaves, opts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}
