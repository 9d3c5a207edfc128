package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eth-fabric/portsync/internal/kurtosis"
)

func TestGroupLabel(t *testing.T) {
	tests := []struct {
		name    string
		enclave kurtosis.Enclave
		want    string
	}{
		{"running", kurtosis.Enclave{Status: "RUNNING"}, "RUNNING"},
		{"stopped", kurtosis.Enclave{Status: "STOPPED"}, "STOPPED"},
		{"lowercase status uppercased", kurtosis.Enclave{Status: "running"}, "RUNNING"},
		{"empty status", kurtosis.Enclave{}, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupLabel(tt.enclave)
			if got != tt.want {
				t.Errorf("groupLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildGroupedItems(t *testing.T) {
	t.Run("empty enclaves", func(t *testing.T) {
		items := buildGroupedItems(nil)
		if items != nil {
			t.Errorf("expected nil, got %d items", len(items))
		}
	})

	t.Run("single group", func(t *testing.T) {
		enclaves := []kurtosis.Enclave{
			{Name: "e1", Status: "RUNNING"},
			{Name: "e2", Status: "RUNNING"},
		}
		items := buildGroupedItems(enclaves)

		// Expect 1 header + 2 enclave items
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}

		h, ok := items[0].(headerItem)
		if !ok {
			t.Fatal("first item should be a header")
		}
		if h.label != "RUNNING" {
			t.Errorf("header label = %q, want RUNNING", h.label)
		}

		for i := 1; i < 3; i++ {
			if _, ok := items[i].(enclaveItem); !ok {
				t.Errorf("item %d should be an enclaveItem", i)
			}
		}
	})

	t.Run("running group sorts first", func(t *testing.T) {
		enclaves := []kurtosis.Enclave{
			{Name: "a-stopped", Status: "STOPPED"},
			{Name: "z-running", Status: "RUNNING"},
			{Name: "b-empty", Status: "EMPTY"},
		}
		items := buildGroupedItems(enclaves)

		// 3 headers + 3 enclaves
		if len(items) != 6 {
			t.Fatalf("expected 6 items, got %d", len(items))
		}

		var labels []string
		for _, item := range items {
			if h, ok := item.(headerItem); ok {
				labels = append(labels, h.label)
			}
		}
		want := []string{"RUNNING", "EMPTY", "STOPPED"}
		for i := range want {
			if labels[i] != want[i] {
				t.Errorf("header %d = %q, want %q", i, labels[i], want[i])
			}
		}

		// First enclave after the RUNNING header is the running one
		e, ok := items[1].(enclaveItem)
		if !ok || e.enclave.Name != "z-running" {
			t.Errorf("items[1] = %+v, want z-running", items[1])
		}
	})

	t.Run("row order preserved within a group", func(t *testing.T) {
		enclaves := []kurtosis.Enclave{
			{Name: "second", Status: "RUNNING"},
			{Name: "first", Status: "RUNNING"},
		}
		items := buildGroupedItems(enclaves)

		e1 := items[1].(enclaveItem)
		e2 := items[2].(enclaveItem)
		if e1.enclave.Name != "second" || e2.enclave.Name != "first" {
			t.Errorf("group order = [%s %s], want ls order preserved", e1.enclave.Name, e2.enclave.Name)
		}
	})
}

func TestHeaderItemMethods(t *testing.T) {
	h := headerItem{label: "RUNNING"}

	if h.Title() != "RUNNING" {
		t.Errorf("Title() = %q, want RUNNING", h.Title())
	}
	if h.Description() != "" {
		t.Errorf("Description() = %q, want empty", h.Description())
	}
	if h.FilterValue() != "" {
		t.Error("FilterValue() should be empty so headers never match filters")
	}
}

func newTestList(items []list.Item) list.Model {
	return list.New(items, newGroupedDelegate(), 80, 20)
}

func TestSkipHeaders(t *testing.T) {
	items := buildGroupedItems([]kurtosis.Enclave{
		{Name: "e1", Status: "RUNNING"},
		{Name: "e2", Status: "STOPPED"},
	})
	// Layout: [header RUNNING, e1, header STOPPED, e2]

	t.Run("moves off initial header", func(t *testing.T) {
		l := newTestList(items)
		l.Select(0)
		skipHeaders(&l, 1)
		if l.Index() != 1 {
			t.Errorf("Index = %d, want 1", l.Index())
		}
	})

	t.Run("skips header moving down", func(t *testing.T) {
		l := newTestList(items)
		l.Select(2)
		skipHeaders(&l, 1)
		if l.Index() != 3 {
			t.Errorf("Index = %d, want 3", l.Index())
		}
	})

	t.Run("skips header moving up", func(t *testing.T) {
		l := newTestList(items)
		l.Select(2)
		skipHeaders(&l, -1)
		if l.Index() != 1 {
			t.Errorf("Index = %d, want 1", l.Index())
		}
	})

	t.Run("no-op on non-header", func(t *testing.T) {
		l := newTestList(items)
		l.Select(1)
		skipHeaders(&l, 1)
		if l.Index() != 1 {
			t.Errorf("Index = %d, want 1", l.Index())
		}
	})

	t.Run("empty list", func(t *testing.T) {
		l := newTestList(nil)
		skipHeaders(&l, 1)
	})
}

func TestIsHeaderSelected(t *testing.T) {
	items := buildGroupedItems([]kurtosis.Enclave{{Name: "e1", Status: "RUNNING"}})

	l := newTestList(items)
	l.Select(0)
	if !isHeaderSelected(&l) {
		t.Error("index 0 is a header")
	}
	l.Select(1)
	if isHeaderSelected(&l) {
		t.Error("index 1 is an enclave")
	}
}

func TestNavigationDirection(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, -1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, -1},
		{tea.KeyMsg{Type: tea.KeyDown}, 1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := navigationDirection(tt.key); got != tt.want {
				t.Errorf("navigationDirection(%q) = %d, want %d", tt.key.String(), got, tt.want)
			}
		})
	}
}
