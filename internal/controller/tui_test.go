package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/tge-sherbrooke/bonif-grader/internal/model"
)

func sampleVerdicts() []m.Verdict {
	return []m.Verdict{
		{Category: m.CategoryErrorHandling, Status: m.Pass, Evidence: []string{"1 try/except block(s)"}},
		{
			Category: m.CategoryInterrupt,
			Status:   m.Fail,
			Expected: "KeyboardInterrupt handling",
			Observed: "no KeyboardInterrupt handler found",
		},
	}
}

func TestVerdictModelView(t *testing.T) {
	model := newVerdictModel(sampleVerdicts())

	view := model.View()

	for _, expected := range []string{"error-handling", "interrupt-handling", "pass", "fail"} {
		if !strings.Contains(view, expected) {
			t.Errorf("view missing %q", expected)
		}
	}
}

func TestVerdictModelToggleDetail(t *testing.T) {
	model := newVerdictModel(sampleVerdicts())

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	withDetail := updated.(verdictModel)

	if !withDetail.detail {
		t.Fatal("enter did not open the detail pane")
	}

	view := withDetail.View()
	if !strings.Contains(view, "evidence: 1 try/except block(s)") {
		t.Errorf("detail pane missing evidence for selected row:\n%s", view)
	}

	updated, _ = withDetail.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if updated.(verdictModel).detail {
		t.Error("second enter did not close the detail pane")
	}
}

func TestVerdictModelQuits(t *testing.T) {
	model := newVerdictModel(sampleVerdicts())

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	quitting := updated.(verdictModel)

	if !quitting.quitting {
		t.Fatal("q did not set quitting")
	}

	if cmd == nil {
		t.Fatal("q did not produce a quit command")
	}

	if quitting.View() != "" {
		t.Error("quitting view is not empty")
	}
}

func TestTUIDisplaySummary(t *testing.T) {
	buffer := &bytes.Buffer{}
	ui := NewTUI(buffer)

	err := ui.DisplaySummary(context.Background(), m.Summary{Passed: 5, Failed: 4, Skipped: 2})
	if err != nil {
		t.Fatalf("DisplaySummary() error = %v", err)
	}

	if !strings.Contains(buffer.String(), "Total: 11 | Passed: 5 | Failed: 4 | Skipped: 2") {
		t.Errorf("summary output = %q", buffer.String())
	}
}

func TestTUIDisplayCatalog(t *testing.T) {
	buffer := &bytes.Buffer{}
	ui := NewTUI(buffer)

	if err := ui.DisplayCatalog(context.Background(), m.Catalog); err != nil {
		t.Fatalf("DisplayCatalog() error = %v", err)
	}

	for _, info := range m.Catalog {
		if !strings.Contains(buffer.String(), string(info.Category)) {
			t.Errorf("catalog output missing %s", info.Category)
		}
	}
}
