package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mosaic/internal/config"
	"mosaic/internal/dispatch"
	"mosaic/internal/logging"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	m, err := NewModel(config.Default(), logging.NopLogger(), dispatch.Direct{})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func press(t *testing.T, m Model, key tea.KeyType) Model {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(Model)
}

func counts(t *testing.T, m Model, name string) (members, active int) {
	t.Helper()

	r, ok := m.shell.Region(name)
	if !ok {
		t.Fatalf("region %q not found", name)
	}
	return len(r.Views()), len(r.ActiveViews())
}

func TestModel_AddNote(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlN)

	members, active := counts(t, m, "Main")
	if members != 1 || active != 1 {
		t.Errorf("Main has %d members, %d active; want 1, 1", members, active)
	}
	if len(m.notes) != 1 {
		t.Fatalf("model tracks %d notes, want 1", len(m.notes))
	}
	if !strings.Contains(m.View(), "note 1") {
		t.Error("rendered view should contain the new note")
	}
}

func TestModel_AddWorkerNextToNote(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlN)
	m = press(t, m, tea.KeyCtrlW)

	members, _ := counts(t, m, "Main")
	if members != 2 {
		t.Errorf("Main has %d members, want note plus worker", members)
	}
	if len(m.notes[0].Children()) != 1 {
		t.Errorf("note has %d children, want 1", len(m.notes[0].Children()))
	}
}

func TestModel_AddWorkerWithoutNote(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlW)

	if m.status != "no note selected" {
		t.Errorf("status = %q, want selection hint", m.status)
	}
	members, _ := counts(t, m, "Main")
	if members != 0 {
		t.Error("no view should be placed without a selected note")
	}
}

func TestModel_AddPoolWorker(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlB)

	members, active := counts(t, m, "Status")
	if members != 1 || active != 1 {
		t.Errorf("Status has %d members, %d active; want 1, 1", members, active)
	}
}

func TestModel_DeactivateAndReactivate(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlN)

	m = press(t, m, tea.KeyCtrlD)
	members, active := counts(t, m, "Main")
	if members != 1 || active != 0 {
		t.Errorf("after deactivate: %d members, %d active; want 1, 0", members, active)
	}

	m = press(t, m, tea.KeyCtrlR)
	_, active = counts(t, m, "Main")
	if active != 1 {
		t.Errorf("after reactivate: %d active, want 1", active)
	}
}

func TestModel_CloseRemovesNoteAndWorkers(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlN)
	m = press(t, m, tea.KeyCtrlW)

	m = press(t, m, tea.KeyCtrlX)

	members, _ := counts(t, m, "Main")
	if members != 0 {
		t.Errorf("Main has %d members after close, want 0", members)
	}
	if len(m.notes) != 0 {
		t.Errorf("model tracks %d notes after close, want 0", len(m.notes))
	}
}

func TestModel_CycleSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlN)
	m = press(t, m, tea.KeyCtrlN)

	if m.selected != 1 {
		t.Fatalf("selected = %d after two adds, want 1", m.selected)
	}
	m = press(t, m, tea.KeyTab)
	if m.selected != 0 {
		t.Errorf("selected = %d after tab, want 0 (wrap around)", m.selected)
	}
	m = press(t, m, tea.KeyTab)
	if m.selected != 1 {
		t.Errorf("selected = %d after second tab, want 1", m.selected)
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestModel_ViewShowsRegions(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	for _, name := range config.Default().Shell.Regions {
		if !strings.Contains(out, name) {
			t.Errorf("rendered view should contain region %q", name)
		}
	}
	if !strings.Contains(out, "(empty)") {
		t.Error("empty regions should render a placeholder")
	}
}
