package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/rows"
	"tableflip.dev/labjo/pkg/store"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	}
	return tea.KeyPressMsg{Text: s, Code: rune(s[0])}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	state := form.NewState(nil, nil)
	state.Datasets.Replace([]rows.DatasetRow{
		{Name: "retina-01"},
		{Name: "retina-02"},
		{Name: "cortex-01"},
	})
	ctrl := &form.Controller{
		Paths: store.NewProjectPaths(t.TempDir()),
		State: state,
	}
	return New(ctrl, nil, nil)
}

func TestTabCycling(t *testing.T) {
	m := newTestModel(t)
	if m.active != tabProject {
		t.Fatalf("expected to start on project tab, got %d", m.active)
	}
	for i := 0; i < tabCount; i++ {
		m.handleKey(keyMsg("tab"))
	}
	if m.active != tabProject {
		t.Fatalf("full cycle should return to project, got %d", m.active)
	}
	m.handleKey(keyMsg("shift+tab"))
	if m.active != tabWorklog {
		t.Fatalf("backwards from project should land on worklog, got %d", m.active)
	}
}

func TestTableNavigationMovesSelection(t *testing.T) {
	m := newTestModel(t)
	m.active = tabDatasets
	sec := tableSections[tabDatasets]

	m.handleTableKey(sec, "j")
	m.handleTableKey(sec, "j")
	if got := m.ctrl.State.Datasets.SelectedIndex(); got != 2 {
		t.Fatalf("expected selection 2, got %d", got)
	}
	// Walking past the end clamps.
	m.handleTableKey(sec, "j")
	if got := m.ctrl.State.Datasets.SelectedIndex(); got != 2 {
		t.Fatalf("selection should clamp at last row, got %d", got)
	}
	m.handleTableKey(sec, "k")
	if got := m.ctrl.State.Datasets.SelectedIndex(); got != 1 {
		t.Fatalf("expected selection 1, got %d", got)
	}
}

func TestDeleteMarksDirtyAndReHomes(t *testing.T) {
	m := newTestModel(t)
	m.active = tabDatasets
	sec := tableSections[tabDatasets]

	m.ctrl.State.Datasets.Select(2)
	m.handleTableKey(sec, "d")
	if !m.dirty {
		t.Fatalf("delete must mark the form dirty")
	}
	if got := m.ctrl.State.Datasets.SelectedIndex(); got != 1 {
		t.Fatalf("cursor should re-home to 1, got %d", got)
	}
}

func TestEditorCommitAddsRow(t *testing.T) {
	m := newTestModel(t)
	m.active = tabTimeline
	sec := tableSections[tabTimeline]

	m.openRowEditor(sec, -1)
	if m.editor == nil {
		t.Fatalf("expected editor overlay")
	}
	m.editor.inputs[0].SetValue("submit abstract")
	m.editor.commit(m.ctrl.State, m.editor.values())
	m.editor = nil

	items := m.ctrl.State.Milestones.Items()
	if len(items) != 1 || items[0].Name != "submit abstract" {
		t.Fatalf("editor commit should add the row: %#v", items)
	}
	if got := m.ctrl.State.Milestones.SelectedIndex(); got != 0 {
		t.Fatalf("new row should be selected, got %d", got)
	}
}

func TestFigurePaneFoldsAndWalks(t *testing.T) {
	m := newTestModel(t)
	m.ctrl.State.Figures = []*rows.FigureRow{
		{ID: "fig1", Children: []*rows.FigureRow{{ID: "fig1a"}, {ID: "fig1b"}}},
		{ID: "fig2"},
	}
	m.active = tabFigures
	p := m.figures

	if got := len(p.visible(m.ctrl.State)); got != 2 {
		t.Fatalf("collapsed tree should show roots only, got %d", got)
	}
	p.handleKey(m, " ")
	if got := len(p.visible(m.ctrl.State)); got != 4 {
		t.Fatalf("expanded tree should show children, got %d", got)
	}
	p.handleKey(m, "j")
	p.handleKey(m, "j")
	visible := p.visible(m.ctrl.State)
	if visible[p.cursor].node.ID != "fig1b" {
		t.Fatalf("cursor should walk into children, at %q", visible[p.cursor].node.ID)
	}
	p.handleKey(m, "d")
	if !m.dirty {
		t.Fatalf("figure delete must mark dirty")
	}
	if got := len(p.visible(m.ctrl.State)); got != 3 {
		t.Fatalf("expected 3 visible nodes after delete, got %d", got)
	}
}

func TestViewRendersActiveTab(t *testing.T) {
	m := newTestModel(t)
	m.active = tabDatasets
	view := m.View()
	if !strings.Contains(view, "retina-01") {
		t.Fatalf("dataset tab should list rows:\n%s", view)
	}
	if strings.Contains(view, "unsaved") {
		t.Fatalf("clean form must not show the dirty marker")
	}
}
