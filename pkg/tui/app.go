// Package tui implements the interactive manifest form: tabbed
// sections over the shared row lists, a row editor overlay, the figure
// tree, and a work-log pane. All mutation flows through the form
// controller so saves follow the backup-then-reject protocol.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/manifest"
	"tableflip.dev/labjo/pkg/store"
	"tableflip.dev/labjo/pkg/tui/theme"
	"tableflip.dev/labjo/pkg/worklog"
)

const (
	tabProject = iota
	tabDatasets
	tabSessions
	tabPeople
	tabTimeline
	tabFigures
	tabWorklog
	tabCount
)

var tabTitles = [tabCount]string{
	"Project", "Datasets", "Acquisition", "People", "Timeline", "Figures", "Work log",
}

var tableSections = map[int]section{
	tabDatasets: datasetSection{},
	tabSessions: sessionSection{},
	tabPeople:   collaboratorSection{},
	tabTimeline: milestoneSection{},
}

type fileChangedMsg struct{ event store.Event }

type savedMsg struct {
	result *form.SaveResult
	err    error
}

// Model is the root Bubble Tea model for the form UI.
type Model struct {
	ctrl    *form.Controller
	uiStore *store.UIStateStore
	log     *worklog.Log

	width  int
	height int

	theme  theme.Theme
	active int
	dirty  bool
	status string
	errs   manifest.ValidationErrors

	editor  *editor
	figures *figurePane

	watch <-chan store.Event
}

// New builds the form UI over a loaded controller.
func New(ctrl *form.Controller, uiStore *store.UIStateStore, log *worklog.Log) *Model {
	m := &Model{
		ctrl:    ctrl,
		uiStore: uiStore,
		log:     log,
		theme:   theme.Default(),
		status:  "Ready",
	}
	m.figures = newFigurePane(ctrl.State)
	m.restoreUIState()
	return m
}

// Run launches the program, watching the project files for external
// changes while it runs.
func Run(ctx context.Context, ctrl *form.Controller, uiStore *store.UIStateStore, log *worklog.Log) error {
	m := New(ctrl, uiStore, log)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if events, err := store.Watch(watchCtx, ctrl.Paths); err == nil {
		m.watch = events
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.persistUIState()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.watch
		if !ok {
			return nil
		}
		return fileChangedMsg{event: ev}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		return m, nil

	case fileChangedMsg:
		// External edits win unless the form has unsaved work.
		if !m.dirty {
			m.reload()
		} else {
			m.status = "files changed on disk; save or quit to pick up changes"
		}
		return m, m.waitForChange()

	case savedMsg:
		return m.handleSaved(v)

	case tea.KeyMsg:
		return m.handleKey(v)
	}
	return m, nil
}

func (m *Model) handleKey(v tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editor != nil {
		return m.updateEditor(v)
	}

	switch v.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.active = (m.active + 1) % tabCount
		return m, nil
	case "shift+tab", "left", "h":
		m.active = (m.active + tabCount - 1) % tabCount
		return m, nil
	case "ctrl+s":
		return m, m.save()
	}

	if m.active == tabFigures {
		m.figures.handleKey(m, v.String())
		return m, nil
	}
	if sec, ok := tableSections[m.active]; ok {
		return m.handleTableKey(sec, v.String())
	}
	if m.active == tabProject && (v.String() == "e" || v.String() == "enter") {
		m.openProjectEditor()
	}
	return m, nil
}

func (m *Model) handleTableKey(sec section, key string) (tea.Model, tea.Cmd) {
	s := m.ctrl.State
	switch key {
	case "down", "j":
		sec.Select(s, sec.SelectedIndex(s)+1)
	case "up", "k":
		if i := sec.SelectedIndex(s); i > 0 {
			sec.Select(s, i-1)
		}
	case "a":
		m.openRowEditor(sec, -1)
	case "e", "enter":
		if i := sec.SelectedIndex(s); i >= 0 {
			m.openRowEditor(sec, i)
		}
	case "d":
		if i := sec.SelectedIndex(s); i >= 0 && sec.Delete(s, i) {
			m.markDirty("row deleted")
		}
	}
	return m, nil
}

func (m *Model) markDirty(status string) {
	m.dirty = true
	m.status = status
}

func (m *Model) save() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		result, err := ctrl.Save(time.Now())
		return savedMsg{result: result, err: err}
	}
}

func (m *Model) handleSaved(v savedMsg) (tea.Model, tea.Cmd) {
	if v.err != nil {
		m.status = v.err.Error()
		return m, nil
	}
	if !v.result.OK() {
		m.errs = v.result.Errors
		m.status = fmt.Sprintf("not saved: %d problem(s); previous manifest backed up", len(v.result.Errors))
		return m, nil
	}
	m.errs = nil
	m.dirty = false
	m.status = "saved " + v.result.Path
	if len(v.result.Warnings) > 0 {
		m.status += " (" + strings.Join(v.result.Warnings, "; ") + ")"
	}
	return m, nil
}

func (m *Model) reload() {
	if _, err := m.ctrl.Load(time.Now()); err != nil {
		m.status = err.Error()
		return
	}
	m.figures = newFigurePane(m.ctrl.State)
	m.restoreUIState()
	m.status = "reloaded from disk"
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.editor != nil {
		b.WriteString(m.editor.view(m.theme))
	} else {
		b.WriteString(m.viewBody())
	}

	if len(m.errs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.viewErrors())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *Model) viewTabs() string {
	parts := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		style := m.theme.Tabs.Inactive
		if i == m.active {
			style = m.theme.Tabs.Active
		}
		parts = append(parts, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) viewBody() string {
	switch m.active {
	case tabProject:
		return m.viewProject()
	case tabFigures:
		return m.figures.view(m.ctrl.State, m.theme)
	case tabWorklog:
		return m.viewWorklog()
	default:
		return m.viewTable(tableSections[m.active])
	}
}

func (m *Model) viewProject() string {
	s := m.ctrl.State
	t := m.theme.Table
	lines := []string{
		t.Header.Render("Project"),
		"  name:    " + s.Project.Name,
		"  status:  " + s.Project.Status,
		"  tags:    " + s.Project.Tags,
		"  analyst: " + s.People.Analyst,
		"",
		t.Empty.Render("press e to edit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewTable(sec section) string {
	s := m.ctrl.State
	t := m.theme.Table

	var b strings.Builder
	b.WriteString(t.Header.Render(strings.Join(sec.Columns(), "  ")))
	b.WriteString("\n")

	tableRows := sec.Rows(s)
	if len(tableRows) == 0 {
		b.WriteString(t.Empty.Render("none — press a to add"))
		return b.String()
	}

	selected := sec.SelectedIndex(s)
	for i, row := range tableRows {
		line := strings.Join(row, "  ")
		if i == selected {
			b.WriteString(t.Selected.Render("› " + line))
		} else {
			b.WriteString(t.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewWorklog() string {
	if m.log == nil || len(m.log.Tasks) == 0 {
		return m.theme.Table.Empty.Render("no work logged")
	}
	now := time.Now()
	var b strings.Builder
	b.WriteString(m.theme.Table.Header.Render("Task  Status  Worked"))
	b.WriteString("\n")
	for _, task := range m.log.Tasks {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			task.Name, task.Status, task.Duration(now).Round(time.Minute)))
	}
	return b.String()
}

func (m *Model) viewErrors() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	var b strings.Builder
	for _, e := range m.errs {
		b.WriteString(m.theme.Error.Render(wordwrap.String("✘ "+e.Error(), width)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewFooter() string {
	f := m.theme.Footer
	help := "tab: section  a: add  e: edit  d: delete  ctrl+s: save  q: quit"
	status := m.status
	if m.dirty {
		status = f.Dirty.Render("● unsaved") + " " + status
	}
	return f.Help.Render(help) + "\n" + f.Status.Render(status)
}

func (m *Model) restoreUIState() {
	if m.uiStore == nil {
		return
	}
	state := m.uiStore.Load(m.ctrl.Paths.Root)
	for i, title := range tabTitles {
		if title == state.ActiveTab {
			m.active = i
		}
	}
	s := m.ctrl.State
	for name, idx := range state.Selections {
		if sec, ok := sectionByTitle(name); ok {
			sec.Select(s, idx)
		}
	}
	m.figures.expanded = map[string]bool{}
	for _, id := range state.ExpandedFigures {
		m.figures.expanded[id] = true
	}
}

func (m *Model) persistUIState() {
	if m.uiStore == nil {
		return
	}
	state := store.UIState{
		ActiveTab:  tabTitles[m.active],
		Selections: map[string]int{},
	}
	s := m.ctrl.State
	for _, sec := range tableSections {
		state.Selections[sec.Title()] = sec.SelectedIndex(s)
	}
	for id, open := range m.figures.expanded {
		if open {
			state.ExpandedFigures = append(state.ExpandedFigures, id)
		}
	}
	// Navigation state is convenience only; losing it is fine.
	_ = m.uiStore.Save(m.ctrl.Paths.Root, state)
}

func sectionByTitle(title string) (section, bool) {
	for _, sec := range tableSections {
		if sec.Title() == title {
			return sec, true
		}
	}
	return nil, false
}
