package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/tui/theme"
)

// editor is the row edit overlay: one text input per field, tab to
// move between them, enter to commit, esc to abandon.
type editor struct {
	title  string
	inputs []textinput.Model
	labels []string
	focus  int

	commit func(s *form.State, values []string)
}

func newEditor(title string, fields []field, commit func(*form.State, []string)) *editor {
	e := &editor{title: title, commit: commit}
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.SetValue(f.Value)
		if i == 0 {
			in.Focus()
		}
		e.inputs = append(e.inputs, in)
		e.labels = append(e.labels, f.Label)
	}
	return e
}

func (m *Model) openRowEditor(sec section, index int) {
	fields := sec.Fields(m.ctrl.State, index)
	m.editor = newEditor(sec.Title(), fields, func(s *form.State, values []string) {
		sec.Apply(s, index, values)
	})
}

func (m *Model) openProjectEditor() {
	s := m.ctrl.State
	fields := []field{
		{"Name", s.Project.Name},
		{"Status", s.Project.Status},
		{"Tags", s.Project.Tags},
		{"Analyst", s.People.Analyst},
	}
	m.editor = newEditor("Project", fields, func(s *form.State, values []string) {
		s.Project.Name, s.Project.Status, s.Project.Tags = values[0], values[1], values[2]
		s.People.Analyst = values[3]
	})
}

func (m *Model) updateEditor(v tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	switch v.String() {
	case "esc":
		m.editor = nil
		m.status = "edit cancelled"
		return m, nil
	case "enter":
		e.commit(m.ctrl.State, e.values())
		m.editor = nil
		m.markDirty("edited " + e.title + " — ctrl+s to save")
		return m, nil
	case "tab", "down":
		e.setFocus((e.focus + 1) % len(e.inputs))
		return m, nil
	case "shift+tab", "up":
		e.setFocus((e.focus + len(e.inputs) - 1) % len(e.inputs))
		return m, nil
	}

	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(v)
	return m, cmd
}

func (e *editor) setFocus(i int) {
	e.inputs[e.focus].Blur()
	e.focus = i
	e.inputs[e.focus].Focus()
}

func (e *editor) values() []string {
	out := make([]string, len(e.inputs))
	for i, in := range e.inputs {
		out[i] = in.Value()
	}
	return out
}

func (e *editor) view(t theme.Theme) string {
	var b strings.Builder
	b.WriteString(t.Editor.Title.Render(e.title))
	b.WriteString("\n\n")
	for i, in := range e.inputs {
		label := t.Editor.Label.Render(e.labels[i] + ": ")
		if i == e.focus {
			label = t.Editor.Focus.Render(e.labels[i] + ": ")
		}
		b.WriteString(label)
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.Editor.Label.Render("enter: apply  esc: cancel  tab: next field"))
	return t.Editor.Frame.Render(b.String())
}
