package tui

import (
	"strings"

	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/rows"
	"tableflip.dev/labjo/pkg/tui/theme"
)

// figurePane renders the publication figure tree. The cursor walks the
// flattened list of visible nodes; expansion state is remembered per
// node ID in the UI-state cache.
type figurePane struct {
	cursor   int
	expanded map[string]bool
}

// visibleNode is one row of the flattened tree.
type visibleNode struct {
	path  []int
	node  *rows.FigureRow
	depth int
}

func newFigurePane(s *form.State) *figurePane {
	return &figurePane{expanded: map[string]bool{}}
}

func (p *figurePane) visible(s *form.State) []visibleNode {
	var out []visibleNode
	var walk func(nodes []*rows.FigureRow, prefix []int, depth int)
	walk = func(nodes []*rows.FigureRow, prefix []int, depth int) {
		for i, n := range nodes {
			path := append(append([]int{}, prefix...), i)
			out = append(out, visibleNode{path: path, node: n, depth: depth})
			if p.expanded[n.ID] {
				walk(n.Children, path, depth+1)
			}
		}
	}
	walk(s.Figures, nil, 0)
	return out
}

func (p *figurePane) clamp(visible []visibleNode) {
	if p.cursor >= len(visible) {
		p.cursor = len(visible) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *figurePane) handleKey(m *Model, key string) {
	s := m.ctrl.State
	visible := p.visible(s)
	p.clamp(visible)

	switch key {
	case "down", "j":
		if p.cursor < len(visible)-1 {
			p.cursor++
		}
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case " ":
		if p.cursor < len(visible) {
			id := visible[p.cursor].node.ID
			p.expanded[id] = !p.expanded[id]
		}
	case "a":
		// New root figure.
		m.openFigureEditor(nil)
	case "c":
		if p.cursor < len(visible) {
			m.openFigureEditor(visible[p.cursor].path)
		}
	case "e", "enter":
		if p.cursor < len(visible) {
			m.editFigure(visible[p.cursor].path)
		}
	case "d":
		if p.cursor < len(visible) {
			if rows.DeleteFigure(&s.Figures, visible[p.cursor].path) {
				m.markDirty("figure deleted")
				p.clamp(p.visible(s))
			}
		}
	}
}

// openFigureEditor opens a blank editor for a child of parentPath; a
// nil parentPath adds a new root.
func (m *Model) openFigureEditor(parentPath []int) {
	fields := figureFields(&rows.FigureRow{})
	m.editor = newEditor("New figure node", fields, func(s *form.State, values []string) {
		row := &rows.FigureRow{}
		applyFigureFields(row, values)
		if path := rows.AddFigureChild(&s.Figures, parentPath, row); path != nil && len(parentPath) > 0 {
			m.figures.expanded[rows.FigureAt(s.Figures, parentPath).ID] = true
		}
	})
}

func (m *Model) editFigure(path []int) {
	node := rows.FigureAt(m.ctrl.State.Figures, path)
	if node == nil {
		return
	}
	m.editor = newEditor("Edit figure node", figureFields(node), func(s *form.State, values []string) {
		if target := rows.FigureAt(s.Figures, path); target != nil {
			applyFigureFields(target, values)
		}
	})
}

func figureFields(n *rows.FigureRow) []field {
	return []field{
		{"ID", n.ID},
		{"Kind", n.Kind},
		{"Output path", n.OutputPath},
		{"Source type", n.SourceType},
		{"Source ref", n.SourceRef},
		{"Inputs", n.Inputs},
		{"Status", n.Status},
		{"Description", n.Description},
	}
}

func applyFigureFields(n *rows.FigureRow, values []string) {
	n.ID, n.Kind, n.OutputPath = values[0], values[1], values[2]
	n.SourceType, n.SourceRef, n.Inputs = values[3], values[4], values[5]
	n.Status, n.Description = values[6], values[7]
}

func (p *figurePane) view(s *form.State, t theme.Theme) string {
	visible := p.visible(s)
	p.clamp(visible)

	if len(visible) == 0 {
		return t.Table.Empty.Render("no figures — press a to add")
	}

	var b strings.Builder
	b.WriteString(t.Table.Header.Render("Figures"))
	b.WriteString("\n")
	for i, v := range visible {
		marker := "  "
		if len(v.node.Children) > 0 {
			if p.expanded[v.node.ID] {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}
		line := strings.Repeat("  ", v.depth) + marker + v.node.ID
		if v.node.Status != "" {
			line += "  [" + v.node.Status + "]"
		}
		if i == p.cursor {
			b.WriteString(t.Table.Selected.Render("› " + line))
		} else {
			b.WriteString(t.Table.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString(t.Table.Empty.Render("space: fold  a: root  c: child  e: edit  d: delete"))
	return b.String()
}
