package rows

import "tableflip.dev/labjo/pkg/manifest"

// FigureRow is the editable form of one figure-tree node. Unlike the
// flat sections this is a tree: figure/panel containers hold children,
// leaf elements carry the render metadata. Params is an opaque blob the
// UI carries through untouched.
type FigureRow struct {
	ID          string
	Kind        string
	OutputPath  string
	SourceType  string
	SourceRef   string
	Inputs      string
	Params      map[string]interface{}
	Status      string
	Description string
	Children    []*FigureRow
}

// ExpandFigures produces an editable tree mirroring the document tree.
func ExpandFigures(nodes []manifest.FigureNode) []*FigureRow {
	out := make([]*FigureRow, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, expandFigure(n))
	}
	return out
}

func expandFigure(n manifest.FigureNode) *FigureRow {
	return &FigureRow{
		ID:          n.ID,
		Kind:        n.Kind,
		OutputPath:  n.OutputPath,
		SourceType:  n.SourceType,
		SourceRef:   n.SourceRef,
		Inputs:      JoinList(n.Inputs),
		Params:      n.Params,
		Status:      n.Status,
		Description: n.Description,
		Children:    ExpandFigures(n.Children),
	}
}

// CollectFigures serializes the tree preserving nesting. A node whose
// ID trims to empty is dropped along with its entire subtree.
func CollectFigures(items []*FigureRow) []manifest.FigureNode {
	out := make([]manifest.FigureNode, 0, len(items))
	for _, row := range items {
		if row == nil {
			continue
		}
		id := trimmed(row.ID)
		if id == "" {
			continue
		}
		out = append(out, manifest.FigureNode{
			ID:          id,
			Kind:        trimmed(row.Kind),
			OutputPath:  trimmed(row.OutputPath),
			SourceType:  trimmed(row.SourceType),
			SourceRef:   trimmed(row.SourceRef),
			Inputs:      SplitList(row.Inputs),
			Params:      row.Params,
			Status:      trimmed(row.Status),
			Description: trimmed(row.Description),
			Children:    CollectFigures(row.Children),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FigureAt resolves a node by its path position: each element of path
// indexes into the Children of the previous node, starting from roots.
func FigureAt(roots []*FigureRow, path []int) *FigureRow {
	if len(path) == 0 {
		return nil
	}
	siblings := roots
	var node *FigureRow
	for _, idx := range path {
		if idx < 0 || idx >= len(siblings) {
			return nil
		}
		node = siblings[idx]
		siblings = node.Children
	}
	return node
}

// AddFigureChild appends a child under the node at path. An empty path
// appends a new root. Returns the path of the inserted node, or nil when
// the parent does not exist.
func AddFigureChild(roots *[]*FigureRow, path []int, row *FigureRow) []int {
	if len(path) == 0 {
		*roots = append(*roots, row)
		return []int{len(*roots) - 1}
	}
	parent := FigureAt(*roots, path)
	if parent == nil {
		return nil
	}
	parent.Children = append(parent.Children, row)
	child := append(append([]int{}, path...), len(parent.Children)-1)
	return child
}

// AddFigureSibling inserts a row immediately after the node at path.
func AddFigureSibling(roots *[]*FigureRow, path []int, row *FigureRow) []int {
	if len(path) == 0 {
		return nil
	}
	idx := path[len(path)-1]
	siblings := siblingsOf(roots, path)
	if siblings == nil || idx < 0 || idx >= len(*siblings) {
		return nil
	}
	expanded := append(*siblings, nil)
	copy(expanded[idx+2:], expanded[idx+1:])
	expanded[idx+1] = row
	*siblings = expanded
	out := append([]int{}, path...)
	out[len(out)-1] = idx + 1
	return out
}

// DeleteFigure removes the node at path together with its subtree.
func DeleteFigure(roots *[]*FigureRow, path []int) bool {
	if len(path) == 0 {
		return false
	}
	idx := path[len(path)-1]
	siblings := siblingsOf(roots, path)
	if siblings == nil || idx < 0 || idx >= len(*siblings) {
		return false
	}
	*siblings = append((*siblings)[:idx], (*siblings)[idx+1:]...)
	return true
}

// siblingsOf returns the slice holding the node at path, so callers can
// mutate it in place.
func siblingsOf(roots *[]*FigureRow, path []int) *[]*FigureRow {
	if len(path) == 1 {
		return roots
	}
	parent := FigureAt(*roots, path[:len(path)-1])
	if parent == nil {
		return nil
	}
	return &parent.Children
}
