package rows

import "testing"

func figureFixture() []*FigureRow {
	return []*FigureRow{
		{
			ID:   "fig1",
			Kind: "figure",
			Children: []*FigureRow{
				{ID: "fig1a", Kind: "panel", Children: []*FigureRow{
					{ID: "fig1a-raw", Kind: "element", OutputPath: "figs/fig1a.png"},
				}},
				{ID: "fig1b", Kind: "panel"},
			},
		},
		{ID: "fig2", Kind: "figure"},
	}
}

func TestFigureAt(t *testing.T) {
	roots := figureFixture()
	node := FigureAt(roots, []int{0, 0, 0})
	if node == nil || node.ID != "fig1a-raw" {
		t.Fatalf("unexpected node: %#v", node)
	}
	if FigureAt(roots, []int{0, 5}) != nil {
		t.Fatalf("out-of-range path should resolve to nil")
	}
	if FigureAt(roots, nil) != nil {
		t.Fatalf("empty path should resolve to nil")
	}
}

func TestAddFigureChild(t *testing.T) {
	roots := figureFixture()
	path := AddFigureChild(&roots, []int{1}, &FigureRow{ID: "fig2a", Kind: "panel"})
	if len(path) != 2 || path[0] != 1 || path[1] != 0 {
		t.Fatalf("unexpected insert path: %v", path)
	}
	if roots[1].Children[0].ID != "fig2a" {
		t.Fatalf("child not attached: %#v", roots[1])
	}

	rootPath := AddFigureChild(&roots, nil, &FigureRow{ID: "fig3"})
	if len(rootPath) != 1 || rootPath[0] != 2 {
		t.Fatalf("unexpected root path: %v", rootPath)
	}
}

func TestAddFigureSibling(t *testing.T) {
	roots := figureFixture()
	path := AddFigureSibling(&roots, []int{0, 0}, &FigureRow{ID: "fig1a2", Kind: "panel"})
	if len(path) != 2 || path[1] != 1 {
		t.Fatalf("unexpected sibling path: %v", path)
	}
	ids := []string{roots[0].Children[0].ID, roots[0].Children[1].ID, roots[0].Children[2].ID}
	want := []string{"fig1a", "fig1a2", "fig1b"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("sibling order wrong: %v", ids)
		}
	}
}

func TestDeleteFigureSubtree(t *testing.T) {
	roots := figureFixture()
	if !DeleteFigure(&roots, []int{0, 0}) {
		t.Fatalf("delete failed")
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ID != "fig1b" {
		t.Fatalf("subtree not removed: %#v", roots[0].Children)
	}
	if DeleteFigure(&roots, []int{9}) {
		t.Fatalf("out-of-range delete should report false")
	}
}

func TestCollectFiguresDropsEmptyIDSubtree(t *testing.T) {
	roots := []*FigureRow{
		{ID: "fig1", Children: []*FigureRow{
			{ID: "  ", Children: []*FigureRow{{ID: "ghost-child"}}},
			{ID: "fig1b"},
		}},
	}
	got := CollectFigures(roots)
	if len(got) != 1 {
		t.Fatalf("expected one root")
	}
	if len(got[0].Children) != 1 || got[0].Children[0].ID != "fig1b" {
		t.Fatalf("empty-id subtree must vanish entirely: %#v", got[0].Children)
	}
}

func TestFiguresExpandCollectRoundTrip(t *testing.T) {
	in := CollectFigures(figureFixture())
	back := CollectFigures(ExpandFigures(in))
	if len(back) != len(in) {
		t.Fatalf("round trip changed root count")
	}
	if back[0].Children[0].Children[0].OutputPath != "figs/fig1a.png" {
		t.Fatalf("leaf metadata lost: %#v", back[0])
	}
}

func TestCollectFiguresInputs(t *testing.T) {
	got := CollectFigures([]*FigureRow{
		{ID: "fig1", Inputs: "a.tif, b.tif\n c.tif , "},
	})
	want := []string{"a.tif", "b.tif", "c.tif"}
	if len(got[0].Inputs) != 3 {
		t.Fatalf("inputs wrong: %#v", got[0].Inputs)
	}
	for i := range want {
		if got[0].Inputs[i] != want[i] {
			t.Fatalf("inputs wrong: %#v", got[0].Inputs)
		}
	}
}
