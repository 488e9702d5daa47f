package layout

import (
	"testing"

	"cardcut/common"
)

func TestApplyGroups_DoesNotChangeIdentity(t *testing.T) {
	duplex := Duplex{FlipEdge: common.FlipEdgeShort}
	pages := rolePages(front, back, front, back)

	ungrouped := &Layout{
		Pages: pages,
		Grid:  Grid{Rows: 2, Columns: 3},
		Mode:  duplex,
	}

	variants := map[string][]Group{
		"two groups": {
			{Name: "first", PageIndices: []int{0, 1}, Mode: duplex},
			{Name: "second", PageIndices: []int{2, 3}, Mode: duplex},
		},
		"reordered and renamed": {
			{Name: "b", PageIndices: []int{3, 2}, Mode: duplex},
			{Name: "a", PageIndices: []int{1, 0}, Mode: duplex},
		},
		"single group": {
			{Name: "all", PageIndices: []int{0, 1, 2, 3}, Mode: duplex},
		},
		"no groups": nil,
	}

	want := mustPlan(t, ungrouped)
	if want.TotalCells() != 24 {
		t.Fatalf("TotalCells() = %d, want 24", want.TotalCells())
	}

	for name, groups := range variants {
		t.Run(name, func(t *testing.T) {
			l := &Layout{
				Pages: ApplyGroups(pages, groups),
				Grid:  ungrouped.Grid,
				Mode:  duplex,
			}
			if groups != nil {
				// every page is grouped, so layout-wide mode must not matter
				l.Mode = Simplex{}
			}
			got := mustPlan(t, l)
			for i := range want.TotalCells() {
				if got.Resolve(i) != want.Resolve(i) {
					t.Errorf("Resolve(%d) = %+v, want %+v", i, got.Resolve(i), want.Resolve(i))
				}
			}
		})
	}
}

func TestApplyGroups_DanglingIndices(t *testing.T) {
	pages := untaggedPages(1)
	groups := []Group{{Name: "broken", PageIndices: []int{0, 5, 10, -3}, Mode: Simplex{}}}

	out := ApplyGroups(pages, groups)
	if len(out) != 1 {
		t.Fatalf("ApplyGroups() returned %d pages, want 1", len(out))
	}

	l := &Layout{
		Pages: out,
		Grid:  Grid{Rows: 2, Columns: 2},
		Mode:  Duplex{FlipEdge: common.FlipEdgeLong},
	}
	p := mustPlan(t, l)
	for i := range 4 {
		r := p.Resolve(i)
		if r.Card != (CardInfo{ID: i + 1, Type: common.CardTypeFront}) {
			t.Errorf("Resolve(%d) = %+v, want front %d", i, r.Card, i+1)
		}
	}
	if r := p.Resolve(4); r.Card.Type != common.CardTypeUnknown {
		t.Errorf("Resolve(4) = %+v, want unknown", r.Card)
	}
}

func TestApplyGroups_KeepsInputAndOrder(t *testing.T) {
	pages := rolePages(front, back, front)
	out := ApplyGroups(pages, []Group{
		{Name: "fold", PageIndices: []int{2}, Mode: GutterFold{Orientation: common.GutterOrientationVertical}},
		{Name: "late", PageIndices: []int{2}, Mode: Simplex{}},
		{Name: "modeless", PageIndices: []int{0}},
	})

	for i := range pages {
		if pages[i].Mode != nil {
			t.Errorf("input page %d was modified", i)
		}
		if out[i].OriginalIndex != i || out[i].Role != pages[i].Role {
			t.Errorf("page %d = %+v, order or role changed", i, out[i])
		}
	}
	if _, ok := out[2].Mode.(GutterFold); !ok {
		t.Errorf("page 2 mode = %v, want first group's gutter fold", out[2].Mode)
	}
	if out[0].Mode != nil {
		t.Errorf("page 0 mode = %v, want nil for modeless group", out[0].Mode)
	}
}
