package layout

import (
	"testing"

	"cardcut/common"
)

var (
	portrait  = Size{Width: 612, Height: 792}
	landscape = Size{Width: 792, Height: 612}
)

func TestMirror(t *testing.T) {
	g := Grid{Rows: 2, Columns: 3}

	tests := []struct {
		name     string
		cell     CellRef
		edge     common.FlipEdge
		size     Size
		want     CellRef
		fallback bool
	}{
		{"portrait long reverses columns", CellRef{Row: 0, Column: 0}, common.FlipEdgeLong, portrait, CellRef{Row: 0, Column: 2}, false},
		{"portrait short reverses rows", CellRef{Row: 0, Column: 0}, common.FlipEdgeShort, portrait, CellRef{Row: 1, Column: 0}, false},
		{"landscape long reverses rows", CellRef{Row: 0, Column: 1}, common.FlipEdgeLong, landscape, CellRef{Row: 1, Column: 1}, false},
		{"landscape short reverses columns", CellRef{Row: 1, Column: 0}, common.FlipEdgeShort, landscape, CellRef{Row: 1, Column: 2}, false},
		{"middle column stays", CellRef{Row: 1, Column: 1}, common.FlipEdgeLong, portrait, CellRef{Row: 1, Column: 1}, false},
		{"unknown size assumes portrait", CellRef{Row: 0, Column: 0}, common.FlipEdgeShort, Size{}, CellRef{Row: 1, Column: 0}, true},
		{"partial size is unknown", CellRef{Row: 0, Column: 0}, common.FlipEdgeLong, Size{Width: 800}, CellRef{Row: 0, Column: 2}, true},
		{"page is preserved", CellRef{Page: 7, Row: 1, Column: 2}, common.FlipEdgeLong, portrait, CellRef{Page: 7, Row: 1, Column: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fallback := Mirror(tt.cell, g, tt.edge, tt.size)
			if got != tt.want {
				t.Errorf("Mirror() = %v, want %v", got, tt.want)
			}
			if fallback != tt.fallback {
				t.Errorf("Mirror() fallback = %v, want %v", fallback, tt.fallback)
			}
		})
	}
}

func TestMirror_IsInvolution(t *testing.T) {
	g := Grid{Rows: 3, Columns: 4}
	for _, size := range []Size{portrait, landscape} {
		for _, edge := range common.FlipEdgeValues() {
			for r := range g.Rows {
				for c := range g.Columns {
					cell := CellRef{Row: r, Column: c}
					once, _ := Mirror(cell, g, edge, size)
					twice, _ := Mirror(once, g, edge, size)
					if twice != cell {
						t.Errorf("Mirror(Mirror(%v)) = %v for %s edge, size %v", cell, twice, edge, size)
					}
				}
			}
		}
	}
}

func TestFoldPartner(t *testing.T) {
	tests := []struct {
		name    string
		grid    Grid
		o       common.GutterOrientation
		cell    CellRef
		want    CellRef
		wantTyp common.CardType
	}{
		{"vertical left is front", Grid{Rows: 2, Columns: 4}, common.GutterOrientationVertical, CellRef{Row: 1, Column: 1}, CellRef{Row: 1, Column: 1}, common.CardTypeFront},
		{"vertical right folds over gutter", Grid{Rows: 2, Columns: 4}, common.GutterOrientationVertical, CellRef{Row: 1, Column: 2}, CellRef{Row: 1, Column: 1}, common.CardTypeBack},
		{"vertical outermost pairs outermost", Grid{Rows: 2, Columns: 4}, common.GutterOrientationVertical, CellRef{Row: 0, Column: 3}, CellRef{Row: 0, Column: 0}, common.CardTypeBack},
		{"horizontal top is front", Grid{Rows: 4, Columns: 2}, common.GutterOrientationHorizontal, CellRef{Row: 0, Column: 1}, CellRef{Row: 0, Column: 1}, common.CardTypeFront},
		{"horizontal bottom folds up", Grid{Rows: 4, Columns: 2}, common.GutterOrientationHorizontal, CellRef{Row: 3, Column: 1}, CellRef{Row: 0, Column: 1}, common.CardTypeBack},
		{"odd middle lane is gutter", Grid{Rows: 3, Columns: 2}, common.GutterOrientationHorizontal, CellRef{Row: 1, Column: 0}, CellRef{Row: 1, Column: 0}, common.CardTypeUnknown},
		{"single lane has no halves", Grid{Rows: 2, Columns: 1}, common.GutterOrientationVertical, CellRef{Row: 0, Column: 0}, CellRef{Row: 0, Column: 0}, common.CardTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, typ := FoldPartner(tt.cell, tt.grid, tt.o)
			if typ != tt.wantTyp {
				t.Errorf("FoldPartner() type = %v, want %v", typ, tt.wantTyp)
			}
			if got != tt.want {
				t.Errorf("FoldPartner() = %v, want %v", got, tt.want)
			}
		})
	}
}
