package layout

import (
	"cardcut/common"
)

// Mirror returns the cell on the facing side of the sheet that lands behind
// cell c after the sheet is flipped about the given edge. Page of the result
// is left unchanged. The boolean reports that size was unknown and
// FallbackSize was used to decide page orientation.
//
// Flipping a sheet reverses the axis perpendicular to the edge it turns
// about. The long edge of a portrait sheet runs top to bottom, so a long edge
// flip reverses columns and a short edge flip reverses rows. On a landscape
// sheet the long edge runs left to right and the relation is the other way
// around. This is the inverse of the rule sometimes quoted for duplex printing
// (portrait short edge reverses columns), which does not match a real flip.
func Mirror(c CellRef, g Grid, edge common.FlipEdge, size Size) (CellRef, bool) {
	fallback := !size.Known()
	if fallback {
		size = FallbackSize
	}
	if (edge == common.FlipEdgeLong) != size.Landscape() {
		c.Column = g.Columns - 1 - c.Column
	} else {
		c.Row = g.Rows - 1 - c.Row
	}
	return c, fallback
}

// FoldPartner classifies cell c of a gutter-fold page and, for back cells,
// returns the front cell it is glued to after folding along the gutter.
// Vertical gutter splits columns (fronts on the left), horizontal gutter
// splits rows (fronts on top). When the split lane count is odd the middle
// lane lies under the gutter and is unknown.
func FoldPartner(c CellRef, g Grid, o common.GutterOrientation) (CellRef, common.CardType) {
	lanes, pos := g.Columns, c.Column
	if o == common.GutterOrientationHorizontal {
		lanes, pos = g.Rows, c.Row
	}
	half := lanes / 2

	switch {
	case pos < half:
		return c, common.CardTypeFront
	case pos >= lanes-half:
		partner := lanes - 1 - pos
		if o == common.GutterOrientationHorizontal {
			c.Row = partner
		} else {
			c.Column = partner
		}
		return c, common.CardTypeBack
	default:
		return c, common.CardTypeUnknown
	}
}
