package extract

import (
	"fmt"
	"image"

	"cardcut/layout"
)

// Margins are cropped off page image before it is split into cells. Values
// are in pixels of the rendered page, so PDF margins depend on extraction
// resolution.
type Margins struct {
	Top    int `json:"top" yaml:"top" validate:"gte=0"`
	Right  int `json:"right" yaml:"right" validate:"gte=0"`
	Bottom int `json:"bottom" yaml:"bottom" validate:"gte=0"`
	Left   int `json:"left" yaml:"left" validate:"gte=0"`
}

// Content returns part of bounds left after cropping margins.
func (m Margins) Content(bounds image.Rectangle) (image.Rectangle, error) {
	r := image.Rect(bounds.Min.X+m.Left, bounds.Min.Y+m.Top, bounds.Max.X-m.Right, bounds.Max.Y-m.Bottom)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return image.Rectangle{}, fmt.Errorf("margins %+v leave nothing of %v", m, bounds)
	}
	return r, nil
}

// CellRect returns rectangle of the grid cell inside content area. Content is
// split evenly, remainder pixels go to the last row and column.
func CellRect(content image.Rectangle, g layout.Grid, row, column int) image.Rectangle {
	w, h := content.Dx()/g.Columns, content.Dy()/g.Rows
	r := image.Rect(
		content.Min.X+column*w, content.Min.Y+row*h,
		content.Min.X+(column+1)*w, content.Min.Y+(row+1)*h,
	)
	if column == g.Columns-1 {
		r.Max.X = content.Max.X
	}
	if row == g.Rows-1 {
		r.Max.Y = content.Max.Y
	}
	return r
}
