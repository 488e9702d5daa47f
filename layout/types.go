// Package layout resolves card identities on sheets of printed cards.
//
// Every grid cell of every active page gets a global index (page order, then
// row-major cell order). For a fixed Layout the package deterministically
// answers which face (front or back) the cell holds and which 1-based card
// number it carries within that face. Back faces of duplex and gutter-fold
// sheets carry the number of the front they are printed against.
//
// All functions are pure: inputs are treated as immutable values and nothing
// is retained between calls. Cache is an optional memoization layer.
package layout

import (
	"errors"
	"fmt"

	"cardcut/common"
)

var (
	ErrInvalidGrid = errors.New("invalid grid")
	ErrInvalidMode = errors.New("invalid processing mode")
	ErrTooLarge    = errors.New("layout is too large")
)

const (
	// MaxGridSide limits rows and columns of a grid, so cards per page
	// never overflow.
	MaxGridSide = 64
	// MaxCells limits number of cells a single layout may resolve.
	MaxCells = 1 << 20
)

// Grid is the rows x columns arrangement of cards on a page.
type Grid struct {
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`
}

func (g Grid) CardsPerPage() int {
	return g.Rows * g.Columns
}

func (g Grid) Validate() error {
	if g.Rows < 1 || g.Columns < 1 || g.Rows > MaxGridSide || g.Columns > MaxGridSide {
		return fmt.Errorf("%w: %dx%d, rows and columns must be within 1..%d", ErrInvalidGrid, g.Rows, g.Columns, MaxGridSide)
	}
	return nil
}

// cell converts in-page cell index to grid coordinates.
func (g Grid) cell(page, index int) CellRef {
	return CellRef{Page: page, Row: index / g.Columns, Column: index % g.Columns}
}

// index converts grid coordinates back to global index.
func (g Grid) index(c CellRef) int {
	return c.Page*g.CardsPerPage() + c.Row*g.Columns + c.Column
}

func (g Grid) contains(c CellRef) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Column >= 0 && c.Column < g.Columns
}

// Size is a page size. Units do not matter, only aspect ratio is used. Zero
// value means size is not known.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// FallbackSize is assumed when page dimensions are not known: portrait US
// Letter in points.
var FallbackSize = Size{Width: 612, Height: 792}

func (s Size) Known() bool {
	return s.Width > 0 && s.Height > 0
}

func (s Size) Landscape() bool {
	return s.Width > s.Height
}

// CellRef addresses a grid cell by its position in the active page list
// (after skipped pages were filtered out), not by source page number.
type CellRef struct {
	Page   int `json:"page" yaml:"page"`
	Row    int `json:"row" yaml:"row"`
	Column int `json:"column" yaml:"column"`
}

func (c CellRef) String() string {
	return fmt.Sprintf("p%d:r%d:c%d", c.Page, c.Row, c.Column)
}

// Override forces face of a single cell regardless of processing mode.
type Override struct {
	CellRef `yaml:",inline"`
	Type    common.CardType `json:"type" yaml:"type"`
}

// Page describes one active page.
type Page struct {
	// ID is a stable page identifier, not used in card numbering.
	ID   string
	Role common.PageRole
	// OriginalIndex is position of the page in the sources before filtering
	// and grouping. Passed through untouched.
	OriginalIndex int
	// Mode overrides Layout.Mode for this page when not nil.
	Mode Mode
	// Size overrides Layout.PageSize for this page when known.
	Size Size
}

// Layout is the complete input of the resolver.
type Layout struct {
	Pages     []Page
	Grid      Grid
	Mode      Mode
	Overrides []Override
	Skipped   []CellRef
	PageSize  Size
}

func (l *Layout) TotalCells() int {
	return len(l.Pages) * l.Grid.CardsPerPage()
}

func (l *Layout) Validate() error {
	if err := l.Grid.Validate(); err != nil {
		return err
	}
	if len(l.Pages) > MaxCells/l.Grid.CardsPerPage() {
		return fmt.Errorf("%w: %d pages of %d cards, at most %d cells", ErrTooLarge, len(l.Pages), l.Grid.CardsPerPage(), MaxCells)
	}
	if l.Mode == nil {
		return fmt.Errorf("%w: not specified", ErrInvalidMode)
	}
	if err := l.Mode.validate(); err != nil {
		return err
	}
	for i, p := range l.Pages {
		if p.Mode == nil {
			continue
		}
		if err := p.Mode.validate(); err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
	}
	return nil
}

func (l *Layout) pageMode(page int) Mode {
	if m := l.Pages[page].Mode; m != nil {
		return m
	}
	return l.Mode
}

func (l *Layout) pageSize(page int) Size {
	if s := l.Pages[page].Size; s.Known() {
		return s
	}
	return l.PageSize
}

// CardInfo is identity of the card held by a grid cell. ID is 0 when Type is
// unknown.
type CardInfo struct {
	ID   int             `json:"id"`
	Type common.CardType `json:"type"`
}

// Result is what resolver reports for a single global index.
type Result struct {
	Index   int      `json:"index"`
	Cell    CellRef  `json:"cell"`
	Card    CardInfo `json:"card"`
	Skipped bool     `json:"skipped,omitempty"`
	// UsedFallbackDimensions is set when mirroring needed page orientation and
	// FallbackSize had to be assumed.
	UsedFallbackDimensions bool `json:"used_fallback_dimensions,omitempty"`
}

// Renderable reports whether the cell should be extracted at all.
func (r Result) Renderable() bool {
	return !r.Skipped && r.Card.Type != common.CardTypeUnknown && r.Card.ID > 0
}
