package layout

import (
	"fmt"

	"cardcut/common"
)

// Mode is processing mode of a page: Simplex, Duplex or GutterFold. The set
// is closed, values from other packages cannot satisfy it.
type Mode interface {
	Type() common.ModeType
	String() string
	validate() error
}

// Simplex pages hold fronts only.
type Simplex struct{}

// Duplex pages are either fronts or backs according to their role tag. Backs
// are mirrored against fronts the way the printer flips the sheet.
type Duplex struct {
	FlipEdge common.FlipEdge
}

// GutterFold pages hold fronts in one half and backs in the other, folded
// along the gutter.
type GutterFold struct {
	Orientation common.GutterOrientation
}

func (Simplex) Type() common.ModeType    { return common.ModeTypeSimplex }
func (Duplex) Type() common.ModeType     { return common.ModeTypeDuplex }
func (GutterFold) Type() common.ModeType { return common.ModeTypeGutterFold }

func (Simplex) validate() error { return nil }

func (m Duplex) validate() error {
	if !m.FlipEdge.IsValid() {
		return fmt.Errorf("%w: duplex flip edge %s", ErrInvalidMode, m.FlipEdge)
	}
	return nil
}

func (m GutterFold) validate() error {
	if !m.Orientation.IsValid() {
		return fmt.Errorf("%w: gutter orientation %s", ErrInvalidMode, m.Orientation)
	}
	return nil
}

func (Simplex) String() string  { return common.ModeTypeSimplex.String() }
func (m Duplex) String() string { return common.ModeTypeDuplex.String() + "/" + m.FlipEdge.String() }
func (m GutterFold) String() string {
	return common.ModeTypeGutterFold.String() + "/" + m.Orientation.String()
}
