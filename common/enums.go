// Package common holds enumerations shared by the resolver, configuration and
// project file so that none of them has to import the others.
package common

//go:generate go tool go-enum --marshal --names --values --mustparse

// Type of a card face produced by a grid cell.
// ENUM(unknown, front, back)
type CardType int

// Opposite returns the other face, unknown stays unknown.
func (t CardType) Opposite() CardType {
	switch t {
	case CardTypeFront:
		return CardTypeBack
	case CardTypeBack:
		return CardTypeFront
	default:
		return CardTypeUnknown
	}
}

// Role tag of a source page. None lets processing mode decide.
// ENUM(none, front, back)
type PageRole int

// Edge of the sheet a duplex printer flips the paper about.
// ENUM(short, long)
type FlipEdge int

// Direction of the gutter line separating fronts from backs on a gutter-fold
// page. Vertical gutter puts fronts on the left half, horizontal on the top.
// ENUM(vertical, horizontal)
type GutterOrientation int

// Processing mode of a page.
// ENUM(simplex, duplex, gutter-fold)
type ModeType int

// Output encoding of extracted card images.
// ENUM(png, jpeg)
type ImageFormat int

func (f ImageFormat) Ext() string {
	switch f {
	case ImageFormatPng:
		return ".png"
	case ImageFormatJpeg:
		return ".jpg"
	default:
		// this should never happen
		panic("unsupported image format requested")
	}
}
