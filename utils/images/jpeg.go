package images

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/jpeg"
)

// DensityUnit is JFIF density unit byte.
type DensityUnit uint8

const (
	DensityAspect DensityUnit = iota
	DensityPerInch
	DensityPerCm
)

var (
	jpegSOI  = []byte{0xFF, 0xD8}
	jpegAPP0 = []byte{0xFF, 0xE0}
	jfifID   = []byte("JFIF\x00")
)

// offsets inside JFIF APP0 segment counting from its marker
const (
	jfifUnitsAt = 2 + 2 + 5 + 2
	jfifSize    = 2 + 16
)

// StampJPEG records dpi in JFIF header of encoded image. Existing JFIF
// segment is updated in place (on a copy), missing one is inserted after SOI.
// Printing software assumes 72 dpi when density is absent.
func StampJPEG(data []byte, unit DensityUnit, dpi int) ([]byte, error) {
	if len(data) < 4 || !bytes.Equal(data[:2], jpegSOI) {
		return nil, errors.New("not a jpeg")
	}
	if dpi <= 0 || dpi > 0xFFFF {
		return nil, errors.New("density out of range")
	}

	seg := data[2:]
	if bytes.HasPrefix(seg, jpegAPP0) && len(seg) >= jfifSize && bytes.Equal(seg[4:9], jfifID) {
		out := bytes.Clone(data)
		density(out[2+jfifUnitsAt:], unit, dpi)
		return out, nil
	}

	out := make([]byte, 0, len(data)+jfifSize)
	out = append(out, jpegSOI...)
	out = append(out, jpegAPP0...)
	out = binary.BigEndian.AppendUint16(out, jfifSize-2)
	out = append(out, jfifID...)
	out = append(out, 1, 2) // version 1.02
	out = append(out, make([]byte, 5)...)
	out = append(out, 0, 0) // no thumbnail
	density(out[2+jfifUnitsAt:], unit, dpi)
	return append(out, seg...), nil
}

func density(b []byte, unit DensityUnit, dpi int) {
	b[0] = byte(unit)
	binary.BigEndian.PutUint16(b[1:], uint16(dpi))
	binary.BigEndian.PutUint16(b[3:], uint16(dpi))
}

// EncodeJPEGWithDPI encodes image stamping it with dpi pixels per inch.
func EncodeJPEGWithDPI(img image.Image, quality, dpi int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return StampJPEG(buf.Bytes(), DensityPerInch, dpi)
}
