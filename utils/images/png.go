package images

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// EnsurePNGPhys inserts pHYs chunk with pixel density right after IHDR when
// the image has none. Density is given in pixels per inch and stored in
// pixels per meter as PNG requires.
func EnsurePNGPhys(pngData []byte, dpi int) ([]byte, bool, error) {
	// signature + IHDR (length, type, 13 bytes of data, crc)
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	if len(pngData) < ihdrEnd || !bytes.Equal(pngData[:8], pngSignature) {
		return nil, false, errors.New("not a png")
	}
	if string(pngData[12:16]) != "IHDR" {
		return nil, false, errors.New("png does not start with IHDR")
	}
	if bytes.Contains(pngData, []byte("pHYs")) {
		return pngData, false, nil
	}

	ppm := uint32(float64(dpi)/0.0254 + 0.5)

	chunk := new(bytes.Buffer)
	_ = binary.Write(chunk, binary.BigEndian, uint32(9))
	body := new(bytes.Buffer)
	body.WriteString("pHYs")
	_ = binary.Write(body, binary.BigEndian, ppm)
	_ = binary.Write(body, binary.BigEndian, ppm)
	body.WriteByte(1) // unit is meter
	chunk.Write(body.Bytes())
	_ = binary.Write(chunk, binary.BigEndian, crc32.ChecksumIEEE(body.Bytes()))

	out := make([]byte, 0, len(pngData)+chunk.Len())
	out = append(out, pngData[:ihdrEnd]...)
	out = append(out, chunk.Bytes()...)
	out = append(out, pngData[ihdrEnd:]...)
	return out, true, nil
}

// EncodePNGWithDPI encodes image stamping it with dpi pixels per inch.
func EncodePNGWithDPI(img image.Image, dpi int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	out, _, err := EnsurePNGPhys(buf.Bytes(), dpi)
	if err != nil {
		return nil, err
	}
	return out, nil
}
