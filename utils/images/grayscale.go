package images

import (
	"image"
	"image/color"
	"image/draw"
)

// IsGrayscale reports whether every pixel of img has equal color channels.
// Cropped cards usually come as NRGBA from imaging, their pixels are checked
// directly, anything else goes through color model conversion.
func IsGrayscale(img image.Image) bool {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	case *image.NRGBA:
		return grayPix(m.Pix, m.Stride, m.Rect)
	case *image.RGBA:
		return grayPix(m.Pix, m.Stride, m.Rect)
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R != c.G || c.G != c.B {
				return false
			}
		}
	}
	return true
}

// grayPix scans 4 bytes per pixel buffer, offsets follow image.NRGBA layout.
func grayPix(pix []byte, stride int, r image.Rectangle) bool {
	w := r.Dx() * 4
	for y := range r.Dy() {
		row := pix[y*stride : y*stride+w]
		for i := 0; i < w; i += 4 {
			if row[i] != row[i+1] || row[i+1] != row[i+2] {
				return false
			}
		}
	}
	return true
}

// ToGray converts image to single channel so it is encoded more compactly.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	return g
}
