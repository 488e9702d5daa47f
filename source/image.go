package source

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"cardcut/layout"
)

// imageDoc is a single page raster source. Image is decoded on every render
// so only one page image per worker is kept in memory.
type imageDoc struct {
	path string
	data []byte
	info PageInfo
}

func openImageFile(path, name string, dpi int) (*imageDoc, error) {
	d := &imageDoc{path: path, info: PageInfo{Source: name}}
	return d, d.measure(dpi)
}

func openImageData(data []byte, name string, dpi int) (*imageDoc, error) {
	d := &imageDoc{data: data, info: PageInfo{Source: name}}
	return d, d.measure(dpi)
}

// measure derives physical size from pixel dimensions at dpi. Image is fully
// decoded here so EXIF orientation is taken into account.
func (d *imageDoc) measure(dpi int) error {
	img, err := d.decode()
	if err != nil {
		return fmt.Errorf("unable to decode image: %w", err)
	}
	b := img.Bounds()
	d.info.Size = layout.Size{
		Width:  float64(b.Dx()) * 72 / float64(dpi),
		Height: float64(b.Dy()) * 72 / float64(dpi),
	}
	return nil
}

func (d *imageDoc) decode() (image.Image, error) {
	if d.data != nil {
		return imaging.Decode(bytes.NewReader(d.data), imaging.AutoOrientation(true))
	}
	return imaging.Open(d.path, imaging.AutoOrientation(true))
}

func (d *imageDoc) pages() []PageInfo {
	return []PageInfo{d.info}
}

func (d *imageDoc) render(context.Context, int, int) (image.Image, error) {
	return d.decode()
}

func (d *imageDoc) close() error {
	d.data = nil
	return nil
}
