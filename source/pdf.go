package source

import (
	"context"
	"fmt"
	"image"
	"sync"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"cardcut/layout"
)

type pdfDoc struct {
	// MuPDF context is not safe for concurrent use
	mu    sync.Mutex
	doc   *fitz.Document
	infos []PageInfo
}

// openPDF reads page sizes with pdfcpu and keeps document open in MuPDF for
// rendering. When pdfcpu cannot parse the file page bounds reported by MuPDF
// are used instead.
func openPDF(path, name string) (*pdfDoc, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open PDF: %w", err)
	}

	// errors are fine here, MuPDF bounds are used instead
	dims, _ := api.PageDimsFile(path)

	d := &pdfDoc{doc: doc, infos: make([]PageInfo, doc.NumPage())}
	for i := range d.infos {
		d.infos[i] = PageInfo{Source: name, Index: i}
		if i < len(dims) {
			d.infos[i].Size = layout.Size{Width: dims[i].Width, Height: dims[i].Height}
			continue
		}
		if b, err := doc.Bound(i); err == nil {
			d.infos[i].Size = layout.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
		}
	}
	return d, nil
}

func (d *pdfDoc) pages() []PageInfo {
	return d.infos
}

func (d *pdfDoc) render(_ context.Context, page, dpi int) (image.Image, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	img, err := d.doc.ImageDPI(page, float64(dpi))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (d *pdfDoc) close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Close()
}
