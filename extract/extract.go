// Package extract crops resolved cards out of rendered page images.
package extract

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cardcut/common"
	"cardcut/config"
	"cardcut/layout"
	"cardcut/source"
	"cardcut/utils/images"
)

// Card is a single encoded card image.
type Card struct {
	layout.Result
	// Source and SourcePage locate page card was cut from.
	Source     string
	SourcePage int
	// Name is slash separated relative name without extension, unique among
	// cards returned by Run.
	Name string
	Ext  string
	// Bounds of the card on the rendered page, in pixels.
	Bounds image.Rectangle
	Data   []byte
}

// FileName returns relative slash separated file name of the card image.
func (c *Card) FileName() string {
	return c.Name + c.Ext
}

// Renderer produces page images by source page number, source.Set is one.
type Renderer interface {
	Render(ctx context.Context, page, dpi int) (image.Image, error)
}

type Extractor struct {
	cfg   *config.ExtractionConfig
	crop  Margins
	plan  *layout.Plan
	infos []source.PageInfo
	names *namer
	log   *zap.Logger
}

// NewExtractor prepares extraction of all cards of the plan. Infos describe
// source pages, plan pages refer to them by original index.
func NewExtractor(cfg *config.ExtractionConfig, crop Margins, plan *layout.Plan, infos []source.PageInfo, log *zap.Logger) (*Extractor, error) {
	names, err := newNamer(cfg.NameTemplate, cfg.Transliterate)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		cfg:   cfg,
		crop:  crop,
		plan:  plan,
		infos: infos,
		names: names,
		log:   log,
	}, nil
}

func (e *Extractor) info(page int) source.PageInfo {
	orig := e.plan.Page(page).OriginalIndex
	if orig >= 0 && orig < len(e.infos) {
		return e.infos[orig]
	}
	return source.PageInfo{Index: orig}
}

// Page cuts all renderable cards of the active page out of its image. Skipped
// and unknown cells are left out. Names are not made unique here.
func (e *Extractor) Page(ctx context.Context, page int, img image.Image) ([]Card, error) {
	if page < 0 || page >= e.plan.Pages() {
		return nil, fmt.Errorf("page %d is out of range [0, %d)", page, e.plan.Pages())
	}
	content, err := e.crop.Content(img.Bounds())
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", page, err)
	}
	info := e.info(page)

	results := e.plan.PageResults(page)
	cards := make([]Card, 0, len(results))
	for _, r := range results {
		if !r.Renderable() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, err := e.names.name(r, info.Source, info.Index)
		if err != nil {
			e.log.Warn("Unable to prepare card name, using default", zap.Stringer("cell", r.Cell), zap.Error(err))
			name = defaultName(r)
		}

		rect := CellRect(content, e.plan.Grid(), r.Cell.Row, r.Cell.Column)
		data, err := e.encode(e.transform(imaging.Crop(img, rect), r.Card.Type))
		if err != nil {
			return nil, fmt.Errorf("unable to encode card %s %d: %w", r.Card.Type, r.Card.ID, err)
		}
		cards = append(cards, Card{
			Result:     r,
			Source:     info.Source,
			SourcePage: info.Index,
			Name:       name,
			Ext:        e.cfg.ImageFormat.Ext(),
			Bounds:     rect,
			Data:       data,
		})
	}
	return cards, nil
}

func (e *Extractor) transform(img *image.NRGBA, t common.CardType) image.Image {
	if t == common.CardTypeBack {
		// configured rotation is clockwise, imaging rotates counter-clockwise
		switch e.cfg.BackRotation {
		case 90:
			img = imaging.Rotate270(img)
		case 180:
			img = imaging.Rotate180(img)
		case 270:
			img = imaging.Rotate90(img)
		}
	}
	if e.cfg.Grayscale {
		return images.ToGray(imaging.Grayscale(img))
	}
	if images.IsGrayscale(img) {
		return images.ToGray(img)
	}
	return img
}

func (e *Extractor) encode(img image.Image) ([]byte, error) {
	switch e.cfg.ImageFormat {
	case common.ImageFormatJpeg:
		return images.EncodeJPEGWithDPI(img, e.cfg.JPEGQuality, e.cfg.DPI)
	default:
		return images.EncodePNGWithDPI(img, e.cfg.DPI)
	}
}

// Run renders every active page and extracts its cards. Pages are processed
// concurrently, cards are returned in global index order with unique names.
func (e *Extractor) Run(ctx context.Context, r Renderer) ([]Card, error) {
	perPage := make([][]Card, e.plan.Pages())

	workers := max(e.cfg.Workers, 1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range e.plan.Pages() {
		g.Go(func() error {
			orig := e.plan.Page(i).OriginalIndex
			img, err := r.Render(gctx, orig, e.cfg.DPI)
			if err != nil {
				return err
			}
			cards, err := e.Page(gctx, i, img)
			if err != nil {
				return err
			}
			e.log.Debug("Page extracted", zap.Int("page", i), zap.Int("source page", orig), zap.Int("cards", len(cards)))
			perPage[i] = cards
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	u := uniquer{}
	var cards []Card
	for _, pc := range perPage {
		for _, c := range pc {
			c.Name = u.make(c.Name)
			cards = append(cards, c)
		}
	}
	return cards, nil
}
