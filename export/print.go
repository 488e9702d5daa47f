package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"go.uber.org/zap"

	"cardcut/common"
	"cardcut/config"
	"cardcut/extract"
	"cardcut/layout"
)

var ErrNothingToPrint = errors.New("no cards to print")

const (
	// maximum length of cut mark, points
	cutMarkLength = 18.0
	// distance between cut mark and card edge, points
	cutMarkOffset = 3.0
)

// sheetLayout places cards on print sheet, all values are in points.
type sheetLayout struct {
	grid             layout.Grid
	sheet            layout.Size
	cardW, cardH     float64
	gap              float64
	originX, originY float64
}

func newSheetLayout(cfg *config.PrintConfig) (sheetLayout, error) {
	s := sheetLayout{
		sheet: layout.Size{Width: cfg.Sheet.Width, Height: cfg.Sheet.Height},
		cardW: cfg.Card.Width,
		cardH: cfg.Card.Height,
		gap:   cfg.Bleed,
	}
	s.grid = layout.Grid{
		Rows:    int((s.sheet.Height + s.gap) / (s.cardH + s.gap)),
		Columns: int((s.sheet.Width + s.gap) / (s.cardW + s.gap)),
	}
	if err := s.grid.Validate(); err != nil {
		return s, fmt.Errorf("card %.1fx%.1f does not fit on sheet %.1fx%.1f: %w", s.cardW, s.cardH, s.sheet.Width, s.sheet.Height, err)
	}
	// grid is centered on the sheet
	s.originX = (s.sheet.Width - s.width()) / 2
	s.originY = (s.sheet.Height - s.height()) / 2
	return s, nil
}

func (s sheetLayout) width() float64 {
	return float64(s.grid.Columns)*s.cardW + float64(s.grid.Columns-1)*s.gap
}

func (s sheetLayout) height() float64 {
	return float64(s.grid.Rows)*s.cardH + float64(s.grid.Rows-1)*s.gap
}

// slot returns top left corner of the card slot.
func (s sheetLayout) slot(row, column int) (x, y float64) {
	return s.originX + float64(column)*(s.cardW+s.gap), s.originY + float64(row)*(s.cardH+s.gap)
}

// arrange distributes cards over sheets in printing order. Every front sheet
// is followed by its back sheet when there are backs at all. Back of a card
// takes the slot which ends up behind its front after the sheet is flipped
// about the edge. Backs without matching front go to additional sheets after
// blank fronts so that pairs of sheets stay aligned.
func arrange(cards []extract.Card, s sheetLayout, edge common.FlipEdge) [][]*extract.Card {
	perSheet := s.grid.CardsPerPage()

	var fronts []*extract.Card
	backs := make(map[int]*extract.Card)
	var backOrder []int
	for _, c := range Sort(cards) {
		switch c.Card.Type {
		case common.CardTypeFront:
			fronts = append(fronts, &c)
		case common.CardTypeBack:
			if _, ok := backs[c.Card.ID]; !ok {
				backs[c.Card.ID] = &c
				backOrder = append(backOrder, c.Card.ID)
			}
		}
	}

	behind := func(i int) int {
		cell := layout.CellRef{Row: i / s.grid.Columns, Column: i % s.grid.Columns}
		m, _ := layout.Mirror(cell, s.grid, edge, s.sheet)
		return m.Row*s.grid.Columns + m.Column
	}

	var sheets [][]*extract.Card
	used := make(map[int]bool, len(backs))
	for start := 0; start < len(fronts); start += perSheet {
		front := make([]*extract.Card, perSheet)
		back := make([]*extract.Card, perSheet)
		for i, f := range fronts[start:min(start+perSheet, len(fronts))] {
			front[i] = f
			if b, ok := backs[f.Card.ID]; ok {
				back[behind(i)] = b
				used[f.Card.ID] = true
			}
		}
		sheets = append(sheets, front)
		if len(backs) > 0 {
			sheets = append(sheets, back)
		}
	}

	var orphans []*extract.Card
	for _, id := range backOrder {
		if !used[id] {
			orphans = append(orphans, backs[id])
		}
	}
	for start := 0; start < len(orphans); start += perSheet {
		back := make([]*extract.Card, perSheet)
		for i, b := range orphans[start:min(start+perSheet, len(orphans))] {
			back[behind(i)] = b
		}
		sheets = append(sheets, make([]*extract.Card, perSheet), back)
	}
	return sheets
}

func px(points float64, dpi int) int {
	return int(math.Round(points * float64(dpi) / 72))
}

func (s sheetLayout) render(cards []*extract.Card, dpi int, cutMarks bool) (image.Image, error) {
	scale := float64(dpi) / 72
	dc := gg.NewContext(px(s.sheet.Width, dpi), px(s.sheet.Height, dpi))
	dc.SetColor(color.White)
	dc.Clear()

	w, h := px(s.cardW, dpi), px(s.cardH, dpi)
	for i, c := range cards {
		if c == nil {
			continue
		}
		img, err := imaging.Decode(bytes.NewReader(c.Data))
		if err != nil {
			return nil, fmt.Errorf("unable to decode card %s: %w", c.FileName(), err)
		}
		b := img.Bounds()
		if (b.Dx() > b.Dy()) != (w > h) && b.Dx() != b.Dy() {
			img = imaging.Rotate90(img)
		}
		x, y := s.slot(i/s.grid.Columns, i%s.grid.Columns)
		dc.DrawImage(imaging.Resize(img, w, h, imaging.Lanczos), int(math.Round(x*scale)), int(math.Round(y*scale)))
	}

	if cutMarks {
		s.drawCutMarks(dc, scale)
	}
	return dc.Image(), nil
}

// drawCutMarks puts short lines continuing card edges into sheet margins.
func (s sheetLayout) drawCutMarks(dc *gg.Context, scale float64) {
	length := min(cutMarkLength, s.originX, s.originY) - cutMarkOffset
	if length <= 0 {
		return
	}

	dc.SetColor(color.Black)
	dc.SetLineWidth(math.Max(1, 0.5*scale))

	top, bottom := s.originY, s.originY+s.height()
	for c := range s.grid.Columns {
		x, _ := s.slot(0, c)
		for _, edge := range []float64{x, x + s.cardW} {
			dc.DrawLine(edge*scale, (top-cutMarkOffset)*scale, edge*scale, (top-cutMarkOffset-length)*scale)
			dc.DrawLine(edge*scale, (bottom+cutMarkOffset)*scale, edge*scale, (bottom+cutMarkOffset+length)*scale)
		}
	}
	left, right := s.originX, s.originX+s.width()
	for r := range s.grid.Rows {
		_, y := s.slot(r, 0)
		for _, edge := range []float64{y, y + s.cardH} {
			dc.DrawLine((left-cutMarkOffset)*scale, edge*scale, (left-cutMarkOffset-length)*scale, edge*scale)
			dc.DrawLine((right+cutMarkOffset)*scale, edge*scale, (right+cutMarkOffset+length)*scale, edge*scale)
		}
	}
	dc.Stroke()
}

// PrintPDF lays cards out on print sheets and writes them as PDF document,
// one sheet per page. Sheets are rasterized at configured resolution.
func PrintPDF(ctx context.Context, path string, cards []extract.Card, cfg *config.PrintConfig, overwrite bool, log *zap.Logger) error {
	s, err := newSheetLayout(cfg)
	if err != nil {
		return err
	}
	sheets := arrange(cards, s, cfg.FlipEdge)
	if len(sheets) == 0 {
		return ErrNothingToPrint
	}

	tmp, err := os.MkdirTemp("", "cardcut-print-")
	if err != nil {
		return fmt.Errorf("unable to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	files := make([]string, 0, len(sheets))
	for i, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := s.render(sheet, cfg.DPI, cfg.CutMarks)
		if err != nil {
			return fmt.Errorf("unable to render sheet %d: %w", i+1, err)
		}
		name := filepath.Join(tmp, fmt.Sprintf("sheet-%04d.png", i))
		if err := imaging.Save(img, name); err != nil {
			return fmt.Errorf("unable to save sheet %d: %w", i+1, err)
		}
		files = append(files, name)
	}

	imp, err := pdfcpu.ParseImportDetails(fmt.Sprintf("dimensions:%.2f %.2f, position:full", s.sheet.Width, s.sheet.Height), types.POINTS)
	if err != nil {
		return fmt.Errorf("unable to prepare image import: %w", err)
	}
	// pdfcpu appends to existing document, so it has to go first
	if err := prepareOutput(path, overwrite, log); err != nil {
		return err
	}
	if err := api.ImportImagesFile(files, path, imp, nil); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}

	log.Info("Print sheets written", zap.String("file", path), zap.Int("sheets", len(sheets)),
		zap.Int("rows", s.grid.Rows), zap.Int("columns", s.grid.Columns))
	return nil
}
