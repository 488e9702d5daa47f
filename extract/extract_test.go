package extract

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"cardcut/common"
	"cardcut/config"
	"cardcut/layout"
	"cardcut/source"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	gray  = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

func testConfig() *config.ExtractionConfig {
	return &config.ExtractionConfig{
		DPI:          300,
		ImageFormat:  common.ImageFormatPng,
		JPEGQuality:  90,
		NameTemplate: `{{ .Type }}_{{ printf "%03d" .ID }}`,
		Workers:      2,
	}
}

// sheet paints every cell of the grid with its own color.
func sheet(w, h int, g layout.Grid, colors ...color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, c := range colors {
		r := CellRect(img.Bounds(), g, i/g.Columns, i%g.Columns)
		draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
	return img
}

type fakeRenderer struct {
	pages map[int]image.Image
	dpis  chan int
}

func (f *fakeRenderer) Render(_ context.Context, page, dpi int) (image.Image, error) {
	if f.dpis != nil {
		f.dpis <- dpi
	}
	img, ok := f.pages[page]
	if !ok {
		return nil, errors.New("no such page")
	}
	return img, nil
}

func mustPlan(t *testing.T, l *layout.Layout) *layout.Plan {
	t.Helper()
	p, err := layout.NewPlan(l)
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}
	return p
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	return img
}

func centerColor(img image.Image) color.NRGBA {
	b := img.Bounds()
	return color.NRGBAModel.Convert(img.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)).(color.NRGBA)
}

func TestExtractor_PageSimplex(t *testing.T) {
	g := layout.Grid{Rows: 1, Columns: 3}
	plan := mustPlan(t, &layout.Layout{
		Pages:   []layout.Page{{OriginalIndex: 4}},
		Grid:    g,
		Mode:    layout.Simplex{},
		Skipped: []layout.CellRef{{Page: 0, Row: 0, Column: 1}},
	})
	infos := make([]source.PageInfo, 5)
	infos[4] = source.PageInfo{Source: "deck.png", Index: 0}

	e, err := NewExtractor(testConfig(), Margins{Top: 10, Bottom: 10}, plan, infos, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewExtractor() error = %v", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 90, 70))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: red}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(60, 10, 90, 60), &image.Uniform{C: blue}, image.Point{}, draw.Src)

	cards, err := e.Page(context.Background(), 0, img)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("Page() returned %d cards, want 2 (skipped cell left out)", len(cards))
	}

	first, last := cards[0], cards[1]
	if first.FileName() != "front_001.png" || last.FileName() != "front_002.png" {
		t.Errorf("names = %q, %q", first.FileName(), last.FileName())
	}
	if first.Source != "deck.png" || first.Index != 0 || last.Index != 2 {
		t.Errorf("card origin = %+v / %+v", first, last)
	}
	if last.Bounds != image.Rect(60, 10, 90, 60) {
		t.Errorf("Bounds = %v", last.Bounds)
	}

	out := decodePNG(t, last.Data)
	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 50 {
		t.Errorf("card size = %v, want 30x50", out.Bounds())
	}
	if c := centerColor(out); c != blue {
		t.Errorf("card color = %v, want blue", c)
	}
}

func TestExtractor_BackRotation(t *testing.T) {
	g := layout.Grid{Rows: 1, Columns: 2}
	plan := mustPlan(t, &layout.Layout{
		Pages: []layout.Page{
			{Role: common.PageRoleFront, OriginalIndex: 0},
			{Role: common.PageRoleBack, OriginalIndex: 1},
		},
		Grid:     g,
		Mode:     layout.Duplex{FlipEdge: common.FlipEdgeLong},
		PageSize: layout.Size{Width: 612, Height: 792},
	})

	for _, rotation := range []int{0, 90, 180, 270} {
		cfg := testConfig()
		cfg.BackRotation = rotation
		e, err := NewExtractor(cfg, Margins{}, plan, nil, zaptest.NewLogger(t))
		if err != nil {
			t.Fatalf("NewExtractor() error = %v", err)
		}
		back := image.NewNRGBA(image.Rect(0, 0, 100, 60))
		// mark top left corner of the left back card
		draw.Draw(back, image.Rect(0, 0, 10, 10), &image.Uniform{C: red}, image.Point{}, draw.Src)

		cards, err := e.Page(context.Background(), 1, back)
		if err != nil {
			t.Fatalf("Page() error = %v", err)
		}
		if len(cards) != 2 {
			t.Fatalf("Page() returned %d cards, want 2", len(cards))
		}
		// left back cell is printed behind the right front one
		if cards[0].Card != (layout.CardInfo{ID: 2, Type: common.CardTypeBack}) || cards[0].Name != "back_002" {
			t.Errorf("rotation %d: first back = %+v %q", rotation, cards[0].Card, cards[0].Name)
		}

		out := decodePNG(t, cards[0].Data)
		w, h := out.Bounds().Dx(), out.Bounds().Dy()
		wantW, wantH := 50, 60
		if rotation == 90 || rotation == 270 {
			wantW, wantH = 60, 50
		}
		if w != wantW || h != wantH {
			t.Errorf("rotation %d: size = %dx%d, want %dx%d", rotation, w, h, wantW, wantH)
		}

		// clockwise rotation moves the marked corner
		corner := map[int]image.Point{0: {0, 0}, 90: {w - 1, 0}, 180: {w - 1, h - 1}, 270: {0, h - 1}}[rotation]
		if c := color.NRGBAModel.Convert(out.At(corner.X, corner.Y)).(color.NRGBA); c != red {
			t.Errorf("rotation %d: marked corner at %v has %v", rotation, corner, c)
		}
	}
}

func TestExtractor_Grayscale(t *testing.T) {
	g := layout.Grid{Rows: 1, Columns: 2}
	plan := mustPlan(t, &layout.Layout{Pages: []layout.Page{{}}, Grid: g, Mode: layout.Simplex{}})
	img := sheet(40, 20, g, red, gray)

	cfg := testConfig()
	e, _ := NewExtractor(cfg, Margins{}, plan, nil, zaptest.NewLogger(t))
	cards, err := e.Page(context.Background(), 0, img)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if _, ok := decodePNG(t, cards[0].Data).(*image.Gray); ok {
		t.Error("color card must not be stored as grayscale")
	}
	if _, ok := decodePNG(t, cards[1].Data).(*image.Gray); !ok {
		t.Error("gray card must be stored as grayscale")
	}

	cfg.Grayscale = true
	e, _ = NewExtractor(cfg, Margins{}, plan, nil, zaptest.NewLogger(t))
	cards, err = e.Page(context.Background(), 0, img)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if _, ok := decodePNG(t, cards[0].Data).(*image.Gray); !ok {
		t.Error("forced grayscale card must be stored as grayscale")
	}
}

func TestExtractor_JPEG(t *testing.T) {
	g := layout.Grid{Rows: 1, Columns: 1}
	plan := mustPlan(t, &layout.Layout{Pages: []layout.Page{{}}, Grid: g, Mode: layout.Simplex{}})
	cfg := testConfig()
	cfg.ImageFormat = common.ImageFormatJpeg
	e, _ := NewExtractor(cfg, Margins{}, plan, nil, zaptest.NewLogger(t))

	cards, err := e.Page(context.Background(), 0, sheet(16, 16, g, green))
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if cards[0].FileName() != "front_001.jpg" {
		t.Errorf("FileName() = %q", cards[0].FileName())
	}
	if _, err := jpeg.Decode(bytes.NewReader(cards[0].Data)); err != nil {
		t.Errorf("jpeg.Decode() error = %v", err)
	}
}

func TestExtractor_PageErrors(t *testing.T) {
	g := layout.Grid{Rows: 1, Columns: 1}
	plan := mustPlan(t, &layout.Layout{Pages: []layout.Page{{}}, Grid: g, Mode: layout.Simplex{}})
	e, _ := NewExtractor(testConfig(), Margins{Left: 100}, plan, nil, zaptest.NewLogger(t))

	if _, err := e.Page(context.Background(), 3, sheet(10, 10, g)); err == nil {
		t.Error("Page() expected error for page out of range")
	}
	if _, err := e.Page(context.Background(), 0, sheet(10, 10, g)); err == nil {
		t.Error("Page() expected error for margins larger than page")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e, _ = NewExtractor(testConfig(), Margins{}, plan, nil, zaptest.NewLogger(t))
	if _, err := e.Page(ctx, 0, sheet(10, 10, g)); !errors.Is(err, context.Canceled) {
		t.Errorf("Page() error = %v, want context.Canceled", err)
	}

	cfg := testConfig()
	cfg.NameTemplate = "{{ .Type "
	if _, err := NewExtractor(cfg, Margins{}, plan, nil, zaptest.NewLogger(t)); err == nil {
		t.Error("NewExtractor() expected error for bad template")
	}
}

func TestExtractor_Run(t *testing.T) {
	g := layout.Grid{Rows: 2, Columns: 2}
	pages := make([]layout.Page, 0, 4)
	r := &fakeRenderer{pages: map[int]image.Image{}, dpis: make(chan int, 8)}
	for i := range 5 {
		if i == 2 {
			// source page 2 is not active
			continue
		}
		pages = append(pages, layout.Page{OriginalIndex: i})
		r.pages[i] = sheet(40, 40, g, red, green, blue, gray)
	}
	plan := mustPlan(t, &layout.Layout{Pages: pages, Grid: g, Mode: layout.Simplex{}})

	cfg := testConfig()
	cfg.NameTemplate = "card"
	cfg.DPI = 150
	e, _ := NewExtractor(cfg, Margins{}, plan, nil, zaptest.NewLogger(t))

	cards, err := e.Run(context.Background(), r)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(cards) != 16 {
		t.Fatalf("Run() returned %d cards, want 16", len(cards))
	}
	if !slices.IsSortedFunc(cards, func(a, b Card) int { return a.Index - b.Index }) {
		t.Error("cards are not in global index order")
	}
	if cards[0].Name != "card" || cards[1].Name != "card_2" || cards[15].Name != "card_16" {
		t.Errorf("names = %q, %q, %q", cards[0].Name, cards[1].Name, cards[15].Name)
	}
	for i, c := range cards {
		if c.Card.ID != i+1 {
			t.Errorf("card %d ID = %d", i, c.Card.ID)
		}
	}
	close(r.dpis)
	for dpi := range r.dpis {
		if dpi != 150 {
			t.Errorf("Render() dpi = %d, want 150", dpi)
		}
	}
}

func TestExtractor_RunError(t *testing.T) {
	g := layout.Grid{Rows: 1, Columns: 1}
	plan := mustPlan(t, &layout.Layout{
		Pages: []layout.Page{{OriginalIndex: 0}, {OriginalIndex: 1}},
		Grid:  g,
		Mode:  layout.Simplex{},
	})
	r := &fakeRenderer{pages: map[int]image.Image{0: sheet(10, 10, g, red)}}
	e, _ := NewExtractor(testConfig(), Margins{}, plan, nil, zaptest.NewLogger(t))
	if _, err := e.Run(context.Background(), r); err == nil {
		t.Error("Run() expected error for page which cannot be rendered")
	}
}
