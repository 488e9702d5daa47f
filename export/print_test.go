package export

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap/zaptest"

	"cardcut/common"
	"cardcut/config"
	"cardcut/extract"
	"cardcut/layout"
)

func printConfig() *config.PrintConfig {
	return &config.PrintConfig{
		Sheet:    config.SizeConfig{Width: 612, Height: 792},
		Card:     config.SizeConfig{Width: 180, Height: 252},
		DPI:      72,
		CutMarks: true,
		FlipEdge: common.FlipEdgeLong,
	}
}

func TestNewSheetLayout(t *testing.T) {
	s, err := newSheetLayout(printConfig())
	if err != nil {
		t.Fatalf("newSheetLayout() error = %v", err)
	}
	if s.grid != (layout.Grid{Rows: 3, Columns: 3}) {
		t.Errorf("grid = %+v, want 3x3", s.grid)
	}
	if s.originX != 36 || s.originY != 18 {
		t.Errorf("origin = %v, %v, want 36, 18", s.originX, s.originY)
	}

	cfg := printConfig()
	cfg.Bleed = 20
	if s, _ = newSheetLayout(cfg); s.grid != (layout.Grid{Rows: 2, Columns: 3}) {
		t.Errorf("grid with gap = %+v, want 2x3", s.grid)
	}

	cfg.Card.Width = 700
	if _, err := newSheetLayout(cfg); !errors.Is(err, layout.ErrInvalidGrid) {
		t.Errorf("newSheetLayout() error = %v, want ErrInvalidGrid", err)
	}
}

func ids(sheet []*extract.Card) []int {
	out := make([]int, len(sheet))
	for i, c := range sheet {
		if c != nil {
			out[i] = c.Card.ID
		}
	}
	return out
}

func TestArrange(t *testing.T) {
	s := sheetLayout{grid: layout.Grid{Rows: 1, Columns: 3}, sheet: layout.Size{Width: 612, Height: 792}}

	var cards []extract.Card
	for id := 1; id <= 4; id++ {
		cards = append(cards, card(t, common.CardTypeFront, id, id))
	}
	for _, id := range []int{1, 2, 4, 7} {
		cards = append(cards, card(t, common.CardTypeBack, id, 10+id))
	}

	sheets := arrange(cards, s, common.FlipEdgeLong)
	want := [][]int{
		{1, 2, 3},
		{0, 2, 1}, // columns mirrored, front 3 has no back
		{4, 0, 0},
		{0, 0, 4},
		{0, 0, 0}, // blank front for unpaired back
		{0, 0, 7},
	}
	if len(sheets) != len(want) {
		t.Fatalf("arrange() returned %d sheets, want %d", len(sheets), len(want))
	}
	for i := range want {
		got := ids(sheets[i])
		for j := range want[i] {
			if got[j] != want[i][j] {
				t.Errorf("sheet %d = %v, want %v", i, got, want[i])
				break
			}
		}
	}
	if sheets[1][1].Card.Type != common.CardTypeBack {
		t.Error("back sheet holds front card")
	}
}

func TestArrange_ShortEdgeAndSimplex(t *testing.T) {
	s := sheetLayout{grid: layout.Grid{Rows: 2, Columns: 1}, sheet: layout.Size{Width: 612, Height: 792}}
	cards := []extract.Card{
		card(t, common.CardTypeFront, 1, 0),
		card(t, common.CardTypeFront, 2, 1),
		card(t, common.CardTypeBack, 1, 2),
	}
	sheets := arrange(cards, s, common.FlipEdgeShort)
	if len(sheets) != 2 {
		t.Fatalf("arrange() returned %d sheets, want 2", len(sheets))
	}
	if got := ids(sheets[1]); got[0] != 0 || got[1] != 1 {
		t.Errorf("short edge back sheet = %v, want rows mirrored [0 1]", got)
	}

	sheets = arrange(cards[:2], s, common.FlipEdgeLong)
	if len(sheets) != 1 {
		t.Errorf("simplex deck produced %d sheets, want 1", len(sheets))
	}
}

func TestPrintPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.pdf")
	cards := deck(t)

	if err := PrintPDF(context.Background(), path, cards, printConfig(), false, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("PrintPDF() error = %v", err)
	}
	dims, err := api.PageDimsFile(path)
	if err != nil {
		t.Fatalf("PageDimsFile() error = %v", err)
	}
	// one front sheet and its back sheet
	if len(dims) != 2 {
		t.Fatalf("pages = %d, want 2", len(dims))
	}
	if dims[0].Width != 612 || dims[0].Height != 792 {
		t.Errorf("page size = %vx%v, want 612x792", dims[0].Width, dims[0].Height)
	}

	if err := PrintPDF(context.Background(), path, cards, printConfig(), false, zaptest.NewLogger(t)); !errors.Is(err, ErrExists) {
		t.Errorf("PrintPDF() error = %v, want ErrExists", err)
	}
	if err := PrintPDF(context.Background(), path, cards, printConfig(), true, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("PrintPDF() with overwrite error = %v", err)
	}
	if dims, _ = api.PageDimsFile(path); len(dims) != 2 {
		t.Errorf("overwritten document has %d pages, want 2", len(dims))
	}
}

func TestPrintPDF_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print.pdf")
	if err := PrintPDF(context.Background(), path, nil, printConfig(), false, zaptest.NewLogger(t)); !errors.Is(err, ErrNothingToPrint) {
		t.Errorf("PrintPDF() error = %v, want ErrNothingToPrint", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := PrintPDF(ctx, path, deck(t), printConfig(), false, zaptest.NewLogger(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("PrintPDF() error = %v, want context.Canceled", err)
	}

	bad := deck(t)
	bad[1].Data = []byte("not an image")
	if err := PrintPDF(context.Background(), path, bad, printConfig(), false, zaptest.NewLogger(t)); err == nil {
		t.Error("PrintPDF() expected error for broken card image")
	}
}
