// Package export writes extracted cards out: as separate files, as a zip
// archive or laid out on print sheets in a PDF document.
package export

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"cardcut/common"
	"cardcut/extract"
)

var ErrExists = errors.New("output already exists")

func typeOrder(t common.CardType) int {
	switch t {
	case common.CardTypeFront:
		return 0
	case common.CardTypeBack:
		return 1
	default:
		return 2
	}
}

// Sort returns cards in output order: fronts then backs, each by card number.
// Input is not modified.
func Sort(cards []extract.Card) []extract.Card {
	out := slices.Clone(cards)
	slices.SortStableFunc(out, func(a, b extract.Card) int {
		return cmp.Or(
			cmp.Compare(typeOrder(a.Card.Type), typeOrder(b.Card.Type)),
			cmp.Compare(a.Card.ID, b.Card.ID),
			cmp.Compare(a.Index, b.Index),
		)
	})
	return out
}

// prepareOutput makes sure file could be created at path: existing file is
// removed when overwrite is requested, missing directories are created.
func prepareOutput(path string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		log.Warn("Overwriting existing file", zap.String("file", path))
		if err = os.Remove(path); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

// Dir writes every card image into its own file under dir.
func Dir(dir string, cards []extract.Card, overwrite bool, log *zap.Logger) error {
	for _, c := range Sort(cards) {
		name := filepath.Join(dir, filepath.FromSlash(c.FileName()))
		if err := prepareOutput(name, overwrite, log); err != nil {
			return err
		}
		if err := os.WriteFile(name, c.Data, 0644); err != nil {
			return fmt.Errorf("unable to write card %s: %w", c.FileName(), err)
		}
	}
	log.Debug("Cards written", zap.String("dir", dir), zap.Int("count", len(cards)))
	return nil
}
