package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"

	"cardcut/extract"
)

// Zip writes card images into a zip archive. Images are already compressed
// and are stored as is, entries do not use data descriptors so archive could
// be read sequentially.
func Zip(w io.Writer, cards []extract.Card) error {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, c := range Sort(cards) {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:   c.FileName(),
			Method: zip.Store,
		})
		if err != nil {
			return fmt.Errorf("unable to add card %s: %w", c.FileName(), err)
		}
		if _, err := f.Write(c.Data); err != nil {
			return fmt.Errorf("unable to write card %s: %w", c.FileName(), err)
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return copyZipWithoutDataDescriptors(bytes.NewReader(buf.Bytes()), int64(buf.Len()), w)
}

// ZipFile writes card archive to path.
func ZipFile(path string, cards []extract.Card, overwrite bool, log *zap.Logger) (err error) {
	if err := prepareOutput(path, overwrite, log); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create archive (%s): %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Zip(out, cards); err != nil {
		return fmt.Errorf("unable to write archive (%s): %w", path, err)
	}
	log.Debug("Archive written", zap.String("file", path), zap.Int("count", len(cards)))
	return nil
}

func copyZipWithoutDataDescriptors(from io.ReaderAt, size int64, to io.Writer) error {
	r, err := fixzip.NewReader(from, size)
	if err != nil {
		return fmt.Errorf("unable to read archive: %w", err)
	}

	w := fixzip.NewWriter(to)
	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to copy archive entry %s: %w", file.Name, err)
		}
	}
	return w.Close()
}
