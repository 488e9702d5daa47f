package source

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"cardcut/archive"
	"cardcut/misc"
)

// openArchive opens every card sheet stored in archive under prefix. PDF
// members are unpacked to temporary files, images are kept in memory.
func (s *Set) openArchive(path, prefix string, opts Options) error {
	before := len(s.infos)

	err := archive.Walk(path, prefix, opts.CodePage, func(arc, name string, f *zip.File) error {
		data, err := readMember(f)
		if err != nil {
			return fmt.Errorf("unable to read %s: %w", name, err)
		}
		display := arc + "/" + name

		switch detectData(data) {
		case kindPDF:
			tmp, err := writeTemp(data, ".pdf")
			if err != nil {
				return err
			}
			s.temps = append(s.temps, tmp)
			d, err := openPDF(tmp, display)
			if err != nil {
				return fmt.Errorf("unable to open %s: %w", display, err)
			}
			s.add(d)
		case kindImage:
			d, err := openImageData(data, display, opts.DPI)
			if err != nil {
				return fmt.Errorf("unable to open %s: %w", display, err)
			}
			s.add(d)
		case kindArchive:
			s.log.Debug("Skipping archive inside archive, not supported", zap.String("archive", arc), zap.String("file", name))
		default:
			s.log.Debug("Skipping file in archive, not recognized as card sheet", zap.String("archive", arc), zap.String("file", name))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(s.infos) == before {
		return fmt.Errorf("%w: no card sheets in %s under %q", ErrNotFound, path, prefix)
	}
	return nil
}

func readMember(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func writeTemp(data []byte, ext string) (string, error) {
	f, err := os.CreateTemp("", misc.GetAppName()+"-src-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
