// Package source opens card sheets for processing. Supported are PDF
// documents and raster images, either as plain files, inside directories, as
// members of zip archives or downloaded over http(s).
package source

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"cardcut/layout"
)

var (
	ErrUnsupported = errors.New("unsupported source")
	ErrNotFound    = errors.New("source not found")
)

// PageInfo describes single page of the opened sources.
type PageInfo struct {
	// Source is the file, archive member or URL the page comes from.
	Source string `json:"source"`
	// Index of the page inside its source.
	Index int `json:"index"`
	// Size is physical page size in points, zero when unknown.
	Size layout.Size `json:"size"`
}

// Options control how sources are opened.
type Options struct {
	// DPI is used to compute physical size of raster images.
	DPI int
	// CodePage is forced for non UTF-8 file names inside archives.
	CodePage encoding.Encoding
	// Client downloads remote sources, when nil a default one is created.
	Client *retryablehttp.Client
}

type document interface {
	pages() []PageInfo
	render(ctx context.Context, page, dpi int) (image.Image, error)
	close() error
}

type pageRef struct {
	doc, page int
}

// Set is an ordered collection of pages from one or more sources. Pages are
// numbered continuously in the order sources were given.
type Set struct {
	docs  []document
	refs  []pageRef
	infos []PageInfo
	temps []string
	log   *zap.Logger
}

// Open opens all sources in order. Each reference is a local path, a path
// through a zip archive ("cards.zip/fronts") or an http(s) URL.
func Open(ctx context.Context, refs []string, opts Options, log *zap.Logger) (_ *Set, err error) {
	if opts.DPI <= 0 {
		opts.DPI = 300
	}
	s := &Set{log: log.Named("source")}
	defer func() {
		if err != nil {
			err = multierr.Append(err, s.Close())
		}
	}()

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.open(ctx, ref, opts); err != nil {
			return nil, fmt.Errorf("unable to open %s: %w", ref, err)
		}
	}
	return s, nil
}

func (s *Set) open(ctx context.Context, ref string, opts Options) error {
	if isRemote(ref) {
		path, err := download(ctx, ref, opts.Client, s.log)
		if err != nil {
			return err
		}
		s.temps = append(s.temps, path)
		return s.openFile(path, ref, opts)
	}

	path, inner, err := resolve(ref)
	if err != nil {
		return err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		files, err := Expand(path)
		if err != nil {
			return err
		}
		before := len(s.infos)
		for _, f := range files {
			if err := s.openFile(f, f, opts); err != nil {
				if !errors.Is(err, ErrUnsupported) {
					return err
				}
				s.log.Debug("Skipping file, not recognized as card sheet", zap.String("file", f))
			}
		}
		if len(s.infos) == before {
			return fmt.Errorf("%w: no card sheets in directory %s", ErrNotFound, path)
		}
		return nil
	}

	if len(inner) > 0 {
		return s.openArchive(path, inner, opts)
	}
	return s.openFile(path, path, opts)
}

// openFile opens a regular file under given display name.
func (s *Set) openFile(path, name string, opts Options) error {
	k, err := detectFile(path)
	if err != nil {
		return err
	}
	switch k {
	case kindPDF:
		d, err := openPDF(path, name)
		if err != nil {
			return err
		}
		s.add(d)
	case kindImage:
		d, err := openImageFile(path, name, opts.DPI)
		if err != nil {
			return err
		}
		s.add(d)
	case kindArchive:
		return s.openArchive(path, "", opts)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, name)
	}
	return nil
}

func (s *Set) add(d document) {
	idx := len(s.docs)
	s.docs = append(s.docs, d)
	for i, p := range d.pages() {
		s.refs = append(s.refs, pageRef{doc: idx, page: i})
		s.infos = append(s.infos, p)
	}
}

// Len returns total number of pages.
func (s *Set) Len() int {
	return len(s.infos)
}

// Pages returns information about every page in order.
func (s *Set) Pages() []PageInfo {
	return s.infos
}

// Render rasterizes page at requested resolution. Raster images are returned
// as is. Render is safe for concurrent use.
func (s *Set) Render(ctx context.Context, page, dpi int) (image.Image, error) {
	if page < 0 || page >= len(s.refs) {
		return nil, fmt.Errorf("page %d is out of range [0, %d)", page, len(s.refs))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ref := s.refs[page]
	img, err := s.docs[ref.doc].render(ctx, ref.page, dpi)
	if err != nil {
		return nil, fmt.Errorf("unable to render page %d of %s: %w", ref.page, s.infos[page].Source, err)
	}
	return img, nil
}

// Close releases all documents and removes downloaded files.
func (s *Set) Close() (err error) {
	if s == nil {
		return nil
	}
	for _, d := range s.docs {
		err = multierr.Append(err, d.close())
	}
	for _, t := range s.temps {
		err = multierr.Append(err, os.RemoveAll(t))
	}
	s.docs, s.temps = nil, nil
	return err
}

// resolve splits reference into existing file system path and the remainder
// which is treated as path inside archive.
func resolve(ref string) (path, inner string, err error) {
	for head := ref; len(head) != 0; head, _ = filepath.Split(head) {
		head = strings.TrimSuffix(head, string(filepath.Separator))
		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}
		inner = filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(ref, head), string(filepath.Separator)))
		if len(inner) == 0 {
			return head, "", nil
		}
		if fi.IsDir() {
			return "", "", fmt.Errorf("%w: %s => %s", ErrNotFound, head, inner)
		}
		return head, inner, nil
	}
	return "", "", fmt.Errorf("%w: %s", ErrNotFound, ref)
}
