package config

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/multierr"

	"cardcut/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty report archive at configured destination, falling
// back to temporary directory.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{file: f, name: f.Name(), items: make(map[string]item)}, nil
}

// item is either a path on disk (file or directory) read when report is
// closed, or data captured at the time of the call.
type item struct {
	path  string
	data  []byte
	added time.Time
}

// Report collects project files, effective configuration, logs and results
// into single archive attached to bug reports. Nil report ignores
// everything. Not safe for concurrent use.
type Report struct {
	file  *os.File
	name  string
	items map[string]item
}

// Name returns absolute name of the report archive.
func (r *Report) Name() string {
	if r == nil {
		return ""
	}
	if abs, err := filepath.Abs(r.name); err == nil {
		return abs
	}
	return r.name
}

// Store registers file or directory to be archived under name. Path is read
// on Close, so content reflects the end of the run.
func (r *Report) Store(name, p string) {
	if r == nil {
		return
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if old, ok := r.items[name]; ok && old.path != p {
		panic(fmt.Sprintf("report entry %q already stored from %q, now %q", name, old.path, p))
	}
	r.items[name] = item{path: p, added: time.Now()}
}

// StoreData puts data into archive under name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, ok := r.items[name]; ok {
		panic(fmt.Sprintf("report entry %q already stored", name))
	}
	r.items[name] = item{data: data, added: time.Now()}
}

// StoreJSON puts indented json representation of v into archive under name.
func (r *Report) StoreJSON(name string, v any) error {
	if r == nil {
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal report entry %q: %w", name, err)
	}
	r.StoreData(name, data)
	return nil
}

// Close writes archive. Entries whose paths no longer exist are listed in
// manifest but otherwise skipped.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.write(zip.NewWriter(r.file))
	err = multierr.Append(err, r.file.Close())
	r.file = nil
	return err
}

func (r *Report) write(arc *zip.Writer) error {
	names := slices.Sorted(maps.Keys(r.items))

	var manifest strings.Builder
	for _, name := range names {
		it := r.items[name]
		src := "(data)"
		if len(it.path) > 0 {
			src = it.path
		}
		fmt.Fprintf(&manifest, "%s\t%s\t%s\n", it.added.UTC().Format(time.RFC3339), name, src)
	}
	if err := addEntry(arc, "MANIFEST", time.Now(), strings.NewReader(manifest.String())); err != nil {
		return err
	}

	for _, name := range names {
		it := r.items[name]
		if len(it.path) == 0 {
			if err := addEntry(arc, name, it.added, bytes.NewReader(it.data)); err != nil {
				return err
			}
			continue
		}
		if err := addPath(arc, name, it.path); err != nil {
			return err
		}
	}
	return arc.Close()
}

// addPath archives regular file or directory tree rooted at p under name.
func addPath(arc *zip.Writer, name, p string) error {
	info, err := os.Stat(p)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return addFile(arc, name, p, info.ModTime())
	}
	return fs.WalkDir(os.DirFS(p), ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil || !d.Type().IsRegular() {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		return addFile(arc, path.Join(name, rel), filepath.Join(p, filepath.FromSlash(rel)), fi.ModTime())
	})
}

func addFile(arc *zip.Writer, name, p string, mod time.Time) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()
	return addEntry(arc, name, mod, f)
}

func addEntry(arc *zip.Writer, name string, mod time.Time, r io.Reader) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: mod})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	return err
}
