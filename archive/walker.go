// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/text/encoding"
)

// WalkFunc is called for each file visited by Walk. The archive argument
// contains path to archive passed to Walk, name is the file name inside
// archive (decoded when necessary) and file is the zip.File structure itself.
// If an error is returned, processing stops.
type WalkFunc func(archive, name string, file *zip.File) error

// Walk visits files in the archive whose names start with prefix in natural
// name order, so "sheet2.png" comes before "sheet10.png". File names not
// flagged as UTF-8 are decoded with cp when it is not nil. Archives with
// absolute paths or path traversal components are rejected to prevent Zip
// Slip attacks.
func Walk(archive, prefix string, cp encoding.Encoding, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	type member struct {
		name string
		file *zip.File
	}

	members := make([]member, 0, len(r.File))
	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		name := DecodeName(f, cp)
		if strings.HasPrefix(name, prefix) {
			members = append(members, member{name: name, file: f})
		}
	}
	slices.SortStableFunc(members, func(a, b member) int {
		switch {
		case natural.Less(a.name, b.name):
			return -1
		case natural.Less(b.name, a.name):
			return 1
		}
		return 0
	})

	for _, m := range members {
		if err := walkFn(archive, m.name, m.file); err != nil {
			return err
		}
	}
	return nil
}

// DecodeName returns file name forcing cp for names not flagged as UTF-8.
// Undecodable names are returned as is.
func DecodeName(f *zip.File, cp encoding.Encoding) string {
	if cp == nil || !f.NonUTF8 {
		return f.Name
	}
	if n, err := cp.NewDecoder().String(f.Name); err == nil {
		return n
	}
	return f.Name
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
