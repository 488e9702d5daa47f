package source

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// Expand lists regular files under dir recursively ordered naturally by
// their relative paths, so "page2.png" precedes "page10.png". Hidden files
// and directories are skipped, symbolic links are not followed.
func Expand(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	return files, nil
}
