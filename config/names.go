package config

import (
	"strings"
	"unicode"
)

const badFileName = "_bad_file_name_"

// CleanFileName makes single path segment out of generated card name.
// Separators, control and reserved characters are removed, leading dots and
// surrounding spaces are dropped so names never become hidden or climb out of
// destination. Names the OS reserves for devices get underscore appended.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) || strings.ContainsRune(reservedRunes, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(strings.TrimSpace(out), ".")
	switch {
	case len(out) == 0:
		return badFileName
	case reservedName(out):
		return out + "_"
	}
	return out
}
