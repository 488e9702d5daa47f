package source

import (
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

type kind int

const (
	kindUnknown kind = iota
	kindPDF
	kindImage
	kindArchive
)

// decodable raster formats, extensions as reported by filetype
var rasterTypes = map[string]bool{
	"jpg":  true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"tif":  true,
	"webp": true,
}

func kindOf(t types.Type) kind {
	switch {
	case t == filetype.Unknown:
		return kindUnknown
	case t.Extension == "pdf":
		return kindPDF
	case t.Extension == "zip":
		return kindArchive
	case rasterTypes[t.Extension]:
		return kindImage
	}
	return kindUnknown
}

func detectFile(path string) (kind, error) {
	t, err := filetype.MatchFile(path)
	if err != nil {
		return kindUnknown, err
	}
	return kindOf(t), nil
}

func detectData(data []byte) kind {
	t, err := filetype.Match(data)
	if err != nil {
		return kindUnknown
	}
	return kindOf(t)
}
