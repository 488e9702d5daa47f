package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"cardcut/config"
	"cardcut/layout"
)

// Values is a struct that holds variables we make available for name template
// expansion.
type Values struct {
	Context string
	Type    string
	ID      int
	// Page is 1-based position among active pages.
	Page   int
	Row    int
	Column int
	// Source is base name of the file page came from without extension.
	Source string
	// SourcePage is 1-based page number inside source.
	SourcePage int
}

type namer struct {
	tmpl          *template.Template
	transliterate bool
}

func newNamer(field string, transliterate bool) (*namer, error) {
	tmpl, err := template.New(string(config.NameTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return nil, fmt.Errorf("unable to parse template field %s: %w", config.NameTemplateFieldName, err)
	}
	return &namer{tmpl: tmpl, transliterate: transliterate}, nil
}

func defaultName(r layout.Result) string {
	return fmt.Sprintf("%s_%03d", r.Card.Type, r.Card.ID)
}

// name returns slash separated relative name (without extension) of the card
// image. Every path segment is cleaned.
func (n *namer) name(r layout.Result, source string, sourcePage int) (string, error) {
	values := Values{
		Context:    string(config.NameTemplateFieldName),
		Type:       r.Card.Type.String(),
		ID:         r.Card.ID,
		Page:       r.Cell.Page + 1,
		Row:        r.Cell.Row + 1,
		Column:     r.Cell.Column + 1,
		Source:     strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)),
		SourcePage: sourcePage + 1,
	}

	buf := new(bytes.Buffer)
	if err := n.tmpl.Execute(buf, values); err != nil {
		return "", err
	}

	segments := n.splitAndClean(filepath.FromSlash(buf.String()))
	if len(segments) == 0 {
		return "", fmt.Errorf("template expanded to empty name for card %s %d", r.Card.Type, r.Card.ID)
	}
	return strings.Join(segments, "/"), nil
}

func (n *namer) splitAndClean(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 4)
	for {
		head, tail := filepath.Split(path)
		if tail != "" && tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, n.cleanSegment(tail))
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" || head == path {
			break
		}
		path = head
	}
	return segments
}

func (n *namer) cleanSegment(segment string) string {
	if n.transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

// uniquer makes names unique in a case insensitive way adding numeric suffix.
type uniquer map[string]struct{}

func (u uniquer) make(name string) string {
	candidate := name
	for i := 2; ; i++ {
		key := strings.ToLower(candidate)
		if _, ok := u[key]; !ok {
			u[key] = struct{}{}
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", name, i)
	}
}
