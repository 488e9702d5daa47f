// Package project describes a card cutting job: where card sheets come from
// and how cards are laid out on them.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"cardcut/extract"
)

var ErrNoPages = errors.New("no pages to process")

// Source is a single card sheet source: a file, a directory, a path inside
// zip archive or an http(s) URL.
type Source struct {
	Path string `yaml:"path" json:"path" validate:"required"`
}

// Project is everything needed to process one set of card sheets.
type Project struct {
	Sources  []Source        `yaml:"sources" json:"sources" validate:"required,min=1,dive"`
	Crop     extract.Margins `yaml:"crop,omitempty" json:"crop"`
	Settings `yaml:",inline"`

	// directory project was loaded from
	dir string
}

// Load reads project file. Relative local sources are resolved against the
// directory of the file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read project file: %w", err)
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	p, err := Parse(data, dir)
	if err != nil {
		return nil, fmt.Errorf("unable to load project %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates project. Unknown fields are errors.
func Parse(data []byte, dir string) (*Project, error) {
	p := &Project{dir: dir}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Project) Validate() error {
	if err := gencfg.Validate(p); err != nil {
		return err
	}
	return p.Settings.Validate()
}

// Refs returns source references ready to be opened.
func (p *Project) Refs() []string {
	refs := make([]string, 0, len(p.Sources))
	for _, s := range p.Sources {
		ref := s.Path
		if u, err := url.Parse(ref); err == nil && len(u.Scheme) > 1 && len(u.Host) > 0 {
			refs = append(refs, ref)
			continue
		}
		if !filepath.IsAbs(ref) && len(p.dir) > 0 {
			ref = filepath.Join(p.dir, ref)
		}
		refs = append(refs, ref)
	}
	return refs
}
