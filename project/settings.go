package project

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"cardcut/common"
	"cardcut/layout"
	"cardcut/source"
)

// ModeSpec is serializable form of layout.Mode. Flip edge defaults to long,
// gutter orientation to vertical.
type ModeSpec struct {
	Type        common.ModeType           `yaml:"type" json:"type"`
	FlipEdge    *common.FlipEdge          `yaml:"flip_edge,omitempty" json:"flip_edge,omitempty"`
	Orientation *common.GutterOrientation `yaml:"orientation,omitempty" json:"orientation,omitempty"`
}

// Mode converts specification to resolver mode.
func (m ModeSpec) Mode() (layout.Mode, error) {
	switch m.Type {
	case common.ModeTypeSimplex:
		return layout.Simplex{}, nil
	case common.ModeTypeDuplex:
		edge := common.FlipEdgeLong
		if m.FlipEdge != nil {
			edge = *m.FlipEdge
		}
		return layout.Duplex{FlipEdge: edge}, nil
	case common.ModeTypeGutterFold:
		o := common.GutterOrientationVertical
		if m.Orientation != nil {
			o = *m.Orientation
		}
		return layout.GutterFold{Orientation: o}, nil
	}
	return nil, fmt.Errorf("%w: %s", layout.ErrInvalidMode, m.Type)
}

// PageSettings are per source page settings, in source order.
type PageSettings struct {
	Role common.PageRole `yaml:"role,omitempty" json:"role,omitempty"`
	Skip bool            `yaml:"skip,omitempty" json:"skip,omitempty"`
	// Size replaces detected page size when known.
	Size layout.Size `yaml:"size,omitempty" json:"size,omitempty"`
}

// GroupSettings give several source pages a common mode.
type GroupSettings struct {
	Name  string    `yaml:"name" json:"name"`
	Pages []int     `yaml:"pages" json:"pages"`
	Mode  *ModeSpec `yaml:"mode,omitempty" json:"mode,omitempty"`
}

// Settings is the layout part of a project. It is shared by project files and
// HTTP API requests.
type Settings struct {
	Grid      layout.Grid       `yaml:"grid" json:"grid"`
	Mode      ModeSpec          `yaml:"mode" json:"mode"`
	PageSize  layout.Size       `yaml:"page_size,omitempty" json:"page_size,omitempty"`
	Pages     []PageSettings    `yaml:"pages,omitempty" json:"pages,omitempty"`
	Groups    []GroupSettings   `yaml:"groups,omitempty" json:"groups,omitempty"`
	Overrides []layout.Override `yaml:"overrides,omitempty" json:"overrides,omitempty"`
	// Skipped cells are addressed by active page position, after skipped
	// pages are removed.
	Skipped []layout.CellRef `yaml:"skipped,omitempty" json:"skipped,omitempty"`
}

func (s *Settings) Validate() error {
	var errs []error
	errs = append(errs, s.Grid.Validate())
	if _, err := s.Mode.Mode(); err != nil {
		errs = append(errs, err)
	}
	for _, g := range s.Groups {
		if g.Mode == nil {
			continue
		}
		if _, err := g.Mode.Mode(); err != nil {
			errs = append(errs, fmt.Errorf("group %q: %w", g.Name, err))
		}
	}
	for i, p := range s.Pages {
		if !p.Role.IsValid() {
			errs = append(errs, fmt.Errorf("page %d: invalid role %s", i, p.Role))
		}
	}
	return errors.Join(errs...)
}

func (s *Settings) page(i int) PageSettings {
	if i < len(s.Pages) {
		return s.Pages[i]
	}
	return PageSettings{}
}

// pageNamespace is used to derive stable page identifiers.
var pageNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("cardcut:page"))

// PageID returns identifier of the source page which does not change when
// other pages are skipped or regrouped.
func PageID(info source.PageInfo) string {
	return uuid.NewSHA1(pageNamespace, fmt.Appendf(nil, "%s#%d", info.Source, info.Index)).String()
}

// Layout builds resolver input for opened source pages. Skipped pages are
// removed, groups are mapped from source page numbers to active positions.
// Duplex pages without explicit role alternate front and back by source page
// number, starting with front.
func (s *Settings) Layout(infos []source.PageInfo) (*layout.Layout, error) {
	mode, err := s.Mode.Mode()
	if err != nil {
		return nil, err
	}

	// effective group mode of every source page, first group listing a page wins
	groupModes := make([]layout.Mode, len(infos))
	for _, g := range s.Groups {
		if g.Mode == nil {
			continue
		}
		gm, err := g.Mode.Mode()
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		for _, i := range g.Pages {
			if i >= 0 && i < len(infos) && groupModes[i] == nil {
				groupModes[i] = gm
			}
		}
	}

	active := make(map[int]int, len(infos))
	l := &layout.Layout{
		Grid:      s.Grid,
		Mode:      mode,
		Overrides: s.Overrides,
		Skipped:   s.Skipped,
		PageSize:  s.PageSize,
	}
	for i, info := range infos {
		ps := s.page(i)
		if ps.Skip {
			continue
		}
		size := info.Size
		if ps.Size.Known() {
			size = ps.Size
		}
		role := ps.Role
		effective := mode
		if groupModes[i] != nil {
			effective = groupModes[i]
		}
		if role == common.PageRoleNone && effective.Type() == common.ModeTypeDuplex {
			role = common.PageRoleFront
			if i%2 == 1 {
				role = common.PageRoleBack
			}
		}
		active[i] = len(l.Pages)
		l.Pages = append(l.Pages, layout.Page{
			ID:            PageID(info),
			Role:          role,
			OriginalIndex: i,
			Size:          size,
		})
	}
	if len(l.Pages) == 0 {
		return nil, ErrNoPages
	}

	groups := make([]layout.Group, 0, len(s.Groups))
	for _, g := range s.Groups {
		if g.Mode == nil {
			continue
		}
		gm, _ := g.Mode.Mode()
		lg := layout.Group{Name: g.Name, Mode: gm}
		for _, i := range g.Pages {
			if pos, ok := active[i]; ok {
				lg.PageIndices = append(lg.PageIndices, pos)
			}
		}
		groups = append(groups, lg)
	}
	l.Pages = layout.ApplyGroups(l.Pages, groups)
	return l, nil
}
