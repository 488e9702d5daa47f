package layout

import (
	"slices"
)

// Group is a named set of active page positions sharing processing mode.
// Groups only organize pages, they never reorder them.
type Group struct {
	Name        string
	PageIndices []int
	// Mode of grouped pages, nil keeps whatever pages have.
	Mode Mode
}

// ApplyGroups returns copy of pages where every grouped page carries mode of
// its group. Page order is preserved. Indices outside of pages are ignored,
// a page listed in several groups takes mode of the first one.
func ApplyGroups(pages []Page, groups []Group) []Page {
	out := slices.Clone(pages)
	assigned := make([]bool, len(out))
	for _, g := range groups {
		if g.Mode == nil {
			continue
		}
		for _, i := range g.PageIndices {
			if i < 0 || i >= len(out) || assigned[i] {
				continue
			}
			assigned[i] = true
			out[i].Mode = g.Mode
		}
	}
	return out
}
