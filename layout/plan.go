package layout

import (
	"cmp"
	"slices"

	"cardcut/common"
)

// slot is classification of a single cell before numbering.
type slot struct {
	typ     common.CardType
	skipped bool
	// partner is global index of the cell a back is printed against, -1 when
	// there is none.
	partner  int
	fallback bool
}

func single(t common.CardType) slot {
	return slot{typ: t, partner: -1}
}

type classifier struct {
	l         *Layout
	cpp       int
	overrides map[CellRef]common.CardType
	skipped   map[CellRef]struct{}
	// fronts lists positions of duplex pages tagged front, backOrdinal maps
	// position of duplex page tagged back to its ordinal among such pages.
	fronts      []int
	backOrdinal map[int]int
}

func newClassifier(l *Layout) *classifier {
	c := &classifier{
		l:           l,
		cpp:         l.Grid.CardsPerPage(),
		overrides:   make(map[CellRef]common.CardType, len(l.Overrides)),
		skipped:     make(map[CellRef]struct{}, len(l.Skipped)),
		backOrdinal: make(map[int]int),
	}

	valid := func(ref CellRef) bool {
		return ref.Page >= 0 && ref.Page < len(l.Pages) && l.Grid.contains(ref)
	}
	// references to cells which do not exist are ignored, later overrides of
	// the same cell replace earlier ones
	for _, o := range l.Overrides {
		if !valid(o.CellRef) || (o.Type != common.CardTypeFront && o.Type != common.CardTypeBack) {
			continue
		}
		c.overrides[o.CellRef] = o.Type
	}
	for _, s := range l.Skipped {
		if valid(s) {
			c.skipped[s] = struct{}{}
		}
	}

	for i, p := range l.Pages {
		if _, ok := l.pageMode(i).(Duplex); !ok {
			continue
		}
		switch p.Role {
		case common.PageRoleFront:
			c.fronts = append(c.fronts, i)
		case common.PageRoleBack:
			c.backOrdinal[i] = len(c.backOrdinal)
		}
	}
	return c
}

func (c *classifier) classify(index int) slot {
	page := index / c.cpp
	cell := c.l.Grid.cell(page, index%c.cpp)

	if _, ok := c.skipped[cell]; ok {
		return slot{skipped: true, partner: -1}
	}
	if t, ok := c.overrides[cell]; ok {
		return single(t)
	}

	switch m := c.l.pageMode(page).(type) {
	case Simplex:
		return single(common.CardTypeFront)
	case Duplex:
		switch c.l.Pages[page].Role {
		case common.PageRoleFront:
			return single(common.CardTypeFront)
		case common.PageRoleBack:
			mirrored, fallback := Mirror(cell, c.l.Grid, m.FlipEdge, c.l.pageSize(page))
			s := slot{typ: common.CardTypeBack, partner: -1, fallback: fallback}
			if k := c.backOrdinal[page]; k < len(c.fronts) {
				mirrored.Page = c.fronts[k]
				s.partner = c.l.Grid.index(mirrored)
			}
			return s
		}
	case GutterFold:
		partner, t := FoldPartner(cell, c.l.Grid, m.Orientation)
		switch t {
		case common.CardTypeFront:
			return single(t)
		case common.CardTypeBack:
			return slot{typ: t, partner: c.l.Grid.index(partner)}
		}
	}
	return single(common.CardTypeUnknown)
}

// Plan is fully resolved layout: identity of every cell. Plan is immutable
// and safe for concurrent use.
type Plan struct {
	grid     Grid
	pages    []Page
	results  []Result
	fallback bool
}

// NewPlan validates layout and resolves every cell of it.
//
// Fronts are numbered in global index order. A back printed against a front
// takes the number of that front, as long as the number fits into 1..N where
// N is number of backs. Remaining backs (overridden, unpaired, or behind
// skipped and overridden cells) fill unused numbers, paired ones in order of
// their fronts first, then the rest in global index order. Both sequences are
// always dense.
func NewPlan(l *Layout) (*Plan, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	c := newClassifier(l)
	total := l.TotalCells()

	p := &Plan{
		grid:    l.Grid,
		pages:   slices.Clone(l.Pages),
		results: make([]Result, total),
	}

	slots := make([]slot, total)
	backs := make([]int, 0, total/2)
	fronts := 0
	for i := range total {
		s := c.classify(i)
		slots[i] = s

		r := Result{
			Index:                  i,
			Cell:                   l.Grid.cell(i/c.cpp, i%c.cpp),
			Skipped:                s.skipped,
			UsedFallbackDimensions: s.fallback,
		}
		switch s.typ {
		case common.CardTypeFront:
			fronts++
			r.Card = CardInfo{ID: fronts, Type: common.CardTypeFront}
		case common.CardTypeBack:
			r.Card = CardInfo{Type: common.CardTypeBack}
			backs = append(backs, i)
		}
		p.fallback = p.fallback || s.fallback
		p.results[i] = r
	}
	p.numberBacks(slots, backs)
	return p, nil
}

// numberBacks assigns dense ids to backs listed in global index order.
func (p *Plan) numberBacks(slots []slot, backs []int) {
	n := len(backs)
	taken := make([]bool, n+1)

	// frontID returns id of the front back i is printed against, 0 if the
	// partner is not a front
	frontID := func(i int) int {
		if j := slots[i].partner; j >= 0 && p.results[j].Card.Type == common.CardTypeFront {
			return p.results[j].Card.ID
		}
		return 0
	}

	rest := make([]int, 0, n)
	for _, i := range backs {
		if id := frontID(i); id > 0 && id <= n {
			p.results[i].Card.ID = id
			taken[id] = true
			continue
		}
		rest = append(rest, i)
	}

	// paired backs whose front number is out of range go first, by front
	tier := func(i int) (int, int) {
		if id := frontID(i); id > 0 {
			return 0, id
		}
		return 1, i
	}
	slices.SortStableFunc(rest, func(a, b int) int {
		ta, ka := tier(a)
		tb, kb := tier(b)
		return cmp.Or(cmp.Compare(ta, tb), cmp.Compare(ka, kb))
	})

	next := 1
	for _, i := range rest {
		for taken[next] {
			next++
		}
		taken[next] = true
		p.results[i].Card.ID = next
	}
}

// Resolve returns identity of the cell with given global index. Index out of
// range yields unknown card.
func (p *Plan) Resolve(index int) Result {
	if index < 0 || index >= len(p.results) {
		return Result{Index: index}
	}
	return p.results[index]
}

func (p *Plan) TotalCells() int {
	return len(p.results)
}

func (p *Plan) Grid() Grid {
	return p.grid
}

// Pages returns number of active pages.
func (p *Plan) Pages() int {
	return len(p.pages)
}

// Page returns descriptor of active page with given position.
func (p *Plan) Page(i int) Page {
	return p.pages[i]
}

// PageResults returns results of all cells of a single active page in
// row-major order.
func (p *Plan) PageResults(page int) []Result {
	if page < 0 || page >= len(p.pages) {
		return nil
	}
	cpp := p.grid.CardsPerPage()
	return slices.Clone(p.results[page*cpp : (page+1)*cpp])
}

// FallbackUsed reports whether any cell needed FallbackSize.
func (p *Plan) FallbackUsed() bool {
	return p.fallback
}

// Resolve computes identity of a single cell. It is a convenience wrapper
// building complete plan, invalid layouts produce unknown cards.
func Resolve(index int, l *Layout) Result {
	p, err := NewPlan(l)
	if err != nil {
		return Result{Index: index}
	}
	return p.Resolve(index)
}
