package layout

import (
	"fmt"
	"sync"

	"github.com/mitchellh/hashstructure/v2"

	"cardcut/common"
)

type modeKey struct {
	Set         bool
	Type        common.ModeType
	FlipEdge    common.FlipEdge
	Orientation common.GutterOrientation
}

func newModeKey(m Mode) modeKey {
	k := modeKey{}
	switch v := m.(type) {
	case Simplex:
		k = modeKey{Set: true, Type: v.Type()}
	case Duplex:
		k = modeKey{Set: true, Type: v.Type(), FlipEdge: v.FlipEdge}
	case GutterFold:
		k = modeKey{Set: true, Type: v.Type(), Orientation: v.Orientation}
	}
	return k
}

type pageKey struct {
	Role common.PageRole
	Mode modeKey
	Size Size
}

// layoutKey is everything resolver looks at. Page identifiers and original
// indices do not influence numbering and are left out.
type layoutKey struct {
	Pages     []pageKey
	Grid      Grid
	Mode      modeKey
	Overrides []Override
	Skipped   []CellRef `hash:"set"`
	PageSize  Size
}

// Key returns structural hash of the layout. Layouts with equal keys resolve
// identically.
func Key(l *Layout) (uint64, error) {
	k := layoutKey{
		Pages:     make([]pageKey, 0, len(l.Pages)),
		Grid:      l.Grid,
		Mode:      newModeKey(l.Mode),
		Overrides: l.Overrides,
		Skipped:   l.Skipped,
		PageSize:  l.PageSize,
	}
	for _, p := range l.Pages {
		k.Pages = append(k.Pages, pageKey{Role: p.Role, Mode: newModeKey(p.Mode), Size: p.Size})
	}
	h, err := hashstructure.Hash(k, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("unable to hash layout: %w", err)
	}
	return h, nil
}

// Cache memoizes plans by structural hash of their layouts. Oldest plans are
// evicted first. Cache is safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	size   int
	plans  map[uint64]*Plan
	order  []uint64
	hits   int
	misses int
}

func NewCache(size int) *Cache {
	if size < 1 {
		size = 1
	}
	return &Cache{
		size:  size,
		plans: make(map[uint64]*Plan, size),
	}
}

// Plan returns memoized plan for the layout building it when necessary.
func (c *Cache) Plan(l *Layout) (*Plan, error) {
	key, err := Key(l)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if p, ok := c.plans[key]; ok {
		c.hits++
		c.mu.Unlock()
		return p, nil
	}
	c.misses++
	c.mu.Unlock()

	// building plan is pure, concurrent misses for the same key produce
	// identical plans and the last one stays
	p, err := NewPlan(l)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.plans[key]; !ok {
		if len(c.order) >= c.size {
			delete(c.plans, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, key)
	}
	c.plans[key] = p
	return p, nil
}

// Stats returns number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
