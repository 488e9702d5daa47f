package layout

import (
	"slices"

	"cardcut/common"
)

// Count returns number of cards of given type in the plan. It walks every
// global index through Resolve, so it can never disagree with it.
func (p *Plan) Count(t common.CardType) int {
	n := 0
	for i := range p.TotalCells() {
		if r := p.Resolve(i); r.Renderable() && r.Card.Type == t {
			n++
		}
	}
	return n
}

// AvailableIDs returns ascending card numbers of given type present in the
// plan.
func (p *Plan) AvailableIDs(t common.CardType) []int {
	ids := make([]int, 0, p.TotalCells())
	for i := range p.TotalCells() {
		if r := p.Resolve(i); r.Renderable() && r.Card.Type == t {
			ids = append(ids, r.Card.ID)
		}
	}
	slices.Sort(ids)
	return ids
}

// Indices returns global indices holding cards of given type, ordered by
// card number.
func (p *Plan) Indices(t common.CardType) []int {
	idx := make([]int, 0, p.TotalCells())
	for i := range p.TotalCells() {
		if r := p.Resolve(i); r.Renderable() && r.Card.Type == t {
			idx = append(idx, i)
		}
	}
	slices.SortFunc(idx, func(a, b int) int {
		return p.results[a].Card.ID - p.results[b].Card.ID
	})
	return idx
}

// CountCards is Count for a layout which has no plan yet. Invalid layouts
// hold no cards.
func CountCards(t common.CardType, l *Layout) int {
	p, err := NewPlan(l)
	if err != nil {
		return 0
	}
	return p.Count(t)
}

// AvailableIDs is Plan.AvailableIDs for a layout which has no plan yet.
func AvailableIDs(t common.CardType, l *Layout) []int {
	p, err := NewPlan(l)
	if err != nil {
		return nil
	}
	return p.AvailableIDs(t)
}
