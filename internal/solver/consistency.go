package solver

import (
	"github.com/gridfill/gridfill/pkg/gridfill"
)

// arc is an ordered pair of slots whose shared constraint is due for
// revision.
type arc struct {
	x gridfill.Variable
	y gridfill.Variable
}

// enforceNodeConsistency removes from every domain each word whose
// length differs from the slot's length. Unary filtering only; no
// interaction between slots.
func (s *Solver) enforceNodeConsistency() {
	for _, v := range s.variables {
		for _, w := range s.domains.values(v) {
			if len(w) != v.Length {
				s.domains.remove(v, w)
			}
		}
	}
}

// revise makes x arc consistent with y by removing every word in x's
// domain with no compatible partner left in y's domain. Two words are
// compatible when they agree on the crossing cell and are not the same
// word; a word may appear at most once in the whole grid, so a slot
// whose domain has collapsed to a single word excludes that word from
// the other slot even when the two slots never cross. Reports whether
// anything was removed.
func (s *Solver) revise(x, y gridfill.Variable) bool {
	overlap, ok := s.puzzle.Overlap(x, y)
	if !ok {
		if w, single := s.domains.only(y); single && s.domains.contains(x, w) {
			s.domains.remove(x, w)
			return true
		}
		return false
	}

	revised := false
	for _, wx := range s.domains.values(x) {
		if !s.supported(wx, overlap, y) {
			s.domains.remove(x, wx)
			revised = true
		}
	}
	return revised
}

func (s *Solver) supported(wx string, overlap gridfill.Overlap, y gridfill.Variable) bool {
	if overlap.X >= len(wx) {
		return false
	}
	for _, wy := range s.domains.values(y) {
		if wx == wy || overlap.Y >= len(wy) {
			continue
		}
		if wx[overlap.X] == wy[overlap.Y] {
			return true
		}
	}
	return false
}

// ac3 runs arc consistency to a fixed point over a worklist of arcs.
// When arcs is nil the worklist is seeded with every ordered pair of
// crossing slots. Whenever a revision shrinks x's domain, every arc
// (x, z) for crossing slots z other than y is re-enqueued, since the
// smaller domain may have invalidated z's established consistency.
// Returns false as soon as any domain empties; true once the worklist
// drains with all domains non-empty. Terminates because every
// revision either leaves all domains unchanged or strictly shrinks
// one, and domains are finite.
func (s *Solver) ac3(arcs []arc) bool {
	queue := arcs
	if queue == nil {
		for _, x := range s.variables {
			for _, y := range s.puzzle.Neighbors(x) {
				queue = append(queue, arc{x: x, y: y})
			}
		}
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if !s.revise(a.x, a.y) {
			continue
		}
		if s.domains.size(a.x) == 0 {
			return false
		}
		for _, z := range s.puzzle.Neighbors(a.x) {
			if z != a.y {
				queue = append(queue, arc{x: a.x, y: z})
			}
		}
	}
	return true
}
