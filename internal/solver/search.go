package solver

import (
	"sort"

	"github.com/gridfill/gridfill/pkg/gridfill"
)

// backtrack extends a partial assignment one slot at a time, trying
// candidate words in least-constraining order and recursing. A failed
// branch removes its tentative entry before returning, so the
// assignment observed by the caller is exactly the one it passed in.
// Returns true once the assignment is complete.
func (s *Solver) backtrack(assignment gridfill.Assignment, depth int) bool {
	if len(assignment) == len(s.variables) {
		return true
	}

	v := s.selectUnassignedVariable(assignment)
	for _, word := range s.orderDomainValues(v, assignment) {
		s.tracer.Trace(searchPosition{depth: depth, variable: v, word: word})
		assignment[v] = word
		if s.consistent(v, assignment) && s.backtrack(assignment, depth+1) {
			return true
		}
		delete(assignment, v)
	}
	return false
}

// consistent checks the slot just assigned against the rest of the
// assignment: the word must fit the slot, must not be used by any
// other slot, and must agree with every assigned crossing slot on the
// shared cell.
func (s *Solver) consistent(v gridfill.Variable, assignment gridfill.Assignment) bool {
	word := assignment[v]
	if len(word) != v.Length {
		return false
	}
	for other, w := range assignment {
		if other != v && w == word {
			return false
		}
	}
	for _, n := range s.puzzle.Neighbors(v) {
		wn, assigned := assignment[n]
		if !assigned {
			continue
		}
		overlap, ok := s.puzzle.Overlap(v, n)
		if !ok {
			continue
		}
		if word[overlap.X] != wn[overlap.Y] {
			return false
		}
	}
	return true
}

// selectUnassignedVariable picks the next slot to fill: fewest
// remaining candidates first (minimum remaining values), breaking ties
// by most crossings (highest degree). Remaining ties keep the first
// slot in construction order; exact tie resolution is not part of the
// contract.
func (s *Solver) selectUnassignedVariable(assignment gridfill.Assignment) gridfill.Variable {
	var best gridfill.Variable
	found := false
	for _, v := range s.variables {
		if _, assigned := assignment[v]; assigned {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		size, bestSize := s.domains.size(v), s.domains.size(best)
		if size < bestSize {
			best = v
		} else if size == bestSize && len(s.puzzle.Neighbors(v)) > len(s.puzzle.Neighbors(best)) {
			best = v
		}
	}
	return best
}

// orderDomainValues sorts v's candidates ascending by the number of
// words they would rule out in unassigned crossing slots, so the least
// constraining candidate is tried first.
func (s *Solver) orderDomainValues(v gridfill.Variable, assignment gridfill.Assignment) []string {
	values := s.domains.values(v)
	ruledOut := make(map[string]int, len(values))
	for _, n := range s.puzzle.Neighbors(v) {
		if _, assigned := assignment[n]; assigned {
			continue
		}
		overlap, ok := s.puzzle.Overlap(v, n)
		if !ok {
			continue
		}
		for _, w := range values {
			for _, wn := range s.domains.values(n) {
				if w[overlap.X] != wn[overlap.Y] {
					ruledOut[w]++
				}
			}
		}
	}
	sort.SliceStable(values, func(i, j int) bool {
		return ruledOut[values[i]] < ruledOut[values[j]]
	})
	return values
}
