package satsolver

import (
	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

// placement ties a boolean variable of the encoding back to the slot
// and word it stands for.
type placement struct {
	slot gridfill.Variable
	word string
}

type encoding struct {
	variables  []*Variable
	placements map[Identifier]placement
}

func slotID(v gridfill.Variable) Identifier {
	return Identifier(v.String())
}

func placementID(v gridfill.Variable, word string) Identifier {
	return Identifier(v.String() + " = " + word)
}

// encode builds the boolean formulation of a fill. One variable per
// feasible (slot, word) placement, plus one anchor variable per slot
// demanding exactly one of its placements. Crossing slots conflict on
// placements that disagree about the shared cell, and any two slots
// conflict on placements of the same word.
func encode(p *puzzle.Puzzle) *encoding {
	slots := p.Variables()
	words := p.Words()

	candidates := make(map[gridfill.Variable][]string, len(slots))
	byPlacement := make(map[Identifier]*Variable)
	enc := &encoding{placements: map[Identifier]placement{}}

	for _, slot := range slots {
		for _, w := range words {
			if len(w) != slot.Length {
				continue
			}
			candidates[slot] = append(candidates[slot], w)
			id := placementID(slot, w)
			variable := NewVariable(id)
			byPlacement[id] = variable
			enc.variables = append(enc.variables, variable)
			enc.placements[id] = placement{slot: slot, word: w}
		}
	}

	// Exactly one placement per slot: the anchor demands at least
	// one candidate, the cardinality constraint forbids a second.
	for _, slot := range slots {
		ids := make([]Identifier, len(candidates[slot]))
		for i, w := range candidates[slot] {
			ids[i] = placementID(slot, w)
		}
		anchor := NewVariable(slotID(slot), Mandatory(), Dependency(ids...))
		if len(ids) > 1 {
			anchor.AddConstraint(AtMost(1, ids...))
		}
		enc.variables = append(enc.variables, anchor)
	}

	for i, x := range slots {
		for _, y := range slots[i+1:] {
			overlap, crossing := p.Overlap(x, y)
			for _, wx := range candidates[x] {
				for _, wy := range candidates[y] {
					switch {
					case wx == wy:
						// One word fills at most one slot.
						byPlacement[placementID(x, wx)].AddConstraint(Conflict(placementID(y, wy)))
					case crossing && wx[overlap.X] != wy[overlap.Y]:
						byPlacement[placementID(x, wx)].AddConstraint(Conflict(placementID(y, wy)))
					}
				}
			}
		}
	}

	return enc
}
