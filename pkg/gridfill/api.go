package gridfill

import (
	"fmt"
)

// Direction is the orientation of a slot in the puzzle grid.
type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Cell identifies a single grid square by row and column.
type Cell struct {
	Row int
	Col int
}

// Variable identifies one contiguous slot of open cells in the grid.
// It is immutable and comparable, so it can be used as a map key; two
// Variables are equal iff position, direction, and length all match.
type Variable struct {
	Row       int
	Col       int
	Direction Direction
	Length    int
}

// Cells returns the grid cells covered by the slot, in word order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := 0; k < v.Length; k++ {
		cells[k] = Cell{Row: v.Row, Col: v.Col}
		if v.Direction == Down {
			cells[k].Row += k
		} else {
			cells[k].Col += k
		}
	}
	return cells
}

func (v Variable) String() string {
	return fmt.Sprintf("%d,%d %s (%d)", v.Row, v.Col, v.Direction, v.Length)
}

// Overlap records where two crossing slots share a cell: the character
// at offset X of the first slot's word must equal the character at
// offset Y of the second slot's word. Lookups by either ordering of
// the pair yield mirrored offsets.
type Overlap struct {
	X int
	Y int
}

// Assignment is a partial mapping from slots to chosen words. It is
// complete when every variable in the puzzle has an entry.
type Assignment map[Variable]string

// Word returns the word assigned to v, if any.
func (a Assignment) Word(v Variable) (string, bool) {
	w, ok := a[v]
	return w, ok
}

// Stage identifies the phase of a solve that proved the puzzle
// unsolvable.
type Stage uint8

const (
	// StagePropagation means a domain was emptied by node or arc
	// consistency before search began.
	StagePropagation Stage = iota
	// StageSearch means backtracking exhausted every branch.
	StageSearch
)

func (s Stage) String() string {
	if s == StageSearch {
		return "search"
	}
	return "propagation"
}

// NotSatisfiable is returned when a puzzle has no valid fill. It is a
// value-level outcome, not a fault: the solver always terminates with
// either a complete assignment or this error.
type NotSatisfiable struct {
	Stage Stage
}

func (e NotSatisfiable) Error() string {
	return fmt.Sprintf("puzzle not satisfiable: no assignment exists (%s)", e.Stage)
}
