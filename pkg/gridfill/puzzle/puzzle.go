// Package puzzle derives the constraint model of a crossword skeleton:
// the set of slots (maximal runs of open cells, length >= 2, in each
// direction), the overlap relation between every pair of crossing
// slots, and the candidate word list. A Puzzle is immutable once
// constructed.
package puzzle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gridfill/gridfill/pkg/gridfill"
)

type pair struct {
	x gridfill.Variable
	y gridfill.Variable
}

type Puzzle struct {
	height int
	width  int
	open   [][]bool

	words     []string
	variables []gridfill.Variable
	overlaps  map[pair]gridfill.Overlap
	neighbors map[gridfill.Variable][]gridfill.Variable
}

// New builds a Puzzle from a skeleton and a candidate word list. Each
// row of open marks which cells may hold a letter; rows shorter than
// the widest row are padded with blocked cells. Words are uppercased
// and deduplicated.
func New(open [][]bool, words []string) (*Puzzle, error) {
	if len(open) == 0 {
		return nil, fmt.Errorf("structure has no rows")
	}

	height := len(open)
	width := 0
	for _, row := range open {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("structure has no columns")
	}

	grid := make([][]bool, height)
	for i, row := range open {
		grid[i] = make([]bool, width)
		copy(grid[i], row)
	}

	p := &Puzzle{
		height:    height,
		width:     width,
		open:      grid,
		words:     normalizeWords(words),
		overlaps:  map[pair]gridfill.Overlap{},
		neighbors: map[gridfill.Variable][]gridfill.Variable{},
	}
	p.scanVariables()
	p.computeOverlaps()
	return p, nil
}

func normalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// scanVariables collects every maximal run of at least two open cells,
// first along rows, then along columns.
func (p *Puzzle) scanVariables() {
	for row := 0; row < p.height; row++ {
		start := -1
		for col := 0; col <= p.width; col++ {
			if col < p.width && p.open[row][col] {
				if start < 0 {
					start = col
				}
				continue
			}
			if start >= 0 && col-start >= 2 {
				p.variables = append(p.variables, gridfill.Variable{
					Row: row, Col: start, Direction: gridfill.Across, Length: col - start,
				})
			}
			start = -1
		}
	}
	for col := 0; col < p.width; col++ {
		start := -1
		for row := 0; row <= p.height; row++ {
			if row < p.height && p.open[row][col] {
				if start < 0 {
					start = row
				}
				continue
			}
			if start >= 0 && row-start >= 2 {
				p.variables = append(p.variables, gridfill.Variable{
					Row: start, Col: col, Direction: gridfill.Down, Length: row - start,
				})
			}
			start = -1
		}
	}
}

// computeOverlaps records, for every pair of slots sharing a cell, the
// offsets of that cell within each slot's word. Slots of the same
// direction never share a cell because runs are maximal.
func (p *Puzzle) computeOverlaps() {
	type position struct {
		v      gridfill.Variable
		offset int
	}
	occupied := map[gridfill.Cell][]position{}
	for _, v := range p.variables {
		for k, cell := range v.Cells() {
			occupied[cell] = append(occupied[cell], position{v: v, offset: k})
		}
	}
	for _, positions := range occupied {
		for i := 0; i < len(positions); i++ {
			for j := i + 1; j < len(positions); j++ {
				a, b := positions[i], positions[j]
				p.overlaps[pair{a.v, b.v}] = gridfill.Overlap{X: a.offset, Y: b.offset}
				p.overlaps[pair{b.v, a.v}] = gridfill.Overlap{X: b.offset, Y: a.offset}
				p.neighbors[a.v] = append(p.neighbors[a.v], b.v)
				p.neighbors[b.v] = append(p.neighbors[b.v], a.v)
			}
		}
	}
	for v := range p.neighbors {
		sortVariables(p.neighbors[v])
	}
}

func sortVariables(vars []gridfill.Variable) {
	sort.Slice(vars, func(i, j int) bool {
		a, b := vars[i], vars[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		return a.Direction < b.Direction
	})
}

func (p *Puzzle) Height() int { return p.height }
func (p *Puzzle) Width() int  { return p.width }

// Open reports whether the cell at (row, col) may hold a letter.
// Out-of-range cells are blocked.
func (p *Puzzle) Open(row, col int) bool {
	if row < 0 || row >= p.height || col < 0 || col >= p.width {
		return false
	}
	return p.open[row][col]
}

// Variables returns every slot in the puzzle, rows first, then
// columns.
func (p *Puzzle) Variables() []gridfill.Variable {
	out := make([]gridfill.Variable, len(p.variables))
	copy(out, p.variables)
	return out
}

// Words returns the normalized candidate word list.
func (p *Puzzle) Words() []string {
	out := make([]string, len(p.words))
	copy(out, p.words)
	return out
}

// Neighbors returns every slot that crosses v.
func (p *Puzzle) Neighbors(v gridfill.Variable) []gridfill.Variable {
	ns := p.neighbors[v]
	out := make([]gridfill.Variable, len(ns))
	copy(out, ns)
	return out
}

// Overlap returns the crossing offsets for x and y. Slots that do not
// intersect have no overlap; absence of overlap is not an error.
func (p *Puzzle) Overlap(x, y gridfill.Variable) (gridfill.Overlap, bool) {
	o, ok := p.overlaps[pair{x, y}]
	return o, ok
}
