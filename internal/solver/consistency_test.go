package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

// crossPuzzle is a 3x3 skeleton with one across slot (row 0) and one
// down slot (column 0) crossing at the top-left cell, both of length 3.
func crossPuzzle(t *testing.T, words ...string) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.New([][]bool{
		{true, true, true},
		{true, false, false},
		{true, false, false},
	}, words)
	require.NoError(t, err)
	return p
}

// parallelPuzzle has two across slots that never cross.
func parallelPuzzle(t *testing.T, words ...string) *puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.New([][]bool{
		{true, true, true},
		{false, false, false},
		{true, true, true},
	}, words)
	require.NoError(t, err)
	return p
}

func newTestSolver(t *testing.T, p *puzzle.Puzzle) *Solver {
	t.Helper()
	s, err := New(WithPuzzle(p))
	require.NoError(t, err)
	s.domains = newDomainStore(p)
	return s
}

func TestEnforceNodeConsistency(t *testing.T) {
	p := crossPuzzle(t, "AB", "ABC", "XYZ", "ABCD")
	s := newTestSolver(t, p)

	s.enforceNodeConsistency()

	for _, v := range p.Variables() {
		assert.ElementsMatch(t, []string{"ABC", "XYZ"}, s.domains.values(v))
		for _, w := range s.domains.values(v) {
			assert.Len(t, w, v.Length)
		}
	}
}

func TestRevise(t *testing.T) {
	across := gridfill.Variable{Row: 0, Col: 0, Direction: gridfill.Across, Length: 3}
	down := gridfill.Variable{Row: 0, Col: 0, Direction: gridfill.Down, Length: 3}

	type tc struct {
		Name    string
		Words   []string
		Revised bool
		Domain  []string
	}

	for _, tt := range []tc{
		{
			Name:    "keeps words with a compatible crossing partner",
			Words:   []string{"ABC", "ABD", "XYZ"},
			Revised: true,
			Domain:  []string{"ABC", "ABD"},
		},
		{
			Name:    "identical word is not its own support",
			Words:   []string{"ABC", "XYZ"},
			Revised: true,
			Domain:  []string{},
		},
		{
			Name:    "no change at fixed point",
			Words:   []string{"ABC", "ABD"},
			Revised: false,
			Domain:  []string{"ABC", "ABD"},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			s := newTestSolver(t, crossPuzzle(t, tt.Words...))
			s.enforceNodeConsistency()

			assert.Equal(t, tt.Revised, s.revise(across, down))
			assert.ElementsMatch(t, tt.Domain, s.domains.values(across))
		})
	}
}

func TestReviseWithoutOverlap(t *testing.T) {
	p := parallelPuzzle(t, "ABC", "DEF")
	s := newTestSolver(t, p)
	s.enforceNodeConsistency()

	vars := p.Variables()
	require.Len(t, vars, 2)
	x, y := vars[0], vars[1]

	// Both domains hold two words, so nothing is forced yet.
	assert.False(t, s.revise(x, y))

	// Once y collapses to a single word, x may no longer use it.
	s.domains.remove(y, "DEF")
	assert.True(t, s.revise(x, y))
	assert.Equal(t, []string{"DEF"}, s.domains.values(x))
}

func TestAC3(t *testing.T) {
	p := crossPuzzle(t, "ABC", "ABD", "XYZ")
	s := newTestSolver(t, p)
	s.enforceNodeConsistency()

	assert.True(t, s.ac3(nil))
	for _, v := range p.Variables() {
		assert.ElementsMatch(t, []string{"ABC", "ABD"}, s.domains.values(v))
	}
}

func TestAC3FailsWhenDomainEmpties(t *testing.T) {
	p := crossPuzzle(t, "ABC", "XYZ")
	s := newTestSolver(t, p)
	s.enforceNodeConsistency()

	assert.False(t, s.ac3(nil))
}

func TestAC3Idempotent(t *testing.T) {
	p := crossPuzzle(t, "ABC", "ABD", "XYZ")
	s := newTestSolver(t, p)
	s.enforceNodeConsistency()
	require.True(t, s.ac3(nil))

	before := map[gridfill.Variable][]string{}
	for _, v := range p.Variables() {
		before[v] = s.domains.values(v)
	}

	// A second run is a no-op: the fixed point is already reached.
	assert.True(t, s.ac3(nil))
	for _, v := range p.Variables() {
		assert.Equal(t, before[v], s.domains.values(v))
		for _, n := range p.Neighbors(v) {
			assert.False(t, s.revise(v, n))
		}
	}
}
