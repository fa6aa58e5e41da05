package satsolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

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

func assertSound(t *testing.T, p *puzzle.Puzzle, a gridfill.Assignment) {
	t.Helper()
	require.Len(t, a, len(p.Variables()))
	used := map[string]struct{}{}
	for _, v := range p.Variables() {
		w, ok := a.Word(v)
		require.True(t, ok, "unassigned slot %s", v)
		assert.Len(t, w, v.Length)
		_, dup := used[w]
		assert.False(t, dup, "word %q used twice", w)
		used[w] = struct{}{}
		for _, n := range p.Neighbors(v) {
			overlap, ok := p.Overlap(v, n)
			require.True(t, ok)
			assert.Equal(t, w[overlap.X], a[n][overlap.Y])
		}
	}
}

func TestSolveCross(t *testing.T) {
	p := crossPuzzle(t, "ABC", "ABD", "XYZ")

	assignment, err := Solve(p)

	require.NoError(t, err)
	assertSound(t, p, assignment)
}

func TestSolveSquare(t *testing.T) {
	p, err := puzzle.New([][]bool{
		{true, true},
		{true, true},
	}, []string{"AB", "CA", "AC", "BA", "XY"})
	require.NoError(t, err)

	assignment, err := Solve(p)

	require.NoError(t, err)
	assertSound(t, p, assignment)
}

func TestSolveUnsatisfiable(t *testing.T) {
	type tc struct {
		Name  string
		Words []string
	}

	for _, tt := range []tc{
		{
			Name:  "no candidate of the required length",
			Words: []string{"AB", "ABCD"},
		},
		{
			Name:  "crossing letters can never agree",
			Words: []string{"ABC", "XYZ"},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := Solve(crossPuzzle(t, tt.Words...))

			var ns NotSatisfiable
			assert.True(t, errors.As(err, &ns))
		})
	}
}

func TestSolvePuzzleWithoutSlots(t *testing.T) {
	p, err := puzzle.New([][]bool{
		{true, false},
		{false, true},
	}, []string{"AB"})
	require.NoError(t, err)

	assignment, err := Solve(p)

	require.NoError(t, err)
	assert.Empty(t, assignment)
}

func TestEncodePlacements(t *testing.T) {
	p := crossPuzzle(t, "ABC", "AB", "XYZ")
	enc := encode(p)

	// Two slots of length three, two feasible words each, plus one
	// anchor variable per slot.
	assert.Len(t, enc.placements, 4)
	assert.Len(t, enc.variables, 6)
}
