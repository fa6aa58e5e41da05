// Package render turns a completed assignment back into presentable
// forms: a letter grid, terminal text, and a rasterized PNG.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

const blockedRune = '█'

// Letters projects an assignment onto the grid: one rune per cell,
// zero for blocked or unfilled cells.
func Letters(p *puzzle.Puzzle, a gridfill.Assignment) [][]rune {
	letters := make([][]rune, p.Height())
	for row := range letters {
		letters[row] = make([]rune, p.Width())
	}
	for v, word := range a {
		for k, cell := range v.Cells() {
			letters[cell.Row][cell.Col] = rune(word[k])
		}
	}
	return letters
}

// Fprint writes the filled grid as text: letters in open cells, a
// block character elsewhere.
func Fprint(w io.Writer, p *puzzle.Puzzle, a gridfill.Assignment) error {
	letters := Letters(p, a)
	var b strings.Builder
	for row := 0; row < p.Height(); row++ {
		for col := 0; col < p.Width(); col++ {
			switch {
			case !p.Open(row, col):
				b.WriteRune(blockedRune)
			case letters[row][col] == 0:
				b.WriteByte(' ')
			default:
				b.WriteRune(letters[row][col])
			}
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("error writing grid: %w", err)
	}
	return nil
}
