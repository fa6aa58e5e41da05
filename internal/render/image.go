package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

const (
	cellSize   = 32
	cellBorder = 2
)

// WritePNG rasterizes the filled grid: open cells are white squares
// with their letter centered in black, everything else stays black.
func WritePNG(w io.Writer, p *puzzle.Puzzle, a gridfill.Assignment) error {
	letters := Letters(p, a)
	img := image.NewRGBA(image.Rect(0, 0, p.Width()*cellSize, p.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	for row := 0; row < p.Height(); row++ {
		for col := 0; col < p.Width(); col++ {
			if !p.Open(row, col) {
				continue
			}
			cell := image.Rect(
				col*cellSize+cellBorder,
				row*cellSize+cellBorder,
				(col+1)*cellSize-cellBorder,
				(row+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if letters[row][col] == 0 {
				continue
			}
			s := string(letters[row][col])
			width := drawer.MeasureString(s)
			drawer.Dot = fixed.Point26_6{
				X: fixed.I(col*cellSize+cellSize/2) - width/2,
				Y: fixed.I(row*cellSize + (cellSize+face.Ascent)/2),
			}
			drawer.DrawString(s)
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("error encoding image: %w", err)
	}
	return nil
}

// SavePNG writes the rasterized grid to a file.
func SavePNG(path string, p *puzzle.Puzzle, a gridfill.Assignment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating image file (%s): %w", path, err)
	}
	defer f.Close()

	if err := WritePNG(f, p, a); err != nil {
		return err
	}
	return f.Close()
}
