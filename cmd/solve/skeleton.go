package solve

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Skeleton holds a crossword structure parsed from its text
// representation: one line per row, an underscore for every cell that
// may hold a letter, any other character for a blocked cell.
type Skeleton struct {
	open [][]bool
}

func (s *Skeleton) Open() [][]bool {
	return s.open
}

// NewSkeleton parses a structure from the text stream afforded by
// reader. Rows may have different lengths; the puzzle model pads them.
func NewSkeleton(reader io.Reader) (*Skeleton, error) {
	scanner := bufio.NewScanner(reader)

	var open [][]bool
	openCells := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		row := make([]bool, len(line))
		for i, c := range []byte(line) {
			if c == '_' {
				row[i] = true
				openCells++
			}
		}
		open = append(open, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading structure data: %w", err)
	}

	if len(open) == 0 {
		return nil, fmt.Errorf("invalid structure: no rows found")
	}
	if openCells == 0 {
		return nil, fmt.Errorf("invalid structure: no open cells found")
	}

	return &Skeleton{open: open}, nil
}

// ReadWords parses a candidate word list, one word per line, skipping
// blank lines.
func ReadWords(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)

	var words []string
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("invalid word list: no words found")
	}
	return words, nil
}
