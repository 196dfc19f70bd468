package grid

import (
	"errors"
	"fmt"
	"strings"
)

var ErrLayout = errors.New("grid: invalid layout")

var symbols = map[Cell]byte{
	Free:     '.',
	Obstacle: '#',
	Start:    'S',
	Goal:     'G',
	Explored: 'o',
	Path:     '*',
}

// Parse builds a board from text rows. Every row must have the same width
// and the layout must hold exactly one S and one G. Overlay symbols (o, *)
// are read as free cells.
func Parse(lines []string) (*Board, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrLayout)
	}
	rows, cols := len(lines), len(lines[0])
	if rows*cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, rows, cols)
	}
	b := &Board{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}

	starts, goals := 0, 0
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrLayout, r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			p := Point{Row: r, Col: c}
			switch line[c] {
			case '.', 'o', '*':
			case '#':
				b.set(p, Obstacle)
			case 'S':
				b.set(p, Start)
				b.start = p
				starts++
			case 'G':
				b.set(p, Goal)
				b.goal = p
				goals++
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %s", ErrLayout, line[c], p)
			}
		}
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: need exactly one S and one G, found %d and %d", ErrLayout, starts, goals)
	}
	return b, nil
}

// Lines renders the board including any painted overlay.
func (b *Board) Lines() []string {
	lines := make([]string, b.rows)
	var row strings.Builder
	for r := 0; r < b.rows; r++ {
		row.Reset()
		for c := 0; c < b.cols; c++ {
			row.WriteByte(symbols[b.cells[r*b.cols+c]])
		}
		lines[r] = row.String()
	}
	return lines
}

// Layout renders the board without overlay; Parse(b.Layout()) round-trips.
func (b *Board) Layout() []string {
	clean := b.Clone()
	clean.Reset()
	return clean.Lines()
}

// Render draws solution over a copy of the board.
func (b *Board) Render(solution Solution) string {
	canvas := b.Clone()
	canvas.Animate(solution, len(solution.Explored)+len(solution.Path)).Finish()
	return strings.Join(canvas.Lines(), "\n") + "\n"
}
