// Package grid is the board the demonstrator edits and solves: obstacles,
// a start marker and a goal marker on a rectangular grid of cells.
package grid

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	ErrOccupied    = errors.New("grid: cell is not free")
	ErrBadSize     = errors.New("grid: board needs at least two cells")
	ErrTooLarge    = errors.New("grid: board too large")
)

// Point is a cell coordinate. It is the search state for boards.
type Point struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Cell is what occupies a board position.
type Cell uint8

const (
	Free Cell = iota
	Obstacle
	Start
	Goal
	Explored
	Path
)

func (c Cell) String() string {
	switch c {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Explored:
		return "explored"
	case Path:
		return "path"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// DefaultRows and DefaultCols give the size of the board the demonstrator opens with.
const (
	DefaultRows = 33
	DefaultCols = 65
)

// MaxCells bounds rows*cols for any board.
const MaxCells = 1 << 26

// Board is a rows x cols grid. Start and goal always sit on their own cells.
type Board struct {
	rows, cols int
	cells      []Cell
	start      Point
	goal       Point
}

// New returns an empty board with the start in the middle and the goal
// immediately to its right.
func New(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, rows, cols)
	}
	// divide rather than multiply so huge dimensions cannot wrap around
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrTooLarge, rows, cols, MaxCells)
	}
	if rows*cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, rows, cols)
	}
	b := &Board{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	b.start = Point{Row: rows / 2, Col: cols / 2}
	b.goal = Point{Row: b.start.Row, Col: b.start.Col + 1}
	if b.goal.Col >= cols {
		b.goal = Point{Row: b.start.Row, Col: b.start.Col - 1}
	}
	if b.goal.Col < 0 {
		b.goal = Point{Row: (b.start.Row + 1) % rows, Col: b.start.Col}
	}
	b.set(b.start, Start)
	b.set(b.goal, Goal)
	return b, nil
}

// Default returns the 33x65 board.
func Default() *Board {
	b, _ := New(DefaultRows, DefaultCols)
	return b
}

func (b *Board) Rows() int    { return b.rows }
func (b *Board) Cols() int    { return b.cols }
func (b *Board) Start() Point { return b.start }
func (b *Board) Goal() Point  { return b.goal }

// In reports whether p lies on the board.
func (b *Board) In(p Point) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// At returns the cell at p.
func (b *Board) At(p Point) (Cell, error) {
	if !b.In(p) {
		return Free, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	return b.cells[b.index(p)], nil
}

// Obstacles lists obstacle positions row by row.
func (b *Board) Obstacles() []Point {
	var out []Point
	for i, c := range b.cells {
		if c == Obstacle {
			out = append(out, Point{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return out
}

// SetObstacle turns a free cell into an obstacle.
func (b *Board) SetObstacle(p Point) error {
	if err := b.requireFree(p); err != nil {
		return err
	}
	b.set(p, Obstacle)
	return nil
}

// ClearObstacle frees p if it holds an obstacle; other cells are left alone.
func (b *Board) ClearObstacle(p Point) error {
	c, err := b.At(p)
	if err != nil {
		return err
	}
	b.Reset()
	if c == Obstacle {
		b.set(p, Free)
	}
	return nil
}

// MoveStart moves the start marker onto a free cell.
func (b *Board) MoveStart(p Point) error {
	if err := b.requireFree(p); err != nil {
		return err
	}
	b.set(b.start, Free)
	b.start = p
	b.set(p, Start)
	return nil
}

// MoveGoal moves the goal marker onto a free cell.
func (b *Board) MoveGoal(p Point) error {
	if err := b.requireFree(p); err != nil {
		return err
	}
	b.set(b.goal, Free)
	b.goal = p
	b.set(p, Goal)
	return nil
}

// Reset clears the explored and path overlay of a previous solve but
// keeps obstacles, start and goal.
func (b *Board) Reset() {
	for i, c := range b.cells {
		if c == Explored || c == Path {
			b.cells[i] = Free
		}
	}
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = append([]Cell(nil), b.cells...)
	return &c
}

// NextStates returns the in-bounds, non-obstacle neighbours of p in the
// order down, up, right, left.
func (b *Board) NextStates(p Point) []Point {
	candidates := [4]Point{
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row, Col: p.Col + 1},
		{Row: p.Row, Col: p.Col - 1},
	}
	next := make([]Point, 0, len(candidates))
	for _, candidate := range candidates {
		if b.In(candidate) && b.cells[b.index(candidate)] != Obstacle {
			next = append(next, candidate)
		}
	}
	return next
}

// IsGoal reports whether p is the goal cell.
func (b *Board) IsGoal(p Point) bool { return p == b.goal }

// requireFree resets any overlay first, so explored or path cells count as free.
func (b *Board) requireFree(p Point) error {
	c, err := b.At(p)
	if err != nil {
		return err
	}
	b.Reset()
	if c != Free && c != Explored && c != Path {
		return fmt.Errorf("%w: %s holds %s", ErrOccupied, p, c)
	}
	return nil
}

func (b *Board) index(p Point) int { return p.Row*b.cols + p.Col }

func (b *Board) set(p Point, c Cell) { b.cells[b.index(p)] = c }
