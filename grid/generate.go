package grid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

// MaxWalkSteps bounds Clusters*Steps so generation work stays proportional to a board.
const MaxWalkSteps = MaxCells

var ErrGenerateOptions = errors.New("grid: invalid generate options")

// GenerateOptions shapes the random obstacle clusters.
type GenerateOptions struct {
	// Clusters is the number of random walks.
	Clusters int
	// Steps is the length of each walk.
	Steps int
	// Density is the chance that a visited cell becomes an obstacle.
	Density float64
	Seed    uint64
}

// DefaultGenerateOptions matches the clustered walls of the web demo.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Clusters: 8, Steps: 200, Density: 0.25}
}

// Generate returns a board with distinct random start and goal cells and
// clustered walls laid down by random walks. The same options always
// produce the same board.
func Generate(rows, cols int, opts GenerateOptions) (*Board, error) {
	b, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	switch {
	case opts.Density < 0 || opts.Density > 1:
		return nil, fmt.Errorf("%w: density %v outside [0, 1]", ErrGenerateOptions, opts.Density)
	case opts.Clusters < 0 || opts.Steps < 0:
		return nil, fmt.Errorf("%w: negative clusters or steps", ErrGenerateOptions)
	case opts.Clusters > 0 && opts.Steps > MaxWalkSteps/opts.Clusters:
		return nil, fmt.Errorf("%w: %d clusters of %d steps exceeds %d", ErrGenerateOptions, opts.Clusters, opts.Steps, MaxWalkSteps)
	}

	r := rand.New(rand.NewSource(opts.Seed))
	randomPoint := func() Point { return Point{Row: r.Intn(rows), Col: r.Intn(cols)} }

	start, goal := randomPoint(), randomPoint()
	for start == goal {
		goal = randomPoint()
	}
	b.set(b.start, Free)
	b.set(b.goal, Free)
	b.start, b.goal = start, goal
	b.set(start, Start)
	b.set(goal, Goal)

	directions := [4]Point{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}
	for c := 0; c < opts.Clusters; c++ {
		p := randomPoint()
		for s := 0; s < opts.Steps; s++ {
			if r.Float64() < opts.Density && p != start && p != goal {
				b.set(p, Obstacle)
			}
			d := directions[r.Intn(len(directions))]
			next := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if b.In(next) {
				p = next
			}
		}
	}
	return b, nil
}
