package grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pdrpinto/search"
)

// Solution is what a solve hands to the display layer.
type Solution struct {
	Strategy search.Strategy
	Found    bool
	// Explored is the discovery trace without the start and goal cells.
	Explored []Point
	// Path holds the cells strictly between start and goal.
	Path  []Point
	Stats search.Stats
}

// cost binds h to the board's current goal.
func (b *Board) cost(h Heuristic) search.CostFunc[Point] {
	if h == nil {
		h = Manhattan
	}
	goal := b.goal
	return func(p Point) float64 { return h(p, goal) }
}

// Solve clears any previous overlay and searches from start to goal.
// An unreachable goal is not an error: the solution comes back with Found
// unset and the explored trace filled in.
func (b *Board) Solve(ctx context.Context, strategy search.Strategy, h Heuristic, options ...search.Option) (Solution, error) {
	b.Reset()

	engine := search.NewEngine[Point](b, options...)
	engine.SetState(b.start)
	path, err := engine.Search(ctx, strategy, b.cost(h))

	solution := Solution{
		Strategy: strategy,
		Explored: b.trimEndpoints(engine.Visited()),
		Stats:    engine.Stats(),
	}
	switch {
	case err == nil:
		solution.Found = true
		solution.Path = append([]Point(nil), path.Interior()...)
	case errors.Is(err, search.ErrExhausted):
		log.Info().
			Str("strategy", strategy.String()).
			Stringer("start", b.start).
			Stringer("goal", b.goal).
			Int("explored", len(solution.Explored)).
			Msg("no path between start and goal")
	default:
		return solution, fmt.Errorf("solve with %s: %w", strategy, err)
	}
	return solution, nil
}

// Compare solves the board once per strategy concurrently. The board must
// not be edited until Compare returns.
func (b *Board) Compare(ctx context.Context, strategies []search.Strategy, h Heuristic, options ...search.Option) ([]Solution, error) {
	b.Reset()

	cost := b.cost(h)
	runs := make([]search.Run[Point], 0, len(strategies))
	for _, strategy := range strategies {
		runs = append(runs, search.Run[Point]{Strategy: strategy, Cost: cost})
	}

	outcomes := search.RunAll[Point](ctx, b, b.start, runs, options...)
	solutions := make([]Solution, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil && !errors.Is(outcome.Err, search.ErrExhausted) {
			return nil, fmt.Errorf("compare with %s: %w", outcome.Strategy, outcome.Err)
		}
		solution := Solution{
			Strategy: outcome.Strategy,
			Found:    outcome.Found(),
			Explored: b.trimEndpoints(outcome.Visited),
			Stats:    outcome.Stats,
		}
		if solution.Found {
			solution.Path = append([]Point(nil), outcome.Path.Interior()...)
		}
		solutions = append(solutions, solution)
	}
	return solutions, nil
}

func (b *Board) trimEndpoints(visited []Point) []Point {
	out := make([]Point, 0, len(visited))
	for _, p := range visited {
		if p != b.start && p != b.goal {
			out = append(out, p)
		}
	}
	return out
}
