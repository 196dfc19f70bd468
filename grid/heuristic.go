package grid

import (
	"fmt"
	"math"
	"strings"
)

// Heuristic estimates the remaining cost from p to goal.
type Heuristic func(p, goal Point) float64

// Euclidean is the straight-line distance. It never overestimates on a
// 4-connected unit grid.
func Euclidean(p, goal Point) float64 {
	return math.Hypot(float64(p.Row-goal.Row), float64(p.Col-goal.Col))
}

// Manhattan is the exact distance on an obstacle-free 4-connected grid.
func Manhattan(p, goal Point) float64 {
	return math.Abs(float64(p.Row-goal.Row)) + math.Abs(float64(p.Col-goal.Col))
}

// Zero turns A* into uniform-cost search.
func Zero(Point, Point) float64 { return 0 }

// ParseHeuristic accepts "euclidean", "manhattan" or "zero". The empty string means manhattan.
func ParseHeuristic(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	case "zero", "none":
		return Zero, nil
	}
	return nil, fmt.Errorf("grid: unknown heuristic %q", name)
}
