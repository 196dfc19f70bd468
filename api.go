package search

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Graph is generic over state type S.
// S must be comparable so it can be used as a map key.
type Graph[S comparable] interface {
	// NextStates returns every legal successor of state. An empty result is a dead end.
	NextStates(state S) []S
	// IsGoal reports whether state satisfies the goal predicate.
	IsGoal(state S) bool
}

// WeightedGraph is a Graph whose edges carry a cost.
// Graphs that don't implement it are treated as having unit edges.
type WeightedGraph[S comparable] interface {
	Graph[S]
	StepCost(from, to S) float64
}

// Funcs adapts plain functions to a WeightedGraph.
type Funcs[S comparable] struct {
	Next func(state S) []S
	Goal func(state S) bool
	// Step is optional; nil means every edge costs 1.
	Step func(from, to S) float64
}

func (f Funcs[S]) NextStates(state S) []S { return f.Next(state) }
func (f Funcs[S]) IsGoal(state S) bool    { return f.Goal(state) }

func (f Funcs[S]) StepCost(from, to S) float64 {
	if f.Step == nil {
		return 1
	}
	return f.Step(from, to)
}

// CostFunc scores a state. Greedy orders the frontier by it directly,
// AStar adds it to the accumulated path cost.
type CostFunc[S comparable] func(state S) float64

// Strategy selects the frontier pop policy.
type Strategy int

const (
	BreadthFirst Strategy = iota
	DepthFirst
	UniformCost
	Greedy
	AStar
)

// Strategies lists every supported strategy in declaration order.
var Strategies = []Strategy{BreadthFirst, DepthFirst, UniformCost, Greedy, AStar}

func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case UniformCost:
		return "ucs"
	case Greedy:
		return "greedy"
	case AStar:
		return "astar"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	return s >= BreadthFirst && s <= AStar
}

// NeedsCost reports whether the strategy cannot run without a CostFunc.
func (s Strategy) NeedsCost() bool {
	return s == Greedy || s == AStar
}

// settlesOnPop is true for the strategies ordered by accumulated path cost.
// Those record a state in the tree when it is popped, not when it is discovered.
func (s Strategy) settlesOnPop() bool {
	return s == UniformCost || s == AStar
}

// ParseStrategy maps a name such as "bfs" or "a*" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "dfs", "depth-first", "depthfirst":
		return DepthFirst, nil
	case "ucs", "uniform-cost", "dijkstra":
		return UniformCost, nil
	case "greedy", "best-first", "bestfirst":
		return Greedy, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Path is an ordered sequence of states from the initial state to a goal, inclusive.
type Path[S comparable] []S

// Steps is the number of edges along the path.
func (p Path[S]) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Interior returns the path without its two endpoints.
func (p Path[S]) Interior() []S {
	if len(p) <= 2 {
		return nil
	}
	return p[1 : len(p)-1]
}

// Options defines parameters for the search.
type Options struct {
	Logger        zerolog.Logger
	MaxExpansions int
	// NumberOfWorkers bounds RunAll's pool.
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger routes engine debug events to logger instead of the global one.
func WithLogger(logger zerolog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMaxExpansions aborts a search with ErrExpansionLimit after n expansions.
// Zero or less disables the limit.
func WithMaxExpansions(n int) Option {
	return func(options *Options) {
		if n > 0 {
			options.MaxExpansions = n
		}
	}
}

// WithWorkers specifies how many goroutines RunAll may use.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) {
		if numberOfWorkers > 0 {
			options.NumberOfWorkers = numberOfWorkers
		}
	}
}

func buildOptions(options []Option) Options {
	searchOptions := Options{
		Logger:          log.Logger,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}
