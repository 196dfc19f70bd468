package search

import (
	"context"
	"time"

	"github.com/pdrpinto/search/internal"
)

// Stats summarizes the last Search call.
type Stats struct {
	Strategy   Strategy
	Expanded   int
	Discovered int
	// PathCost is the accumulated step cost of the returned path.
	PathCost float64
	Duration time.Duration
}

// Engine runs searches over one Graph. It owns its tree and frontier and
// is not safe for concurrent use.
type Engine[S comparable] struct {
	graph    Graph[S]
	weighted WeightedGraph[S]
	options  Options

	initial  S
	hasState bool
	running  bool

	tree  *Tree[S]
	stats Stats
}

// NewEngine binds graph to a new engine.
func NewEngine[S comparable](graph Graph[S], options ...Option) *Engine[S] {
	engine := &Engine[S]{
		graph:   graph,
		options: buildOptions(options),
		tree:    newTree[S](),
	}
	if weighted, ok := graph.(WeightedGraph[S]); ok {
		engine.weighted = weighted
	}
	return engine
}

// SetState sets the root of the next search and drops the previous tree.
func (e *Engine[S]) SetState(initial S) {
	e.initial = initial
	e.hasState = true
	e.tree = newTree[S]()
	e.stats = Stats{}
}

// Visited returns every discovered state in discovery order, initial state first.
func (e *Engine[S]) Visited() []S {
	return e.tree.States()
}

// Tree returns a copy of the parent-link table of the last search.
func (e *Engine[S]) Tree() *Tree[S] {
	return e.tree.clone()
}

// Stats returns counters for the last search.
func (e *Engine[S]) Stats() Stats {
	return e.stats
}

// Search explores from the initial state until a goal is popped or the
// frontier runs dry. cost may be nil for strategies that don't need it.
//
// An unreachable goal yields an *ExhaustedError. Panics raised by the graph
// or by cost are not recovered.
func (e *Engine[S]) Search(ctx context.Context, strategy Strategy, cost CostFunc[S]) (Path[S], error) {
	if err := e.validate(strategy, cost); err != nil {
		return nil, err
	}

	e.running = true
	defer func() { e.running = false }()

	startTime := time.Now()
	e.tree = newTree[S]()
	e.stats = Stats{Strategy: strategy}
	defer func() {
		e.stats.Discovered = e.tree.Len()
		e.stats.Duration = time.Since(startTime)
	}()

	logger := e.options.Logger.With().Str("strategy", strategy.String()).Logger()
	logger.Debug().Msg("search started")

	open := newFrontier[S](strategy)
	sequence := 0
	// Cost-ordered strategies track the cheapest known g and the parent it
	// came through. A state reached more cheaply after it was settled is
	// expanded again, so the returned path follows bestParent while the
	// tree keeps the first settlement.
	var (
		bestCost   map[S]float64
		bestParent map[S]S
	)
	if strategy.settlesOnPop() {
		bestCost = map[S]float64{e.initial: 0}
		bestParent = map[S]S{}
	} else {
		e.tree.insert(e.initial, e.initial, false, 0)
	}
	open.push(&entry[S]{
		state:    e.initial,
		priority: e.priority(strategy, cost, e.initial, 0),
		sequence: sequence,
	})

	for {
		if open.len() == 0 {
			err := &ExhaustedError{Strategy: strategy, Expanded: e.stats.Expanded, Discovered: e.tree.Len()}
			logger.Debug().Int("expanded", e.stats.Expanded).Msg("frontier exhausted")
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := open.pop()
		// superseded by a cheaper entry for the same state
		if strategy.settlesOnPop() && current.cost > bestCost[current.state] {
			continue
		}

		if e.options.MaxExpansions > 0 && e.stats.Expanded >= e.options.MaxExpansions {
			logger.Debug().Int("limit", e.options.MaxExpansions).Msg("expansion limit reached")
			return nil, ErrExpansionLimit
		}
		if strategy.settlesOnPop() {
			e.tree.insert(current.state, current.parent, current.hasParent, current.cost)
		}
		e.stats.Expanded++

		if e.graph.IsGoal(current.state) {
			var path Path[S]
			if strategy.settlesOnPop() {
				path = Path[S](internal.ReconstructPath(func(state S) (S, bool) {
					parent, ok := bestParent[state]
					return parent, ok
				}, current.state))
			} else {
				path, _ = e.tree.PathTo(current.state)
			}
			e.stats.PathCost = current.cost
			logger.Debug().
				Int("expanded", e.stats.Expanded).
				Int("steps", path.Steps()).
				Float64("cost", current.cost).
				Msg("goal reached")
			return path, nil
		}

		for _, next := range e.graph.NextStates(current.state) {
			nextCost := current.cost + e.stepCost(current.state, next)
			if strategy.settlesOnPop() {
				if known, ok := bestCost[next]; ok && known <= nextCost {
					continue
				}
				bestCost[next] = nextCost
				bestParent[next] = current.state
			} else {
				if e.tree.Contains(next) {
					continue
				}
				e.tree.insert(next, current.state, true, nextCost)
			}
			sequence++
			open.push(&entry[S]{
				state:     next,
				parent:    current.state,
				hasParent: true,
				cost:      nextCost,
				priority:  e.priority(strategy, cost, next, nextCost),
				sequence:  sequence,
			})
		}
	}
}

func (e *Engine[S]) validate(strategy Strategy, cost CostFunc[S]) error {
	switch {
	case e.graph == nil:
		return ErrNilGraph
	case e.running:
		return ErrSearchInProgress
	case !e.hasState:
		return ErrNoInitialState
	case !strategy.Valid():
		return ErrUnknownStrategy
	case strategy.NeedsCost() && cost == nil:
		return ErrMissingCost
	}
	return nil
}

func (e *Engine[S]) stepCost(from, to S) float64 {
	if e.weighted == nil {
		return 1
	}
	return e.weighted.StepCost(from, to)
}

// priority is the heap key; FIFO and LIFO frontiers ignore it.
func (e *Engine[S]) priority(strategy Strategy, cost CostFunc[S], state S, pathCost float64) float64 {
	switch strategy {
	case UniformCost:
		return pathCost
	case Greedy:
		return cost(state)
	case AStar:
		return pathCost + cost(state)
	}
	return 0
}
