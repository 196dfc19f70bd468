package search

import (
	"context"
	"sync"
)

// Run is one strategy/cost pairing handed to a RunAll worker.
type Run[S comparable] struct {
	Strategy Strategy
	Cost     CostFunc[S]
}

// Outcome is what a worker reports back for a Run.
type Outcome[S comparable] struct {
	Strategy Strategy
	Path     Path[S]
	Visited  []S
	Stats    Stats
	Err      error
}

// Found reports whether the run reached a goal.
func (o Outcome[S]) Found() bool { return o.Err == nil }

type runTask[S comparable] struct {
	index int
	run   Run[S]
}

// RunAll searches from initial once per run, each on its own Engine, using
// at most WithWorkers goroutines. Outcomes come back in the order of runs.
// graph is read concurrently, so it must not be mutated while RunAll is active.
func RunAll[S comparable](
	ctx context.Context,
	graph Graph[S],
	initial S,
	runs []Run[S],
	options ...Option,
) []Outcome[S] {
	searchOptions := buildOptions(options)
	outcomes := make([]Outcome[S], len(runs))
	if len(runs) == 0 {
		return outcomes
	}

	tasks := make(chan runTask[S], len(runs))
	for i, run := range runs {
		tasks <- runTask[S]{index: i, run: run}
	}
	close(tasks)

	workers := min(searchOptions.NumberOfWorkers, len(runs))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				engine := NewEngine(graph, options...)
				engine.SetState(initial)
				path, err := engine.Search(ctx, task.run.Strategy, task.run.Cost)
				outcomes[task.index] = Outcome[S]{
					Strategy: task.run.Strategy,
					Path:     path,
					Visited:  engine.Visited(),
					Stats:    engine.Stats(),
					Err:      err,
				}
			}
		}()
	}
	wg.Wait()

	return outcomes
}
