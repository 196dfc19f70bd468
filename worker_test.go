package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunAllKeepsRunOrder(t *testing.T) {
	g := testGrid{rows: 6, cols: 6, walls: map[cell]bool{{2, 2}: true, {2, 3}: true}, goal: cell{5, 4}}
	runs := make([]Run[cell], 0, len(Strategies))
	for _, strategy := range Strategies {
		runs = append(runs, Run[cell]{Strategy: strategy, Cost: costFor(strategy, g.manhattan)})
	}

	outcomes := RunAll[cell](context.Background(), g, cell{0, 0}, runs, WithWorkers(3))
	require.Len(t, outcomes, len(runs))

	for i, outcome := range outcomes {
		require.Equal(t, runs[i].Strategy, outcome.Strategy)
		require.True(t, outcome.Found(), "%s: %v", outcome.Strategy, outcome.Err)
		requireValidPath(t, g, cell{0, 0}, outcome.Path)
		require.Equal(t, outcome.Stats.Discovered, len(outcome.Visited))

		// each outcome matches a standalone engine run
		engine := NewEngine[cell](g)
		engine.SetState(cell{0, 0})
		path, err := engine.Search(context.Background(), runs[i].Strategy, runs[i].Cost)
		require.NoError(t, err)
		require.Equal(t, path, outcome.Path)
		require.Equal(t, engine.Visited(), outcome.Visited)
	}
}

func TestRunAllReportsFailuresPerRun(t *testing.T) {
	outcomes := RunAll[int](context.Background(), starGraph(7), 0, []Run[int]{
		{Strategy: BreadthFirst},
		{Strategy: Greedy},
	})

	require.ErrorIs(t, outcomes[0].Err, ErrExhausted)
	require.ErrorIs(t, outcomes[1].Err, ErrMissingCost)
	require.False(t, outcomes[0].Found())
	require.Equal(t, []int{0, 1, 2, 3, 4}, outcomes[0].Visited)
}

func TestRunAllWithoutRuns(t *testing.T) {
	require.Empty(t, RunAll[int](context.Background(), starGraph(4), 0, nil))
}
