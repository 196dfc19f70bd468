package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultBoard(t *testing.T) {
	b := Default()
	require.Equal(t, DefaultRows, b.Rows())
	require.Equal(t, DefaultCols, b.Cols())
	require.Equal(t, Point{Row: 16, Col: 32}, b.Start())
	require.Equal(t, Point{Row: 16, Col: 33}, b.Goal())

	c, err := b.At(b.Start())
	require.NoError(t, err)
	require.Equal(t, Start, c)
	c, err = b.At(b.Goal())
	require.NoError(t, err)
	require.Equal(t, Goal, c)
}

func TestNewSmallBoards(t *testing.T) {
	_, err := New(1, 1)
	require.ErrorIs(t, err, ErrBadSize)
	_, err = New(0, 5)
	require.ErrorIs(t, err, ErrBadSize)

	b, err := New(1, 2)
	require.NoError(t, err)
	require.NotEqual(t, b.Start(), b.Goal())

	b, err = New(2, 1)
	require.NoError(t, err)
	require.NotEqual(t, b.Start(), b.Goal())
}

func TestNewRejectsOversizedBoards(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"product wraps to four", 1<<62 + 1, 4},
		{"product wraps negative", 1 << 62, 3},
		{"just over the cap", MaxCells/2 + 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows, tt.cols)
			require.ErrorIs(t, err, ErrTooLarge)
		})
	}
}

func TestNextStates(t *testing.T) {
	b := Default()
	require.Equal(t, []Point{{17, 32}, {15, 32}, {16, 33}, {16, 31}}, b.NextStates(b.Start()))

	require.NoError(t, b.SetObstacle(Point{17, 32}))
	require.Equal(t, []Point{{15, 32}, {16, 33}, {16, 31}}, b.NextStates(b.Start()))

	require.Equal(t, []Point{{1, 0}, {0, 1}}, b.NextStates(Point{0, 0}))
	require.True(t, b.IsGoal(b.Goal()))
	require.False(t, b.IsGoal(b.Start()))
}

func TestEditing(t *testing.T) {
	b, err := New(3, 3)
	require.NoError(t, err)

	t.Run("obstacles only go on free cells", func(t *testing.T) {
		require.ErrorIs(t, b.SetObstacle(b.Start()), ErrOccupied)
		require.ErrorIs(t, b.SetObstacle(b.Goal()), ErrOccupied)
		require.ErrorIs(t, b.SetObstacle(Point{3, 0}), ErrOutOfBounds)

		require.NoError(t, b.SetObstacle(Point{0, 0}))
		require.ErrorIs(t, b.SetObstacle(Point{0, 0}), ErrOccupied)
		require.Equal(t, []Point{{0, 0}}, b.Obstacles())
	})

	t.Run("markers move only onto free cells", func(t *testing.T) {
		require.ErrorIs(t, b.MoveStart(Point{0, 0}), ErrOccupied)
		require.ErrorIs(t, b.MoveGoal(b.Start()), ErrOccupied)

		old := b.Start()
		require.NoError(t, b.MoveStart(Point{2, 0}))
		require.Equal(t, Point{2, 0}, b.Start())
		c, _ := b.At(old)
		require.Equal(t, Free, c)

		require.NoError(t, b.MoveGoal(Point{0, 2}))
		require.Equal(t, Point{0, 2}, b.Goal())
	})

	t.Run("clearing ignores non-obstacles", func(t *testing.T) {
		require.NoError(t, b.ClearObstacle(b.Start()))
		c, _ := b.At(b.Start())
		require.Equal(t, Start, c)

		require.NoError(t, b.ClearObstacle(Point{0, 0}))
		require.Empty(t, b.Obstacles())
		require.ErrorIs(t, b.ClearObstacle(Point{-1, 0}), ErrOutOfBounds)
	})
}

func TestCloneIsIndependent(t *testing.T) {
	b := Default()
	c := b.Clone()
	require.NoError(t, c.SetObstacle(Point{0, 0}))
	require.Empty(t, b.Obstacles())
	require.Len(t, c.Obstacles(), 1)
}
