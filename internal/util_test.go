package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconstructPath(t *testing.T) {
	parents := map[string]string{"b": "a", "c": "b", "d": "c"}
	parentOf := func(s string) (string, bool) {
		p, ok := parents[s]
		return p, ok
	}

	require.Equal(t, []string{"a", "b", "c", "d"}, ReconstructPath(parentOf, "d"))
	require.Equal(t, []string{"a"}, ReconstructPath(parentOf, "a"))
}
