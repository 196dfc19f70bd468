package grid

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/search"
)

func TestSaveLoad(t *testing.T) {
	b := mustParse(t,
		"S.#.",
		"..#G",
	)
	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, b.Save(path, "corridor"))

	loaded, name, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "corridor", name)
	require.Equal(t, b.Layout(), loaded.Layout())
}

func TestEncodeSkipsOverlay(t *testing.T) {
	b := mustParse(t, "S..", "..G")
	solution, err := b.Solve(context.Background(), search.BreadthFirst, nil)
	require.NoError(t, err)
	b.Animate(solution, 10).Finish()

	var buf bytes.Buffer
	require.NoError(t, b.Encode(&buf, ""))
	require.Equal(t, "layout:\n  - S..\n  - ..G\n", buf.String())
}

func TestDecodeErrors(t *testing.T) {
	_, _, err := Decode(strings.NewReader("layout: [unterminated"))
	require.Error(t, err)

	_, _, err = Decode(strings.NewReader("layout:\n  - S..\n  - .#.\n"))
	require.ErrorIs(t, err, ErrLayout)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
