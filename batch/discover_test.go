package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()

	err := os.MkdirAll(filepath.Dir(path), 0750)
	require.NoError(t, err)

	err = os.WriteFile(path, []byte("contents"), 0644)
	require.NoError(t, err)
}

func TestDiscover(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "pgn-clock")
	require.NoError(t, err)

	defer func() {
		t.Helper()

		err = os.RemoveAll(tempDir)
		require.NoError(t, err)
	}()

	writeFile(t, filepath.Join(tempDir, "a", "game_movetimes.pgn"))
	writeFile(t, filepath.Join(tempDir, "b", "c", "other_movetimes.pgn"))
	writeFile(t, filepath.Join(tempDir, "notes.txt"))
	writeFile(t, filepath.Join(tempDir, "a", "game_clock.txt"))
	writeFile(t, filepath.Join(tempDir, "plain.pgn"))

	items, err := Discover(tempDir)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, filepath.Join(tempDir, "a", "game_movetimes.pgn"), items[0].InputPath)
	assert.Equal(t, filepath.Join(tempDir, "a", "game_clock.txt"), items[0].OutputPath)
	assert.Equal(t, filepath.Join(tempDir, "b", "c", "other_movetimes.pgn"), items[1].InputPath)
	assert.Equal(t, filepath.Join(tempDir, "b", "c", "other_clock.txt"), items[1].OutputPath)
}

func TestDiscoverNoMatches(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "pgn-clock")
	require.NoError(t, err)

	defer func() {
		t.Helper()

		err = os.RemoveAll(tempDir)
		require.NoError(t, err)
	}()

	writeFile(t, filepath.Join(tempDir, "notes.txt"))

	items, err := Discover(tempDir)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(os.TempDir(), "pgn-clock-does-not-exist"))
	assert.Error(t, err)
}

func TestDeriveOutputPath(t *testing.T) {
	assert.Equal(
		t,
		filepath.Join("d", "game_clock.txt"),
		DeriveOutputPath(filepath.Join("d", "game_movetimes.pgn")),
	)
	assert.Equal(t, "x_clock.txt", DeriveOutputPath("x_movetimes.pgn"))
	assert.Equal(
		t,
		filepath.Join("nested", "deep", "blitz_2024_clock.txt"),
		DeriveOutputPath(filepath.Join("nested", "deep", "blitz_2024_movetimes.pgn")),
	)
}
