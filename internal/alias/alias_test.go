package alias

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}
}

func TestBuildCommaSplit(t *testing.T) {
	target := t.TempDir()
	mkdirs(t, target, "Movies, Films", "TV")

	table, err := Build(target)
	require.NoError(t, err)

	movies := filepath.Join(target, "Movies, Films")
	require.Equal(t, Table{
		"movies": movies,
		"films":  movies,
		"tv":     filepath.Join(target, "TV"),
	}, table)
}

func TestBuildDuplicateAlias(t *testing.T) {
	target := t.TempDir()
	mkdirs(t, target, "Movies", "movies, tv")

	_, err := Build(target)
	require.ErrorIs(t, err, ErrDuplicateAlias)
}

func TestBuildSkipsFiles(t *testing.T) {
	target := t.TempDir()
	mkdirs(t, target, "Music")
	require.NoError(t, os.WriteFile(filepath.Join(target, "notes.txt"), []byte("x"), 0o644))

	table, err := Build(target)
	require.NoError(t, err)
	require.Equal(t, Table{"music": filepath.Join(target, "Music")}, table)
}

func TestBuildEmptyTarget(t *testing.T) {
	table, err := Build(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, table)
}

func TestBuildNotDirectory(t *testing.T) {
	target := t.TempDir()
	file := filepath.Join(target, "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Build(file)
	require.ErrorIs(t, err, ErrNotDirectory)

	_, err = Build(filepath.Join(target, "missing"))
	require.ErrorIs(t, err, ErrNotDirectory)
}

func TestBuildFoldsKeys(t *testing.T) {
	target := t.TempDir()
	mkdirs(t, target, "Café")

	table, err := Build(target)
	require.NoError(t, err)
	require.Equal(t, Table{"cafe": filepath.Join(target, "Café")}, table)
}

func TestKeysLongestFirst(t *testing.T) {
	table := Table{"wars": "a", "star wars": "b", "tv": "c", "sw": "d"}
	require.Equal(t, []string{"star wars", "wars", "sw", "tv"}, table.Keys())
}
