package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestListMissingDirectoryIsEmpty(t *testing.T) {
	got := List(filepath.Join(t.TempDir(), "does-not-exist"), ".csv")
	assert.Empty(t, got)
}

func TestListNoMatchesIsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.txt")
	assert.Empty(t, List(dir, ".csv"))
}

func TestListMatchesExtensionCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv")
	writeFile(t, dir, "b.CSV")
	writeFile(t, dir, "c.Csv")
	writeFile(t, dir, "d.gif")

	got := List(dir, ".csv")
	assert.Equal(t, []string{"a.csv", "b.CSV", "c.Csv"}, Names(got))
}

func TestListSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0o755))

	got := List(dir, ".csv")
	assert.Equal(t, []string{"a.csv"}, Names(got))
}

func TestListCapturesModTimeAndPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv")

	got := List(dir, ".csv")
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(dir, "a.csv"), got[0].AbsPath)
	assert.False(t, got[0].ModTime.IsZero())
}

func TestListSortedByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zeta.csv")
	writeFile(t, dir, "alpha.csv")
	writeFile(t, dir, "mid.csv")

	got := List(dir, ".csv")
	assert.Equal(t, []string{"alpha.csv", "mid.csv", "zeta.csv"}, Names(got))
}
