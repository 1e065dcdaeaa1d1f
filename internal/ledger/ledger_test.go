// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func set(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func TestLoadAbsentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed_repos.txt")

	processed, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, processed)
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed_repos.txt")
	require.NoError(t, os.WriteFile(path, []byte("a/one\n\n  \nb/two\n"), 0o644))

	processed, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, set("a/one", "b/two"), processed)
}

func TestSaveSortedDeduplicated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed_repos.txt")

	require.NoError(t, Save(path, set("z/last", "a/first", "m/middle")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a/first\nm/middle\nz/last", string(data))
}

func TestSaveIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed_repos.txt")
	names := set("b/two", "a/one", "c/three")

	require.NoError(t, Save(path, names))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, Save(path, names))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed_repos.txt")
	names := set("owner/repo", "another/repo")

	require.NoError(t, Save(path, names))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, names, loaded)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "processed_repos.txt")

	require.NoError(t, Save(path, set("a/one")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "processed_repos.txt", entries[0].Name())
}

func TestMergeGrowsWithoutMutating(t *testing.T) {
	prior := set("a/one")
	merged := Merge(prior, []string{"b/two", "a/one"})

	assert.Equal(t, set("a/one", "b/two"), merged)
	assert.Equal(t, set("a/one"), prior, "input ledger must not be mutated")
}
