// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDirectory(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "no-such-dir"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadTrimsAndSkips(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, GitHubTokenKey), []byte("  ghp_abc123\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty-secret"), []byte("   \n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("nope"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	loaded, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{GitHubTokenKey: "ghp_abc123"}, loaded)
}

func TestGitHubTokenPrecedence(t *testing.T) {
	loaded := map[string]string{GitHubTokenKey: "from-file"}

	t.Setenv(githubTokenEnv, "from-env")
	assert.Equal(t, "from-flag", GitHubToken("from-flag", loaded))
	assert.Equal(t, "from-env", GitHubToken("", loaded))

	t.Setenv(githubTokenEnv, "")
	assert.Equal(t, "from-file", GitHubToken("", loaded))
	assert.Equal(t, "", GitHubToken("", nil))
}
