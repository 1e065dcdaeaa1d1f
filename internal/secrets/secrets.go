// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text
// files. Each file is one secret: the filename is the key and the
// trimmed contents are the value.
//
// Supported key files: github-token.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GitHubTokenKey is the secrets-directory filename for the API token.
const GitHubTokenKey = "github-token"

// githubTokenEnv is the environment variable checked before the
// secrets directory.
const githubTokenEnv = "GITHUB_TOKEN"

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty
// map. Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// GitHubToken resolves the API token: an explicit flag value wins, then
// the GITHUB_TOKEN environment variable, then the secrets directory.
// An empty result is not validated here; it surfaces as API failures.
func GitHubToken(flagValue string, loaded map[string]string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(githubTokenEnv); v != "" {
		return v
	}
	return loaded[GitHubTokenKey]
}
