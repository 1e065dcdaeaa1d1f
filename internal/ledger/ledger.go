// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger persists the set of repositories already processed in
// prior runs, one "owner/name" per line. The set only ever grows: each
// run loads it once, extends it, and saves it once.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads the newline-delimited ledger at path. An absent file is an
// empty ledger. A read error degrades to an empty ledger with a non-nil
// error the caller may log; it must never abort the run, since the worst
// outcome is re-processing repositories already in the summary table.
func Load(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]struct{}{}, nil
		}
		return map[string]struct{}{}, fmt.Errorf("reading ledger %s: %w", path, err)
	}

	processed := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		name := strings.TrimSpace(line)
		if name != "" {
			processed[name] = struct{}{}
		}
	}
	return processed, nil
}

// Save writes the ledger deduplicated and sorted lexicographically.
// The write goes to a temp file in the same directory and is renamed
// over the target, so a crash mid-write leaves the previous ledger
// intact. Saving the same set twice produces byte-identical content.
func Save(path string, processed map[string]struct{}) error {
	names := make([]string, 0, len(processed))
	for name := range processed {
		names = append(names, name)
	}
	sort.Strings(names)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.WriteString(strings.Join(names, "\n"))
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if writeErr != nil {
			return fmt.Errorf("writing ledger: %w", writeErr)
		}
		return fmt.Errorf("writing ledger: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing ledger %s: %w", path, err)
	}
	return nil
}

// Merge returns the union of the loaded ledger and the names processed
// in this run, without mutating either input.
func Merge(processed map[string]struct{}, names []string) map[string]struct{} {
	merged := make(map[string]struct{}, len(processed)+len(names))
	for name := range processed {
		merged[name] = struct{}{}
	}
	for _, name := range names {
		merged[name] = struct{}{}
	}
	return merged
}
