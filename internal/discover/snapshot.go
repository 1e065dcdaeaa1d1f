// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package discover

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/robosu12/SLAM-daily-update/pkg/types"
)

// Snapshot is the on-disk record of one discovery pass: the query that
// ran, the settings that shaped it, and everything it returned. A saved
// snapshot can be inspected or diffed without re-querying the API.
type Snapshot struct {
	Query   string              `yaml:"query"`
	Config  SnapshotConfig      `yaml:"config"`
	Results []types.RepoSummary `yaml:"results"`
	Summary SnapshotSummary     `yaml:"summary"`
}

// SnapshotConfig records the discovery settings that produced the results.
type SnapshotConfig struct {
	Keywords []string `yaml:"keywords"`
	Venues   []string `yaml:"venues,omitempty"`
	PerPage  int      `yaml:"per_page"`
}

// SnapshotSummary holds result statistics and a timestamp.
type SnapshotSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteSnapshot saves a discovery pass to a YAML file.
func WriteSnapshot(path string, cfg types.DiscoveryConfig, results []types.RepoSummary) error {
	keywords := cfg.Keywords
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	snap := Snapshot{
		Query: BuildQuery(keywords, cfg.Venues),
		Config: SnapshotConfig{
			Keywords: keywords,
			Venues:   cfg.Venues,
			PerPage:  perPage,
		},
		Results: results,
		Summary: SnapshotSummary{
			Total:     len(results),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

// ReadSnapshot loads a previously saved discovery snapshot.
func ReadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return snap, nil
}
