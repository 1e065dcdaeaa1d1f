// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// GitHubConfig holds settings for the GitHub API client.
type GitHubConfig struct {
	// Token is the bearer credential (personal access token).
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with API requests
	// (e.g. "slam-daily-update/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DiscoveryConfig holds settings for the repository discovery stage.
type DiscoveryConfig struct {
	// Keywords are the topic terms combined into the search query.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Venues are the target conference/journal abbreviations, lower-case.
	// They are appended to the search query and drive venue inference.
	Venues []string `json:"venues" yaml:"venues"`

	// PerPage is the search page size (default 100).
	PerPage int `json:"per_page" yaml:"per_page"`

	// PageInterval is the minimum spacing between search page requests
	// (default 1s).
	PageInterval time.Duration `json:"page_interval" yaml:"page_interval"`

	// SkipProcessed skips repositories already recorded in the ledger.
	SkipProcessed bool `json:"skip_processed" yaml:"skip_processed"`

	// OnlyRecent skips repositories last updated more than RecencyWindow ago.
	OnlyRecent bool `json:"only_recent" yaml:"only_recent"`

	// RecencyWindow is the update-age cutoff used when OnlyRecent is set
	// (default 7 days).
	RecencyWindow time.Duration `json:"recency_window" yaml:"recency_window"`
}

// ProcessConfig holds settings for per-repository processing.
type ProcessConfig struct {
	// MaxPerRun caps the number of repositories processed in one run
	// to bound run duration (default 50).
	MaxPerRun int `json:"max_per_run" yaml:"max_per_run"`

	// ItemInterval is the minimum spacing between per-repository
	// fetch sequences (default 500ms).
	ItemInterval time.Duration `json:"item_interval" yaml:"item_interval"`
}

// SectionLabels maps metadata fields to their README section labels.
// Empty fields fall back to the default labels.
type SectionLabels struct {
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Authors   string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Venue     string `json:"venue,omitempty" yaml:"venue,omitempty"`
	Year      string `json:"year,omitempty" yaml:"year,omitempty"`
	PaperLink string `json:"paper_link,omitempty" yaml:"paper_link,omitempty"`
}

// ExtractConfig holds settings for README metadata extraction.
type ExtractConfig struct {
	// Labels overrides the labeled-section headers matched in READMEs.
	Labels SectionLabels `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Venues are the abbreviations checked against the repository
	// description when the venue section is missing.
	Venues []string `json:"venues" yaml:"venues"`
}

// OutputConfig holds the persisted file locations.
type OutputConfig struct {
	// LedgerPath is the newline-delimited file of processed repositories.
	LedgerPath string `json:"ledger_path" yaml:"ledger_path"`

	// SummaryPath is the markdown document holding the managed table.
	SummaryPath string `json:"summary_path" yaml:"summary_path"`
}

// Config groups all stage configurations for one pipeline run.
// It is built once at startup and passed explicitly to each component.
type Config struct {
	GitHub    GitHubConfig    `json:"github" yaml:"github"`
	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`
	Process   ProcessConfig   `json:"process" yaml:"process"`
	Extract   ExtractConfig   `json:"extract" yaml:"extract"`
	Output    OutputConfig    `json:"output" yaml:"output"`
}
