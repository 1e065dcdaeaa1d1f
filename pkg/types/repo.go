// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the slam-daily-update
// pipeline: discovered repositories, extracted paper metadata, and the
// configuration structs passed into each stage.
package types

import "time"

// RepoSummary is the per-repository view produced by the discovery stage
// from raw search results. FullName ("owner/name") is the unique key.
type RepoSummary struct {
	// FullName is the "owner/name" identifier.
	FullName string `json:"full_name" yaml:"full_name"`

	// HTMLURL is the repository's web address.
	HTMLURL string `json:"html_url" yaml:"html_url"`

	// Description is the repository description; may be empty.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// UpdatedAt is the repository's last-updated timestamp.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`

	// DefaultBranch is the branch README content is fetched from.
	// Populated by the detail fetch, not by search results.
	DefaultBranch string `json:"default_branch,omitempty" yaml:"default_branch,omitempty"`
}

// Sentinel values substituted when metadata extraction fails or does
// not apply. Only the rendered row form of a PaperRecord is persisted,
// so these strings appear verbatim in the summary table.
const (
	NotProvided = "not provided"
	ParseError  = "parse error"
	OtherVenue  = "other venue"
)

// PaperRecord holds the metadata extracted from one repository's README.
// Every field is a display string; fields that could not be extracted
// carry a sentinel value.
type PaperRecord struct {
	Title     string `json:"title" yaml:"title"`
	Authors   string `json:"authors" yaml:"authors"`
	Venue     string `json:"venue" yaml:"venue"`
	Year      string `json:"year" yaml:"year"`
	PaperLink string `json:"paper_link" yaml:"paper_link"`
}
