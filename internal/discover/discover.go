// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discover finds candidate repositories through the code search
// API: one fixed query, paginated until the results run out.
package discover

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/robosu12/SLAM-daily-update/internal/githubapi"
	"github.com/robosu12/SLAM-daily-update/pkg/types"
)

// DefaultKeywords are the topic terms for the fixed search query.
var DefaultKeywords = []string{"SLAM", "Simultaneous Localization and Mapping"}

// qualifiers narrow the search to repositories that actually carry code
// and are not tagged as documentation or demo collections.
const qualifiers = "has:code in:description,topics -topic:documentation -topic:demo"

// DefaultPerPage is the search page size.
const DefaultPerPage = 100

// Searcher is the slice of the API client discovery needs.
type Searcher interface {
	SearchRepositories(ctx context.Context, query string, page, perPage int) ([]types.RepoSummary, error)
}

// BuildQuery combines topic keywords, target venue abbreviations, and
// the structural qualifiers into the search query string.
func BuildQuery(keywords, venues []string) string {
	parts := make([]string, 0, len(keywords)+len(venues)+1)
	parts = append(parts, keywords...)
	parts = append(parts, venues...)
	parts = append(parts, qualifiers)
	return strings.Join(parts, " ")
}

// Discover paginates the search endpoint from page 1 and accumulates
// every result. Pagination stops on an empty page or a page shorter
// than the page size. A rate-limit error aborts the run; any other
// failure ends pagination with the results gathered so far and a
// warning on w. Page requests are spaced at least cfg.PageInterval
// apart to respect API pacing.
func Discover(ctx context.Context, src Searcher, cfg types.DiscoveryConfig, w io.Writer) ([]types.RepoSummary, error) {
	keywords := cfg.Keywords
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	venues := cfg.Venues
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	query := BuildQuery(keywords, venues)
	pacer := githubapi.NewPacer(cfg.PageInterval)

	var all []types.RepoSummary
	for page := 1; ; page++ {
		if err := pacer.Wait(ctx); err != nil {
			return nil, err
		}
		repos, err := src.SearchRepositories(ctx, query, page, perPage)
		if err != nil {
			if githubapi.IsRateLimited(err) || ctx.Err() != nil {
				return nil, err
			}
			fmt.Fprintf(w, "warning: search page %d failed: %v\n", page, err)
			break
		}
		if len(repos) == 0 {
			break
		}

		all = append(all, repos...)
		fmt.Fprintf(w, "fetched page %d, %d repositories total\n", page, len(all))

		if len(repos) < perPage {
			break
		}
	}
	return all, nil
}
