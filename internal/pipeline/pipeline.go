// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences one update run: load ledger, discover,
// filter, process each repository, sort, render, persist ledger. Every
// failure is handled where it occurs; only quota exhaustion (and
// context cancellation) propagates out of Run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/robosu12/SLAM-daily-update/internal/discover"
	"github.com/robosu12/SLAM-daily-update/internal/extract"
	"github.com/robosu12/SLAM-daily-update/internal/githubapi"
	"github.com/robosu12/SLAM-daily-update/internal/ledger"
	"github.com/robosu12/SLAM-daily-update/internal/render"
	"github.com/robosu12/SLAM-daily-update/pkg/types"
)

// Defaults for process-stage settings left zero in the configuration.
const (
	DefaultMaxPerRun     = 50
	DefaultItemInterval  = 500 * time.Millisecond
	DefaultPageInterval  = time.Second
	DefaultRecencyWindow = 7 * 24 * time.Hour
	defaultBranch        = "main"
)

// Source is the slice of the API client one run needs.
type Source interface {
	discover.Searcher
	GetRepository(ctx context.Context, fullName string) (types.RepoSummary, error)
	GetReadme(ctx context.Context, fullName, ref string) (string, error)
}

// Stats summarizes one run.
type Stats struct {
	// Discovered is the number of repositories the search returned.
	Discovered int
	// Selected is the number that survived dedup and recency filtering.
	Selected int
	// Processed is the number of rows written to the summary table.
	Processed int
	// Skipped counts repositories that failed processing this run and
	// remain eligible for the next one.
	Skipped int
}

// Run executes one update run. It returns an error only for quota
// exhaustion or cancellation; every other failure is logged on w and
// absorbed.
func Run(ctx context.Context, src Source, cfg types.Config, w io.Writer) (Stats, error) {
	var stats Stats

	processed, err := ledger.Load(cfg.Output.LedgerPath)
	if err != nil {
		fmt.Fprintf(w, "warning: %v (treating all repositories as new)\n", err)
	}
	fmt.Fprintf(w, "loaded %d processed repositories\n", len(processed))

	fmt.Fprintln(w, "searching for matching repositories...")
	repos, err := discover.Discover(ctx, src, cfg.Discovery, w)
	if err != nil {
		return stats, err
	}
	stats.Discovered = len(repos)
	if len(repos) == 0 {
		fmt.Fprintln(w, "no matching repositories found")
		return stats, nil
	}

	fresh := filter(repos, processed, cfg.Discovery, time.Now())
	stats.Selected = len(fresh)
	if len(fresh) == 0 {
		fmt.Fprintln(w, "no new repositories to process")
		return stats, nil
	}
	fmt.Fprintf(w, "found %d new repositories\n", len(fresh))

	rows, processedRun, skipped, err := processEach(ctx, src, fresh, cfg, w)
	stats.Processed = len(rows)
	stats.Skipped = skipped
	if err != nil {
		return stats, err
	}
	if len(rows) == 0 {
		return stats, nil
	}

	sortRows(rows)
	texts := make([]string, len(rows))
	for i, r := range rows {
		texts[i] = r.text
	}

	if err := render.Write(cfg.Output.SummaryPath, render.DefaultTableHeader, texts); err != nil {
		// Without a committed row the repositories must stay out of the
		// ledger, or they would never be retried.
		fmt.Fprintf(w, "warning: %v (ledger left untouched)\n", err)
		return stats, nil
	}
	fmt.Fprintf(w, "summary updated with %d papers\n", len(texts))

	merged := ledger.Merge(processed, processedRun)
	if err := ledger.Save(cfg.Output.LedgerPath, merged); err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
		return stats, nil
	}
	fmt.Fprintf(w, "saved %d processed repositories (%d new)\n", len(merged), len(processedRun))
	return stats, nil
}

// filter selects the subset of discovered repositories to process this
// run: ledger entries are skipped when dedup is on, and stale
// repositories are skipped when the recency window is on. The ledger
// itself is never modified here.
func filter(repos []types.RepoSummary, processed map[string]struct{}, cfg types.DiscoveryConfig, now time.Time) []types.RepoSummary {
	window := cfg.RecencyWindow
	if window <= 0 {
		window = DefaultRecencyWindow
	}

	var fresh []types.RepoSummary
	for _, repo := range repos {
		if cfg.SkipProcessed {
			if _, ok := processed[repo.FullName]; ok {
				continue
			}
		}
		if cfg.OnlyRecent && now.Sub(repo.UpdatedAt) > window {
			continue
		}
		fresh = append(fresh, repo)
	}
	return fresh
}

// row pairs the rendered text with the sort key extracted from the
// structured year field.
type row struct {
	year int
	text string
}

// processEach fetches detail and README for each selected repository,
// extracts metadata, and renders one row per success. Failures skip the
// repository without marking it processed, so it stays eligible for the
// next run. Only rate-limit errors abort.
func processEach(ctx context.Context, src Source, fresh []types.RepoSummary, cfg types.Config, w io.Writer) (rows []row, processedRun []string, skipped int, err error) {
	maxPerRun := cfg.Process.MaxPerRun
	if maxPerRun <= 0 {
		maxPerRun = DefaultMaxPerRun
	}
	if len(fresh) > maxPerRun {
		fresh = fresh[:maxPerRun]
	}

	extractor := extract.NewExtractor(cfg.Extract, w)
	pacer := githubapi.NewPacer(cfg.Process.ItemInterval)

	for _, repo := range fresh {
		if err := pacer.Wait(ctx); err != nil {
			return rows, processedRun, skipped, err
		}

		detail, err := src.GetRepository(ctx, repo.FullName)
		if err != nil {
			if githubapi.IsRateLimited(err) || ctx.Err() != nil {
				return rows, processedRun, skipped, err
			}
			fmt.Fprintf(w, "warning: skipping %s: %v\n", repo.FullName, err)
			skipped++
			continue
		}

		branch := detail.DefaultBranch
		if branch == "" {
			branch = defaultBranch
		}

		readme, err := src.GetReadme(ctx, repo.FullName, branch)
		if err != nil {
			switch {
			case githubapi.IsRateLimited(err) || ctx.Err() != nil:
				return rows, processedRun, skipped, err
			case githubapi.IsNotFound(err):
				// No README is expected for some repositories; extraction
				// degrades to sentinels and venue inference.
				readme = ""
			case isTransient(err):
				fmt.Fprintf(w, "warning: readme fetch for %s failed: %v\n", repo.FullName, err)
				readme = ""
			default:
				fmt.Fprintf(w, "warning: skipping %s: %v\n", repo.FullName, err)
				skipped++
				continue
			}
		}

		rec := extractor.Extract(readme, repo)
		rows = append(rows, row{year: yearKey(rec.Year), text: render.Row(rec, repo)})
		processedRun = append(processedRun, repo.FullName)
		fmt.Fprintf(w, "processed: %s (%s %s)\n", repo.FullName, rec.Venue, rec.Year)
	}
	return rows, processedRun, skipped, nil
}

// isTransient reports whether err is an unclassified HTTP failure. A
// transient README fetch degrades to an empty README rather than
// skipping the repository; a decode failure skips it.
func isTransient(err error) bool {
	var apiErr *githubapi.APIError
	return errors.As(err, &apiErr)
}

// yearKey converts the extracted year into a sort key. Sentinel and
// malformed years map below any real year so they sort last.
func yearKey(year string) int {
	if len(year) != 4 {
		return -1
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return -1
	}
	return n
}

// sortRows orders rows by year, newest first, sentinel years last.
// The sort is stable so same-year rows keep processing order.
func sortRows(rows []row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].year > rows[j].year
	})
}
