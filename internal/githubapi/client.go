// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package githubapi wraps the GitHub REST API behind the three calls
// the pipeline needs: repository search, repository detail, and README
// content, and classifies failures into the pipeline's error taxonomy.
package githubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/robosu12/SLAM-daily-update/pkg/types"
)

const readmePath = "README.md"

// Client is the authenticated GitHub API client used by the pipeline.
// Request pacing is the caller's concern (see Pacer); the client itself
// performs exactly one HTTP call per method call, with no retries.
type Client struct {
	gh *gh.Client
}

// NewClient builds a client from the GitHub configuration. The token is
// attached via an oauth2 static token source and the HTTP timeout is
// set explicitly rather than left at the transport default.
func NewClient(ctx context.Context, cfg types.GitHubConfig) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	hc := oauth2.NewClient(ctx, ts)
	hc.Timeout = cfg.Timeout

	ghc := gh.NewClient(hc)
	if cfg.UserAgent != "" {
		ghc.UserAgent = cfg.UserAgent
	}
	return &Client{gh: ghc}
}

// NewFromGitHub wraps an existing go-github client. Tests use this with
// an httptest-backed base URL.
func NewFromGitHub(ghc *gh.Client) *Client {
	return &Client{gh: ghc}
}

// SearchRepositories fetches one page of repository search results,
// sorted by most recently updated.
func (c *Client) SearchRepositories(ctx context.Context, query string, page, perPage int) ([]types.RepoSummary, error) {
	opts := &gh.SearchOptions{
		Sort:        "updated",
		Order:       "desc",
		ListOptions: gh.ListOptions{Page: page, PerPage: perPage},
	}
	result, _, err := c.gh.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, wrapError(err, "search repositories")
	}

	repos := make([]types.RepoSummary, 0, len(result.Repositories))
	for _, r := range result.Repositories {
		repos = append(repos, summarize(r))
	}
	return repos, nil
}

// GetRepository fetches a repository's detail record, which carries the
// default branch name search results lack.
func (c *Client) GetRepository(ctx context.Context, fullName string) (types.RepoSummary, error) {
	owner, name, err := splitFullName(fullName)
	if err != nil {
		return types.RepoSummary{}, err
	}

	repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return types.RepoSummary{}, wrapError(err, "get repository")
	}
	return summarize(repo), nil
}

// GetReadme fetches README.md at ref, base64-decoded to UTF-8 text.
// An absent README yields ErrNotFound.
func (c *Client) GetReadme(ctx context.Context, fullName, ref string) (string, error) {
	owner, name, err := splitFullName(fullName)
	if err != nil {
		return "", err
	}

	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	content, _, _, err := c.gh.Repositories.GetContents(ctx, owner, name, readmePath, opts)
	if err != nil {
		return "", wrapError(err, "get readme")
	}
	if content == nil {
		return "", fmt.Errorf("%w: %s is not a file", ErrNotFound, readmePath)
	}

	text, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode readme content: %w", err)
	}
	return text, nil
}

// summarize maps a go-github repository onto the pipeline's view of it.
func summarize(r *gh.Repository) types.RepoSummary {
	return types.RepoSummary{
		FullName:      r.GetFullName(),
		HTMLURL:       r.GetHTMLURL(),
		Description:   r.GetDescription(),
		UpdatedAt:     r.GetUpdatedAt().Time,
		DefaultBranch: r.GetDefaultBranch(),
	}
}

func splitFullName(fullName string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("githubapi: invalid repository name %q", fullName)
	}
	return owner, name, nil
}

// wrapError converts go-github errors into the pipeline's taxonomy:
// quota exhaustion is fatal, 404 means the resource is absent, and
// everything else is a transient failure the caller may skip.
func wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rle *gh.RateLimitError
	if errors.As(err, &rle) {
		return &RateLimitError{ResetAt: rle.Rate.Reset.Time}
	}
	var arle *gh.AbuseRateLimitError
	if errors.As(err, &arle) {
		reset := time.Now()
		if arle.RetryAfter != nil {
			reset = reset.Add(*arle.RetryAfter)
		}
		return &RateLimitError{ResetAt: reset}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, ghErr.Message)
		case http.StatusForbidden:
			// A 403 from the API means the quota is gone.
			return &RateLimitError{ResetAt: resetFromHeaders(ghErr.Response)}
		default:
			return &APIError{StatusCode: ghErr.Response.StatusCode, Message: ghErr.Message}
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// resetFromHeaders parses the quota reset timestamp (Unix seconds) from
// the rate-limit response headers, falling back to now when absent.
func resetFromHeaders(resp *http.Response) time.Time {
	if v := resp.Header.Get("X-RateLimit-Reset"); v != "" {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Unix(secs, 0)
		}
	}
	return time.Now()
}
