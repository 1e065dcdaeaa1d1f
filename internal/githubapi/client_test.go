// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package githubapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient points a client at an httptest server that plays GitHub.
func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	ghc := gh.NewClient(ts.Client())
	base, err := url.Parse(ts.URL + "/")
	require.NoError(t, err)
	ghc.BaseURL = base
	return NewFromGitHub(ghc)
}

const searchPage = `{
  "total_count": 2,
  "incomplete_results": false,
  "items": [
    {
      "full_name": "alice/lio-sam",
      "html_url": "https://github.com/alice/lio-sam",
      "description": "IROS 2020 lidar-inertial odometry",
      "updated_at": "2025-08-20T10:00:00Z"
    },
    {
      "full_name": "bob/orb-slam",
      "html_url": "https://github.com/bob/orb-slam",
      "updated_at": "2025-08-19T09:30:00Z"
    }
  ]
}`

func TestSearchRepositories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/repositories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "slam has:code", r.URL.Query().Get("q"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPage))
	})
	c := testClient(t, mux)

	repos, err := c.SearchRepositories(t.Context(), "slam has:code", 2, 100)
	require.NoError(t, err)
	require.Len(t, repos, 2)

	assert.Equal(t, "alice/lio-sam", repos[0].FullName)
	assert.Equal(t, "https://github.com/alice/lio-sam", repos[0].HTMLURL)
	assert.Equal(t, "IROS 2020 lidar-inertial odometry", repos[0].Description)
	assert.Equal(t, time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC), repos[0].UpdatedAt.UTC())
	assert.Empty(t, repos[1].Description, "missing description maps to empty string")
}

func TestGetRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/alice/lio-sam", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"full_name":"alice/lio-sam","html_url":"https://github.com/alice/lio-sam","default_branch":"devel"}`))
	})
	c := testClient(t, mux)

	repo, err := c.GetRepository(t.Context(), "alice/lio-sam")
	require.NoError(t, err)
	assert.Equal(t, "devel", repo.DefaultBranch)
}

func TestGetRepositoryInvalidName(t *testing.T) {
	c := testClient(t, http.NewServeMux())

	_, err := c.GetRepository(t.Context(), "not-a-full-name")
	assert.Error(t, err)
}

func TestGetReadme(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/alice/lio-sam/contents/README.md", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "devel", r.URL.Query().Get("ref"))
		w.Header().Set("Content-Type", "application/json")
		// "# Hello\n" base64-encoded.
		w.Write([]byte(`{"type":"file","name":"README.md","path":"README.md","encoding":"base64","content":"IyBIZWxsbwo="}`))
	})
	c := testClient(t, mux)

	text, err := c.GetReadme(t.Context(), "alice/lio-sam", "devel")
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n", text)
}

func TestGetReadmeAbsent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/alice/empty/contents/README.md", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	})
	c := testClient(t, mux)

	_, err := c.GetReadme(t.Context(), "alice/empty", "main")
	assert.True(t, IsNotFound(err), "404 must classify as not-found, got %v", err)
	assert.False(t, IsRateLimited(err))
}

func TestRateLimitExceeded(t *testing.T) {
	reset := time.Now().Add(30 * time.Minute).Unix()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/alice/lio-sam", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Limit", "5000")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	})
	c := testClient(t, mux)

	_, err := c.GetRepository(t.Context(), "alice/lio-sam")
	require.True(t, IsRateLimited(err), "403 with exhausted quota must be fatal, got %v", err)

	var rle *RateLimitError
	require.ErrorAs(t, err, &rle)
	assert.Equal(t, time.Unix(reset, 0), rle.ResetAt)
}

func TestForbiddenWithoutQuotaHeadersIsStillRateLimited(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/alice/lio-sam", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Forbidden"}`))
	})
	c := testClient(t, mux)

	_, err := c.GetRepository(t.Context(), "alice/lio-sam")
	assert.True(t, IsRateLimited(err), "plain 403 classifies as rate limited, got %v", err)
}

func TestServerErrorIsTransient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/repositories", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream hiccup"}`))
	})
	c := testClient(t, mux)

	_, err := c.SearchRepositories(t.Context(), "slam", 1, 100)
	require.Error(t, err)
	assert.False(t, IsRateLimited(err))
	assert.False(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}
