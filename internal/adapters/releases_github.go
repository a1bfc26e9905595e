package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"spacyctl/internal/ports"
	"spacyctl/internal/shared"
	"spacyctl/internal/types"
)

const defaultReleasesURL = "https://api.github.com/repos/explosion/spacy-models/releases"

// GitHubReleasesAdapter lists model releases from the GitHub releases
// endpoint of the spacy-models repository. The listing is a single GET
// with no authentication and no pagination; the first page is treated
// as complete. Failures are never retried.
type GitHubReleasesAdapter struct {
	URL     string
	Timeout time.Duration
}

// NewGitHubReleasesAdapter returns an adapter for the given endpoint.
// An empty endpoint falls back to the spacy-models releases URL; a
// timeout of zero leaves the transport default in place.
func NewGitHubReleasesAdapter(url string, timeoutSec int) GitHubReleasesAdapter {
	endpoint := strings.TrimSpace(url)
	if endpoint == "" {
		endpoint = defaultReleasesURL
	}
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout < 0 {
		timeout = 0
	}
	return GitHubReleasesAdapter{URL: endpoint, Timeout: timeout}
}

func (a GitHubReleasesAdapter) FetchReleases(ctx context.Context) ([]types.Release, error) {
	assert.NotEmpty(ctx, a.URL, "releases endpoint must be configured")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.URL, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create releases request").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to fetch model releases").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The body is not read on a non-success status.
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to fetch model releases").
			WithCause(shared.HTTPStatusError(resp.StatusCode, a.URL))
	}
	var releases []types.Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to decode model releases").
			WithCause(err)
	}
	log.Debug().Int("releases", len(releases)).Str("url", a.URL).Msg("fetched model releases")
	return releases, nil
}

var _ ports.ReleaseSourcePort = GitHubReleasesAdapter{}
