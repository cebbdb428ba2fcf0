package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/digitalec/deemon/internal/messages"
)

// PackageName is the package queried on the package index.
const PackageName = "deemon"

// Repo identifies the GitHub repository whose releases carry changelogs.
const Repo = "digitalec/deemon"

// Default endpoints for version and changelog lookups.
const (
	DefaultIndexURL    = "https://pypi.org/pypi/" + PackageName + "/json"
	DefaultReleasesURL = "https://api.github.com/repos/" + Repo + "/releases"
)

// ErrUnreachable reports that the remote endpoint could not be contacted.
// It means the answer is unknown, not that no update exists.
var ErrUnreachable = errors.New(messages.UpdateUnreachable)

// ErrChangelogNotFound reports that the release list was fetched but has no
// release with the requested name.
var ErrChangelogNotFound = errors.New(messages.UpdateChangelogNotFound)

// Client queries the package index and release feed. Each call makes exactly
// one request; nothing is cached and failed requests are not retried.
type Client struct {
	HTTPClient  *http.Client
	IndexURL    string
	ReleasesURL string
	UserAgent   string
}

// NewClient returns a Client for the public deemon endpoints.
func NewClient() *Client {
	return &Client{
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		IndexURL:    DefaultIndexURL,
		ReleasesURL: DefaultReleasesURL,
		UserAgent:   PackageName,
	}
}

type indexResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	Releases map[string]json.RawMessage `json:"releases"`
}

type releaseEntry struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// LatestVersion returns the latest version for channel.
//
// The stable channel returns the index's stable version. The beta channel
// sorts every published version in descending order and looks only at the
// first beta or release candidate: it is returned when newer than stable,
// otherwise stable is returned. A beta channel with no beta or release
// candidate at all is not reported as "no qualifying candidate"; it falls
// back to stable like any other beta miss. Versions are ordered by PEP 440,
// so 2.4.0b10 sorts above 2.4.0b9. A connection failure returns an error
// wrapping ErrUnreachable.
func (c *Client) LatestVersion(ctx context.Context, channel Channel) (Release, error) {
	var payload indexResponse
	if err := c.getJSON(ctx, c.IndexURL, &payload, messages.UpdateDecodeIndexErrFmt); err != nil {
		return Release{}, err
	}
	if strings.TrimSpace(payload.Info.Version) == "" {
		return Release{}, errors.New(messages.UpdateIndexMissingVersion)
	}
	stable, err := ParseRelease(payload.Info.Version)
	if err != nil {
		return Release{}, fmt.Errorf(messages.UpdateInvalidStableFmt, payload.Info.Version, err)
	}
	if channel != ChannelBeta {
		return stable, nil
	}

	keys := make([]string, 0, len(payload.Releases))
	for key := range payload.Releases {
		keys = append(keys, key)
	}
	return selectBeta(stable, keys), nil
}

// selectBeta applies the beta channel policy to the published version keys.
// Keys that do not parse as versions are ignored.
func selectBeta(stable Release, keys []string) Release {
	candidates := make([]Release, 0, len(keys))
	for _, key := range keys {
		r, err := ParseRelease(key)
		if err != nil {
			continue
		}
		candidates = append(candidates, r)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].GreaterThan(candidates[j])
	})
	for _, r := range candidates {
		if !r.IsPrerelease() {
			continue
		}
		if r.GreaterThan(stable) {
			return r
		}
		return stable
	}
	return stable
}

// Changelog returns the body of the first release named exactly version.
// It returns ErrChangelogNotFound when the list has no such release and an
// error wrapping ErrUnreachable when the release feed cannot be contacted.
func (c *Client) Changelog(ctx context.Context, version string) (string, error) {
	var releases []releaseEntry
	if err := c.getJSON(ctx, c.ReleasesURL, &releases, messages.UpdateDecodeReleasesErrFmt); err != nil {
		return "", err
	}
	for _, r := range releases {
		if r.Name == version {
			return r.Body, nil
		}
	}
	return "", ErrChangelogNotFound
}

// getJSON performs a single GET against url and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any, decodeFmt string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf(messages.UpdateCreateRequestErrFmt, url, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf(messages.UpdateUnreachableFmt, url, ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(messages.UpdateFetchStatusFmt, url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf(decodeFmt, err)
	}
	return nil
}

// CheckResult captures the outcome of comparing the running version with the
// latest release on a channel.
type CheckResult struct {
	Current      string
	Latest       string
	Outdated     bool
	CurrentIsDev bool
}

// Check fetches the latest version for channel and compares it to
// currentVersion. Development builds ("dev" or empty) are reported without a
// comparison.
func (c *Client) Check(ctx context.Context, currentVersion string, channel Channel) (CheckResult, error) {
	isDev := IsDev(currentVersion)
	var current Release
	if !isDev {
		var err error
		current, err = ParseRelease(currentVersion)
		if err != nil {
			return CheckResult{}, fmt.Errorf(messages.UpdateInvalidCurrentFmt, currentVersion, err)
		}
	}

	latest, err := c.LatestVersion(ctx, channel)
	if err != nil {
		return CheckResult{}, err
	}

	result := CheckResult{
		Current:      strings.TrimSpace(currentVersion),
		Latest:       latest.String(),
		CurrentIsDev: isDev,
	}
	if isDev {
		result.Current = "dev"
		return result, nil
	}
	result.Outdated = latest.GreaterThan(current)
	return result, nil
}

// IsDev reports whether raw names a development build.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "dev")
}
