package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RepoLister defines the interface for fetching a user's repositories.
// This interface is implemented by *Client and can be used for testing.
type RepoLister interface {
	ListRepos(ctx context.Context, user string) ([]Repo, error)
}

// Ensure Client implements RepoLister at compile time.
var _ RepoLister = (*Client)(nil)

// Client talks to a GitHub-compatible REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase   = "https://api.github.com"
	defaultUserAgent = "foyer/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given API base URL. An empty value
// selects the public GitHub API.
func NewClient(apiBase string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListRepos retrieves the user's public repositories, most recently
// updated first.
func (c *Client) ListRepos(ctx context.Context, user string) ([]Repo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, fmt.Errorf("user required")
	}
	values := url.Values{}
	values.Set("per_page", "100")
	values.Set("sort", "updated")
	values.Set("type", "owner")
	rel := &url.URL{Path: "/users/" + url.PathEscape(user) + "/repos", RawQuery: values.Encode()}
	var payload []Repo
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
