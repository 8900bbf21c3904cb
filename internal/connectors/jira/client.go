package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/clearlake-labs/storysync-cli/internal/core/domain"
	"github.com/clearlake-labs/storysync-cli/internal/core/ports/driven"
	"github.com/clearlake-labs/storysync-cli/internal/logger"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// searchPath is the issue search endpoint.
const searchPath = "/rest/api/3/search"

// Ensure Client implements the interface.
var _ driven.StorySearcher = (*Client)(nil)

// Credentials is the auth material for the tracker. Cloud instances use
// email + API token (basic auth); self-hosted instances use a bare
// personal access token (bearer auth) with Email left empty.
type Credentials struct {
	Email    string
	APIToken string
}

// Client issues search requests against one tracker instance.
type Client struct {
	baseURL     string
	creds       Credentials
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a search client for the instance at baseURL.
// A trailing slash on baseURL is tolerated.
func NewClient(ctx context.Context, baseURL string, creds Credentials) *Client {
	httpClient := &http.Client{Timeout: DefaultTimeout}

	// Bearer-token auth goes through an oauth2 static source so the
	// Authorization header is managed by the transport.
	if creds.Email == "" && creds.APIToken != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: creds.APIToken},
		)
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		creds:       creds,
		httpClient:  httpClient,
		rateLimiter: NewRateLimiter(),
	}
}

// BaseURL returns the instance address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search runs the story filter for a project and returns one page of up
// to maxResults raw issues plus the overall match count. It performs a
// single request: pagination beyond one page is out of contract.
func (c *Client) Search(ctx context.Context, project string, maxResults int) (*domain.SearchResult, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	q := url.Values{}
	q.Set("jql", BuildJQL(project))
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("fields", FieldProjection())
	searchURL := c.baseURL + searchPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.creds.Email != "" {
		req.SetBasicAuth(c.creds.Email, c.creds.APIToken)
	}

	logger.Debug("Searching %s (project=%s, maxResults=%d)", c.baseURL, project, maxResults)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, body, searchURL)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}

	logger.Debug("Search returned %d of %d issues", len(result.Issues), result.Total)
	return &result, nil
}
