// Package shortcut is a thin client for the Shortcut (formerly Clubhouse) REST API v3.
package shortcut

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/runoshun/issue-import/internal/domain"
)

// Ensure Client implements domain.StoryDestination.
var _ domain.StoryDestination = (*Client)(nil)

// Client is a thin HTTP client for the Shortcut REST API. The API token is
// sent as the "token" query parameter. Requests are attempted once.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a new Shortcut client. An empty baseURL uses
// domain.DefaultShortcutURL.
func NewClient(baseURL, token string) *Client {
	return NewClientWithHTTP(&http.Client{}, baseURL, token)
}

// NewClientWithHTTP is like NewClient but uses the given HTTP client.
func NewClientWithHTTP(httpClient *http.Client, baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = domain.DefaultShortcutURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

// GetProject looks up a project by id.
func (c *Client) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	var p Project
	err := c.do(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectID), nil, &p)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s (%w)", domain.ErrProjectNotFound, projectID, apiErr)
		}
		return nil, fmt.Errorf("get project %s: %w", projectID, err)
	}
	return &domain.Project{ID: p.ID, Name: p.Name}, nil
}

// CreateStories bulk-creates stories and returns how many the API
// reports as created.
func (c *Client) CreateStories(ctx context.Context, stories []domain.Story) (int, error) {
	var created []CreatedStory
	if err := c.do(ctx, http.MethodPost, "/stories/bulk", BulkCreateRequest{Stories: stories}, &created); err != nil {
		return 0, err
	}
	return len(created), nil
}

// do builds the request, sends it once and decodes the JSON response.
// Non-2xx responses become *domain.APIError; 401 also wraps domain.ErrUnauthorized.
func (c *Client) do(
	ctx context.Context,
	method string,
	path string,
	body any,
	result any,
) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path + "?token=" + url.QueryEscape(c.token)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", redact(err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request %s %s: %w", method, path, redact(err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &domain.APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       compactJSON(respBody),
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %w", domain.ErrUnauthorized, apiErr)
		}
		return apiErr
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("unmarshaling response from %s %s: %w", method, path, err)
	}
	return nil
}

// redact drops the request URL, which carries the token, from transport errors.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// compactJSON returns body on one line when it is JSON, trimmed text otherwise.
func compactJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err == nil {
		return buf.String()
	}
	return strings.TrimSpace(string(body))
}
