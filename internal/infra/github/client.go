// Package github lists repository issues through the GitHub REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v72/github"

	"github.com/runoshun/issue-import/internal/domain"
)

// Ensure Client implements domain.IssueSource.
var _ domain.IssueSource = (*Client)(nil)

// PageSize is the number of issues requested per page (the API maximum).
const PageSize = 100

// Client implements domain.IssueSource with go-github.
type Client struct {
	api *gh.Client
}

// NewClient creates a client authenticated with token. baseURL selects a
// GitHub Enterprise API root; empty uses api.github.com.
func NewClient(token, baseURL string) (*Client, error) {
	return NewClientWithHTTP(http.DefaultClient, token, baseURL)
}

// NewClientWithHTTP is like NewClient but uses the given HTTP client.
func NewClientWithHTTP(httpClient *http.Client, token, baseURL string) (*Client, error) {
	api := gh.NewClient(httpClient)
	if token != "" {
		api = api.WithAuthToken(token)
	}
	if baseURL != "" {
		var err error
		api, err = api.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("github base url %q: %w", baseURL, err)
		}
	}
	return &Client{api: api}, nil
}

// ListIssues returns all issues matching state, in API order, following
// pages sequentially until none remain. Pull requests are dropped.
func (c *Client) ListIssues(ctx context.Context, repo domain.RepoRef, state domain.IssueState) ([]domain.Issue, error) {
	opts := &gh.IssueListByRepoOptions{
		State:       string(state),
		ListOptions: gh.ListOptions{PerPage: PageSize},
	}

	var issues []domain.Issue
	for {
		page, resp, err := c.api.Issues.ListByRepo(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, &domain.FetchError{Repo: repo, Err: describe(err)}
		}
		for _, item := range page {
			if item.IsPullRequest() {
				continue
			}
			issues = append(issues, toDomainIssue(item))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}
	return issues, nil
}

// describe maps authorization failures onto domain.ErrUnauthorized.
func describe(err error) error {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil &&
		errResp.Response.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, strings.TrimSpace(errResp.Message))
	}
	return err
}

func toDomainIssue(item *gh.Issue) domain.Issue {
	labels := make([]domain.Label, 0, len(item.Labels))
	for _, l := range item.Labels {
		labels = append(labels, domain.Label{Name: l.GetName(), Color: l.GetColor()})
	}
	return domain.Issue{
		Number:        item.GetNumber(),
		URL:           item.GetHTMLURL(),
		CreatedAt:     formatTimestamp(item.CreatedAt),
		UpdatedAt:     formatTimestamp(item.UpdatedAt),
		Title:         item.GetTitle(),
		Body:          item.Body,
		Labels:        labels,
		IsPullRequest: item.IsPullRequest(),
	}
}

// formatTimestamp renders the time with the offset and precision the API sent.
func formatTimestamp(ts *gh.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.Format(time.RFC3339Nano)
}
