package domain

import (
	"fmt"
	"strings"
)

// Issue is an issue fetched from the source tracker.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Body          *string // nil when the issue has no description
	URL           string  // Canonical web URL, used as the story external_id
	CreatedAt     string  // ISO-8601 timestamp, passed through unchanged
	UpdatedAt     string  // ISO-8601 timestamp, passed through unchanged
	Title         string
	Labels        []Label
	Number        int
	IsPullRequest bool
}

// Label is a source issue label.
type Label struct {
	Name  string
	Color string // 6 hex digits without a leading '#'
}

// IssueState filters the issues listed from the source.
type IssueState string

// Issue states accepted by the source listing.
const (
	IssueStateOpen   IssueState = "open"
	IssueStateClosed IssueState = "closed"
	IssueStateAll    IssueState = "all"
)

// AllIssueStates lists the recognized states in display order.
var AllIssueStates = []IssueState{IssueStateOpen, IssueStateClosed, IssueStateAll}

// ParseIssueState parses a state filter case-insensitively.
func ParseIssueState(s string) (IssueState, error) {
	state := IssueState(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllIssueStates {
		if state == known {
			return state, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidState, s)
}

// RepoRef identifies a source repository.
type RepoRef struct {
	Owner string
	Name  string
}

// String returns the "owner/name" form.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}

// repoPrefixes are stripped before splitting a repository identifier.
var repoPrefixes = []string{
	"https://github.com/",
	"http://github.com/",
	"git@github.com:",
	"github.com/",
}

// ParseRepoRef parses "owner/repo" by splitting on the first '/'.
// A GitHub URL prefix and a trailing ".git" are tolerated.
func ParseRepoRef(s string) (RepoRef, error) {
	trimmed := strings.TrimSpace(s)
	for _, p := range repoPrefixes {
		if strings.HasPrefix(trimmed, p) {
			trimmed = strings.TrimPrefix(trimmed, p)
			break
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSuffix(trimmed, "/"), ".git")

	owner, name, ok := strings.Cut(trimmed, "/")
	if !ok || owner == "" || name == "" {
		return RepoRef{}, fmt.Errorf("%w: %q (expected owner/repo)", ErrInvalidRepo, s)
	}
	return RepoRef{Owner: owner, Name: name}, nil
}
