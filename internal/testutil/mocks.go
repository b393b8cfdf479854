// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/runoshun/issue-import/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIssueSource is a test double for domain.IssueSource.
// Fields are ordered to minimize memory padding.
type MockIssueSource struct {
	Err    error
	Issues []domain.Issue
	Repo   domain.RepoRef
	State  domain.IssueState
	Calls  int
}

// ListIssues returns the configured issues, excluding pull requests.
func (m *MockIssueSource) ListIssues(_ context.Context, repo domain.RepoRef, state domain.IssueState) ([]domain.Issue, error) {
	m.Calls++
	m.Repo = repo
	m.State = state
	if m.Err != nil {
		return nil, m.Err
	}
	issues := make([]domain.Issue, 0, len(m.Issues))
	for _, issue := range m.Issues {
		if !issue.IsPullRequest {
			issues = append(issues, issue)
		}
	}
	return issues, nil
}

// MockStoryDestination is a test double for domain.StoryDestination.
// It is safe for concurrent CreateStories calls.
type MockStoryDestination struct {
	Project    *domain.Project
	ProjectErr error
	// FailBatch, when set, decides per request whether it fails.
	FailBatch    func(stories []domain.Story) error
	Batches      [][]domain.Story
	ProjectCalls int
	mu           sync.Mutex
}

// GetProject returns the configured project or error.
func (m *MockStoryDestination) GetProject(_ context.Context, _ string) (*domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProjectCalls++
	if m.ProjectErr != nil {
		return nil, m.ProjectErr
	}
	if m.Project == nil {
		return &domain.Project{ID: 1, Name: "Mock"}, nil
	}
	return m.Project, nil
}

// CreateStories records the request and confirms every story unless FailBatch rejects it.
func (m *MockStoryDestination) CreateStories(_ context.Context, stories []domain.Story) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Batches = append(m.Batches, stories)
	if m.FailBatch != nil {
		if err := m.FailBatch(stories); err != nil {
			return 0, err
		}
	}
	return len(stories), nil
}

// BatchCount returns the number of CreateStories calls.
func (m *MockStoryDestination) BatchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Batches)
}

// RecordingReporter is a domain.Reporter that keeps every event.
type RecordingReporter struct {
	events []domain.Event
	mu     sync.Mutex
}

// Report records the event.
func (r *RecordingReporter) Report(event domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *RecordingReporter) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}

// AtLevel returns the recorded events with the given level.
func (r *RecordingReporter) AtLevel(level domain.Level) []domain.Event {
	var out []domain.Event
	for _, e := range r.Events() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Settings *domain.Settings
	Err      error
}

// Load returns a copy of the configured settings.
func (m *MockConfigLoader) Load() (*domain.Settings, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Settings == nil {
		return domain.NewDefaultSettings(), nil
	}
	s := *m.Settings
	return &s, nil
}

// MockCredentialStore is an in-memory domain.CredentialStore.
type MockCredentialStore struct {
	Tokens map[domain.CredentialService]string
	GetErr error
	SetErr error
}

// NewMockCredentialStore creates a new MockCredentialStore with an initialized map.
func NewMockCredentialStore() *MockCredentialStore {
	return &MockCredentialStore{Tokens: make(map[domain.CredentialService]string)}
}

// Get returns the stored token.
func (m *MockCredentialStore) Get(service domain.CredentialService) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	return m.Tokens[service], nil
}

// Set stores the token.
func (m *MockCredentialStore) Set(service domain.CredentialService, token string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Tokens[service] = token
	return nil
}

// Delete removes the token.
func (m *MockCredentialStore) Delete(service domain.CredentialService) error {
	delete(m.Tokens, service)
	return nil
}

// MockRepoDetector is a test double for domain.RepoDetector.
type MockRepoDetector struct {
	Err   error
	Repo  string
	Calls int
}

// DetectRepo returns the configured repository.
func (m *MockRepoDetector) DetectRepo(_ string) (string, error) {
	m.Calls++
	return m.Repo, m.Err
}

// MockReportWriter records written summaries.
type MockReportWriter struct {
	Err     error
	Summary *domain.ImportSummary
	Path    string
}

// Write records the summary.
func (m *MockReportWriter) Write(path string, summary *domain.ImportSummary) error {
	m.Path = path
	m.Summary = summary
	return m.Err
}
