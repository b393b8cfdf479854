package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrInvalidState    = errors.New("invalid issue state")
	ErrInvalidRepo     = errors.New("invalid repository identifier")
	ErrProjectNotFound = errors.New("project not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUnknownService  = errors.New("unknown credential service")
	ErrEmptyToken      = errors.New("token cannot be empty")
)

// ConfigError reports every violated configuration rule at once.
// It is the only error kind that terminates the process.
type ConfigError struct {
	Violations []Violation
}

func (e *ConfigError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message())
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// ProjectResolutionError means the destination project could not be looked up.
type ProjectResolutionError struct {
	Err       error
	ProjectID string
}

func (e *ProjectResolutionError) Error() string {
	return fmt.Sprintf("resolve project %s: %v", e.ProjectID, e.Err)
}

func (e *ProjectResolutionError) Unwrap() error { return e.Err }

// FetchError means listing source issues failed. No partial result accompanies it.
type FetchError struct {
	Err  error
	Repo RepoRef
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch issues from %s: %v", e.Repo, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// BatchError means one batch was rejected or failed in transport.
// It never aborts sibling batches.
type BatchError struct {
	Err   error
	Batch Batch
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Batch.Label(), e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// APIError is a non-success response from the destination API.
type APIError struct {
	Status     string // Status text, e.g. "422 Unprocessable Entity"
	Body       string // Raw JSON error body
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return e.Status
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Body)
}

// IsFatal reports whether err must terminate the process with a non-zero status.
func IsFatal(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
