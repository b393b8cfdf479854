package domain

import (
	"fmt"
	"strings"
	"time"
)

// Level is the severity of a reported event.
type Level int

// Event levels, ordered by severity.
const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Event is a single user-facing report.
type Event struct {
	Err     error // Optional underlying error
	Message string
	Level   Level
}

// Infof builds an info event.
func Infof(format string, args ...any) Event {
	return Event{Level: LevelInfo, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a warning event.
func Warnf(format string, args ...any) Event {
	return Event{Level: LevelWarn, Message: fmt.Sprintf(format, args...)}
}

// ErrorEvent builds an error event carrying err.
func ErrorEvent(err error) Event {
	return Event{Level: LevelError, Message: err.Error(), Err: err}
}

// CredentialService names a token stored in the credential store.
type CredentialService string

// Known credential services.
const (
	CredentialGitHub   CredentialService = "github"
	CredentialShortcut CredentialService = "shortcut"
)

// ParseCredentialService parses a service name case-insensitively.
func ParseCredentialService(s string) (CredentialService, error) {
	switch svc := CredentialService(strings.ToLower(strings.TrimSpace(s))); svc {
	case CredentialGitHub, CredentialShortcut:
		return svc, nil
	default:
		return "", fmt.Errorf("%w: %q (expected github or shortcut)", ErrUnknownService, s)
	}
}

// ImportSummary is the auditable record of one import run.
type ImportSummary struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Err        error // Run-level failure (project resolution or fetch)
	RunID      string
	Repo       string
	ProjectID  string
	State      string
	Batches    []BatchOutcome
	Fetched    int // Non-pull-request issues returned by the source
	Mapped     int
	Imported   int
	DryRun     bool
}

// FailedBatches returns the outcomes that did not succeed.
func (s *ImportSummary) FailedBatches() []BatchOutcome {
	var failed []BatchOutcome
	for _, o := range s.Batches {
		if !o.Succeeded() {
			failed = append(failed, o)
		}
	}
	return failed
}
