package logging

import (
	"github.com/runoshun/issue-import/internal/domain"
)

// Ensure Reporter and Tee implement domain.Reporter.
var (
	_ domain.Reporter = (*Reporter)(nil)
	_ domain.Reporter = Tee(nil)
)

// Reporter writes reported events to a Logger under one run id.
type Reporter struct {
	logger   *Logger
	runID    string
	category string
}

// NewReporter creates a Reporter logging under runID and category.
func NewReporter(logger *Logger, runID, category string) *Reporter {
	return &Reporter{logger: logger, runID: runID, category: category}
}

// Report logs the event at its level.
func (r *Reporter) Report(event domain.Event) {
	switch event.Level {
	case domain.LevelDebug:
		r.logger.Debug(r.runID, r.category, event.Message)
	case domain.LevelWarn:
		r.logger.Warn(r.runID, r.category, event.Message)
	case domain.LevelError:
		r.logger.Error(r.runID, r.category, event.Message)
	default:
		r.logger.Info(r.runID, r.category, event.Message)
	}
}

// Tee forwards every event to each reporter in order.
type Tee []domain.Reporter

// Report forwards the event.
func (t Tee) Report(event domain.Event) {
	for _, r := range t {
		if r != nil {
			r.Report(event)
		}
	}
}
