// Package report writes import summaries as YAML.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/issue-import/internal/domain"
)

// Ensure Writer implements domain.ReportWriter.
var _ domain.ReportWriter = (*Writer)(nil)

// Document is the YAML shape of an import report.
type Document struct {
	RunID      string  `yaml:"run_id"`
	Repo       string  `yaml:"repo"`
	ProjectID  string  `yaml:"project_id"`
	State      string  `yaml:"state"`
	StartedAt  string  `yaml:"started_at"`
	FinishedAt string  `yaml:"finished_at,omitempty"`
	Error      string  `yaml:"error,omitempty"`
	Batches    []Batch `yaml:"batches,omitempty"`
	Fetched    int     `yaml:"fetched"`
	Mapped     int     `yaml:"mapped"`
	Imported   int     `yaml:"imported"`
	Failed     int     `yaml:"failed_batches"`
	DryRun     bool    `yaml:"dry_run"`
}

// Batch is the YAML shape of one batch outcome.
type Batch struct {
	Error   string `yaml:"error,omitempty"`
	Index   int    `yaml:"index"`
	First   int    `yaml:"first_story"`
	Last    int    `yaml:"last_story"`
	Size    int    `yaml:"size"`
	Created int    `yaml:"created"`
}

// Writer writes reports to files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write encodes summary as YAML to path, creating parent directories.
func (w *Writer) Write(path string, summary *domain.ImportSummary) error {
	data, err := Marshal(summary)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Marshal returns the YAML encoding of summary.
func Marshal(summary *domain.ImportSummary) ([]byte, error) {
	data, err := yaml.Marshal(NewDocument(summary))
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return data, nil
}

// NewDocument converts a summary into its report document.
func NewDocument(summary *domain.ImportSummary) Document {
	doc := Document{
		RunID:      summary.RunID,
		Repo:       summary.Repo,
		ProjectID:  summary.ProjectID,
		State:      summary.State,
		StartedAt:  formatTime(summary.StartedAt),
		FinishedAt: formatTime(summary.FinishedAt),
		Fetched:    summary.Fetched,
		Mapped:     summary.Mapped,
		Imported:   summary.Imported,
		Failed:     len(summary.FailedBatches()),
		DryRun:     summary.DryRun,
	}
	if summary.Err != nil {
		doc.Error = summary.Err.Error()
	}
	for _, o := range summary.Batches {
		b := Batch{
			Index:   o.Batch.Index,
			First:   o.Batch.Offset + 1,
			Last:    o.Batch.Offset + len(o.Batch.Stories),
			Size:    len(o.Batch.Stories),
			Created: o.Created,
		}
		if o.Err != nil {
			b.Error = o.Err.Error()
		}
		doc.Batches = append(doc.Batches, b)
	}
	return doc
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
