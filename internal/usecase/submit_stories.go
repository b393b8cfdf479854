package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/runoshun/issue-import/internal/domain"
)

// SubmitStoriesInput contains the stories to submit.
type SubmitStoriesInput struct {
	Stories []domain.Story
}

// SubmitStoriesOutput contains the per-batch outcomes and their total.
type SubmitStoriesOutput struct {
	Outcomes []domain.BatchOutcome // Ordered by batch index, not completion order
	Imported int                   // Sum of stories confirmed created
}

// Failed returns the number of batches that did not succeed.
func (o *SubmitStoriesOutput) Failed() int {
	n := 0
	for _, outcome := range o.Outcomes {
		if !outcome.Succeeded() {
			n++
		}
	}
	return n
}

// SubmitStories is the use case for bulk-creating stories in batches.
type SubmitStories struct {
	destination domain.StoryDestination
	reporter    domain.Reporter
	batchSize   int
}

// NewSubmitStories creates a new SubmitStories use case.
func NewSubmitStories(destination domain.StoryDestination, reporter domain.Reporter) *SubmitStories {
	return &SubmitStories{
		destination: destination,
		reporter:    reporter,
		batchSize:   domain.BatchSize,
	}
}

// Execute submits every batch concurrently. A failed batch is reported and
// contributes zero; it never stops the other batches.
func (uc *SubmitStories) Execute(ctx context.Context, in SubmitStoriesInput) (*SubmitStoriesOutput, error) {
	batches := domain.PartitionStories(in.Stories, uc.batchSize)
	outcomes := make([]domain.BatchOutcome, len(batches))

	// Each goroutine owns exactly one slot of outcomes.
	var g errgroup.Group
	for i, batch := range batches {
		g.Go(func() error {
			outcomes[i] = uc.submit(ctx, batch)
			return nil
		})
	}
	_ = g.Wait()

	out := &SubmitStoriesOutput{Outcomes: outcomes}
	for _, outcome := range outcomes {
		out.Imported += outcome.Created
	}
	return out, nil
}

func (uc *SubmitStories) submit(ctx context.Context, batch domain.Batch) domain.BatchOutcome {
	created, err := uc.destination.CreateStories(ctx, batch.Stories)
	if err != nil {
		batchErr := &domain.BatchError{Batch: batch, Err: err}
		uc.reporter.Report(domain.ErrorEvent(batchErr))
		return domain.BatchOutcome{Batch: batch, Err: batchErr}
	}

	uc.reporter.Report(domain.Event{
		Level:   domain.LevelDebug,
		Message: fmt.Sprintf("%s: created %d stories", batch.Label(), created),
	})
	return domain.BatchOutcome{Batch: batch, Created: created}
}
