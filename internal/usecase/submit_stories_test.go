package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/runoshun/issue-import/internal/domain"
	"github.com/runoshun/issue-import/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedStories(n int) []domain.Story {
	stories := make([]domain.Story, n)
	for i := range stories {
		stories[i] = domain.Story{Name: fmt.Sprintf("issue-%d", i+1), ProjectID: 1}
	}
	return stories
}

func TestSubmitStories_Execute_AllSucceed(t *testing.T) {
	dest := &testutil.MockStoryDestination{}
	reporter := &testutil.RecordingReporter{}
	uc := NewSubmitStories(dest, reporter)

	out, err := uc.Execute(context.Background(), SubmitStoriesInput{Stories: numberedStories(25)})

	require.NoError(t, err)
	assert.Equal(t, 25, out.Imported)
	assert.Equal(t, 0, out.Failed())
	require.Len(t, out.Outcomes, 3)
	assert.Equal(t, 3, dest.BatchCount())
	assert.Empty(t, reporter.AtLevel(domain.LevelError))
	for i, o := range out.Outcomes {
		assert.Equal(t, i, o.Batch.Index, "outcomes are ordered by batch index")
	}
}

func TestSubmitStories_Execute_PartialFailure(t *testing.T) {
	dest := &testutil.MockStoryDestination{
		FailBatch: func(stories []domain.Story) error {
			if stories[0].Name == "issue-11" {
				return &domain.APIError{StatusCode: 400, Status: "400 Bad Request", Body: `{"message":"invalid"}`}
			}
			return nil
		},
	}
	reporter := &testutil.RecordingReporter{}
	uc := NewSubmitStories(dest, reporter)

	out, err := uc.Execute(context.Background(), SubmitStoriesInput{Stories: numberedStories(25)})

	require.NoError(t, err)
	assert.Equal(t, 15, out.Imported)
	assert.Equal(t, 1, out.Failed())
	assert.Equal(t, 3, dest.BatchCount(), "sibling batches are still submitted")

	assert.True(t, out.Outcomes[0].Succeeded())
	assert.Equal(t, 10, out.Outcomes[0].Created)
	assert.False(t, out.Outcomes[1].Succeeded())
	assert.Equal(t, 0, out.Outcomes[1].Created)
	assert.True(t, out.Outcomes[2].Succeeded())
	assert.Equal(t, 5, out.Outcomes[2].Created)

	var batchErr *domain.BatchError
	require.ErrorAs(t, out.Outcomes[1].Err, &batchErr)
	assert.Equal(t, 1, batchErr.Batch.Index)

	errs := reporter.AtLevel(domain.LevelError)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "batch 2 (stories 11-20)")
	assert.Contains(t, errs[0].Message, "400 Bad Request")
}

func TestSubmitStories_Execute_AllFail(t *testing.T) {
	dest := &testutil.MockStoryDestination{
		FailBatch: func([]domain.Story) error { return errors.New("connection refused") },
	}
	reporter := &testutil.RecordingReporter{}
	uc := NewSubmitStories(dest, reporter)

	out, err := uc.Execute(context.Background(), SubmitStoriesInput{Stories: numberedStories(21)})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Imported)
	assert.Equal(t, 3, out.Failed())
	assert.Len(t, reporter.AtLevel(domain.LevelError), 3)
}

func TestSubmitStories_Execute_PreservesOrder(t *testing.T) {
	dest := &testutil.MockStoryDestination{}
	uc := NewSubmitStories(dest, &testutil.RecordingReporter{})
	stories := numberedStories(37)

	out, err := uc.Execute(context.Background(), SubmitStoriesInput{Stories: stories})
	require.NoError(t, err)

	var rebuilt []domain.Story
	for _, o := range out.Outcomes {
		assert.LessOrEqual(t, len(o.Batch.Stories), domain.BatchSize)
		rebuilt = append(rebuilt, o.Batch.Stories...)
	}
	assert.Equal(t, stories, rebuilt)
}

func TestSubmitStories_Execute_Empty(t *testing.T) {
	dest := &testutil.MockStoryDestination{}
	uc := NewSubmitStories(dest, &testutil.RecordingReporter{})

	out, err := uc.Execute(context.Background(), SubmitStoriesInput{})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Imported)
	assert.Empty(t, out.Outcomes)
	assert.Equal(t, 0, dest.BatchCount())
}

// barrierDestination holds every CreateStories call until the expected number
// of calls are in flight at the same time.
type barrierDestination struct {
	expected int

	mu      sync.Mutex
	arrived int
	ready   chan struct{}
}

func newBarrierDestination(expected int) *barrierDestination {
	return &barrierDestination{expected: expected, ready: make(chan struct{})}
}

func (d *barrierDestination) GetProject(_ context.Context, projectID string) (*domain.Project, error) {
	return &domain.Project{Name: projectID}, nil
}

func (d *barrierDestination) CreateStories(_ context.Context, stories []domain.Story) (int, error) {
	d.mu.Lock()
	d.arrived++
	if d.arrived == d.expected {
		close(d.ready)
	}
	d.mu.Unlock()

	select {
	case <-d.ready:
		return len(stories), nil
	case <-time.After(2 * time.Second):
		return 0, errors.New("batches were not submitted concurrently")
	}
}

func TestSubmitStories_Execute_BatchesInFlightTogether(t *testing.T) {
	dest := newBarrierDestination(3)
	reporter := &testutil.RecordingReporter{}
	uc := NewSubmitStories(dest, reporter)

	out, err := uc.Execute(context.Background(), SubmitStoriesInput{Stories: numberedStories(25)})

	require.NoError(t, err)
	assert.Equal(t, 25, out.Imported)
	assert.Equal(t, 0, out.Failed())
	assert.Empty(t, reporter.AtLevel(domain.LevelError))
}
