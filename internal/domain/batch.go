package domain

import "fmt"

// BatchSize is the maximum number of stories per bulk-create request.
const BatchSize = 10

// Batch is a contiguous run of stories submitted in one request.
type Batch struct {
	Stories []Story
	Index   int // Zero-based position among all batches
	Offset  int // Zero-based position of the first story in the full sequence
}

// Label identifies the batch in messages, e.g. "batch 2 (stories 11-20)".
func (b Batch) Label() string {
	return fmt.Sprintf("batch %d (stories %d-%d)", b.Index+1, b.Offset+1, b.Offset+len(b.Stories))
}

// PartitionStories splits stories into contiguous batches of at most size.
// Concatenating the batches in order yields the input sequence.
func PartitionStories(stories []Story, size int) []Batch {
	if size < 1 {
		size = BatchSize
	}
	batches := make([]Batch, 0, (len(stories)+size-1)/size)
	for start := 0; start < len(stories); start += size {
		end := min(start+size, len(stories))
		batches = append(batches, Batch{
			Index:   len(batches),
			Offset:  start,
			Stories: stories[start:end],
		})
	}
	return batches
}

// BatchOutcome records the result of submitting one batch.
type BatchOutcome struct {
	Err     error // nil when the destination accepted the batch
	Batch   Batch
	Created int // Stories the destination confirmed as created
}

// Succeeded reports whether the batch was accepted.
func (o BatchOutcome) Succeeded() bool {
	return o.Err == nil
}
