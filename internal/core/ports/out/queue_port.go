package out

import (
	"context"
	"time"
)

// Job is one unit of work delivered at least once.
type Job struct {
	ID      string
	Queue   string
	Payload []byte
	Attempt int
}

// JobHandler processes one delivery. A non-nil error returns the job to the
// queue for retry with backoff until its attempts are exhausted.
type JobHandler func(ctx context.Context, job Job) error

type QueuePort interface {
	// Enqueue schedules a job for immediate delivery.
	Enqueue(ctx context.Context, queue string, payload []byte) error

	// EnqueueDelayedReplace schedules a job for delivery after delay. A
	// pending job with the same ID on the same queue is replaced, which is
	// what debounces a burst of messages into one batch job.
	EnqueueDelayedReplace(ctx context.Context, queue, jobID string, payload []byte, delay time.Duration) error

	// Consume blocks delivering jobs to handler until ctx is done.
	Consume(ctx context.Context, queue string, handler JobHandler) error
}
