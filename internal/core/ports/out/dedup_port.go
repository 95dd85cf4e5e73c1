package out

import "context"

// DedupPort remembers recently processed message IDs so that webhook and
// AMQP redeliveries are accepted at most once.
type DedupPort interface {
	// Remember records the ID and reports whether it had been seen before.
	Remember(ctx context.Context, messageID string) bool
}
