package out

import (
	"context"

	"github.com/agendazap/slot-suggester/internal/core/domain"
)

type SessionBufferPort interface {
	// Append stores one message at the tail of its session's buffer.
	Append(ctx context.Context, sessionID string, msg domain.InboundMessage) error

	// Peek returns the buffered messages of a session in arrival order
	// without removing them, so a failed batch relay can be retried.
	Peek(ctx context.Context, sessionID string) ([]domain.InboundMessage, error)

	// Clear empties a session's buffer after its batch has been delivered.
	Clear(ctx context.Context, sessionID string) error
}
