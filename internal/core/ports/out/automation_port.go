package out

import (
	"context"

	"github.com/agendazap/slot-suggester/internal/core/domain"
)

// AutomationPort is the narrow contract with the external automation host
// (the n8n instance driving the conversation).
type AutomationPort interface {
	RelayMessage(ctx context.Context, msg domain.InboundMessage) error
	RelayBatch(ctx context.Context, batch domain.MessageBatch) error
}
