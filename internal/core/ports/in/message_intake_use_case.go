package in

import (
	"context"

	"github.com/agendazap/slot-suggester/internal/core/domain"
)

type MessageIntakeUseCase interface {
	// HandleInbound accepts one messaging event from any ingress (HTTP
	// webhook or AMQP), deduplicates redeliveries, buffers it in its
	// conversation session and schedules the relay jobs.
	HandleInbound(ctx context.Context, msg domain.InboundMessage) error
}
