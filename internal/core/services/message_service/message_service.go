package message_service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agendazap/slot-suggester/internal/config"
	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

type MessageService struct {
	queue      out.QueuePort
	sessions   out.SessionBufferPort
	dedup      out.DedupPort
	automation out.AutomationPort
	cfg        *config.Config
	logger     out.LoggerPort
}

func NewMessageService(
	queue out.QueuePort,
	sessions out.SessionBufferPort,
	dedup out.DedupPort,
	automation out.AutomationPort,
	cfg *config.Config,
	logger out.LoggerPort,
) *MessageService {
	return &MessageService{
		queue:      queue,
		sessions:   sessions,
		dedup:      dedup,
		automation: automation,
		cfg:        cfg,
		logger:     logger.WithModule("MessageService"),
	}
}

// HandleInbound buffers one inbound message and schedules its relay jobs.
// Accepting the message is decoupled from relaying it: the webhook responds
// as soon as the jobs are queued, the queue owns retries from there.
func (s *MessageService) HandleInbound(ctx context.Context, msg domain.InboundMessage) error {
	if msg.MessageID != "" && s.dedup != nil && s.dedup.Remember(ctx, msg.MessageID) {
		s.logger.Debug("messages.inbound.duplicate", out.LogFields{
			"messageId": msg.MessageID,
			"sessionId": msg.SessionID,
		})
		return nil
	}

	s.logger.Info("messages.inbound.received", out.LogFields{
		"messageId":   msg.MessageID,
		"sessionId":   msg.SessionID,
		"phoneNumber": msg.PhoneNumber,
		"instance":    msg.InstanceName,
	})

	if err := s.sessions.Append(ctx, msg.SessionID, msg); err != nil {
		s.logger.Error("messages.inbound.buffer_failed", out.LogFields{
			"sessionId": msg.SessionID,
			"error":     err.Error(),
		})
		return fmt.Errorf("messages.inbound.buffer_failed: %w", err)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("messages.inbound.encode_failed: %w", err)
	}
	if err := s.queue.Enqueue(ctx, s.cfg.Queue.MessageQueue, payload); err != nil {
		s.logger.Error("messages.inbound.enqueue_failed", out.LogFields{
			"sessionId": msg.SessionID,
			"error":     err.Error(),
		})
		return fmt.Errorf("messages.inbound.enqueue_failed: %w", err)
	}

	// One debounced batch job per session: re-scheduling replaces the
	// pending job, so the batch fires only after the conversation has gone
	// quiet for the configured delay.
	batch := domain.MessageBatch{
		SessionID:    msg.SessionID,
		AgentID:      msg.AgentID,
		PhoneNumber:  msg.PhoneNumber,
		InstanceID:   msg.InstanceID,
		InstanceName: msg.InstanceName,
		ClientName:   msg.ClientName,
		Datetime:     msg.Datetime,
	}
	batchPayload, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("messages.inbound.encode_failed: %w", err)
	}
	if err := s.queue.EnqueueDelayedReplace(ctx, s.cfg.Queue.BatchQueue, msg.SessionID, batchPayload, s.cfg.DebounceDelay()); err != nil {
		s.logger.Error("messages.inbound.debounce_failed", out.LogFields{
			"sessionId": msg.SessionID,
			"error":     err.Error(),
		})
		return fmt.Errorf("messages.inbound.debounce_failed: %w", err)
	}

	return nil
}
