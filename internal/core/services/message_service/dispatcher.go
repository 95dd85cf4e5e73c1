package message_service

import (
	"context"
	"encoding/json"

	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

// Run starts the queue consumers relaying jobs to the automation host. It
// blocks until ctx is done.
func (s *MessageService) Run(ctx context.Context) {
	go func() {
		if err := s.queue.Consume(ctx, s.cfg.Queue.MessageQueue, s.relayMessage); err != nil && ctx.Err() == nil {
			s.logger.Error("messages.consume.failed", out.LogFields{
				"queue": s.cfg.Queue.MessageQueue,
				"error": err.Error(),
			})
		}
	}()

	if err := s.queue.Consume(ctx, s.cfg.Queue.BatchQueue, s.relayBatch); err != nil && ctx.Err() == nil {
		s.logger.Error("messages.consume.failed", out.LogFields{
			"queue": s.cfg.Queue.BatchQueue,
			"error": err.Error(),
		})
	}
}

func (s *MessageService) relayMessage(ctx context.Context, job out.Job) error {
	var msg domain.InboundMessage
	if err := json.Unmarshal(job.Payload, &msg); err != nil {
		// Poison payload, retrying cannot help
		s.logger.Error("messages.relay.decode_failed", out.LogFields{
			"jobId": job.ID,
			"error": err.Error(),
		})
		return nil
	}

	if err := s.automation.RelayMessage(ctx, msg); err != nil {
		s.logger.Warn("messages.relay.failed", out.LogFields{
			"jobId":     job.ID,
			"sessionId": msg.SessionID,
			"attempt":   job.Attempt,
			"error":     err.Error(),
		})
		return err
	}

	s.logger.Debug("messages.relay.done", out.LogFields{
		"jobId":     job.ID,
		"sessionId": msg.SessionID,
	})
	return nil
}

func (s *MessageService) relayBatch(ctx context.Context, job out.Job) error {
	var batch domain.MessageBatch
	if err := json.Unmarshal(job.Payload, &batch); err != nil {
		s.logger.Error("messages.batch.decode_failed", out.LogFields{
			"jobId": job.ID,
			"error": err.Error(),
		})
		return nil
	}

	messages, err := s.sessions.Peek(ctx, batch.SessionID)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		s.logger.Debug("messages.batch.empty", out.LogFields{
			"sessionId": batch.SessionID,
		})
		return nil
	}

	batch.Messages = messages
	if batch.ClientName == "" {
		batch.ClientName = messages[0].ClientName
	}

	if err := s.automation.RelayBatch(ctx, batch); err != nil {
		s.logger.Warn("messages.batch.relay_failed", out.LogFields{
			"sessionId": batch.SessionID,
			"attempt":   job.Attempt,
			"error":     err.Error(),
		})
		return err
	}

	// Only a delivered batch empties the session buffer; a failed relay
	// keeps the messages for the retry.
	if err := s.sessions.Clear(ctx, batch.SessionID); err != nil {
		s.logger.Warn("messages.batch.clear_failed", out.LogFields{
			"sessionId": batch.SessionID,
			"error":     err.Error(),
		})
	}

	s.logger.Info("messages.batch.relayed", out.LogFields{
		"sessionId":     batch.SessionID,
		"messagesCount": len(batch.Messages),
	})
	return nil
}
