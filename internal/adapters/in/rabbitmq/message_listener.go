package rabbitmq

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/agendazap/slot-suggester/internal/config"
	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/in"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

const eventMessagesUpsert = "messages.upsert"

// MessageListener consumes message events the WhatsApp gateway publishes to
// RabbitMQ and feeds them into the same intake path as the HTTP webhook.
type MessageListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	intake  in.MessageIntakeUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

// gatewayEvent is the Evolution-API-style envelope on the events queue.
type gatewayEvent struct {
	Event    string `json:"event"`
	Instance string `json:"instance"`
	Data     struct {
		Key struct {
			ID        string `json:"id"`
			RemoteJid string `json:"remoteJid"`
		} `json:"key"`
		PushName string `json:"pushName"`
		Message  struct {
			Conversation string `json:"conversation"`
		} `json:"message"`
		MessageTimestamp int64 `json:"messageTimestamp"`
	} `json:"data"`
}

func NewMessageListener(intake in.MessageIntakeUseCase, cfg *config.Config, logger out.LoggerPort) (*MessageListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &MessageListener{
		conn:    conn,
		channel: channel,
		intake:  intake,
		cfg:     cfg,
		logger:  logger.WithModule("MessageListener"),
	}, nil
}

func (l *MessageListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	if l.cfg.RabbitMQ.Exchange != "" {
		err = l.channel.QueueBind(
			queue.Name,
			l.cfg.RabbitMQ.Bind,
			l.cfg.RabbitMQ.Exchange,
			false,
			nil,
		)
		if err != nil {
			return err
		}
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Warn("rabbitmq.message.failed", out.LogFields{
						"routingKey": msg.RoutingKey,
						"error":      err.Error(),
					})
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("rabbitmq.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMQ.Queue,
	})
	return nil
}

func (l *MessageListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	var event gatewayEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		// Not requeueable, log and drop
		l.logger.Error("rabbitmq.message.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil
	}

	if event.Event != eventMessagesUpsert {
		return nil
	}

	return l.intake.HandleInbound(ctx, domain.InboundMessage{
		MessageID:    event.Data.Key.ID,
		SessionID:    event.Data.Key.RemoteJid,
		PhoneNumber:  strings.SplitN(event.Data.Key.RemoteJid, "@", 2)[0],
		InstanceName: event.Instance,
		ClientName:   event.Data.PushName,
		Text:         event.Data.Message.Conversation,
		Datetime:     time.Unix(event.Data.MessageTimestamp, 0).UTC().Format(time.RFC3339),
	})
}

func (l *MessageListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
