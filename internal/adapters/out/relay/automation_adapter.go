package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agendazap/slot-suggester/internal/config"
	"github.com/agendazap/slot-suggester/internal/core/domain"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

const (
	messagePath = "/whatsapp/processar-mensagem"
	batchPath   = "/whatsapp/messages"
)

// AutomationAdapter relays messaging events to the external automation host
// over plain HTTP webhooks.
type AutomationAdapter struct {
	client *http.Client
	cfg    *config.Config
	logger out.LoggerPort
}

func NewAutomationAdapter(cfg *config.Config, logger out.LoggerPort) *AutomationAdapter {
	return &AutomationAdapter{
		client: &http.Client{Timeout: 30 * time.Second},
		cfg:    cfg,
		logger: logger.WithModule("AutomationAdapter"),
	}
}

func (a *AutomationAdapter) RelayMessage(ctx context.Context, msg domain.InboundMessage) error {
	return a.post(ctx, messagePath, msg)
}

func (a *AutomationAdapter) RelayBatch(ctx context.Context, batch domain.MessageBatch) error {
	return a.post(ctx, batchPath, batch)
}

func (a *AutomationAdapter) post(ctx context.Context, path string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("automation.encode_failed: %w", err)
	}

	url := a.cfg.Automation.WebhookHost + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("automation.request_failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("automation.call_failed", out.LogFields{
			"url":   url,
			"error": err.Error(),
		})
		return fmt.Errorf("automation.call_failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		a.logger.Error("automation.call_rejected", out.LogFields{
			"url":    url,
			"status": resp.StatusCode,
		})
		return fmt.Errorf("automation.call_rejected: %s returned %d", url, resp.StatusCode)
	}

	a.logger.Debug("automation.call_done", out.LogFields{
		"url": url,
	})
	return nil
}
