package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agendazap/slot-suggester/internal/config"
	"github.com/agendazap/slot-suggester/internal/core/ports/out"
)

// DedupCacheAdapter implements out.DedupPort on a bounded LRU of recently
// seen message IDs. Webhook providers deliver at least once; the LRU bound
// keeps memory flat while still catching the redeliveries that matter,
// which arrive close to the original.
type DedupCacheAdapter struct {
	seen   *lru.Cache[string, struct{}]
	logger out.LoggerPort
}

func NewDedupCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*DedupCacheAdapter, error) {
	if !cfg.Dedup.Enabled {
		logger.Info("cache.dedup.disabled", out.LogFields{})
		return nil, nil
	}

	seen, err := lru.New[string, struct{}](cfg.Dedup.Size)
	if err != nil {
		logger.Error("cache.dedup.init_failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Dedup.Size,
		})
		return nil, err
	}

	return &DedupCacheAdapter{
		seen:   seen,
		logger: logger.WithModule("DedupCacheAdapter"),
	}, nil
}

func (c *DedupCacheAdapter) Remember(ctx context.Context, messageID string) bool {
	known, _ := c.seen.ContainsOrAdd(messageID, struct{}{})
	if known {
		c.logger.Debug("cache.dedup.hit", out.LogFields{
			"messageId": messageID,
		})
	}
	return known
}
