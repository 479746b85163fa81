package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/txengine/internal/domain"
)

const defaultPrefix = "txengine:"

// SummaryCache publishes client summaries to Redis, one hash per client,
// plus a pointer to the latest run. It implements usecase.SummaryExporter.
type SummaryCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSummaryCache creates a new SummaryCache. A zero ttl keeps keys forever.
func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		client: client,
		prefix: defaultPrefix,
		ttl:    ttl,
	}
}

// Name implements usecase.SummaryExporter.
func (c *SummaryCache) Name() string {
	return "redis"
}

func (c *SummaryCache) clientKey(runID string, client domain.ClientID) string {
	return fmt.Sprintf("%srun:%s:client:%d", c.prefix, runID, client)
}

func (c *SummaryCache) latestKey() string {
	return c.prefix + "latest"
}

// Export writes all summaries and moves the latest pointer in one MULTI/EXEC.
func (c *SummaryCache) Export(ctx context.Context, runID string, summaries []domain.ClientSummary) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, s := range summaries {
			key := c.clientKey(runID, s.Client)
			pipe.HSet(ctx, key,
				"available", s.Available.String(),
				"held", s.Held.String(),
				"total", s.Total.String(),
				"locked", strconv.FormatBool(s.Locked),
			)
			if c.ttl > 0 {
				pipe.Expire(ctx, key, c.ttl)
			}
		}
		pipe.Set(ctx, c.latestKey(), runID, c.ttl)
		return nil
	})
	return err
}
