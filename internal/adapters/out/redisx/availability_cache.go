// Package redisx caches availability answers in Redis for a short window.
// Availability reads are advisory, so a stale answer within the TTL is
// harmless: the confirm transaction re-checks under row locks regardless.
package redisx

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// keyAvailability is availability:{product_id}:{start}:{end}.
const keyAvailability = "availability:%s:%s:%s"

// TTLAvailability bounds how stale a cached availability answer can get.
var TTLAvailability = 30 * time.Second

// cachedAvailability is the stored JSON shape.
type cachedAvailability struct {
	ProductID  string `json:"productId"`
	TotalStock int    `json:"totalStock"`
	Reserved   int    `json:"reserved"`
	Available  int    `json:"available"`
}

// AvailabilityCache implements queries.AvailabilityCache on a Redis client.
// All failures degrade to cache misses and are logged at debug level only.
type AvailabilityCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewAvailabilityCache creates a cache around the given Redis client.
func NewAvailabilityCache(client *redis.Client, logger *slog.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		logger: logger.With("component", "availability_cache"),
	}
}

// Get returns a cached answer for the product and period, if present.
func (c *AvailabilityCache) Get(
	ctx context.Context,
	productID kernel.UUID,
	period kernel.DateRange,
) (queries.CheckAvailabilityQueryResponse, bool) {
	raw, err := c.client.Get(ctx, c.key(productID, period)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.DebugContext(ctx, "availability cache read failed", "error", err)
		}
		return queries.CheckAvailabilityQueryResponse{}, false
	}

	var cached cachedAvailability
	if err = json.Unmarshal(raw, &cached); err != nil {
		return queries.CheckAvailabilityQueryResponse{}, false
	}

	id, err := kernel.UUIDFromString(cached.ProductID)
	if err != nil {
		return queries.CheckAvailabilityQueryResponse{}, false
	}

	return queries.CheckAvailabilityQueryResponse{
		ProductID:  id,
		TotalStock: cached.TotalStock,
		Reserved:   cached.Reserved,
		Available:  cached.Available,
	}, true
}

// Set stores an answer for the availability TTL window.
func (c *AvailabilityCache) Set(
	ctx context.Context,
	productID kernel.UUID,
	period kernel.DateRange,
	resp queries.CheckAvailabilityQueryResponse,
) {
	raw, err := json.Marshal(cachedAvailability{
		ProductID:  resp.ProductID.String(),
		TotalStock: resp.TotalStock,
		Reserved:   resp.Reserved,
		Available:  resp.Available,
	})
	if err != nil {
		return
	}

	if err = c.client.Set(ctx, c.key(productID, period), raw, TTLAvailability).Err(); err != nil {
		c.logger.DebugContext(ctx, "availability cache write failed", "error", err)
	}
}

func (c *AvailabilityCache) key(productID kernel.UUID, period kernel.DateRange) string {
	return fmt.Sprintf(keyAvailability,
		productID.String(),
		period.Start().Format("2006-01-02"),
		period.End().Format("2006-01-02"),
	)
}
