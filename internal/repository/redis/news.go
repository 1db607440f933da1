package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/repository/cache"
)

const (
	KeyHeadlines = "news:headlines:%s:%s:%s:%d"

	// Physical TTL is a multiple of the logical one so stale entries survive
	// long enough to bridge a provider outage.
	physicalTTLFactor = 6
)

type newsCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.NewsCache = (*newsCache)(nil)

func NewNewsCache(client *redis.Client, ttl time.Duration) *newsCache {
	return &newsCache{
		client: client,
		ttl:    ttl,
	}
}

func headlinesKey(q domain.HeadlinesQuery) string {
	return fmt.Sprintf(KeyHeadlines, q.Category, q.Country, q.Lang, q.Max)
}

func (c *newsCache) GetHeadlines(ctx context.Context, q domain.HeadlinesQuery) (domain.NewsResult, bool, error) {
	data, err := c.client.Get(ctx, headlinesKey(q)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewsResult{}, false, domain.ErrNotFound
	} else if err != nil {
		return domain.NewsResult{}, false, err
	}

	var entry cache.FeedWithLogicalExpire
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.NewsResult{}, false, err
	}
	return entry.Feed, entry.IsLogicalExpired(), nil
}

func (c *newsCache) SetHeadlines(ctx context.Context, q domain.HeadlinesQuery, res domain.NewsResult) error {
	entry := cache.NewFeedWithLogicalExpire(res, c.ttl)
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, headlinesKey(q), data, c.ttl*physicalTTLFactor).Err()
}
