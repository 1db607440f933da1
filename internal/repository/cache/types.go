package cache

import (
	"time"

	"github.com/newsflow-app/newsflow-api/domain"
)

// FeedWithLogicalExpire wraps a cached news feed with a logical expiry. Expired
// entries are kept in redis and still served while a refresh happens, or when
// the provider is down, so readers see stale headlines instead of placeholders.
type FeedWithLogicalExpire struct {
	Feed      domain.NewsResult `json:"feed"`
	ExpireAt  time.Time         `json:"expire_at"`
	FetchedAt time.Time         `json:"fetched_at"`
}

// IsLogicalExpired checks whether the entry is past its logical expiry.
func (f *FeedWithLogicalExpire) IsLogicalExpired() bool {
	return time.Now().After(f.ExpireAt)
}

// NewFeedWithLogicalExpire wraps a feed with a logical TTL starting now.
func NewFeedWithLogicalExpire(feed domain.NewsResult, ttl time.Duration) *FeedWithLogicalExpire {
	now := time.Now()
	return &FeedWithLogicalExpire{
		Feed:      feed,
		ExpireAt:  now.Add(ttl),
		FetchedAt: now,
	}
}
