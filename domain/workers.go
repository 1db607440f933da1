package domain

import "context"

// NewsRefreshWorker keeps the default headline feeds warm in the cache so the
// home page stays served even when the provider has a bad moment.
type NewsRefreshWorker interface {
	// Start runs the refresh loop until ctx is cancelled.
	Start(ctx context.Context)
}
