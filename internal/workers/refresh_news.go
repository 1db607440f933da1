package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/newsflow-app/newsflow-api/domain"
)

type newsRefreshWorker struct {
	provider domain.NewsProvider
	cache    domain.NewsCache
	interval time.Duration
}

var _ domain.NewsRefreshWorker = (*newsRefreshWorker)(nil)

func NewNewsRefreshWorker(provider domain.NewsProvider, cache domain.NewsCache, interval time.Duration) *newsRefreshWorker {
	return &newsRefreshWorker{
		provider: provider,
		cache:    cache,
		interval: interval,
	}
}

func (w *newsRefreshWorker) Start(ctx context.Context) {
	// Warm the default feed before the first tick.
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refresh(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down NewsRefreshWorker")
			return
		}
	}
}

func (w *newsRefreshWorker) refresh(ctx context.Context) {
	q := domain.HeadlinesQuery{
		Category: domain.DefaultNewsCategory,
		Country:  domain.DefaultNewsCountry,
		Lang:     domain.DefaultNewsLang,
		Max:      domain.DefaultNewsMax,
	}

	res, err := w.provider.TopHeadlines(ctx, q)
	if err != nil {
		// The stale cached copy keeps serving readers until the next tick.
		logrus.Warnf("news refresh failed: %v", err)
		return
	}
	if err := w.cache.SetHeadlines(ctx, q, res); err != nil {
		logrus.Warnf("failed to cache refreshed headlines: %v", err)
	}
}
