package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/newsflow-app/newsflow-api/domain"
)

type service struct {
	provider domain.NewsProvider
	cache    domain.NewsCache

	// group collapses concurrent identical headline fetches so a cold cache
	// does not fan out into duplicate provider calls.
	group singleflight.Group
}

var _ domain.NewsUsecase = (*service)(nil)

// NewService will create a new news service object
func NewService(provider domain.NewsProvider, cache domain.NewsCache) *service {
	return &service{
		provider: provider,
		cache:    cache,
	}
}

func (s *service) TopHeadlines(ctx context.Context, q domain.HeadlinesQuery) (domain.NewsResult, error) {
	q = normalizeHeadlines(q)

	cached, expired, cacheErr := s.cache.GetHeadlines(ctx, q)
	if cacheErr == nil && !expired {
		return cached, nil
	}
	if cacheErr != nil && cacheErr != domain.ErrNotFound {
		logrus.Warnf("news cache get error: %v", cacheErr)
	}

	key := fmt.Sprintf("headlines:%s:%s:%s:%d", q.Category, q.Country, q.Lang, q.Max)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.provider.TopHeadlines(ctx, q)
	})
	if err != nil {
		logrus.Warnf("news provider failed: %v", err)
		if cacheErr == nil {
			// Stale headlines beat placeholders.
			return cached, nil
		}
		return fallbackResult(), nil
	}

	res := v.(domain.NewsResult)
	if err := s.cache.SetHeadlines(ctx, q, res); err != nil {
		logrus.Warnf("failed to cache headlines: %v", err)
	}
	return res, nil
}

func (s *service) Search(ctx context.Context, q domain.SearchQuery) (domain.NewsResult, error) {
	q.Query = strings.TrimSpace(q.Query)
	if q.Query == "" {
		return domain.NewsResult{}, domain.ErrBadParamInput
	}
	if q.Lang == "" {
		q.Lang = domain.DefaultNewsLang
	}
	if q.Max < 1 || q.Max > 100 {
		q.Max = domain.DefaultNewsMax
	}

	return s.provider.Search(ctx, q)
}

func normalizeHeadlines(q domain.HeadlinesQuery) domain.HeadlinesQuery {
	if q.Category == "" {
		q.Category = domain.DefaultNewsCategory
	}
	if q.Country == "" {
		q.Country = domain.DefaultNewsCountry
	}
	if q.Lang == "" {
		q.Lang = domain.DefaultNewsLang
	}
	if q.Max < 1 || q.Max > 100 {
		q.Max = domain.DefaultNewsMax
	}
	return q
}

// fallbackResult is the single-item placeholder set served when the provider
// is unreachable and no cached feed exists.
func fallbackResult() domain.NewsResult {
	return domain.NewsResult{
		Status:        domain.NewsStatusFallback,
		TotalArticles: 1,
		Articles: []domain.NewsArticle{
			{
				Title:       "Stay Updated with Latest News",
				Description: "We're working to bring you the latest news. Please try again in a moment.",
				URL:         "#",
				Image:       "https://images.unsplash.com/photo-1504711434969-e33886168f5c?w=400&h=200&fit=crop",
				PublishedAt: time.Now().UTC().Format(time.RFC3339),
				Source:      domain.NewsSource{Name: "NewsFlow"},
			},
		},
		Message: "Using fallback data due to API unavailability",
	}
}
