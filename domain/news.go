package domain

import "context"

const (
	NewsStatusSuccess  = "success"
	NewsStatusFallback = "fallback"

	DefaultNewsCategory = "general"
	DefaultNewsCountry  = "us"
	DefaultNewsLang     = "en"
	DefaultNewsMax      = 20
)

// NewsSource identifies the outlet an article came from.
type NewsSource struct {
	Name string `json:"name"`
}

// NewsArticle is an externally sourced article as presented to clients.
type NewsArticle struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Image       string     `json:"image"`
	PublishedAt string     `json:"publishedAt"`
	Source      NewsSource `json:"source"`
}

// NewsResult is a reshaped provider response. Status is NewsStatusFallback when
// the articles are placeholder data served because the provider was unreachable.
type NewsResult struct {
	Status        string        `json:"status"`
	TotalArticles int64         `json:"totalArticles"`
	Articles      []NewsArticle `json:"articles"`
	Message       string        `json:"message,omitempty"`
}

// HeadlinesQuery selects a top-headlines feed.
type HeadlinesQuery struct {
	Category string
	Country  string
	Lang     string
	Max      int
}

// SearchQuery selects a free-text news search.
type SearchQuery struct {
	Query   string
	Country string
	Lang    string
	Max     int
	From    string
	To      string
}

// NewsProvider is the upstream news search API.
type NewsProvider interface {
	// TopHeadlines fetches the category/country feed.
	TopHeadlines(ctx context.Context, q HeadlinesQuery) (NewsResult, error)

	// Search fetches articles matching a free-text query.
	// Returns ErrBadParamInput when the provider reports a request error.
	Search(ctx context.Context, q SearchQuery) (NewsResult, error)
}

// NewsCache stores reshaped headline feeds keyed by query. Stale entries are
// kept around so a provider outage can be bridged with old data instead of
// placeholder articles.
type NewsCache interface {
	// GetHeadlines returns the cached feed and whether it is logically expired.
	// Returns ErrNotFound on a cache miss.
	GetHeadlines(ctx context.Context, q HeadlinesQuery) (NewsResult, bool, error)

	// SetHeadlines stores the feed with the configured logical TTL.
	SetHeadlines(ctx context.Context, q HeadlinesQuery, res NewsResult) error
}

// NewsUsecase defines the business logic contract for the news feed.
type NewsUsecase interface {
	// TopHeadlines serves the feed from cache when fresh, otherwise from the
	// provider. On provider failure it degrades to stale cache, then to the
	// single-item fallback set; it never returns a transport error.
	TopHeadlines(ctx context.Context, q HeadlinesQuery) (NewsResult, error)

	// Search proxies a free-text search. Provider errors propagate.
	Search(ctx context.Context, q SearchQuery) (NewsResult, error)
}
