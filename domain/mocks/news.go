package mocks

import (
	"context"
	"sync"

	"github.com/newsflow-app/newsflow-api/domain"
)

// MockNewsProvider implements domain.NewsProvider with overridable behavior.
type MockNewsProvider struct {
	mu                sync.Mutex
	TopHeadlinesFunc  func(ctx context.Context, q domain.HeadlinesQuery) (domain.NewsResult, error)
	SearchFunc        func(ctx context.Context, q domain.SearchQuery) (domain.NewsResult, error)
	TopHeadlinesCalls int
	SearchCalls       int
}

var _ domain.NewsProvider = (*MockNewsProvider)(nil)

func (m *MockNewsProvider) TopHeadlines(ctx context.Context, q domain.HeadlinesQuery) (domain.NewsResult, error) {
	m.mu.Lock()
	m.TopHeadlinesCalls++
	m.mu.Unlock()
	if m.TopHeadlinesFunc != nil {
		return m.TopHeadlinesFunc(ctx, q)
	}
	return domain.NewsResult{Status: domain.NewsStatusSuccess}, nil
}

// HeadlinesCallCount reports how many TopHeadlines calls were made. Safe to
// read while the mock is in use from another goroutine.
func (m *MockNewsProvider) HeadlinesCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.TopHeadlinesCalls
}

func (m *MockNewsProvider) Search(ctx context.Context, q domain.SearchQuery) (domain.NewsResult, error) {
	m.mu.Lock()
	m.SearchCalls++
	m.mu.Unlock()
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q)
	}
	return domain.NewsResult{Status: domain.NewsStatusSuccess}, nil
}

type cachedFeed struct {
	res     domain.NewsResult
	expired bool
}

// MockNewsCache is an in-memory implementation of domain.NewsCache. Expire
// marks an entry as logically expired without evicting it, mirroring the
// logical-TTL behavior of the redis cache.
type MockNewsCache struct {
	mu      sync.Mutex
	entries map[domain.HeadlinesQuery]cachedFeed

	GetErr error
	SetErr error
}

var _ domain.NewsCache = (*MockNewsCache)(nil)

func NewMockNewsCache() *MockNewsCache {
	return &MockNewsCache{entries: make(map[domain.HeadlinesQuery]cachedFeed)}
}

func (m *MockNewsCache) GetHeadlines(_ context.Context, q domain.HeadlinesQuery) (domain.NewsResult, bool, error) {
	if m.GetErr != nil {
		return domain.NewsResult{}, false, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[q]
	if !ok {
		return domain.NewsResult{}, false, domain.ErrNotFound
	}
	return entry.res, entry.expired, nil
}

func (m *MockNewsCache) SetHeadlines(_ context.Context, q domain.HeadlinesQuery, res domain.NewsResult) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[q] = cachedFeed{res: res}
	return nil
}

// Expire marks a stored feed as logically expired.
func (m *MockNewsCache) Expire(q domain.HeadlinesQuery) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry, ok := m.entries[q]; ok {
		entry.expired = true
		m.entries[q] = entry
	}
}
