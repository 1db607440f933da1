package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/repository/cache"
	redisrepo "github.com/newsflow-app/newsflow-api/internal/repository/redis"
)

var testQuery = domain.HeadlinesQuery{
	Category: "technology",
	Country:  "us",
	Lang:     "en",
	Max:      20,
}

const testKey = "news:headlines:technology:us:en:20"

func testFeed() domain.NewsResult {
	return domain.NewsResult{
		Status:        domain.NewsStatusSuccess,
		TotalArticles: 1,
		Articles: []domain.NewsArticle{
			{Title: "Chips keep getting smaller", URL: "https://news.example.com/chips"},
		},
	}
}

func TestGetHeadlinesFresh(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisrepo.NewNewsCache(client, 5*time.Minute)

	entry := cache.NewFeedWithLogicalExpire(testFeed(), 5*time.Minute)
	data, err := json.Marshal(entry)
	require.NoError(t, err)
	mock.ExpectGet(testKey).SetVal(string(data))

	feed, expired, err := c.GetHeadlines(context.Background(), testQuery)
	require.NoError(t, err)
	assert.False(t, expired)
	require.Len(t, feed.Articles, 1)
	assert.Equal(t, "Chips keep getting smaller", feed.Articles[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHeadlinesLogicallyExpired(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisrepo.NewNewsCache(client, 5*time.Minute)

	entry := cache.FeedWithLogicalExpire{
		Feed:      testFeed(),
		ExpireAt:  time.Now().Add(-time.Minute),
		FetchedAt: time.Now().Add(-6 * time.Minute),
	}
	data, err := json.Marshal(&entry)
	require.NoError(t, err)
	mock.ExpectGet(testKey).SetVal(string(data))

	feed, expired, err := c.GetHeadlines(context.Background(), testQuery)
	require.NoError(t, err)
	// The stale feed is still returned alongside the expired flag.
	assert.True(t, expired)
	require.Len(t, feed.Articles, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHeadlinesMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisrepo.NewNewsCache(client, 5*time.Minute)

	mock.ExpectGet(testKey).RedisNil()

	_, _, err := c.GetHeadlines(context.Background(), testQuery)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetHeadlines(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisrepo.NewNewsCache(client, 5*time.Minute)

	// The physical TTL is a multiple of the logical one.
	mock.Regexp().ExpectSet(testKey, `.*"Chips keep getting smaller".*`, 30*time.Minute).
		SetVal("OK")

	err := c.SetHeadlines(context.Background(), testQuery, testFeed())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
