package bookmark_test

import (
	"context"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/domain/mocks"
	"github.com/newsflow-app/newsflow-api/internal/usecase/bookmark"
)

func newBookmark(userID int64) *domain.Bookmark {
	return &domain.Bookmark{
		UserID:       userID,
		ArticleTitle: faker.Sentence(),
		ArticleURL:   "https://news.example.com/" + faker.UUIDHyphenated(),
	}
}

func TestStore(t *testing.T) {
	repo := mocks.NewMockBookmarkRepository()
	svc := bookmark.NewService(repo)

	b := newBookmark(1)
	err := svc.Store(context.Background(), b)
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	// A missing published date defaults to the save time.
	assert.False(t, b.PublishedAt.IsZero())
}

func TestStoreDuplicate(t *testing.T) {
	repo := mocks.NewMockBookmarkRepository()
	svc := bookmark.NewService(repo)

	b := newBookmark(1)
	require.NoError(t, svc.Store(context.Background(), b))

	dup := &domain.Bookmark{UserID: 1, ArticleTitle: "Other title", ArticleURL: b.ArticleURL}
	err := svc.Store(context.Background(), dup)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// The same URL is fine for a different user.
	other := &domain.Bookmark{UserID: 2, ArticleTitle: "Other title", ArticleURL: b.ArticleURL}
	assert.NoError(t, svc.Store(context.Background(), other))
}

func TestStoreValidation(t *testing.T) {
	svc := bookmark.NewService(mocks.NewMockBookmarkRepository())

	tests := []struct {
		name     string
		bookmark domain.Bookmark
	}{
		{"empty title", domain.Bookmark{UserID: 1, ArticleURL: "https://a.example.com/x"}},
		{"blank title", domain.Bookmark{UserID: 1, ArticleTitle: "   ", ArticleURL: "https://a.example.com/x"}},
		{"title too long", domain.Bookmark{UserID: 1, ArticleTitle: strings.Repeat("x", 501), ArticleURL: "https://a.example.com/x"}},
		{"missing url", domain.Bookmark{UserID: 1, ArticleTitle: "ok"}},
		{"non-http url", domain.Bookmark{UserID: 1, ArticleTitle: "ok", ArticleURL: "ftp://a.example.com/x"}},
		{"bad image url", domain.Bookmark{UserID: 1, ArticleTitle: "ok", ArticleURL: "https://a.example.com/x", ImageURL: "not-a-url"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.bookmark
			err := svc.Store(context.Background(), &b)
			assert.ErrorIs(t, err, domain.ErrBadParamInput)
		})
	}
}

func TestStoreTitleAtLimit(t *testing.T) {
	svc := bookmark.NewService(mocks.NewMockBookmarkRepository())

	b := &domain.Bookmark{
		UserID:       1,
		ArticleTitle: strings.Repeat("x", 500),
		ArticleURL:   "https://a.example.com/x",
	}
	assert.NoError(t, svc.Store(context.Background(), b))
}

func TestFetchOnlyOwn(t *testing.T) {
	repo := mocks.NewMockBookmarkRepository()
	svc := bookmark.NewService(repo)

	require.NoError(t, svc.Store(context.Background(), newBookmark(1)))
	require.NoError(t, svc.Store(context.Background(), newBookmark(1)))
	require.NoError(t, svc.Store(context.Background(), newBookmark(2)))

	got, err := svc.Fetch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.Equal(t, int64(1), b.UserID)
	}
}

func TestDeleteByIDOwnership(t *testing.T) {
	repo := mocks.NewMockBookmarkRepository()
	svc := bookmark.NewService(repo)

	b := newBookmark(1)
	require.NoError(t, svc.Store(context.Background(), b))

	// Another user's delete looks identical to deleting a missing bookmark.
	err := svc.DeleteByID(context.Background(), 2, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.DeleteByID(context.Background(), 1, b.ID))
	err = svc.DeleteByID(context.Background(), 1, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteByURL(t *testing.T) {
	repo := mocks.NewMockBookmarkRepository()
	svc := bookmark.NewService(repo)

	b := newBookmark(1)
	require.NoError(t, svc.Store(context.Background(), b))

	require.NoError(t, svc.DeleteByURL(context.Background(), 1, b.ArticleURL))

	err := svc.DeleteByURL(context.Background(), 1, b.ArticleURL)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteByURLEmpty(t *testing.T) {
	svc := bookmark.NewService(mocks.NewMockBookmarkRepository())

	err := svc.DeleteByURL(context.Background(), 1, "")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}
