package domain

import (
	"context"
	"time"
)

// Bookmark is a saved reference to an externally sourced news article.
// An article is identified by its URL; a user can save a given URL once.
type Bookmark struct {
	ID           int64
	UserID       int64
	ArticleTitle string
	ArticleURL   string
	ImageURL     string // optional
	PublishedAt  time.Time
	CreatedAt    time.Time
}

// BookmarkRepository defines the contract for bookmark persistence.
type BookmarkRepository interface {
	// Fetch retrieves all bookmarks owned by userID, newest created first.
	Fetch(ctx context.Context, userID int64) ([]Bookmark, error)

	// Store creates a new bookmark and backfills its ID.
	// Returns ErrConflict when (userID, articleURL) already exists; the check
	// relies on the unique index, not a prior read.
	Store(ctx context.Context, b *Bookmark) error

	// DeleteByID removes the bookmark only when it is owned by userID.
	// Returns ErrNotFound otherwise; ownership mismatch and nonexistence are
	// indistinguishable to the caller.
	DeleteByID(ctx context.Context, userID, id int64) error

	// DeleteByURL removes the bookmark keyed by (userID, articleURL).
	// Returns ErrNotFound when no such bookmark exists.
	DeleteByURL(ctx context.Context, userID int64, articleURL string) error

	// Count returns the total number of bookmarks across all users.
	Count(ctx context.Context) (int64, error)
}

// BookmarkUsecase defines the business logic contract for bookmarks.
type BookmarkUsecase interface {
	Fetch(ctx context.Context, userID int64) ([]Bookmark, error)
	Store(ctx context.Context, b *Bookmark) error
	DeleteByID(ctx context.Context, userID, id int64) error
	DeleteByURL(ctx context.Context, userID int64, articleURL string) error
}
