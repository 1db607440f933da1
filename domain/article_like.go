package domain

import (
	"context"
	"time"
)

// ArticleLike is a like relation between a user and an article URL.
// The like count of an article is the cardinality of its rows, always counted
// live and never cached in a separate field.
type ArticleLike struct {
	ID           int64
	ArticleURL   string
	ArticleTitle string
	UserID       int64
	CreatedAt    time.Time
}

// LikeSummary is the public view of an article's likes. LikedByUser is always
// false on the public endpoint; per-user state is only observable through the
// toggle response.
type LikeSummary struct {
	LikeCount   int64 `json:"likeCount"`
	LikedByUser bool  `json:"likedByUser"`
}

// LikeStatus is the authenticated view returned after a toggle.
type LikeStatus struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// ArticleLikeRepository defines the contract for like persistence.
type ArticleLikeRepository interface {
	// Insert creates a like row.
	// Returns ErrConflict when (articleURL, userID) already exists.
	Insert(ctx context.Context, l *ArticleLike) error

	// Delete removes the like row for (articleURL, userID) and reports whether
	// a row was removed.
	Delete(ctx context.Context, articleURL string, userID int64) (bool, error)

	// CountByArticle returns the live number of likes for the article.
	CountByArticle(ctx context.Context, articleURL string) (int64, error)
}

// LikeUsecase defines the business logic contract for article likes.
type LikeUsecase interface {
	// Summary returns the public like count for an article.
	Summary(ctx context.Context, articleURL string) (LikeSummary, error)

	// Toggle flips the (articleURL, userID) like relation. A duplicate-insert
	// race resolves to liked=true for all racing callers, never to an error.
	// The returned count is recomputed after the mutation.
	Toggle(ctx context.Context, userID int64, articleURL, articleTitle string) (LikeStatus, error)
}
