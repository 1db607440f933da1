package domain

import (
	"context"
	"time"
)

const (
	// MaxCommentLength is the maximum comment content length in characters.
	MaxCommentLength = 1000
	// MaxReplyLength is the maximum reply content length in characters.
	MaxReplyLength = 500
)

// Comment is a top-level comment on an article. UserName is a denormalized
// snapshot taken at creation time so historical display names stay stable.
type Comment struct {
	ID           int64
	ArticleURL   string
	ArticleTitle string
	UserID       int64
	UserName     string
	Content      string
	IsEdited     bool
	EditedAt     *time.Time
	CreatedAt    time.Time

	// LikedBy holds the ids of users who liked the comment, each at most once.
	LikedBy []int64
	// Replies are one level deep, append-only, in append order.
	Replies []Reply
}

// LikeCount is the live size of the like set, derived and never stored.
func (c *Comment) LikeCount() int64 {
	return int64(len(c.LikedBy))
}

// ReplyCount is the live size of the reply sequence.
func (c *Comment) ReplyCount() int64 {
	return int64(len(c.Replies))
}

// Reply is a value attached to its parent comment. It is not individually
// addressable through the API and cannot be edited or deleted.
type Reply struct {
	ID        int64
	CommentID int64
	UserID    int64
	UserName  string
	Content   string
	CreatedAt time.Time
}

// CommentPage is one page of comments for an article, newest first.
type CommentPage struct {
	Comments    []Comment
	Total       int64
	TotalPages  int64
	CurrentPage int
}

// CommentLikeStatus is returned after toggling a comment like.
type CommentLikeStatus struct {
	LikeCount int64
	IsLiked   bool
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	// Store creates a new comment and backfills its ID.
	Store(ctx context.Context, c *Comment) error

	// GetByID retrieves a comment with its like set and replies loaded.
	// Returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (Comment, error)

	// FetchByArticle retrieves one page of comments for the article, newest
	// first, with like sets and replies loaded.
	FetchByArticle(ctx context.Context, articleURL string, limit, offset int) ([]Comment, error)

	// CountByArticle returns the total number of comments on the article.
	CountByArticle(ctx context.Context, articleURL string) (int64, error)

	// Update persists a content edit together with the edited markers.
	Update(ctx context.Context, c *Comment) error

	// Delete removes the comment outright, along with its likes and replies.
	Delete(ctx context.Context, id int64) error

	// InsertLike adds userID to the comment's like set.
	// Returns ErrConflict when the membership already exists.
	InsertLike(ctx context.Context, commentID, userID int64) error

	// DeleteLike removes userID from the comment's like set and reports
	// whether a membership was removed.
	DeleteLike(ctx context.Context, commentID, userID int64) (bool, error)

	// CountLikes returns the live size of the comment's like set.
	CountLikes(ctx context.Context, commentID int64) (int64, error)

	// StoreReply appends a reply to the parent's reply sequence.
	StoreReply(ctx context.Context, r *Reply) error
}

// CommentUsecase defines the business logic contract for comments.
type CommentUsecase interface {
	FetchByArticle(ctx context.Context, articleURL string, page, limit int) (CommentPage, error)
	Create(ctx context.Context, c *Comment) error

	// Update edits the content. Only the author may edit; edits set IsEdited
	// and stamp EditedAt.
	Update(ctx context.Context, userID, id int64, content string) (Comment, error)

	// Delete removes the comment. Allowed for the author and for admins.
	Delete(ctx context.Context, userID int64, role string, id int64) error

	// ToggleLike flips the caller's membership in the comment's like set.
	ToggleLike(ctx context.Context, userID, id int64) (CommentLikeStatus, error)

	// Reply appends a reply to the parent comment and returns it.
	Reply(ctx context.Context, r *Reply) (Reply, error)
}
