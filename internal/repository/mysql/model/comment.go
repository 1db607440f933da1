package model

import (
	"time"

	"github.com/newsflow-app/newsflow-api/domain"
)

type Comment struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	ArticleURL   string     `gorm:"type:varchar(500);not null;index:idx_comments_url_created"`
	ArticleTitle string     `gorm:"type:varchar(500);not null"`
	UserID       int64      `gorm:"column:user_id;not null"`
	UserName     string     `gorm:"type:varchar(100);not null"`
	Content      string     `gorm:"type:varchar(1000);not null"`
	IsEdited     bool       `gorm:"not null;default:0"`
	EditedAt     *time.Time `gorm:"type:datetime"`
	CreatedAt    time.Time  `gorm:"type:datetime;index:idx_comments_url_created"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentLike is one membership in a comment's like set. The composite primary
// key doubles as the uniqueness constraint, so a flip is a single atomic
// insert or delete.
type CommentLike struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// CommentReply rows keep append order through the auto-increment id; the id is
// internal and never exposed through the API.
type CommentReply struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CommentID int64     `gorm:"column:comment_id;not null;index:idx_comment_replies_comment"`
	UserID    int64     `gorm:"column:user_id;not null"`
	UserName  string    `gorm:"type:varchar(100);not null"`
	Content   string    `gorm:"type:varchar(500);not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentReply) TableName() string {
	return "comment_replies"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:           c.ID,
		ArticleURL:   c.ArticleURL,
		ArticleTitle: c.ArticleTitle,
		UserID:       c.UserID,
		UserName:     c.UserName,
		Content:      c.Content,
		IsEdited:     c.IsEdited,
		EditedAt:     c.EditedAt,
		CreatedAt:    c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:           m.ID,
		ArticleURL:   m.ArticleURL,
		ArticleTitle: m.ArticleTitle,
		UserID:       m.UserID,
		UserName:     m.UserName,
		Content:      m.Content,
		IsEdited:     m.IsEdited,
		EditedAt:     m.EditedAt,
		CreatedAt:    m.CreatedAt,
	}
}

func NewCommentReplyFromDomain(r *domain.Reply) *CommentReply {
	return &CommentReply{
		ID:        r.ID,
		CommentID: r.CommentID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

func (m *CommentReply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        m.ID,
		CommentID: m.CommentID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
