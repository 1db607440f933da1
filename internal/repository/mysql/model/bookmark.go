package model

import (
	"time"

	"github.com/newsflow-app/newsflow-api/domain"
)

type Bookmark struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserID       int64     `gorm:"column:user_id;not null;uniqueIndex:uq_bookmarks_user_url"`
	ArticleTitle string    `gorm:"type:varchar(500);not null"`
	ArticleURL   string    `gorm:"type:varchar(500);not null;uniqueIndex:uq_bookmarks_user_url"`
	ImageURL     string    `gorm:"type:varchar(500)"`
	PublishedAt  time.Time `gorm:"type:datetime"`
	CreatedAt    time.Time `gorm:"type:datetime"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

func NewBookmarkFromDomain(b *domain.Bookmark) *Bookmark {
	return &Bookmark{
		ID:           b.ID,
		UserID:       b.UserID,
		ArticleTitle: b.ArticleTitle,
		ArticleURL:   b.ArticleURL,
		ImageURL:     b.ImageURL,
		PublishedAt:  b.PublishedAt,
		CreatedAt:    b.CreatedAt,
	}
}

func (m *Bookmark) ToDomain() domain.Bookmark {
	return domain.Bookmark{
		ID:           m.ID,
		UserID:       m.UserID,
		ArticleTitle: m.ArticleTitle,
		ArticleURL:   m.ArticleURL,
		ImageURL:     m.ImageURL,
		PublishedAt:  m.PublishedAt,
		CreatedAt:    m.CreatedAt,
	}
}
