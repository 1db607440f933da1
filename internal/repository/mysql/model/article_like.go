package model

import (
	"time"

	"github.com/newsflow-app/newsflow-api/domain"
)

type ArticleLike struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	ArticleURL   string    `gorm:"type:varchar(500);not null;uniqueIndex:uq_article_likes_url_user"`
	ArticleTitle string    `gorm:"type:varchar(500);not null"`
	UserID       int64     `gorm:"column:user_id;not null;uniqueIndex:uq_article_likes_url_user"`
	CreatedAt    time.Time `gorm:"type:datetime"`
}

func (ArticleLike) TableName() string {
	return "article_likes"
}

func NewArticleLikeFromDomain(l *domain.ArticleLike) *ArticleLike {
	return &ArticleLike{
		ID:           l.ID,
		ArticleURL:   l.ArticleURL,
		ArticleTitle: l.ArticleTitle,
		UserID:       l.UserID,
		CreatedAt:    l.CreatedAt,
	}
}

func (m *ArticleLike) ToDomain() domain.ArticleLike {
	return domain.ArticleLike{
		ID:           m.ID,
		ArticleURL:   m.ArticleURL,
		ArticleTitle: m.ArticleTitle,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
	}
}
