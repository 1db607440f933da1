package request

import (
	"time"

	"github.com/newsflow-app/newsflow-api/domain"
)

type StoreBookmark struct {
	ArticleTitle string     `json:"articleTitle" binding:"required,max=500"`
	ArticleURL   string     `json:"articleURL" binding:"required,httpurl"`
	ImageURL     string     `json:"imageURL" binding:"omitempty,httpurl"`
	PublishedAt  *time.Time `json:"publishedAt"`
}

// ToDomain: Request -> Domain
func (r *StoreBookmark) ToDomain(userID int64) domain.Bookmark {
	b := domain.Bookmark{
		UserID:       userID,
		ArticleTitle: r.ArticleTitle,
		ArticleURL:   r.ArticleURL,
		ImageURL:     r.ImageURL,
	}
	if r.PublishedAt != nil {
		b.PublishedAt = *r.PublishedAt
	}
	return b
}

type DeleteBookmarkByURL struct {
	ArticleURL string `json:"articleURL" binding:"required"`
}
