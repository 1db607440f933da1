package response

import "github.com/newsflow-app/newsflow-api/domain"

type Bookmark struct {
	ID           int64  `json:"id"`
	ArticleTitle string `json:"articleTitle"`
	ArticleURL   string `json:"articleURL"`
	ImageURL     string `json:"imageURL,omitempty"`
	PublishedAt  string `json:"publishedAt"`
	CreatedAt    string `json:"createdAt"`
}

// NewBookmarkFromDomain: Domain -> Response
func NewBookmarkFromDomain(b *domain.Bookmark) Bookmark {
	return Bookmark{
		ID:           b.ID,
		ArticleTitle: b.ArticleTitle,
		ArticleURL:   b.ArticleURL,
		ImageURL:     b.ImageURL,
		PublishedAt:  b.PublishedAt.Format(DateTimeFormat),
		CreatedAt:    b.CreatedAt.Format(DateTimeFormat),
	}
}
