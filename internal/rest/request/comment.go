package request

import "github.com/newsflow-app/newsflow-api/domain"

type CreateComment struct {
	ArticleURL   string `json:"articleURL" binding:"required"`
	ArticleTitle string `json:"articleTitle" binding:"required"`
	Content      string `json:"content" binding:"required,max=1000"`
}

// ToDomain: Request -> Domain
func (r *CreateComment) ToDomain(userID int64, userName string) domain.Comment {
	return domain.Comment{
		ArticleURL:   r.ArticleURL,
		ArticleTitle: r.ArticleTitle,
		UserID:       userID,
		UserName:     userName,
		Content:      r.Content,
	}
}

type UpdateComment struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type ReplyComment struct {
	Content string `json:"content" binding:"required,max=500"`
}
