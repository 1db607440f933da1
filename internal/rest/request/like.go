package request

type ToggleLike struct {
	ArticleURL   string `json:"articleURL" binding:"required"`
	ArticleTitle string `json:"articleTitle" binding:"required"`
}
