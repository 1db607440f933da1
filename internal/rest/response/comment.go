package response

import "github.com/newsflow-app/newsflow-api/domain"

type Comment struct {
	ID           int64   `json:"id"`
	ArticleURL   string  `json:"articleURL"`
	ArticleTitle string  `json:"articleTitle"`
	UserID       int64   `json:"userId"`
	UserName     string  `json:"userName"`
	Content      string  `json:"content"`
	LikeCount    int64   `json:"likeCount"`
	ReplyCount   int64   `json:"replyCount"`
	IsEdited     bool    `json:"isEdited"`
	EditedAt     string  `json:"editedAt,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	Replies      []Reply `json:"replies"`
}

// Reply carries no id; replies are not individually addressable.
type Reply struct {
	UserID    int64  `json:"userId"`
	UserName  string `json:"userName"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// NewCommentFromDomain: Domain -> Response. LikeCount and ReplyCount are the
// live sizes of the like set and reply sequence.
func NewCommentFromDomain(c *domain.Comment) Comment {
	replies := make([]Reply, 0, len(c.Replies))
	for i := range c.Replies {
		replies = append(replies, NewReplyFromDomain(&c.Replies[i]))
	}

	res := Comment{
		ID:           c.ID,
		ArticleURL:   c.ArticleURL,
		ArticleTitle: c.ArticleTitle,
		UserID:       c.UserID,
		UserName:     c.UserName,
		Content:      c.Content,
		LikeCount:    c.LikeCount(),
		ReplyCount:   c.ReplyCount(),
		IsEdited:     c.IsEdited,
		CreatedAt:    c.CreatedAt.Format(DateTimeFormat),
		Replies:      replies,
	}
	if c.EditedAt != nil {
		res.EditedAt = c.EditedAt.Format(DateTimeFormat)
	}
	return res
}

// NewReplyFromDomain: Domain -> Response
func NewReplyFromDomain(r *domain.Reply) Reply {
	return Reply{
		UserID:    r.UserID,
		UserName:  r.UserName,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.Format(DateTimeFormat),
	}
}

type CommentPage struct {
	Comments    []Comment `json:"comments"`
	TotalPages  int64     `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
	Total       int64     `json:"total"`
}

// NewCommentPageFromDomain: Domain -> Response
func NewCommentPageFromDomain(p *domain.CommentPage) CommentPage {
	comments := make([]Comment, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, NewCommentFromDomain(&p.Comments[i]))
	}
	return CommentPage{
		Comments:    comments,
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
		Total:       p.Total,
	}
}
