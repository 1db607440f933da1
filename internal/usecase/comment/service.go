package comment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/newsflow-app/newsflow-api/domain"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

type service struct {
	commentRepo domain.CommentRepository
}

var _ domain.CommentUsecase = (*service)(nil)

// NewService will create a new comment service object
func NewService(commentRepo domain.CommentRepository) *service {
	return &service{
		commentRepo: commentRepo,
	}
}

func (s *service) FetchByArticle(ctx context.Context, articleURL string, page, limit int) (domain.CommentPage, error) {
	if articleURL == "" {
		return domain.CommentPage{}, domain.ErrBadParamInput
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxPageLimit {
		limit = DefaultPageLimit
	}

	comments, err := s.commentRepo.FetchByArticle(ctx, articleURL, limit, (page-1)*limit)
	if err != nil {
		return domain.CommentPage{}, err
	}
	total, err := s.commentRepo.CountByArticle(ctx, articleURL)
	if err != nil {
		return domain.CommentPage{}, err
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return domain.CommentPage{
		Comments:    comments,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if c.ArticleURL == "" || c.ArticleTitle == "" || c.UserID == 0 || c.UserName == "" {
		return domain.ErrBadParamInput
	}
	content, err := validateContent(c.Content, domain.MaxCommentLength)
	if err != nil {
		return err
	}
	c.Content = content

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}
	c.LikedBy = nil
	c.Replies = []domain.Reply{}
	return nil
}

func (s *service) Update(ctx context.Context, userID, id int64, content string) (domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if comment.UserID != userID {
		return domain.Comment{}, domain.ErrForbidden
	}

	content, err = validateContent(content, domain.MaxCommentLength)
	if err != nil {
		return domain.Comment{}, err
	}

	now := time.Now()
	comment.Content = content
	comment.IsEdited = true
	comment.EditedAt = &now

	if err := s.commentRepo.Update(ctx, &comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *service) Delete(ctx context.Context, userID int64, role string, id int64) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// Comments are public, so a non-owner gets an honest 403 here, unlike
	// bookmarks where existence itself is private.
	if comment.UserID != userID && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.commentRepo.Delete(ctx, id)
}

// ToggleLike flips the caller's membership in the like set. Each user's flip
// touches only their own row, so racing toggles from different users cannot
// lose each other's update.
func (s *service) ToggleLike(ctx context.Context, userID, id int64) (domain.CommentLikeStatus, error) {
	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return domain.CommentLikeStatus{}, err
	}

	removed, err := s.commentRepo.DeleteLike(ctx, id, userID)
	if err != nil {
		return domain.CommentLikeStatus{}, err
	}

	isLiked := false
	if !removed {
		err = s.commentRepo.InsertLike(ctx, id, userID)
		if err != nil && !errors.Is(err, domain.ErrConflict) {
			return domain.CommentLikeStatus{}, err
		}
		isLiked = true
	}

	count, err := s.commentRepo.CountLikes(ctx, id)
	if err != nil {
		return domain.CommentLikeStatus{}, err
	}
	return domain.CommentLikeStatus{LikeCount: count, IsLiked: isLiked}, nil
}

func (s *service) Reply(ctx context.Context, r *domain.Reply) (domain.Reply, error) {
	if r.UserID == 0 || r.UserName == "" {
		return domain.Reply{}, domain.ErrBadParamInput
	}
	content, err := validateContent(r.Content, domain.MaxReplyLength)
	if err != nil {
		return domain.Reply{}, err
	}
	r.Content = content

	if _, err := s.commentRepo.GetByID(ctx, r.CommentID); err != nil {
		return domain.Reply{}, err
	}

	if err := s.commentRepo.StoreReply(ctx, r); err != nil {
		return domain.Reply{}, err
	}
	return *r, nil
}

func validateContent(content string, maxLen int) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > maxLen {
		return "", domain.ErrBadParamInput
	}
	return content, nil
}
