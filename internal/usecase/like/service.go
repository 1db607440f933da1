package like

import (
	"context"
	"errors"

	"github.com/newsflow-app/newsflow-api/domain"
)

type service struct {
	likeRepo domain.ArticleLikeRepository
}

var _ domain.LikeUsecase = (*service)(nil)

// NewService will create a new like service object
func NewService(likeRepo domain.ArticleLikeRepository) *service {
	return &service{
		likeRepo: likeRepo,
	}
}

func (s *service) Summary(ctx context.Context, articleURL string) (domain.LikeSummary, error) {
	if articleURL == "" {
		return domain.LikeSummary{}, domain.ErrBadParamInput
	}

	count, err := s.likeRepo.CountByArticle(ctx, articleURL)
	if err != nil {
		return domain.LikeSummary{}, err
	}

	// Per-user liked state is only observable through the toggle response.
	return domain.LikeSummary{LikeCount: count, LikedByUser: false}, nil
}

// Toggle flips the like relation with a delete-first strategy: the delete and
// the insert are each atomic against the unique index, so no read-then-write
// window exists. The count is recomputed after the mutation in every path.
func (s *service) Toggle(ctx context.Context, userID int64, articleURL, articleTitle string) (domain.LikeStatus, error) {
	if articleURL == "" || articleTitle == "" {
		return domain.LikeStatus{}, domain.ErrBadParamInput
	}

	removed, err := s.likeRepo.Delete(ctx, articleURL, userID)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	if removed {
		count, err := s.likeRepo.CountByArticle(ctx, articleURL)
		if err != nil {
			return domain.LikeStatus{}, err
		}
		return domain.LikeStatus{Liked: false, LikeCount: count}, nil
	}

	err = s.likeRepo.Insert(ctx, &domain.ArticleLike{
		ArticleURL:   articleURL,
		ArticleTitle: articleTitle,
		UserID:       userID,
	})
	// A racing duplicate insert settles on "liked" for every caller, never on
	// an error.
	if err != nil && !errors.Is(err, domain.ErrConflict) {
		return domain.LikeStatus{}, err
	}

	count, err := s.likeRepo.CountByArticle(ctx, articleURL)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	return domain.LikeStatus{Liked: true, LikeCount: count}, nil
}
