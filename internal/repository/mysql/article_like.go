package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/repository/mysql/model"
)

type articleLikeRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleLikeRepository = (*articleLikeRepository)(nil)

func NewArticleLikeRepository(db *gorm.DB) *articleLikeRepository {
	return &articleLikeRepository{
		DB: db,
	}
}

func (r *articleLikeRepository) Insert(ctx context.Context, l *domain.ArticleLike) error {
	likeModel := model.NewArticleLikeFromDomain(l)

	result := r.DB.WithContext(ctx).Create(likeModel)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}

	l.ID = likeModel.ID
	l.CreatedAt = likeModel.CreatedAt
	return nil
}

func (r *articleLikeRepository) Delete(ctx context.Context, articleURL string, userID int64) (bool, error) {
	result := r.DB.WithContext(ctx).
		Where("article_url = ? AND user_id = ?", articleURL, userID).
		Delete(&model.ArticleLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *articleLikeRepository) CountByArticle(ctx context.Context, articleURL string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.ArticleLike{}).
		Where("article_url = ?", articleURL).
		Count(&count).Error
	return count, err
}
