package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/repository/mysql/model"
)

type bookmarkRepository struct {
	DB *gorm.DB
}

var _ domain.BookmarkRepository = (*bookmarkRepository)(nil)

func NewBookmarkRepository(db *gorm.DB) *bookmarkRepository {
	return &bookmarkRepository{
		DB: db,
	}
}

func (r *bookmarkRepository) Fetch(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	var bookmarks []model.Bookmark
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Bookmark, len(bookmarks))
	for i := range bookmarks {
		res[i] = bookmarks[i].ToDomain()
	}
	return res, nil
}

func (r *bookmarkRepository) Store(ctx context.Context, b *domain.Bookmark) error {
	bookmarkModel := model.NewBookmarkFromDomain(b)

	result := r.DB.WithContext(ctx).Create(bookmarkModel)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}

	b.ID = bookmarkModel.ID
	b.CreatedAt = bookmarkModel.CreatedAt
	return nil
}

// DeleteByID scopes the delete by owner. A zero rows-affected result means the
// bookmark is absent or owned by someone else; both surface as ErrNotFound.
func (r *bookmarkRepository) DeleteByID(ctx context.Context, userID, id int64) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookmarkRepository) DeleteByURL(ctx context.Context, userID int64, articleURL string) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND article_url = ?", userID, articleURL).
		Delete(&model.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookmarkRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Bookmark{}).Count(&count).Error
	return count, err
}
