package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (r *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := r.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var commentModel model.Comment
	err := r.DB.WithContext(ctx).First(&commentModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Comment{}, domain.ErrNotFound
		}
		return domain.Comment{}, err
	}

	comments := []domain.Comment{commentModel.ToDomain()}
	if err := r.attachLikesAndReplies(ctx, comments); err != nil {
		return domain.Comment{}, err
	}
	return comments[0], nil
}

func (r *commentRepository) FetchByArticle(ctx context.Context, articleURL string, limit, offset int) ([]domain.Comment, error) {
	var commentModels []model.Comment
	err := r.DB.WithContext(ctx).
		Where("article_url = ?", articleURL).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = commentModels[i].ToDomain()
	}
	if err := r.attachLikesAndReplies(ctx, comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// attachLikesAndReplies loads the like sets and reply sequences for the given
// comments with one query each. Reply order follows the auto-increment id,
// which is append order.
func (r *commentRepository) attachLikesAndReplies(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]int64, len(comments))
	for i := range comments {
		ids[i] = comments[i].ID
	}

	var likes []model.CommentLike
	if err := r.DB.WithContext(ctx).Where("comment_id IN ?", ids).Find(&likes).Error; err != nil {
		return err
	}
	likedBy := make(map[int64][]int64, len(comments))
	for _, l := range likes {
		likedBy[l.CommentID] = append(likedBy[l.CommentID], l.UserID)
	}

	var replies []model.CommentReply
	err := r.DB.WithContext(ctx).
		Where("comment_id IN ?", ids).
		Order("id ASC").
		Find(&replies).Error
	if err != nil {
		return err
	}
	replyMap := make(map[int64][]domain.Reply, len(comments))
	for i := range replies {
		replyMap[replies[i].CommentID] = append(replyMap[replies[i].CommentID], replies[i].ToDomain())
	}

	for i := range comments {
		comments[i].LikedBy = likedBy[comments[i].ID]
		if rs, ok := replyMap[comments[i].ID]; ok {
			comments[i].Replies = rs
		} else {
			comments[i].Replies = []domain.Reply{}
		}
	}
	return nil
}

func (r *commentRepository) CountByArticle(ctx context.Context, articleURL string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("article_url = ?", articleURL).
		Count(&count).Error
	return count, err
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":   comment.Content,
			"is_edited": comment.IsEdited,
			"edited_at": comment.EditedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the comment row; likes and replies go with it through the
// ON DELETE CASCADE constraints.
func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *commentRepository) InsertLike(ctx context.Context, commentID, userID int64) error {
	like := model.CommentLike{CommentID: commentID, UserID: userID}
	if err := r.DB.WithContext(ctx).Create(&like).Error; err != nil {
		if isDuplicateEntry(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *commentRepository) DeleteLike(ctx context.Context, commentID, userID int64) (bool, error) {
	result := r.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *commentRepository) CountLikes(ctx context.Context, commentID int64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

func (r *commentRepository) StoreReply(ctx context.Context, reply *domain.Reply) error {
	replyModel := model.NewCommentReplyFromDomain(reply)
	if err := r.DB.WithContext(ctx).Create(replyModel).Error; err != nil {
		return err
	}
	reply.ID = replyModel.ID
	reply.CreatedAt = replyModel.CreatedAt
	return nil
}
