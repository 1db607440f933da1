package comment_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsflow-app/newsflow-api/domain"
	"github.com/newsflow-app/newsflow-api/domain/mocks"
	"github.com/newsflow-app/newsflow-api/internal/usecase/comment"
)

const (
	testArticleURL   = "https://news.example.com/a/1"
	testArticleTitle = "Example headline"
)

func newComment(userID int64, content string) *domain.Comment {
	return &domain.Comment{
		ArticleURL:   testArticleURL,
		ArticleTitle: testArticleTitle,
		UserID:       userID,
		UserName:     fmt.Sprintf("user-%d", userID),
		Content:      content,
	}
}

func TestCreate(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := comment.NewService(repo)

	c := newComment(1, "  first!  ")
	err := svc.Create(context.Background(), c)
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "first!", c.Content)
	assert.Equal(t, int64(0), c.LikeCount())
	assert.Equal(t, int64(0), c.ReplyCount())
}

func TestCreateContentBounds(t *testing.T) {
	svc := comment.NewService(mocks.NewMockCommentRepository())

	atLimit := newComment(1, strings.Repeat("x", domain.MaxCommentLength))
	assert.NoError(t, svc.Create(context.Background(), atLimit))

	overLimit := newComment(1, strings.Repeat("x", domain.MaxCommentLength+1))
	assert.ErrorIs(t, svc.Create(context.Background(), overLimit), domain.ErrBadParamInput)

	blank := newComment(1, "   ")
	assert.ErrorIs(t, svc.Create(context.Background(), blank), domain.ErrBadParamInput)
}

func TestCreateMissingFields(t *testing.T) {
	svc := comment.NewService(mocks.NewMockCommentRepository())

	c := newComment(1, "hello")
	c.ArticleURL = ""
	assert.ErrorIs(t, svc.Create(context.Background(), c), domain.ErrBadParamInput)

	c = newComment(0, "hello")
	assert.ErrorIs(t, svc.Create(context.Background(), c), domain.ErrBadParamInput)
}

func TestUpdateAuthorOnly(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := comment.NewService(repo)

	c := newComment(1, "original")
	require.NoError(t, svc.Create(context.Background(), c))

	_, err := svc.Update(context.Background(), 2, c.ID, "hijacked")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := svc.Update(context.Background(), 1, c.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.True(t, updated.IsEdited)
	require.NotNil(t, updated.EditedAt)
}

func TestUpdateMissingComment(t *testing.T) {
	svc := comment.NewService(mocks.NewMockCommentRepository())

	_, err := svc.Update(context.Background(), 1, 42, "edited")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteAuthorOrAdmin(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := comment.NewService(repo)

	c := newComment(1, "to be removed")
	require.NoError(t, svc.Create(context.Background(), c))

	err := svc.Delete(context.Background(), 2, domain.RoleUser, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// An admin may remove any comment.
	require.NoError(t, svc.Delete(context.Background(), 2, domain.RoleAdmin, c.ID))

	err = svc.Delete(context.Background(), 1, domain.RoleUser, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestToggleLike(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := comment.NewService(repo)

	c := newComment(1, "likeable")
	require.NoError(t, svc.Create(context.Background(), c))

	status, err := svc.ToggleLike(context.Background(), 2, c.ID)
	require.NoError(t, err)
	assert.True(t, status.IsLiked)
	assert.Equal(t, int64(1), status.LikeCount)

	status, err = svc.ToggleLike(context.Background(), 3, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.LikeCount)

	status, err = svc.ToggleLike(context.Background(), 2, c.ID)
	require.NoError(t, err)
	assert.False(t, status.IsLiked)
	assert.Equal(t, int64(1), status.LikeCount)
}

func TestToggleLikeMissingComment(t *testing.T) {
	svc := comment.NewService(mocks.NewMockCommentRepository())

	_, err := svc.ToggleLike(context.Background(), 1, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReply(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := comment.NewService(repo)

	c := newComment(1, "parent")
	require.NoError(t, svc.Create(context.Background(), c))

	reply, err := svc.Reply(context.Background(), &domain.Reply{
		CommentID: c.ID,
		UserID:    2,
		UserName:  "user-2",
		Content:   "  me too  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "me too", reply.Content)

	stored, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ReplyCount())
}

func TestReplyContentBounds(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := comment.NewService(repo)

	c := newComment(1, "parent")
	require.NoError(t, svc.Create(context.Background(), c))

	_, err := svc.Reply(context.Background(), &domain.Reply{
		CommentID: c.ID,
		UserID:    2,
		UserName:  "user-2",
		Content:   strings.Repeat("x", domain.MaxReplyLength+1),
	})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, err = svc.Reply(context.Background(), &domain.Reply{
		CommentID: c.ID,
		UserID:    2,
		UserName:  "user-2",
		Content:   strings.Repeat("x", domain.MaxReplyLength),
	})
	assert.NoError(t, err)
}

func TestReplyMissingParent(t *testing.T) {
	svc := comment.NewService(mocks.NewMockCommentRepository())

	_, err := svc.Reply(context.Background(), &domain.Reply{
		CommentID: 42,
		UserID:    2,
		UserName:  "user-2",
		Content:   "orphan",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchByArticlePaging(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := comment.NewService(repo)

	for i := 0; i < 25; i++ {
		c := newComment(1, fmt.Sprintf("comment %d", i))
		require.NoError(t, svc.Create(context.Background(), c))
	}

	page, err := svc.FetchByArticle(context.Background(), testArticleURL, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Comments, 10)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)

	// Newest first: the last stored comment leads the first page.
	assert.Equal(t, "comment 24", page.Comments[0].Content)

	last, err := svc.FetchByArticle(context.Background(), testArticleURL, 3, 10)
	require.NoError(t, err)
	assert.Len(t, last.Comments, 5)

	empty, err := svc.FetchByArticle(context.Background(), testArticleURL, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, empty.Comments)
}

func TestFetchByArticleClampsParams(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	svc := comment.NewService(repo)

	c := newComment(1, "only one")
	require.NoError(t, svc.Create(context.Background(), c))

	page, err := svc.FetchByArticle(context.Background(), testArticleURL, -3, 9000)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Comments, 1)
}
