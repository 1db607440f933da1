package mocks

import (
	"context"

	"github.com/newsflow-app/newsflow-api/domain"
)

// MockBookmarkUsecase implements domain.BookmarkUsecase through Func fields.
// Fields left nil produce zero values and no error.
type MockBookmarkUsecase struct {
	FetchFunc       func(ctx context.Context, userID int64) ([]domain.Bookmark, error)
	StoreFunc       func(ctx context.Context, b *domain.Bookmark) error
	DeleteByIDFunc  func(ctx context.Context, userID, id int64) error
	DeleteByURLFunc func(ctx context.Context, userID int64, articleURL string) error
}

var _ domain.BookmarkUsecase = (*MockBookmarkUsecase)(nil)

func (m *MockBookmarkUsecase) Fetch(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBookmarkUsecase) Store(ctx context.Context, b *domain.Bookmark) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, b)
	}
	return nil
}

func (m *MockBookmarkUsecase) DeleteByID(ctx context.Context, userID, id int64) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, userID, id)
	}
	return nil
}

func (m *MockBookmarkUsecase) DeleteByURL(ctx context.Context, userID int64, articleURL string) error {
	if m.DeleteByURLFunc != nil {
		return m.DeleteByURLFunc(ctx, userID, articleURL)
	}
	return nil
}

// MockLikeUsecase implements domain.LikeUsecase through Func fields.
type MockLikeUsecase struct {
	SummaryFunc func(ctx context.Context, articleURL string) (domain.LikeSummary, error)
	ToggleFunc  func(ctx context.Context, userID int64, articleURL, articleTitle string) (domain.LikeStatus, error)
}

var _ domain.LikeUsecase = (*MockLikeUsecase)(nil)

func (m *MockLikeUsecase) Summary(ctx context.Context, articleURL string) (domain.LikeSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, articleURL)
	}
	return domain.LikeSummary{}, nil
}

func (m *MockLikeUsecase) Toggle(ctx context.Context, userID int64, articleURL, articleTitle string) (domain.LikeStatus, error) {
	if m.ToggleFunc != nil {
		return m.ToggleFunc(ctx, userID, articleURL, articleTitle)
	}
	return domain.LikeStatus{}, nil
}

// MockCommentUsecase implements domain.CommentUsecase through Func fields.
type MockCommentUsecase struct {
	FetchByArticleFunc func(ctx context.Context, articleURL string, page, limit int) (domain.CommentPage, error)
	CreateFunc         func(ctx context.Context, c *domain.Comment) error
	UpdateFunc         func(ctx context.Context, userID, id int64, content string) (domain.Comment, error)
	DeleteFunc         func(ctx context.Context, userID int64, role string, id int64) error
	ToggleLikeFunc     func(ctx context.Context, userID, id int64) (domain.CommentLikeStatus, error)
	ReplyFunc          func(ctx context.Context, r *domain.Reply) (domain.Reply, error)
}

var _ domain.CommentUsecase = (*MockCommentUsecase)(nil)

func (m *MockCommentUsecase) FetchByArticle(ctx context.Context, articleURL string, page, limit int) (domain.CommentPage, error) {
	if m.FetchByArticleFunc != nil {
		return m.FetchByArticleFunc(ctx, articleURL, page, limit)
	}
	return domain.CommentPage{}, nil
}

func (m *MockCommentUsecase) Create(ctx context.Context, c *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCommentUsecase) Update(ctx context.Context, userID, id int64, content string) (domain.Comment, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, content)
	}
	return domain.Comment{}, nil
}

func (m *MockCommentUsecase) Delete(ctx context.Context, userID int64, role string, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, role, id)
	}
	return nil
}

func (m *MockCommentUsecase) ToggleLike(ctx context.Context, userID, id int64) (domain.CommentLikeStatus, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, userID, id)
	}
	return domain.CommentLikeStatus{}, nil
}

func (m *MockCommentUsecase) Reply(ctx context.Context, r *domain.Reply) (domain.Reply, error) {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, r)
	}
	return *r, nil
}

// MockNewsUsecase implements domain.NewsUsecase through Func fields.
type MockNewsUsecase struct {
	TopHeadlinesFunc func(ctx context.Context, q domain.HeadlinesQuery) (domain.NewsResult, error)
	SearchFunc       func(ctx context.Context, q domain.SearchQuery) (domain.NewsResult, error)
}

var _ domain.NewsUsecase = (*MockNewsUsecase)(nil)

func (m *MockNewsUsecase) TopHeadlines(ctx context.Context, q domain.HeadlinesQuery) (domain.NewsResult, error) {
	if m.TopHeadlinesFunc != nil {
		return m.TopHeadlinesFunc(ctx, q)
	}
	return domain.NewsResult{Status: domain.NewsStatusSuccess}, nil
}

func (m *MockNewsUsecase) Search(ctx context.Context, q domain.SearchQuery) (domain.NewsResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q)
	}
	return domain.NewsResult{Status: domain.NewsStatusSuccess}, nil
}

// MockUserUsecase implements domain.UserUsecase through Func fields.
type MockUserUsecase struct {
	RegisterFunc          func(ctx context.Context, name, email, password string) (string, domain.User, error)
	LoginFunc             func(ctx context.Context, email, password string) (string, domain.User, error)
	MeFunc                func(ctx context.Context, id int64) (domain.User, error)
	UpdatePreferencesFunc func(ctx context.Context, id int64, categories []string, country string) (domain.User, error)
}

var _ domain.UserUsecase = (*MockUserUsecase)(nil)

func (m *MockUserUsecase) Register(ctx context.Context, name, email, password string) (string, domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return "", domain.User{}, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", domain.User{}, nil
}

func (m *MockUserUsecase) Me(ctx context.Context, id int64) (domain.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, id)
	}
	return domain.User{}, nil
}

func (m *MockUserUsecase) UpdatePreferences(ctx context.Context, id int64, categories []string, country string) (domain.User, error) {
	if m.UpdatePreferencesFunc != nil {
		return m.UpdatePreferencesFunc(ctx, id, categories, country)
	}
	return domain.User{}, nil
}
