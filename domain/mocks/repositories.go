// Package mocks provides in-memory implementations of the domain contracts
// for tests. Behavior can be overridden per call through the Func fields.
package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/newsflow-app/newsflow-api/domain"
)

// MockUserRepository is an in-memory implementation of domain.UserRepository
type MockUserRepository struct {
	mu     sync.Mutex
	nextID int64
	Users  map[int64]domain.User

	InsertErr error
}

var _ domain.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		nextID: 1,
		Users:  make(map[int64]domain.User),
	}
}

func (m *MockUserRepository) GetByID(_ context.Context, id int64) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.Users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m *MockUserRepository) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (m *MockUserRepository) Insert(_ context.Context, u *domain.User) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.Users {
		if existing.Email == u.Email {
			return domain.ErrConflict
		}
	}
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.nextID++
	m.Users[u.ID] = *u
	return nil
}

func (m *MockUserRepository) Update(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	m.Users[u.ID] = *u
	return nil
}

func (m *MockUserRepository) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Users)), nil
}

func (m *MockUserRepository) CountByRole(_ context.Context, role string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, u := range m.Users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// MockBookmarkRepository is an in-memory implementation of
// domain.BookmarkRepository enforcing the (userID, articleURL) uniqueness.
type MockBookmarkRepository struct {
	mu        sync.Mutex
	nextID    int64
	Bookmarks map[int64]domain.Bookmark

	StoreErr error
	FetchErr error
	CountErr error
}

var _ domain.BookmarkRepository = (*MockBookmarkRepository)(nil)

func NewMockBookmarkRepository() *MockBookmarkRepository {
	return &MockBookmarkRepository{
		nextID:    1,
		Bookmarks: make(map[int64]domain.Bookmark),
	}
}

func (m *MockBookmarkRepository) Fetch(_ context.Context, userID int64) ([]domain.Bookmark, error) {
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Bookmark
	for _, b := range m.Bookmarks {
		if b.UserID == userID {
			res = append(res, b)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (m *MockBookmarkRepository) Store(_ context.Context, b *domain.Bookmark) error {
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.Bookmarks {
		if existing.UserID == b.UserID && existing.ArticleURL == b.ArticleURL {
			return domain.ErrConflict
		}
	}
	b.ID = m.nextID
	b.CreatedAt = time.Now()
	m.nextID++
	m.Bookmarks[b.ID] = *b
	return nil
}

func (m *MockBookmarkRepository) DeleteByID(_ context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.Bookmarks[id]
	if !ok || b.UserID != userID {
		return domain.ErrNotFound
	}
	delete(m.Bookmarks, id)
	return nil
}

func (m *MockBookmarkRepository) DeleteByURL(_ context.Context, userID int64, articleURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, b := range m.Bookmarks {
		if b.UserID == userID && b.ArticleURL == articleURL {
			delete(m.Bookmarks, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockBookmarkRepository) Count(_ context.Context) (int64, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Bookmarks)), nil
}

// MockArticleLikeRepository is an in-memory implementation of
// domain.ArticleLikeRepository.
type MockArticleLikeRepository struct {
	mu     sync.Mutex
	nextID int64
	Likes  map[int64]domain.ArticleLike

	// InsertErr lets a test inject the duplicate-insert race outcome.
	InsertErr error
}

var _ domain.ArticleLikeRepository = (*MockArticleLikeRepository)(nil)

func NewMockArticleLikeRepository() *MockArticleLikeRepository {
	return &MockArticleLikeRepository{
		nextID: 1,
		Likes:  make(map[int64]domain.ArticleLike),
	}
}

func (m *MockArticleLikeRepository) Insert(_ context.Context, l *domain.ArticleLike) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.Likes {
		if existing.ArticleURL == l.ArticleURL && existing.UserID == l.UserID {
			return domain.ErrConflict
		}
	}
	l.ID = m.nextID
	l.CreatedAt = time.Now()
	m.nextID++
	m.Likes[l.ID] = *l
	return nil
}

func (m *MockArticleLikeRepository) Delete(_ context.Context, articleURL string, userID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, l := range m.Likes {
		if l.ArticleURL == articleURL && l.UserID == userID {
			delete(m.Likes, id)
			return true, nil
		}
	}
	return false, nil
}

func (m *MockArticleLikeRepository) CountByArticle(_ context.Context, articleURL string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, l := range m.Likes {
		if l.ArticleURL == articleURL {
			count++
		}
	}
	return count, nil
}

// MockCommentRepository is an in-memory implementation of
// domain.CommentRepository, including like sets and reply sequences.
type MockCommentRepository struct {
	mu          sync.Mutex
	nextID      int64
	nextReplyID int64
	Comments    map[int64]domain.Comment

	StoreErr error
}

var _ domain.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		nextID:      1,
		nextReplyID: 1,
		Comments:    make(map[int64]domain.Comment),
	}
}

func (m *MockCommentRepository) Store(_ context.Context, c *domain.Comment) error {
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextID
	c.CreatedAt = time.Now()
	m.nextID++
	stored := *c
	stored.Replies = []domain.Reply{}
	m.Comments[c.ID] = stored
	return nil
}

func (m *MockCommentRepository) GetByID(_ context.Context, id int64) (domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[id]
	if !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *MockCommentRepository) FetchByArticle(_ context.Context, articleURL string, limit, offset int) ([]domain.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []domain.Comment
	for _, c := range m.Comments {
		if c.ArticleURL == articleURL {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return []domain.Comment{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *MockCommentRepository) CountByArticle(_ context.Context, articleURL string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, c := range m.Comments {
		if c.ArticleURL == articleURL {
			count++
		}
	}
	return count, nil
}

func (m *MockCommentRepository) Update(_ context.Context, c *domain.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.Comments[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Content = c.Content
	stored.IsEdited = c.IsEdited
	stored.EditedAt = c.EditedAt
	m.Comments[c.ID] = stored
	return nil
}

func (m *MockCommentRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Comments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.Comments, id)
	return nil
}

func (m *MockCommentRepository) InsertLike(_ context.Context, commentID, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[commentID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, uid := range c.LikedBy {
		if uid == userID {
			return domain.ErrConflict
		}
	}
	c.LikedBy = append(c.LikedBy, userID)
	m.Comments[commentID] = c
	return nil
}

func (m *MockCommentRepository) DeleteLike(_ context.Context, commentID, userID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[commentID]
	if !ok {
		return false, nil
	}
	for i, uid := range c.LikedBy {
		if uid == userID {
			c.LikedBy = append(c.LikedBy[:i], c.LikedBy[i+1:]...)
			m.Comments[commentID] = c
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCommentRepository) CountLikes(_ context.Context, commentID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[commentID]
	if !ok {
		return 0, nil
	}
	return int64(len(c.LikedBy)), nil
}

func (m *MockCommentRepository) StoreReply(_ context.Context, r *domain.Reply) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Comments[r.CommentID]
	if !ok {
		return domain.ErrNotFound
	}
	r.ID = m.nextReplyID
	r.CreatedAt = time.Now()
	m.nextReplyID++
	c.Replies = append(c.Replies, *r)
	m.Comments[r.CommentID] = c
	return nil
}
