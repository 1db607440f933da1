package bookmark

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/newsflow-app/newsflow-api/domain"
)

// articleURLPattern accepts http(s) URLs, the same rule the frontend applies.
var articleURLPattern = regexp.MustCompile(`^https?://.+`)

type service struct {
	bookmarkRepo domain.BookmarkRepository
}

var _ domain.BookmarkUsecase = (*service)(nil)

// NewService will create a new bookmark service object
func NewService(bookmarkRepo domain.BookmarkRepository) *service {
	return &service{
		bookmarkRepo: bookmarkRepo,
	}
}

func (s *service) Fetch(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	return s.bookmarkRepo.Fetch(ctx, userID)
}

func (s *service) Store(ctx context.Context, b *domain.Bookmark) error {
	if err := validate(b); err != nil {
		return err
	}
	if b.PublishedAt.IsZero() {
		b.PublishedAt = time.Now()
	}

	// The unique index decides duplicates; no read-before-write.
	return s.bookmarkRepo.Store(ctx, b)
}

func (s *service) DeleteByID(ctx context.Context, userID, id int64) error {
	return s.bookmarkRepo.DeleteByID(ctx, userID, id)
}

func (s *service) DeleteByURL(ctx context.Context, userID int64, articleURL string) error {
	if articleURL == "" {
		return domain.ErrBadParamInput
	}
	return s.bookmarkRepo.DeleteByURL(ctx, userID, articleURL)
}

func validate(b *domain.Bookmark) error {
	title := strings.TrimSpace(b.ArticleTitle)
	if title == "" || len([]rune(title)) > 500 {
		return domain.ErrBadParamInput
	}
	if !articleURLPattern.MatchString(b.ArticleURL) {
		return domain.ErrBadParamInput
	}
	if b.ImageURL != "" && !articleURLPattern.MatchString(b.ImageURL) {
		return domain.ErrBadParamInput
	}
	return nil
}
