package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/newsflow-app/newsflow-api/domain"
)

type service struct {
	userRepo     domain.UserRepository
	bookmarkRepo domain.BookmarkRepository
}

var _ domain.StatsUsecase = (*service)(nil)

// NewService will create a new stats service object
func NewService(userRepo domain.UserRepository, bookmarkRepo domain.BookmarkRepository) *service {
	return &service{
		userRepo:     userRepo,
		bookmarkRepo: bookmarkRepo,
	}
}

// Summary issues the four counts concurrently; they are independent reads.
func (s *service) Summary(ctx context.Context) (domain.Stats, error) {
	var res domain.Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.userRepo.Count(ctx)
		res.TotalUsers = count
		return err
	})
	g.Go(func() error {
		count, err := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
		res.AdminUsers = count
		return err
	})
	g.Go(func() error {
		count, err := s.userRepo.CountByRole(ctx, domain.RoleUser)
		res.RegularUsers = count
		return err
	})
	g.Go(func() error {
		count, err := s.bookmarkRepo.Count(ctx)
		res.TotalBookmarks = count
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Stats{}, err
	}
	return res, nil
}
