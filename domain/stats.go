package domain

import "context"

// Stats is the public aggregate summary. Only counts, nothing enumerable.
type Stats struct {
	TotalUsers     int64 `json:"totalUsers"`
	AdminUsers     int64 `json:"adminUsers"`
	RegularUsers   int64 `json:"regularUsers"`
	TotalBookmarks int64 `json:"totalBookmarks"`
}

// StatsUsecase defines the read-only public stats contract.
type StatsUsecase interface {
	Summary(ctx context.Context) (Stats, error)
}
