package post_repository

import (
	"context"
	"time"

	"localbuzz-feed-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id int64) error

	// ListFeed returns the filtered, ordered candidate page described by the
	// planner. It never mutates state.
	ListFeed(ctx context.Context, filters model.FeedFilters) ([]*model.Post, error)

	// ListAds returns the approved advertisement slate for a locality,
	// newest first, capped at limit.
	ListAds(ctx context.Context, pincode string, limit int) ([]*model.Post, error)

	UpdateHotScore(ctx context.Context, id int64, score float64) error
	ListCreatedSince(ctx context.Context, since time.Time) ([]*model.Post, error)
}
