package post_service

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

type Service interface {
	CreatePost(ctx context.Context, actor *model.User, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id int64, viewer *model.User) (*model.PostDetailed, error)
	UpdatePost(ctx context.Context, id int64, actor *model.User, update *model.UpdatePostDTO) (*model.PostDetailed, error)
	DeletePost(ctx context.Context, id int64, actor *model.User) error
	ReportPost(ctx context.Context, postID int64, actor *model.User, reason *string) error
	// RecomputeHotScores rescans posts created inside the lookback window
	// and rewrites their cached scores from current vote tallies. Idempotent
	// and safe to run alongside live traffic.
	RecomputeHotScores(ctx context.Context, lookbackDays int) (int64, error)
}
