package cache

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

// AdCache holds the per-locality advertisement slate. Slates are cheap to
// recompute, so entries carry a short TTL and approval changes invalidate.
type AdCache interface {
	GetSlate(ctx context.Context, pincode string) ([]*model.Post, error)
	SetSlate(ctx context.Context, pincode string, ads []*model.Post) error
	InvalidateSlate(ctx context.Context, pincode string) error
}

// UserCache stores identity lookups keyed by bearer token.
type UserCache interface {
	GetByToken(ctx context.Context, token string) (*model.User, error)
	SetByToken(ctx context.Context, token string, user *model.User) error
}
