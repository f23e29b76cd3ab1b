package feed_service

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

// FeedQuery carries the raw, untrusted request parameters. The requesting
// user is passed explicitly; there is no ambient request state.
type FeedQuery struct {
	Tab       string
	Pincode   string
	LocalBody string
	Cursor    string
	Limit     int
}

type Service interface {
	Feed(ctx context.Context, user *model.User, query FeedQuery) (*model.FeedPage, error)
	// Refresh returns the first page of the tab's plan without pagination
	// metadata or ads.
	Refresh(ctx context.Context, user *model.User, query FeedQuery) ([]*model.PostDetailed, error)
}

// AdProvider sources the advertisement slate for a locality. Kept as its
// own collaborator so a cache can wrap it.
type AdProvider interface {
	Slate(ctx context.Context, pincode string) ([]*model.Post, error)
}
