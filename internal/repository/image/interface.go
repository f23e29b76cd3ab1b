package image_repository

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

type Repository interface {
	Attach(ctx context.Context, postID int64, images []*model.PostImage) error
	GetByPost(ctx context.Context, postID int64) ([]*model.PostImage, error)
	GetByPosts(ctx context.Context, postIDs []int64) (map[int64][]*model.PostImage, error)
	DetachAll(ctx context.Context, postID int64) error
}
