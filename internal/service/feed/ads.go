package feed_service

import (
	"context"

	"localbuzz-feed-service/internal/model"
	post_repository "localbuzz-feed-service/internal/repository/post"
)

// repoAdProvider reads the slate straight from storage: approved ads in the
// scope, newest first, capped at slateSize independent of the page size.
type repoAdProvider struct {
	postRepo  post_repository.Repository
	slateSize int
}

func NewAdProvider(postRepo post_repository.Repository, slateSize int) AdProvider {
	return &repoAdProvider{postRepo: postRepo, slateSize: slateSize}
}

func (p *repoAdProvider) Slate(ctx context.Context, pincode string) ([]*model.Post, error) {
	return p.postRepo.ListAds(ctx, pincode, p.slateSize)
}
