package comment_repository

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	// ListByPost returns a post's comments oldest first.
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
	Update(ctx context.Context, id int64, text string) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}
