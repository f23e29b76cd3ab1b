package comment_service

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

type Service interface {
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
	Create(ctx context.Context, postID int64, actor *model.User, text string) (*model.Comment, error)
	Update(ctx context.Context, commentID int64, actor *model.User, text string) (*model.Comment, error)
	Delete(ctx context.Context, commentID int64, actor *model.User) error
}
