package vote_repository

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

type Repository interface {
	// GetForUpdate reads the (post, user) vote row with a row lock so that
	// concurrent toggles on the same pair serialize. Only meaningful inside
	// a transaction.
	GetForUpdate(ctx context.Context, postID, userID int64) (*model.Vote, error)
	Get(ctx context.Context, postID, userID int64) (*model.Vote, error)
	Create(ctx context.Context, vote *model.Vote) (*model.Vote, error)
	UpdateValue(ctx context.Context, id int64, value int16) error
	Delete(ctx context.Context, id int64) error
	CountByPost(ctx context.Context, postID int64) (*model.VoteCounts, error)
}
