package vote_service

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

type Service interface {
	// CastVote applies the toggle semantics for (postID, userID): first
	// vote creates, repeating the same direction removes, the opposite
	// direction flips in place.
	CastVote(ctx context.Context, postID, userID int64, direction model.VoteDirection) (*model.VoteSummary, error)
}
