package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
)

type VoteRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	votes  map[int64]*model.Vote
	nextID int64
}

func NewVoteRepository(log *logger.Logger) *VoteRepository {
	return &VoteRepository{
		log:    log,
		votes:  make(map[int64]*model.Vote),
		nextID: 1,
	}
}

func (v *VoteRepository) find(postID, userID int64) *model.Vote {
	for _, vote := range v.votes {
		if vote.PostID == postID && vote.UserID == userID {
			return vote
		}
	}
	return nil
}

func (v *VoteRepository) GetForUpdate(ctx context.Context, postID, userID int64) (*model.Vote, error) {
	return v.Get(ctx, postID, userID)
}

func (v *VoteRepository) Get(ctx context.Context, postID, userID int64) (*model.Vote, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	vote := v.find(postID, userID)
	if vote == nil {
		return nil, custom_errors.ErrVoteNotFound
	}

	result := *vote
	return &result, nil
}

func (v *VoteRepository) Create(ctx context.Context, vote *model.Vote) (*model.Vote, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.find(vote.PostID, vote.UserID) != nil {
		return nil, custom_errors.ErrVoteAlreadyExists
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	newVote := &model.Vote{
		ID:        v.nextID,
		PostID:    vote.PostID,
		UserID:    vote.UserID,
		Value:     vote.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	v.nextID++
	v.votes[newVote.ID] = newVote

	result := *newVote
	return &result, nil
}

func (v *VoteRepository) UpdateValue(ctx context.Context, id int64, value int16) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	vote, exists := v.votes[id]
	if !exists {
		return custom_errors.ErrVoteNotFound
	}
	vote.Value = value
	vote.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return nil
}

func (v *VoteRepository) Delete(ctx context.Context, id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.votes[id]; !exists {
		return custom_errors.ErrVoteNotFound
	}
	delete(v.votes, id)
	return nil
}

func (v *VoteRepository) CountByPost(ctx context.Context, postID int64) (*model.VoteCounts, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	counts := &model.VoteCounts{}
	for _, vote := range v.votes {
		if vote.PostID != postID {
			continue
		}
		if vote.Value == model.VoteValueUp {
			counts.Upvotes++
		} else {
			counts.Downvotes++
		}
	}
	return counts, nil
}
