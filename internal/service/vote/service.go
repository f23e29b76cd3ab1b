package vote_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	"localbuzz-feed-service/internal/model"
	"localbuzz-feed-service/internal/ranking"
	"localbuzz-feed-service/internal/repository/postgres"
)

// VoteService owns the vote rows: it is the only writer of vote state and
// the only component that triggers hot-score persistence.
type VoteService struct {
	uow     postgres.UnitOfWork
	log     *logger.Logger
	metrics metrics.Provider
}

func NewVoteService(uow postgres.UnitOfWork, log *logger.Logger, metrics metrics.Provider) *VoteService {
	return &VoteService{uow: uow, log: log, metrics: metrics}
}

func (s *VoteService) CastVote(ctx context.Context, postID, userID int64, direction model.VoteDirection) (result *model.VoteSummary, err error) {
	if err := direction.IsValid(); err != nil {
		return nil, custom_errors.ErrValidationFailed
	}

	defer func() {
		s.metrics.IncrementVoteOperations(string(direction), err == nil)
	}()

	result, err = s.castVote(ctx, postID, userID, direction)
	if errors.Is(err, custom_errors.ErrVoteAlreadyExists) {
		// Lost an insert race against a concurrent first vote on the same
		// (post, user) pair. The winner's row is committed by the time the
		// unique violation surfaces, so a second pass lands on the toggle
		// path instead.
		s.log.Debug("Retrying vote after insert race",
			slog.Int64("post_id", postID),
			slog.Int64("user_id", userID))
		result, err = s.castVote(ctx, postID, userID, direction)
	}
	if errors.Is(err, custom_errors.ErrVoteAlreadyExists) {
		return nil, custom_errors.ErrDatabaseQuery
	}
	return result, err
}

func (s *VoteService) castVote(ctx context.Context, postID, userID int64, direction model.VoteDirection) (*model.VoteSummary, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start vote transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !strings.Contains(rollbackErr.Error(), "tx is closed") {
				s.log.Error("Failed to rollback vote transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	postRepo := tx.PostRepository()
	voteRepo := tx.VoteRepository()

	post, err := postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Vote on nonexistent post", slog.Int64("post_id", postID))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to load post for vote", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, err
	}

	// The row lock serializes concurrent toggles on the same (post, user)
	// pair; the final state always reflects the last applied intent.
	value := direction.Value()
	var callerValue int16

	existing, err := voteRepo.GetForUpdate(ctx, postID, userID)
	switch {
	case errors.Is(err, custom_errors.ErrVoteNotFound):
		if _, createErr := voteRepo.Create(ctx, &model.Vote{PostID: postID, UserID: userID, Value: value}); createErr != nil {
			s.log.Error("Failed to create vote", slog.Int64("post_id", postID), slog.String("error", createErr.Error()))
			return nil, createErr
		}
		callerValue = value
	case err != nil:
		s.log.Error("Failed to read vote", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, err
	case existing.Value == value:
		// Same direction repeated: toggle off.
		if deleteErr := voteRepo.Delete(ctx, existing.ID); deleteErr != nil {
			s.log.Error("Failed to delete vote", slog.Int64("vote_id", existing.ID), slog.String("error", deleteErr.Error()))
			return nil, deleteErr
		}
		callerValue = 0
	default:
		if updateErr := voteRepo.UpdateValue(ctx, existing.ID, value); updateErr != nil {
			s.log.Error("Failed to flip vote", slog.Int64("vote_id", existing.ID), slog.String("error", updateErr.Error()))
			return nil, updateErr
		}
		callerValue = value
	}

	counts, err := voteRepo.CountByPost(ctx, postID)
	if err != nil {
		s.log.Error("Failed to tally votes", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, err
	}

	score := ranking.ComputeHotScore(counts.Upvotes, counts.Downvotes, post.CreatedAt.Time)
	if err := postRepo.UpdateHotScore(ctx, postID, score); err != nil {
		s.log.Error("Failed to persist hot score", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit vote transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return &model.VoteSummary{
		Upvotes:      counts.Upvotes,
		Downvotes:    counts.Downvotes,
		HasUpvoted:   callerValue == model.VoteValueUp,
		HasDownvoted: callerValue == model.VoteValueDown,
	}, nil
}
