package vote_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	"localbuzz-feed-service/internal/model"
	"localbuzz-feed-service/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type VoteRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewVoteRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *VoteRepository {
	return &VoteRepository{db: db, log: log, metrics: metrics}
}

func (v *VoteRepository) get(ctx context.Context, postID, userID int64, forUpdate bool) (*model.Vote, error) {
	args := pgx.NamedArgs{"post_id": postID, "user_id": userID}
	query := `SELECT id, post_id, user_id, value, created_at, updated_at
				FROM votes WHERE post_id = @post_id AND user_id = @user_id`
	if forUpdate {
		query += " FOR UPDATE"
	}

	vote := &model.Vote{}
	err := v.db.QueryRow(ctx, query, args).Scan(
		&vote.ID,
		&vote.PostID,
		&vote.UserID,
		&vote.Value,
		&vote.CreatedAt,
		&vote.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrVoteNotFound
		}
		v.log.Error("Error getting vote",
			slog.Int64("post_id", postID),
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return vote, nil
}

func (v *VoteRepository) GetForUpdate(ctx context.Context, postID, userID int64) (*model.Vote, error) {
	return v.get(ctx, postID, userID, true)
}

func (v *VoteRepository) Get(ctx context.Context, postID, userID int64) (*model.Vote, error) {
	return v.get(ctx, postID, userID, false)
}

func (v *VoteRepository) Create(ctx context.Context, vote *model.Vote) (*model.Vote, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"post_id":    vote.PostID,
		"user_id":    vote.UserID,
		"value":      vote.Value,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO votes (post_id, user_id, value, created_at, updated_at)
		VALUES (@post_id, @user_id, @value, @created_at, @updated_at)
		RETURNING id, post_id, user_id, value, created_at, updated_at`

	createdVote := &model.Vote{}
	err := v.db.QueryRow(ctx, query, args).Scan(
		&createdVote.ID,
		&createdVote.PostID,
		&createdVote.UserID,
		&createdVote.Value,
		&createdVote.CreatedAt,
		&createdVote.UpdatedAt,
	)
	v.metrics.RecordDatabaseQueryDuration("vote_create", time.Since(start))
	if err != nil {
		v.metrics.IncrementDatabaseQueries("vote_create", false)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			v.log.Debug("Concurrent vote insert",
				slog.Int64("post_id", vote.PostID),
				slog.Int64("user_id", vote.UserID))
			return nil, custom_errors.ErrVoteAlreadyExists
		}
		v.log.Error("Error creating vote",
			slog.Int64("post_id", vote.PostID),
			slog.Int64("user_id", vote.UserID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	v.metrics.IncrementDatabaseQueries("vote_create", true)
	return createdVote, nil
}

func (v *VoteRepository) UpdateValue(ctx context.Context, id int64, value int16) error {
	args := pgx.NamedArgs{
		"id":         id,
		"value":      value,
		"updated_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	query := `UPDATE votes SET value = @value, updated_at = @updated_at WHERE id = @id`

	result, err := v.db.Exec(ctx, query, args)
	if err != nil {
		v.log.Error("Error updating vote value", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrVoteNotFound
	}
	return nil
}

func (v *VoteRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM votes WHERE id = @id`

	result, err := v.db.Exec(ctx, query, args)
	if err != nil {
		v.log.Error("Error deleting vote", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrVoteNotFound
	}
	return nil
}

func (v *VoteRepository) CountByPost(ctx context.Context, postID int64) (*model.VoteCounts, error) {
	start := time.Now()
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT
		count(*) FILTER (WHERE value = 1),
		count(*) FILTER (WHERE value = -1)
		FROM votes WHERE post_id = @post_id`

	counts := &model.VoteCounts{}
	err := v.db.QueryRow(ctx, query, args).Scan(&counts.Upvotes, &counts.Downvotes)
	v.metrics.RecordDatabaseQueryDuration("vote_count", time.Since(start))
	if err != nil {
		v.metrics.IncrementDatabaseQueries("vote_count", false)
		v.log.Error("Error counting votes", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	v.metrics.IncrementDatabaseQueries("vote_count", true)
	return counts, nil
}
