package comment_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
	"localbuzz-feed-service/internal/repository/postgres/db"
)

type CommentRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewCommentRepository(db db.PgDB, log *logger.Logger) *CommentRepository {
	return &CommentRepository{db: db, log: log}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"post_id":    comment.PostID,
		"user_id":    comment.UserID,
		"text":       comment.Text,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO comments (post_id, user_id, text, created_at, updated_at)
		VALUES (@post_id, @user_id, @text, @created_at, @updated_at)
		RETURNING id, post_id, user_id, text, created_at, updated_at`

	created := &model.Comment{}
	err := r.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.PostID,
		&created.UserID,
		&created.Text,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Error creating comment",
			slog.Int64("post_id", comment.PostID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return created, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, post_id, user_id, text, created_at, updated_at
				FROM comments WHERE id = @id`

	comment := &model.Comment{}
	err := r.db.QueryRow(ctx, query, args).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.UserID,
		&comment.Text,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("Comment not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrCommentNotFound
		}
		r.log.Error("Error getting comment by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return comment, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT id, post_id, user_id, text, created_at, updated_at
				FROM comments WHERE post_id = @post_id ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.log.Error("Error listing comments", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var comment model.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.UserID,
			&comment.Text,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Error scanning comment row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Error iterating comment rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, id int64, text string) (*model.Comment, error) {
	args := pgx.NamedArgs{
		"id":         id,
		"text":       text,
		"updated_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	query := `UPDATE comments SET text = @text, updated_at = @updated_at
				WHERE id = @id
				RETURNING id, post_id, user_id, text, created_at, updated_at`

	updated := &model.Comment{}
	err := r.db.QueryRow(ctx, query, args).Scan(
		&updated.ID,
		&updated.PostID,
		&updated.UserID,
		&updated.Text,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrCommentNotFound
		}
		r.log.Error("Error updating comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return updated, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM comments WHERE id = @id`

	result, err := r.db.Exec(ctx, query, args)
	if err != nil {
		r.log.Error("Error deleting comment", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrCommentNotFound
	}
	return nil
}
