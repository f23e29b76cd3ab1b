package report_repository_postgres

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
	"localbuzz-feed-service/internal/model"
	"localbuzz-feed-service/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type ReportRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewReportRepository(db db.PgDB, log *logger.Logger) *ReportRepository {
	return &ReportRepository{db: db, log: log}
}

func (r *ReportRepository) Create(ctx context.Context, report *model.Report) (*model.Report, error) {
	args := pgx.NamedArgs{
		"post_id":    report.PostID,
		"user_id":    report.UserID,
		"reason":     report.Reason,
		"created_at": pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	query := `
		INSERT INTO reports (post_id, user_id, reason, created_at)
		VALUES (@post_id, @user_id, @reason, @created_at)
		RETURNING id, post_id, user_id, reason, created_at`

	created := &model.Report{}
	err := r.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.PostID,
		&created.UserID,
		&created.Reason,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			r.log.Debug("Duplicate report",
				slog.Int64("post_id", report.PostID),
				slog.Int64("user_id", report.UserID))
			return nil, custom_errors.ErrAlreadyReported
		}
		r.log.Error("Error creating report",
			slog.Int64("post_id", report.PostID),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return created, nil
}

func (r *ReportRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT count(*) FROM reports WHERE post_id = @post_id`

	var count int64
	if err := r.db.QueryRow(ctx, query, args).Scan(&count); err != nil {
		r.log.Error("Error counting reports", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	return count, nil
}
