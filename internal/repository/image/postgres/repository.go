package image_repository_postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
	"localbuzz-feed-service/internal/repository/postgres/db"
)

type ImageRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewImageRepository(db db.PgDB, log *logger.Logger) *ImageRepository {
	return &ImageRepository{db: db, log: log}
}

func (r *ImageRepository) Attach(ctx context.Context, postID int64, images []*model.PostImage) error {
	if len(images) == 0 {
		return nil
	}

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	for _, img := range images {
		args := pgx.NamedArgs{
			"post_id":    postID,
			"url":        img.URL,
			"position":   img.Position,
			"created_at": now,
		}
		query := `INSERT INTO post_images (post_id, url, position, created_at)
					VALUES (@post_id, @url, @position, @created_at)`

		if _, err := r.db.Exec(ctx, query, args); err != nil {
			r.log.Error("Error attaching image to post",
				slog.Int64("post_id", postID),
				slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
	}
	return nil
}

func (r *ImageRepository) GetByPost(ctx context.Context, postID int64) ([]*model.PostImage, error) {
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT id, post_id, url, position, created_at
				FROM post_images WHERE post_id = @post_id ORDER BY position`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.log.Error("Error getting images by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var images []*model.PostImage
	for rows.Next() {
		var img model.PostImage
		if err := rows.Scan(&img.ID, &img.PostID, &img.URL, &img.Position, &img.CreatedAt); err != nil {
			r.log.Error("Error scanning image row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		images = append(images, &img)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Error iterating image rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return images, nil
}

func (r *ImageRepository) GetByPosts(ctx context.Context, postIDs []int64) (map[int64][]*model.PostImage, error) {
	result := make(map[int64][]*model.PostImage, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	args := pgx.NamedArgs{"post_ids": postIDs}
	query := `SELECT id, post_id, url, position, created_at
				FROM post_images WHERE post_id = ANY(@post_ids) ORDER BY post_id, position`

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		r.log.Error("Error getting images by posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	for rows.Next() {
		var img model.PostImage
		if err := rows.Scan(&img.ID, &img.PostID, &img.URL, &img.Position, &img.CreatedAt); err != nil {
			r.log.Error("Error scanning image row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		result[img.PostID] = append(result[img.PostID], &img)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Error iterating image rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return result, nil
}

func (r *ImageRepository) DetachAll(ctx context.Context, postID int64) error {
	args := pgx.NamedArgs{"post_id": postID}
	query := `DELETE FROM post_images WHERE post_id = @post_id`

	if _, err := r.db.Exec(ctx, query, args); err != nil {
		r.log.Error("Error detaching images", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}
