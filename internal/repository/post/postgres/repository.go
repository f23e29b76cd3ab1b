package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	"localbuzz-feed-service/internal/model"
	"localbuzz-feed-service/internal/repository/postgres/db"
)

const postColumns = `p.id, p.author_id, p.category, p.headline, p.description, p.pincode,
		p.hot_score, p.is_ad_approved, p.sponsor_name, p.button_text, p.button_url,
		(SELECT count(*) FROM votes v WHERE v.post_id = p.id AND v.value = 1) AS upvotes,
		(SELECT count(*) FROM votes v WHERE v.post_id = p.id AND v.value = -1) AS downvotes,
		p.created_at, p.updated_at`

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Category,
		&post.Headline,
		&post.Description,
		&post.Pincode,
		&post.HotScore,
		&post.IsAdApproved,
		&post.SponsorName,
		&post.ButtonText,
		&post.ButtonURL,
		&post.Upvotes,
		&post.Downvotes,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (p *PostRepository) collect(rows pgx.Rows, queryType string) ([]*model.Post, error) {
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.log.Error("Error scanning post row",
				slog.String("query_type", queryType),
				slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		p.log.Error("Error iterating post rows",
			slog.String("query_type", queryType),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"author_id":      post.AuthorID,
		"category":       post.Category,
		"headline":       post.Headline,
		"description":    post.Description,
		"pincode":        post.Pincode,
		"hot_score":      post.HotScore,
		"is_ad_approved": post.IsAdApproved,
		"sponsor_name":   post.SponsorName,
		"button_text":    post.ButtonText,
		"button_url":     post.ButtonURL,
		"created_at":     now,
		"updated_at":     now,
	}

	query := `
		INSERT INTO posts (author_id, category, headline, description, pincode, hot_score,
			is_ad_approved, sponsor_name, button_text, button_url, created_at, updated_at)
		VALUES (@author_id, @category, @headline, @description, @pincode, @hot_score,
			@is_ad_approved, @sponsor_name, @button_text, @button_url, @created_at, @updated_at)
		RETURNING id, author_id, category, headline, description, pincode, hot_score,
			is_ad_approved, sponsor_name, button_text, button_url, 0::bigint, 0::bigint, created_at, updated_at`

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = @id`

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	p.metrics.RecordDatabaseQueryDuration("post_get", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.metrics.IncrementDatabaseQueries("post_get", false)
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_get", true)
	return post, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Headline != nil {
		setClauses = append(setClauses, "headline = @headline")
		args["headline"] = *update.Headline
	}
	if update.Description != nil {
		setClauses = append(setClauses, "description = @description")
		args["description"] = *update.Description
	}
	if update.SponsorName != nil {
		setClauses = append(setClauses, "sponsor_name = @sponsor_name")
		args["sponsor_name"] = *update.SponsorName
	}
	if update.ButtonText != nil {
		setClauses = append(setClauses, "button_text = @button_text")
		args["button_text"] = *update.ButtonText
	}
	if update.ButtonURL != nil {
		setClauses = append(setClauses, "button_url = @button_url")
		args["button_url"] = *update.ButtonURL
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE posts p SET " + strings.Join(setClauses, ", ") +
		" WHERE p.id = @id RETURNING " + postColumns

	updatedPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

func (p *PostRepository) ListFeed(ctx context.Context, filters model.FeedFilters) ([]*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{}
	baseQuery := `SELECT ` + postColumns + ` FROM posts p`

	whereClauses := []string{}

	if filters.Pincode != nil {
		whereClauses = append(whereClauses, "p.pincode = @pincode")
		args["pincode"] = *filters.Pincode
	}
	if filters.Category != nil {
		whereClauses = append(whereClauses, "p.category = @category")
		args["category"] = *filters.Category
	}
	if filters.ExcludeCategory != nil {
		whereClauses = append(whereClauses, "p.category <> @exclude_category")
		args["exclude_category"] = *filters.ExcludeCategory
	}
	if filters.AuthorID != nil {
		whereClauses = append(whereClauses, "p.author_id = @author_id")
		args["author_id"] = *filters.AuthorID
	}
	if filters.CreatedOn != nil {
		dayStart := filters.CreatedOn.UTC().Truncate(24 * time.Hour)
		whereClauses = append(whereClauses, "p.created_at >= @day_start AND p.created_at < @day_end")
		args["day_start"] = pgtype.Timestamptz{Time: dayStart, Valid: true}
		args["day_end"] = pgtype.Timestamptz{Time: dayStart.Add(24 * time.Hour), Valid: true}
	}

	// Cursor condition is a row-value comparison over the full ordering key,
	// so concurrent inserts cannot produce duplicates or gaps.
	switch filters.Order {
	case model.OrderHot:
		if filters.AfterHotScore != nil && filters.AfterCreatedAt != nil && filters.AfterID != nil {
			whereClauses = append(whereClauses,
				"(p.hot_score, p.created_at, p.id) < (@after_hot_score, @after_created_at, @after_id)")
			args["after_hot_score"] = *filters.AfterHotScore
			args["after_created_at"] = pgtype.Timestamptz{Time: *filters.AfterCreatedAt, Valid: true}
			args["after_id"] = *filters.AfterID
		}
	default:
		if filters.AfterCreatedAt != nil && filters.AfterID != nil {
			whereClauses = append(whereClauses,
				"(p.created_at, p.id) < (@after_created_at, @after_id)")
			args["after_created_at"] = pgtype.Timestamptz{Time: *filters.AfterCreatedAt, Valid: true}
			args["after_id"] = *filters.AfterID
		}
	}

	if len(whereClauses) > 0 {
		baseQuery += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	if filters.Order == model.OrderHot {
		baseQuery += " ORDER BY p.hot_score DESC, p.created_at DESC, p.id DESC"
	} else {
		baseQuery += " ORDER BY p.created_at DESC, p.id DESC"
	}

	if filters.Limit > 0 {
		baseQuery += " LIMIT @limit"
		args["limit"] = filters.Limit
	}

	rows, err := p.db.Query(ctx, baseQuery, args)
	p.metrics.RecordDatabaseQueryDuration("feed_list", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("feed_list", false)
		p.log.Error("Error listing feed posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	posts, err := p.collect(rows, "feed_list")
	p.metrics.IncrementDatabaseQueries("feed_list", err == nil)
	return posts, err
}

func (p *PostRepository) ListAds(ctx context.Context, pincode string, limit int) ([]*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{
		"pincode":  pincode,
		"category": model.CategoryAdvertisement,
		"limit":    limit,
	}
	query := `SELECT ` + postColumns + ` FROM posts p
		WHERE p.pincode = @pincode AND p.category = @category AND p.is_ad_approved = true
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT @limit`

	rows, err := p.db.Query(ctx, query, args)
	p.metrics.RecordDatabaseQueryDuration("ad_list", time.Since(start))
	if err != nil {
		p.metrics.IncrementDatabaseQueries("ad_list", false)
		p.log.Error("Error listing ads", slog.String("pincode", pincode), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	ads, err := p.collect(rows, "ad_list")
	p.metrics.IncrementDatabaseQueries("ad_list", err == nil)
	return ads, err
}

func (p *PostRepository) UpdateHotScore(ctx context.Context, id int64, score float64) error {
	args := pgx.NamedArgs{"id": id, "hot_score": score}
	query := `UPDATE posts SET hot_score = @hot_score WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error updating hot score", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

func (p *PostRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*model.Post, error) {
	args := pgx.NamedArgs{"since": pgtype.Timestamptz{Time: since, Valid: true}}
	query := `SELECT ` + postColumns + ` FROM posts p
		WHERE p.created_at >= @since
		ORDER BY p.created_at DESC, p.id DESC`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error listing posts for recompute", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return p.collect(rows, "recompute_list")
}
