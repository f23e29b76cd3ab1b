package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
)

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := *post
	newPost.ID = p.nextID
	p.nextID++

	if !newPost.CreatedAt.Valid {
		now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
		newPost.CreatedAt = now
		newPost.UpdatedAt = now
	}

	p.posts[newPost.ID] = &newPost

	result := newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Headline == nil && update.Description == nil && update.SponsorName == nil &&
		update.ButtonText == nil && update.ButtonURL == nil {
		return nil, custom_errors.ErrNoUpdateRows
	}

	if update.Headline != nil {
		post.Headline = *update.Headline
	}
	if update.Description != nil {
		post.Description = update.Description
	}
	if update.SponsorName != nil {
		post.SponsorName = update.SponsorName
	}
	if update.ButtonText != nil {
		post.ButtonText = update.ButtonText
	}
	if update.ButtonURL != nil {
		post.ButtonURL = update.ButtonURL
	}
	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}
	delete(p.posts, id)
	return nil
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// newestLess reports whether a sorts after b under (created_at, id) descending.
func newestLess(a, b *model.Post) bool {
	if !a.CreatedAt.Time.Equal(b.CreatedAt.Time) {
		return a.CreatedAt.Time.After(b.CreatedAt.Time)
	}
	return a.ID > b.ID
}

func hotLess(a, b *model.Post) bool {
	if a.HotScore != b.HotScore {
		return a.HotScore > b.HotScore
	}
	return newestLess(a, b)
}

func (p *PostRepository) ListFeed(ctx context.Context, filters model.FeedFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if filters.Pincode != nil && post.Pincode != *filters.Pincode {
			continue
		}
		if filters.Category != nil && post.Category != *filters.Category {
			continue
		}
		if filters.ExcludeCategory != nil && post.Category == *filters.ExcludeCategory {
			continue
		}
		if filters.AuthorID != nil && post.AuthorID != *filters.AuthorID {
			continue
		}
		if filters.CreatedOn != nil && !sameUTCDate(post.CreatedAt.Time, *filters.CreatedOn) {
			continue
		}
		if !p.afterCursor(post, filters) {
			continue
		}
		postCopy := *post
		result = append(result, &postCopy)
	}

	if filters.Order == model.OrderHot {
		sort.Slice(result, func(i, j int) bool { return hotLess(result[i], result[j]) })
	} else {
		sort.Slice(result, func(i, j int) bool { return newestLess(result[i], result[j]) })
	}

	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}

	return result, nil
}

// afterCursor reports whether post lies strictly past the cursor position
// in the requested ordering.
func (p *PostRepository) afterCursor(post *model.Post, filters model.FeedFilters) bool {
	if filters.AfterCreatedAt == nil || filters.AfterID == nil {
		return true
	}

	if filters.Order == model.OrderHot && filters.AfterHotScore != nil {
		if post.HotScore != *filters.AfterHotScore {
			return post.HotScore < *filters.AfterHotScore
		}
	}

	if !post.CreatedAt.Time.Equal(*filters.AfterCreatedAt) {
		return post.CreatedAt.Time.Before(*filters.AfterCreatedAt)
	}
	return post.ID < *filters.AfterID
}

func (p *PostRepository) ListAds(ctx context.Context, pincode string, limit int) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if post.Pincode != pincode || post.Category != model.CategoryAdvertisement || !post.IsAdApproved {
			continue
		}
		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool { return newestLess(result[i], result[j]) })

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (p *PostRepository) UpdateHotScore(ctx context.Context, id int64, score float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return custom_errors.ErrPostNotFound
	}
	post.HotScore = score
	return nil
}

func (p *PostRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if post.CreatedAt.Time.Before(since) {
			continue
		}
		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.Slice(result, func(i, j int) bool { return newestLess(result[i], result[j]) })
	return result, nil
}
