package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
)

type ImageRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	images map[int64][]*model.PostImage
	nextID int64
}

func NewImageRepository(log *logger.Logger) *ImageRepository {
	return &ImageRepository{
		log:    log,
		images: make(map[int64][]*model.PostImage),
		nextID: 1,
	}
}

func (r *ImageRepository) Attach(ctx context.Context, postID int64, images []*model.PostImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	for _, img := range images {
		stored := &model.PostImage{
			ID:        r.nextID,
			PostID:    postID,
			URL:       img.URL,
			Position:  img.Position,
			CreatedAt: now,
		}
		r.nextID++
		r.images[postID] = append(r.images[postID], stored)
	}

	sort.Slice(r.images[postID], func(i, j int) bool {
		return r.images[postID][i].Position < r.images[postID][j].Position
	})
	return nil
}

func (r *ImageRepository) GetByPost(ctx context.Context, postID int64) ([]*model.PostImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.PostImage
	for _, img := range r.images[postID] {
		imgCopy := *img
		result = append(result, &imgCopy)
	}
	return result, nil
}

func (r *ImageRepository) GetByPosts(ctx context.Context, postIDs []int64) (map[int64][]*model.PostImage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[int64][]*model.PostImage, len(postIDs))
	for _, id := range postIDs {
		for _, img := range r.images[id] {
			imgCopy := *img
			result[id] = append(result[id], &imgCopy)
		}
	}
	return result, nil
}

func (r *ImageRepository) DetachAll(ctx context.Context, postID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.images, postID)
	return nil
}
