package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
)

const (
	adSlateKeyPrefix = "ad_slate:"
	adSlateTTL       = 30 * time.Second
)

type AdCache struct {
	client *Client
	log    *logger.Logger
}

func NewAdCache(client *Client, log *logger.Logger) *AdCache {
	return &AdCache{client: client, log: log}
}

func (a *AdCache) getKey(pincode string) string {
	return adSlateKeyPrefix + pincode
}

func (a *AdCache) GetSlate(ctx context.Context, pincode string) ([]*model.Post, error) {
	var ads []*model.Post
	err := a.client.Get(ctx, a.getKey(pincode), &ads)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		a.log.Error("Failed to get ad slate from cache",
			slog.String("pincode", pincode),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get ad slate from cache: %w", err)
	}
	return ads, nil
}

func (a *AdCache) SetSlate(ctx context.Context, pincode string, ads []*model.Post) error {
	if err := a.client.Set(ctx, a.getKey(pincode), ads, adSlateTTL); err != nil {
		a.log.Error("Failed to set ad slate cache",
			slog.String("pincode", pincode),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set ad slate cache: %w", err)
	}
	return nil
}

func (a *AdCache) InvalidateSlate(ctx context.Context, pincode string) error {
	return a.client.Delete(ctx, a.getKey(pincode))
}
