package feed_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"localbuzz-feed-service/internal/cache"
	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	"localbuzz-feed-service/internal/model"
)

// AdProviderCacheDecorator serves the ad slate from redis when fresh
// enough, falling through to the repository-backed provider on a miss.
type AdProviderCacheDecorator struct {
	provider AdProvider
	adCache  cache.AdCache
	log      *logger.Logger
	metrics  metrics.Provider
}

func NewAdProviderCacheDecorator(
	provider AdProvider,
	adCache cache.AdCache,
	log *logger.Logger,
	metrics metrics.Provider,
) AdProvider {
	return &AdProviderCacheDecorator{
		provider: provider,
		adCache:  adCache,
		log:      log,
		metrics:  metrics,
	}
}

func (d *AdProviderCacheDecorator) Slate(ctx context.Context, pincode string) ([]*model.Post, error) {
	start := time.Now()
	cached, err := d.adCache.GetSlate(ctx, pincode)
	d.metrics.RecordCacheOperationDuration("ad_slate_get", time.Since(start))
	if err == nil {
		d.metrics.IncrementCacheHits()
		return cached, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to read ad slate from cache",
			slog.String("pincode", pincode),
			slog.String("error", err.Error()))
	}

	ads, err := d.provider.Slate(ctx, pincode)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.adCache.SetSlate(ctx, pincode, ads); err != nil {
		d.log.Warn("Failed to cache ad slate",
			slog.String("pincode", pincode),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("ad_slate_set", time.Since(setStart))

	return ads, nil
}
