package user_client_cached

import (
	"context"
	"errors"
	"log/slog"

	"localbuzz-feed-service/internal/cache"
	"localbuzz-feed-service/internal/clients/user"
	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	"localbuzz-feed-service/internal/model"
)

// UserClient caches token authentication, the hottest identity path: every
// request passes through it.
type UserClient struct {
	inner     user_client.Client
	userCache cache.UserCache
	log       *logger.Logger
	metrics   metrics.Provider
}

func NewUserClient(
	inner user_client.Client,
	userCache cache.UserCache,
	log *logger.Logger,
	metrics metrics.Provider,
) user_client.Client {
	return &UserClient{
		inner:     inner,
		userCache: userCache,
		log:       log,
		metrics:   metrics,
	}
}

func (c *UserClient) Authenticate(ctx context.Context, token string) (*model.User, error) {
	cached, err := c.userCache.GetByToken(ctx, token)
	if err == nil {
		c.metrics.IncrementCacheHits()
		return cached, nil
	}
	if errors.Is(err, custom_errors.ErrCacheMiss) {
		c.metrics.IncrementCacheMisses()
	}

	user, err := c.inner.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if setErr := c.userCache.SetByToken(ctx, token, user); setErr != nil {
		c.log.Warn("Failed to cache authenticated user",
			slog.Int64("user_id", user.ID),
			slog.String("error", setErr.Error()))
	}

	return user, nil
}

func (c *UserClient) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return c.inner.GetUser(ctx, id)
}

func (c *UserClient) GetUserByLocalBody(ctx context.Context, localBody string) (*model.User, error) {
	return c.inner.GetUserByLocalBody(ctx, localBody)
}
