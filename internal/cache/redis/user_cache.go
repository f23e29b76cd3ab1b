package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
)

const (
	userCacheKeyPrefix = "user_token:"
	userCacheTTL       = 5 * time.Minute
)

type UserCache struct {
	client *Client
	log    *logger.Logger
}

func NewUserCache(client *Client, log *logger.Logger) *UserCache {
	return &UserCache{client: client, log: log}
}

// getKey hashes the token so raw credentials never land in redis keys.
func (u *UserCache) getKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return userCacheKeyPrefix + hex.EncodeToString(sum[:])
}

func (u *UserCache) GetByToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	err := u.client.Get(ctx, u.getKey(token), &user)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			return nil, custom_errors.ErrCacheMiss
		}
		u.log.Error("Failed to get user from cache", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}
	return &user, nil
}

func (u *UserCache) SetByToken(ctx context.Context, token string, user *model.User) error {
	if err := u.client.Set(ctx, u.getKey(token), user, userCacheTTL); err != nil {
		u.log.Error("Failed to set user cache",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set user cache: %w", err)
	}
	return nil
}
