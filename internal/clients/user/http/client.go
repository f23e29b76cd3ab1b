package user_client_http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"localbuzz-feed-service/internal/clients/user"
	"localbuzz-feed-service/internal/config"
	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
)

type UserClient struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

func NewUserClient(cfg config.UserService, log *logger.Logger) user_client.Client {
	return &UserClient{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		log: log,
	}
}

func (c *UserClient) get(ctx context.Context, path string, bearer string) (*model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, custom_errors.ErrExternalServiceError
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("User service request failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.log.Debug("Failed to close user service response body", slog.String("error", closeErr.Error()))
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusUnauthorized:
		return nil, custom_errors.ErrUserNotFound
	default:
		c.log.Error("User service returned unexpected status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return nil, custom_errors.ErrExternalServiceError
	}

	var payload struct {
		Data model.User `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("Failed to decode user service response",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}

	return &payload.Data, nil
}

func (c *UserClient) Authenticate(ctx context.Context, token string) (*model.User, error) {
	return c.get(ctx, "/auth/verify", token)
}

func (c *UserClient) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return c.get(ctx, "/users/"+strconv.FormatInt(id, 10), "")
}

func (c *UserClient) GetUserByLocalBody(ctx context.Context, localBody string) (*model.User, error) {
	return c.get(ctx, fmt.Sprintf("/users/by-local-body/%s", url.PathEscape(localBody)), "")
}
