package user_client

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

// Client is the narrow view onto the identity provider. This service never
// issues or validates credentials itself.
type Client interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByLocalBody(ctx context.Context, localBody string) (*model.User, error)
}
