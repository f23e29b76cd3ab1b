package storage

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

// Provider hands out short-lived upload targets so clients push image
// bytes straight to object storage instead of through this service.
type Provider interface {
	GenerateUploadURL(ctx context.Context, contentType string) (*model.UploadTarget, error)
}
