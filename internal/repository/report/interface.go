package report_repository

import (
	"context"

	"localbuzz-feed-service/internal/model"
)

type Repository interface {
	// Create inserts a report, failing with ErrAlreadyReported when the
	// (post, user) pair already reported.
	Create(ctx context.Context, report *model.Report) (*model.Report, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
}
