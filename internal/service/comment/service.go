package comment_service

import (
	"context"
	"log/slog"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
	comment_repository "localbuzz-feed-service/internal/repository/comment"
	post_repository "localbuzz-feed-service/internal/repository/post"
)

type CommentService struct {
	commentRepo comment_repository.Repository
	postRepo    post_repository.Repository
	log         *logger.Logger
}

func NewCommentService(
	commentRepo comment_repository.Repository,
	postRepo post_repository.Repository,
	log *logger.Logger,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		log:         log,
	}
}

func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) Create(ctx context.Context, postID int64, actor *model.User, text string) (*model.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.Create(ctx, &model.Comment{
		PostID: postID,
		UserID: actor.ID,
		Text:   text,
	})
	if err != nil {
		s.log.Error("Failed to create comment",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return created, nil
}

func (s *CommentService) Update(ctx context.Context, commentID int64, actor *model.User, text string) (*model.Comment, error) {
	existing, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	// Only the comment's author may edit.
	if existing.UserID != actor.ID {
		return nil, custom_errors.ErrForbidden
	}

	return s.commentRepo.Update(ctx, commentID, text)
}

func (s *CommentService) Delete(ctx context.Context, commentID int64, actor *model.User) error {
	existing, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if existing.UserID != actor.ID {
		return custom_errors.ErrForbidden
	}

	return s.commentRepo.Delete(ctx, commentID)
}
