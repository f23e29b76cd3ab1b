package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	"localbuzz-feed-service/internal/model"
	"localbuzz-feed-service/internal/ranking"
	image_repository "localbuzz-feed-service/internal/repository/image"
	post_repository "localbuzz-feed-service/internal/repository/post"
	"localbuzz-feed-service/internal/repository/postgres"
	report_repository "localbuzz-feed-service/internal/repository/report"
	vote_repository "localbuzz-feed-service/internal/repository/vote"
)

type PostService struct {
	postRepo   post_repository.Repository
	voteRepo   vote_repository.Repository
	imageRepo  image_repository.Repository
	reportRepo report_repository.Repository
	uow        postgres.UnitOfWork
	log        *logger.Logger
	metrics    metrics.Provider
}

func NewPostService(
	postRepo post_repository.Repository,
	voteRepo vote_repository.Repository,
	imageRepo image_repository.Repository,
	reportRepo report_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
	metrics metrics.Provider,
) *PostService {
	return &PostService{
		postRepo:   postRepo,
		voteRepo:   voteRepo,
		imageRepo:  imageRepo,
		reportRepo: reportRepo,
		uow:        uow,
		log:        log,
		metrics:    metrics,
	}
}

func (s *PostService) rollback(ctx context.Context, tx postgres.Transaction, committed *bool) {
	if *committed || tx == nil {
		return
	}
	if err := tx.Rollback(ctx); err != nil && !strings.Contains(err.Error(), "tx is closed") {
		s.log.Error("Failed to rollback transaction", slog.String("error", err.Error()))
	}
}

func (s *PostService) CreatePost(ctx context.Context, actor *model.User, post *model.CreatePostDTO) (result *model.PostDetailed, err error) {
	defer func() {
		s.metrics.IncrementPostOperations("create", err == nil)
	}()

	if err := post.Category.IsValid(); err != nil {
		s.log.Debug("Rejected post with unknown category", slog.String("category", string(post.Category)))
		return nil, custom_errors.ErrPostValidation
	}

	pincode := post.Pincode
	if pincode == "" {
		pincode = actor.Pincode
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	var txCommitted bool
	defer s.rollback(ctx, tx, &txCommitted)

	postRepo := tx.PostRepository()
	imageRepo := tx.ImageRepository()

	newPost := &model.Post{
		AuthorID:    actor.ID,
		Category:    post.Category,
		Headline:    post.Headline,
		Description: post.Description,
		Pincode:     pincode,
		SponsorName: post.SponsorName,
		ButtonText:  post.ButtonText,
		ButtonURL:   post.ButtonURL,
	}

	createdPost, err := postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, err
	}

	// Seed the cached score from the authoritative creation timestamp so
	// a fresh post already sorts correctly on the Today tab.
	score := ranking.ComputeHotScore(0, 0, createdPost.CreatedAt.Time)
	if err = postRepo.UpdateHotScore(ctx, createdPost.ID, score); err != nil {
		s.log.Error("Failed to seed hot score", slog.Int64("post_id", createdPost.ID), slog.String("error", err.Error()))
		return nil, err
	}
	createdPost.HotScore = score

	var createdImages []*model.PostImage
	if len(post.Images) > 0 {
		images := make([]*model.PostImage, 0, len(post.Images))
		for _, img := range post.Images {
			images = append(images, &model.PostImage{
				PostID:   createdPost.ID,
				URL:      img.URL,
				Position: img.Position,
			})
		}
		if err = imageRepo.Attach(ctx, createdPost.ID, images); err != nil {
			s.log.Error("Failed to attach images to post", slog.String("error", err.Error()))
			return nil, err
		}
		createdImages, err = imageRepo.GetByPost(ctx, createdPost.ID)
		if err != nil {
			s.log.Error("Failed to load images by post", slog.String("error", err.Error()))
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return &model.PostDetailed{
		Post:   createdPost,
		Images: createdImages,
		Votes:  &model.VoteSummary{},
	}, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64, viewer *model.User) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := s.imageRepo.GetByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := &model.VoteSummary{
		Upvotes:   post.Upvotes,
		Downvotes: post.Downvotes,
	}

	if viewer != nil {
		vote, err := s.voteRepo.Get(ctx, post.ID, viewer.ID)
		switch {
		case err == nil:
			summary.HasUpvoted = vote.Value == model.VoteValueUp
			summary.HasDownvoted = vote.Value == model.VoteValueDown
		case !errors.Is(err, custom_errors.ErrVoteNotFound):
			return nil, err
		}
	}

	return &model.PostDetailed{Post: post, Images: images, Votes: summary}, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, actor *model.User, update *model.UpdatePostDTO) (result *model.PostDetailed, err error) {
	defer func() {
		s.metrics.IncrementPostOperations("update", err == nil)
	}()

	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != actor.ID && !actor.IsAdmin {
		return nil, custom_errors.ErrForbidden
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	var txCommitted bool
	defer s.rollback(ctx, tx, &txCommitted)

	postRepo := tx.PostRepository()
	imageRepo := tx.ImageRepository()

	updatedPost, err := postRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, custom_errors.ErrNoUpdateRows) && update.Images != nil {
			// Image-only update: the posts row itself stays untouched.
			updatedPost = existing
		} else {
			s.log.Error("Failed to update post", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, err
		}
	}

	if update.Images != nil {
		if err = imageRepo.DetachAll(ctx, id); err != nil {
			return nil, err
		}
		images := make([]*model.PostImage, 0, len(update.Images))
		for _, img := range update.Images {
			images = append(images, &model.PostImage{PostID: id, URL: img.URL, Position: img.Position})
		}
		if err = imageRepo.Attach(ctx, id, images); err != nil {
			return nil, err
		}
	}

	currentImages, err := imageRepo.GetByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return &model.PostDetailed{
		Post:   updatedPost,
		Images: currentImages,
		Votes:  &model.VoteSummary{Upvotes: updatedPost.Upvotes, Downvotes: updatedPost.Downvotes},
	}, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64, actor *model.User) (err error) {
	defer func() {
		s.metrics.IncrementPostOperations("delete", err == nil)
	}()

	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != actor.ID && !actor.IsAdmin {
		return custom_errors.ErrForbidden
	}

	return s.postRepo.Delete(ctx, id)
}

func (s *PostService) ReportPost(ctx context.Context, postID int64, actor *model.User, reason *string) error {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return err
	}

	_, err := s.reportRepo.Create(ctx, &model.Report{
		PostID: postID,
		UserID: actor.ID,
		Reason: reason,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrAlreadyReported) {
			s.log.Debug("Duplicate report rejected",
				slog.Int64("post_id", postID),
				slog.Int64("user_id", actor.ID))
		}
		return err
	}

	s.log.Info("Post reported",
		slog.Int64("post_id", postID),
		slog.Int64("user_id", actor.ID))
	return nil
}

func (s *PostService) RecomputeHotScores(ctx context.Context, lookbackDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -lookbackDays)

	posts, err := s.postRepo.ListCreatedSince(ctx, cutoff)
	if err != nil {
		s.log.Error("Failed to list posts for recompute", slog.String("error", err.Error()))
		return 0, err
	}

	var updated int64
	for _, post := range posts {
		score := ranking.ComputeHotScore(post.Upvotes, post.Downvotes, post.CreatedAt.Time)
		if err := s.postRepo.UpdateHotScore(ctx, post.ID, score); err != nil {
			s.log.Error("Failed to update hot score during recompute",
				slog.Int64("post_id", post.ID),
				slog.String("error", err.Error()))
			return updated, err
		}
		updated++
	}

	s.log.Info("Hot score recompute finished",
		slog.Int("lookback_days", lookbackDays),
		slog.Int64("updated", updated))
	return updated, nil
}
