package post_service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/metrics"
	"localbuzz-feed-service/internal/model"
	"localbuzz-feed-service/internal/ranking"
	image_mock "localbuzz-feed-service/mocks/image"
	post_mock "localbuzz-feed-service/mocks/post"
	postgres_mock "localbuzz-feed-service/mocks/postgres"
	report_mock "localbuzz-feed-service/mocks/report"
	vote_mock "localbuzz-feed-service/mocks/vote"
)

type serviceMocks struct {
	postRepo   *post_mock.Repository
	voteRepo   *vote_mock.Repository
	imageRepo  *image_mock.Repository
	reportRepo *report_mock.Repository
	uow        *postgres_mock.UnitOfWork
	tx         *postgres_mock.Transaction
}

func newServiceWithMocks(t *testing.T) (*PostService, *serviceMocks) {
	t.Helper()
	m := &serviceMocks{
		postRepo:   new(post_mock.Repository),
		voteRepo:   new(vote_mock.Repository),
		imageRepo:  new(image_mock.Repository),
		reportRepo: new(report_mock.Repository),
		uow:        new(postgres_mock.UnitOfWork),
		tx:         new(postgres_mock.Transaction),
	}
	svc := NewPostService(m.postRepo, m.voteRepo, m.imageRepo, m.reportRepo, m.uow, logger.New("test"), metrics.NewNoopProvider())
	return svc, m
}

var actor = &model.User{ID: 42, LocalBody: "Kochi Corporation", Pincode: "682001"}

func TestPostService_CreatePost(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("ImageRepository").Return(m.imageRepo)
		m.tx.On("Rollback", mock.Anything).Return(nil).Maybe()

		created := &model.Post{
			ID:        1,
			AuthorID:  actor.ID,
			Category:  model.CategoryProblem,
			Headline:  "Streetlight out on MG Road",
			Pincode:   "682001",
			CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true},
		}
		seedScore := ranking.ComputeHotScore(0, 0, createdAt)
		m.postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(created, nil)
		m.postRepo.On("UpdateHotScore", mock.Anything, int64(1), seedScore).Return(nil)
		m.imageRepo.On("Attach", mock.Anything, int64(1), mock.AnythingOfType("[]*model.PostImage")).Return(nil)
		m.imageRepo.On("GetByPost", mock.Anything, int64(1)).Return([]*model.PostImage{{ID: 7, PostID: 1, URL: "https://img.example/1.jpg", Position: 1}}, nil)
		m.tx.On("Commit", mock.Anything).Return(nil)

		got, err := svc.CreatePost(context.Background(), actor, &model.CreatePostDTO{
			Category: model.CategoryProblem,
			Headline: "Streetlight out on MG Road",
			Pincode:  "682001",
			Images:   []*model.PostImageInput{{URL: "https://img.example/1.jpg", Position: 1}},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), got.Post.ID)
		assert.Equal(t, seedScore, got.Post.HotScore)
		assert.Len(t, got.Images, 1)
		m.postRepo.AssertExpectations(t)
		m.tx.AssertExpectations(t)
	})

	t.Run("Invalid category", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		_, err := svc.CreatePost(context.Background(), actor, &model.CreatePostDTO{
			Category: model.PostCategory("GOSSIP"),
			Headline: "Something",
		})
		assert.ErrorIs(t, err, custom_errors.ErrPostValidation)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Pincode defaults to the author's", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("ImageRepository").Return(m.imageRepo)
		m.tx.On("Rollback", mock.Anything).Return(nil).Maybe()
		m.tx.On("Commit", mock.Anything).Return(nil)

		m.postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
			return p.Pincode == actor.Pincode
		})).Return(&model.Post{ID: 2, AuthorID: actor.ID, Pincode: actor.Pincode, CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true}}, nil)
		m.postRepo.On("UpdateHotScore", mock.Anything, int64(2), mock.AnythingOfType("float64")).Return(nil)

		_, err := svc.CreatePost(context.Background(), actor, &model.CreatePostDTO{
			Category: model.CategoryNews,
			Headline: "New bus route announced",
		})
		require.NoError(t, err)
		m.postRepo.AssertExpectations(t)
	})
}

func TestPostService_GetPostByID(t *testing.T) {
	t.Run("Success with viewer vote", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		post := &model.Post{ID: 1, AuthorID: 9, Upvotes: 3, Downvotes: 1}
		m.postRepo.On("GetByID", mock.Anything, int64(1)).Return(post, nil)
		m.imageRepo.On("GetByPost", mock.Anything, int64(1)).Return([]*model.PostImage{}, nil)
		m.voteRepo.On("Get", mock.Anything, int64(1), actor.ID).Return(&model.Vote{ID: 4, PostID: 1, UserID: actor.ID, Value: model.VoteValueDown}, nil)

		got, err := svc.GetPostByID(context.Background(), 1, actor)
		require.NoError(t, err)

		assert.Equal(t, int64(3), got.Votes.Upvotes)
		assert.Equal(t, int64(1), got.Votes.Downvotes)
		assert.False(t, got.Votes.HasUpvoted)
		assert.True(t, got.Votes.HasDownvoted)
	})

	t.Run("Viewer without a vote", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, Upvotes: 2}, nil)
		m.imageRepo.On("GetByPost", mock.Anything, int64(1)).Return(nil, nil)
		m.voteRepo.On("Get", mock.Anything, int64(1), actor.ID).Return(nil, custom_errors.ErrVoteNotFound)

		got, err := svc.GetPostByID(context.Background(), 1, actor)
		require.NoError(t, err)
		assert.False(t, got.Votes.HasUpvoted)
		assert.False(t, got.Votes.HasDownvoted)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrPostNotFound)

		_, err := svc.GetPostByID(context.Background(), 404, actor)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Run("Forbidden for non-owner", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, AuthorID: 999}, nil)

		headline := "Edited"
		_, err := svc.UpdatePost(context.Background(), 1, actor, &model.UpdatePostDTO{Headline: &headline})
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Admin may edit any post", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		admin := &model.User{ID: 1000, IsAdmin: true}
		existing := &model.Post{ID: 1, AuthorID: 999, Headline: "Old"}
		m.postRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("ImageRepository").Return(m.imageRepo)
		m.tx.On("Rollback", mock.Anything).Return(nil).Maybe()
		m.tx.On("Commit", mock.Anything).Return(nil)

		headline := "Corrected headline"
		m.postRepo.On("Update", mock.Anything, int64(1), mock.AnythingOfType("*model.UpdatePostDTO")).
			Return(&model.Post{ID: 1, AuthorID: 999, Headline: headline}, nil)
		m.imageRepo.On("GetByPost", mock.Anything, int64(1)).Return(nil, nil)

		got, err := svc.UpdatePost(context.Background(), 1, admin, &model.UpdatePostDTO{Headline: &headline})
		require.NoError(t, err)
		assert.Equal(t, headline, got.Post.Headline)
	})

	t.Run("Image-only update tolerates no changed rows", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		existing := &model.Post{ID: 1, AuthorID: actor.ID, Headline: "Unchanged"}
		m.postRepo.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
		m.uow.On("Begin", mock.Anything).Return(m.tx, nil)
		m.tx.On("PostRepository").Return(m.postRepo)
		m.tx.On("ImageRepository").Return(m.imageRepo)
		m.tx.On("Rollback", mock.Anything).Return(nil).Maybe()
		m.tx.On("Commit", mock.Anything).Return(nil)

		m.postRepo.On("Update", mock.Anything, int64(1), mock.AnythingOfType("*model.UpdatePostDTO")).
			Return(nil, custom_errors.ErrNoUpdateRows)
		m.imageRepo.On("DetachAll", mock.Anything, int64(1)).Return(nil)
		m.imageRepo.On("Attach", mock.Anything, int64(1), mock.AnythingOfType("[]*model.PostImage")).Return(nil)
		m.imageRepo.On("GetByPost", mock.Anything, int64(1)).
			Return([]*model.PostImage{{ID: 9, PostID: 1, URL: "https://img.example/new.jpg", Position: 1}}, nil)

		got, err := svc.UpdatePost(context.Background(), 1, actor, &model.UpdatePostDTO{
			Images: []*model.PostImageInput{{URL: "https://img.example/new.jpg", Position: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, "Unchanged", got.Post.Headline)
		assert.Len(t, got.Images, 1)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	t.Run("Owner deletes", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, AuthorID: actor.ID}, nil)
		m.postRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

		assert.NoError(t, svc.DeletePost(context.Background(), 1, actor))
	})

	t.Run("Forbidden for others", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, AuthorID: 999}, nil)

		err := svc.DeletePost(context.Background(), 1, actor)
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		m.postRepo.AssertNotCalled(t, "Delete", mock.Anything, int64(1))
	})
}

func TestPostService_ReportPost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1}, nil)
		m.reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).
			Return(&model.Report{ID: 1, PostID: 1, UserID: actor.ID}, nil)

		assert.NoError(t, svc.ReportPost(context.Background(), 1, actor, nil))
	})

	t.Run("Duplicate report", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1}, nil)
		m.reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).
			Return(nil, custom_errors.ErrAlreadyReported)

		err := svc.ReportPost(context.Background(), 1, actor, nil)
		assert.ErrorIs(t, err, custom_errors.ErrAlreadyReported)
	})

	t.Run("Unknown post", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrPostNotFound)

		err := svc.ReportPost(context.Background(), 404, actor, nil)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		m.reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPostService_RecomputeHotScores(t *testing.T) {
	svc, m := newServiceWithMocks(t)
	createdAt := time.Now().UTC().Add(-48 * time.Hour)
	posts := []*model.Post{
		{ID: 1, Upvotes: 5, Downvotes: 2, CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true}},
		{ID: 2, Upvotes: 0, Downvotes: 4, CreatedAt: pgtype.Timestamptz{Time: createdAt.Add(time.Hour), Valid: true}},
	}
	m.postRepo.On("ListCreatedSince", mock.Anything, mock.AnythingOfType("time.Time")).Return(posts, nil)
	for _, p := range posts {
		score := ranking.ComputeHotScore(p.Upvotes, p.Downvotes, p.CreatedAt.Time)
		m.postRepo.On("UpdateHotScore", mock.Anything, p.ID, score).Return(nil)
	}

	updated, err := svc.RecomputeHotScores(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
	m.postRepo.AssertExpectations(t)
}
