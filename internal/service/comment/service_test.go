package comment_service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
	comment_mock "localbuzz-feed-service/mocks/comment"
	post_mock "localbuzz-feed-service/mocks/post"
)

var author = &model.User{ID: 42, Pincode: "682001"}

func TestCommentService_ListByPost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		commentRepo := new(comment_mock.Repository)
		postRepo := new(post_mock.Repository)
		svc := NewCommentService(commentRepo, postRepo, logger.New("test"))

		postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1}, nil)
		commentRepo.On("ListByPost", mock.Anything, int64(1)).
			Return([]*model.Comment{{ID: 1, PostID: 1, Text: "First!"}}, nil)

		comments, err := svc.ListByPost(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("Unknown post", func(t *testing.T) {
		commentRepo := new(comment_mock.Repository)
		postRepo := new(post_mock.Repository)
		svc := NewCommentService(commentRepo, postRepo, logger.New("test"))

		postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrPostNotFound)

		_, err := svc.ListByPost(context.Background(), 404)
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
		commentRepo.AssertNotCalled(t, "ListByPost", mock.Anything, mock.Anything)
	})
}

func TestCommentService_Create(t *testing.T) {
	commentRepo := new(comment_mock.Repository)
	postRepo := new(post_mock.Repository)
	svc := NewCommentService(commentRepo, postRepo, logger.New("test"))

	postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1}, nil)
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.PostID == 1 && c.UserID == author.ID && c.Text == "Any update on this?"
	})).Return(&model.Comment{ID: 10, PostID: 1, UserID: author.ID, Text: "Any update on this?"}, nil)

	comment, err := svc.Create(context.Background(), 1, author, "Any update on this?")
	require.NoError(t, err)
	assert.Equal(t, int64(10), comment.ID)
}

func TestCommentService_Update(t *testing.T) {
	t.Run("Author edits own comment", func(t *testing.T) {
		commentRepo := new(comment_mock.Repository)
		postRepo := new(post_mock.Repository)
		svc := NewCommentService(commentRepo, postRepo, logger.New("test"))

		commentRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&model.Comment{ID: 10, PostID: 1, UserID: author.ID, Text: "old"}, nil)
		commentRepo.On("Update", mock.Anything, int64(10), "new text").
			Return(&model.Comment{ID: 10, PostID: 1, UserID: author.ID, Text: "new text"}, nil)

		comment, err := svc.Update(context.Background(), 10, author, "new text")
		require.NoError(t, err)
		assert.Equal(t, "new text", comment.Text)
	})

	t.Run("Forbidden for another user", func(t *testing.T) {
		commentRepo := new(comment_mock.Repository)
		postRepo := new(post_mock.Repository)
		svc := NewCommentService(commentRepo, postRepo, logger.New("test"))

		commentRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&model.Comment{ID: 10, PostID: 1, UserID: 999}, nil)

		_, err := svc.Update(context.Background(), 10, author, "hijack")
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		commentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown comment", func(t *testing.T) {
		commentRepo := new(comment_mock.Repository)
		postRepo := new(post_mock.Repository)
		svc := NewCommentService(commentRepo, postRepo, logger.New("test"))

		commentRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrCommentNotFound)

		_, err := svc.Update(context.Background(), 404, author, "text")
		assert.ErrorIs(t, err, custom_errors.ErrCommentNotFound)
	})
}

func TestCommentService_Delete(t *testing.T) {
	t.Run("Author deletes own comment", func(t *testing.T) {
		commentRepo := new(comment_mock.Repository)
		postRepo := new(post_mock.Repository)
		svc := NewCommentService(commentRepo, postRepo, logger.New("test"))

		commentRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&model.Comment{ID: 10, PostID: 1, UserID: author.ID}, nil)
		commentRepo.On("Delete", mock.Anything, int64(10)).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 10, author))
	})

	t.Run("Forbidden for another user", func(t *testing.T) {
		commentRepo := new(comment_mock.Repository)
		postRepo := new(post_mock.Repository)
		svc := NewCommentService(commentRepo, postRepo, logger.New("test"))

		commentRepo.On("GetByID", mock.Anything, int64(10)).
			Return(&model.Comment{ID: 10, PostID: 1, UserID: 999}, nil)

		err := svc.Delete(context.Background(), 10, author)
		assert.ErrorIs(t, err, custom_errors.ErrForbidden)
		commentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
