package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/model"
)

func TestVoteHandler(t *testing.T) {
	t.Run("Upvote returns summary", func(t *testing.T) {
		router, m := setupRouter(t)
		m.vote.On("CastVote", mock.Anything, int64(7), testUser.ID, model.VoteUp).
			Return(&model.VoteSummary{Upvotes: 4, Downvotes: 1, HasUpvoted: true}, nil)

		rec := doRequest(router, http.MethodPost, "/api/v1/posts/7/upvote", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var summary model.VoteSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, int64(4), summary.Upvotes)
		assert.True(t, summary.HasUpvoted)
		assert.False(t, summary.HasDownvoted)
	})

	t.Run("Downvote passes direction", func(t *testing.T) {
		router, m := setupRouter(t)
		m.vote.On("CastVote", mock.Anything, int64(7), testUser.ID, model.VoteDown).
			Return(&model.VoteSummary{Downvotes: 1, HasDownvoted: true}, nil)

		rec := doRequest(router, http.MethodPost, "/api/v1/posts/7/downvote", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		m.vote.AssertExpectations(t)
	})

	t.Run("Invalid post id", func(t *testing.T) {
		router, m := setupRouter(t)

		rec := doRequest(router, http.MethodPost, "/api/v1/posts/abc/upvote", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.vote.AssertNotCalled(t, "CastVote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Post not found", func(t *testing.T) {
		router, m := setupRouter(t)
		m.vote.On("CastVote", mock.Anything, int64(99), testUser.ID, model.VoteUp).
			Return(nil, custom_errors.ErrPostNotFound)

		rec := doRequest(router, http.MethodPost, "/api/v1/posts/99/upvote", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
