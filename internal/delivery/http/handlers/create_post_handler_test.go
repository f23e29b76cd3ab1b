package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"localbuzz-feed-service/internal/model"
)

func TestCreatePostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := setupRouter(t)
		m.post.On("CreatePost", mock.Anything, testUser, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
			return dto.AuthorID == testUser.ID &&
				dto.Category == model.CategoryProblem &&
				dto.Headline == "Streetlight out near the market" &&
				len(dto.Images) == 1 &&
				dto.Images[0].Position == 1
		})).Return(&model.PostDetailed{Post: &model.Post{ID: 11, Headline: "Streetlight out near the market"}}, nil)

		body := `{
			"category": "PROBLEM",
			"headline": "Streetlight out near the market",
			"images": [{"url": "https://images.example.com/a.jpg"}]
		}`
		rec := doRequest(router, http.MethodPost, "/api/v1/posts", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		var created model.PostDetailed
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, int64(11), created.Post.ID)
	})

	t.Run("Headline too short", func(t *testing.T) {
		router, m := setupRouter(t)

		body := `{"category": "NEWS", "headline": "hi"}`
		rec := doRequest(router, http.MethodPost, "/api/v1/posts", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.post.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Malformed body", func(t *testing.T) {
		router, _ := setupRouter(t)

		rec := doRequest(router, http.MethodPost, "/api/v1/posts", `{"category":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Bad pincode", func(t *testing.T) {
		router, _ := setupRouter(t)

		body := `{"category": "NEWS", "headline": "Valid headline", "pincode": "12ab"}`
		rec := doRequest(router, http.MethodPost, "/api/v1/posts", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
