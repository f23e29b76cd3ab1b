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

func TestUploadURLHandler(t *testing.T) {
	t.Run("Presigned target", func(t *testing.T) {
		router, m := setupRouter(t)
		m.store.On("GenerateUploadURL", mock.Anything, "image/png").Return(&model.UploadTarget{
			UploadURL: "https://bucket.s3.ap-south-1.amazonaws.com/post-images/abc.png?sig=xyz",
			PublicURL: "https://bucket.s3.ap-south-1.amazonaws.com/post-images/abc.png",
			Key:       "post-images/abc.png",
		}, nil)

		rec := doRequest(router, http.MethodGet, "/api/v1/storage/upload-url?content_type=image/png", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var target model.UploadTarget
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &target))
		assert.Equal(t, "post-images/abc.png", target.Key)
		assert.Contains(t, target.UploadURL, "sig=")
	})

	t.Run("Content type defaults to jpeg", func(t *testing.T) {
		router, m := setupRouter(t)
		m.store.On("GenerateUploadURL", mock.Anything, "image/jpeg").
			Return(&model.UploadTarget{Key: "post-images/def.jpg"}, nil)

		rec := doRequest(router, http.MethodGet, "/api/v1/storage/upload-url", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		m.store.AssertExpectations(t)
	})

	t.Run("Non-image rejected", func(t *testing.T) {
		router, m := setupRouter(t)

		rec := doRequest(router, http.MethodGet, "/api/v1/storage/upload-url?content_type=application/pdf", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.store.AssertNotCalled(t, "GenerateUploadURL", mock.Anything, mock.Anything)
	})
}
