package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"localbuzz-feed-service/internal/storage"
)

type UploadURLHandler struct {
	store storage.Provider
}

func NewUploadURLHandler(store storage.Provider) *UploadURLHandler {
	return &UploadURLHandler{store: store}
}

func (h *UploadURLHandler) GetUploadURL(c *gin.Context) {
	contentType := c.Query("content_type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image uploads are supported"})
		return
	}

	target, err := h.store.GenerateUploadURL(c.Request.Context(), contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, target)
}
