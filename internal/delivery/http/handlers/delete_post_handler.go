package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"localbuzz-feed-service/internal/delivery/http/middleware"
	"localbuzz-feed-service/internal/model"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64, actor *model.User) error
}

type DeletePostHandler struct {
	postService PostDeleter
}

func NewDeletePostHandler(postService PostDeleter) *DeletePostHandler {
	return &DeletePostHandler{postService: postService}
}

func (h *DeletePostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id, user); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
