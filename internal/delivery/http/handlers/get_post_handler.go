package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"localbuzz-feed-service/internal/delivery/http/middleware"
	"localbuzz-feed-service/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64, viewer *model.User) (*model.PostDetailed, error)
}

type GetPostHandler struct {
	postService PostGetter
}

func NewGetPostHandler(postService PostGetter) *GetPostHandler {
	return &GetPostHandler{postService: postService}
}

func (h *GetPostHandler) GetPost(c *gin.Context) {
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

	post, err := h.postService.GetPostByID(c.Request.Context(), id, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
