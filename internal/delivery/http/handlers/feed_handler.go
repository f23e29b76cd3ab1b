package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"localbuzz-feed-service/internal/delivery/http/middleware"
	"localbuzz-feed-service/internal/model"
	feed_service "localbuzz-feed-service/internal/service/feed"
)

type FeedProvider interface {
	Feed(ctx context.Context, user *model.User, query feed_service.FeedQuery) (*model.FeedPage, error)
	Refresh(ctx context.Context, user *model.User, query feed_service.FeedQuery) ([]*model.PostDetailed, error)
}

type FeedHandler struct {
	feedService FeedProvider
	validate    *validator.Validate
}

func NewFeedHandler(feedService FeedProvider, validate *validator.Validate) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		validate:    validate,
	}
}

type feedRequest struct {
	Tab       string `form:"tab" validate:"required"`
	Pincode   string `form:"pincode" validate:"omitempty,len=6,numeric"`
	LocalBody string `form:"localBody"`
	Cursor    string `form:"cursor"`
	Limit     int    `form:"limit" validate:"omitempty,gte=1"`
}

func (h *FeedHandler) GetFeed(c *gin.Context) {
	var req feedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	page, err := h.feedService.Feed(c.Request.Context(), user, feed_service.FeedQuery{
		Tab:       req.Tab,
		Pincode:   req.Pincode,
		LocalBody: req.LocalBody,
		Cursor:    req.Cursor,
		Limit:     req.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *FeedHandler) RefreshFeed(c *gin.Context) {
	var req feedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	posts, err := h.feedService.Refresh(c.Request.Context(), user, feed_service.FeedQuery{
		Tab:       req.Tab,
		Pincode:   req.Pincode,
		LocalBody: req.LocalBody,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
