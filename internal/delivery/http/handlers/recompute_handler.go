package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"localbuzz-feed-service/internal/delivery/http/middleware"
)

type HotScoreRecomputer interface {
	RecomputeHotScores(ctx context.Context, lookbackDays int) (int64, error)
}

type RecomputeHandler struct {
	postService HotScoreRecomputer
	defaultDays int
}

func NewRecomputeHandler(postService HotScoreRecomputer, defaultDays int) *RecomputeHandler {
	return &RecomputeHandler{
		postService: postService,
		defaultDays: defaultDays,
	}
}

type recomputeRequest struct {
	Days int `json:"days"`
}

func (h *RecomputeHandler) Recompute(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}
	if !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		return
	}

	var req recomputeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}
	days := req.Days
	if days <= 0 {
		days = h.defaultDays
	}

	updated, err := h.postService.RecomputeHotScores(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
