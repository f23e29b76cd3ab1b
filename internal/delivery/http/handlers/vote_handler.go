package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"localbuzz-feed-service/internal/delivery/http/middleware"
	"localbuzz-feed-service/internal/model"
)

type VoteCaster interface {
	CastVote(ctx context.Context, postID, userID int64, direction model.VoteDirection) (*model.VoteSummary, error)
}

type VoteHandler struct {
	voteService VoteCaster
}

func NewVoteHandler(voteService VoteCaster) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

func (h *VoteHandler) Upvote(c *gin.Context) {
	h.castVote(c, model.VoteUp)
}

func (h *VoteHandler) Downvote(c *gin.Context) {
	h.castVote(c, model.VoteDown)
}

func (h *VoteHandler) castVote(c *gin.Context, direction model.VoteDirection) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || postID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	summary, err := h.voteService.CastVote(c.Request.Context(), postID, user.ID, direction)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
