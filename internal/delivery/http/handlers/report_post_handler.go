package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"localbuzz-feed-service/internal/delivery/http/middleware"
	"localbuzz-feed-service/internal/model"
)

type PostReporter interface {
	ReportPost(ctx context.Context, postID int64, actor *model.User, reason *string) error
}

type ReportPostHandler struct {
	postService PostReporter
	validate    *validator.Validate
}

func NewReportPostHandler(postService PostReporter, validate *validator.Validate) *ReportPostHandler {
	return &ReportPostHandler{
		postService: postService,
		validate:    validate,
	}
}

type reportPostRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=1000"`
}

func (h *ReportPostHandler) ReportPost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || postID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	// The body is optional, a bare report is valid.
	var req reportPostRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := h.validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.postService.ReportPost(c.Request.Context(), postID, user, req.Reason); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reported": true})
}
