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

type PostUpdater interface {
	UpdatePost(ctx context.Context, id int64, actor *model.User, update *model.UpdatePostDTO) (*model.PostDetailed, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

type updatePostRequest struct {
	Headline    *string           `json:"headline" validate:"omitempty,min=3,max=255"`
	Description *string           `json:"description" validate:"omitempty,max=5000"`
	SponsorName *string           `json:"sponsor_name" validate:"omitempty,max=255"`
	ButtonText  *string           `json:"button_text" validate:"omitempty,max=50"`
	ButtonURL   *string           `json:"button_url" validate:"omitempty,url"`
	Images      []imageInputModel `json:"images" validate:"omitempty,max=9,dive"`
}

func (h *UpdatePostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
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

	var images []*model.PostImageInput
	if req.Images != nil {
		images = make([]*model.PostImageInput, 0, len(req.Images))
		for i, img := range req.Images {
			position := img.Position
			if position < 1 {
				position = int32(i + 1)
			}
			images = append(images, &model.PostImageInput{
				URL:      img.URL,
				Position: position,
			})
		}
	}

	update := &model.UpdatePostDTO{
		Headline:    req.Headline,
		Description: req.Description,
		SponsorName: req.SponsorName,
		ButtonText:  req.ButtonText,
		ButtonURL:   req.ButtonURL,
		Images:      images,
	}

	updated, err := h.postService.UpdatePost(c.Request.Context(), id, user, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
