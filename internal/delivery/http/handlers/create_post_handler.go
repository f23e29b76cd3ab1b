package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"localbuzz-feed-service/internal/delivery/http/middleware"
	"localbuzz-feed-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, actor *model.User, post *model.CreatePostDTO) (*model.PostDetailed, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

type createPostRequest struct {
	Category    string            `json:"category" validate:"required"`
	Headline    string            `json:"headline" validate:"required,min=3,max=255"`
	Description *string           `json:"description" validate:"omitempty,max=5000"`
	Pincode     string            `json:"pincode" validate:"omitempty,len=6,numeric"`
	SponsorName *string           `json:"sponsor_name" validate:"omitempty,max=255"`
	ButtonText  *string           `json:"button_text" validate:"omitempty,max=50"`
	ButtonURL   *string           `json:"button_url" validate:"omitempty,url"`
	Images      []imageInputModel `json:"images" validate:"omitempty,max=9,dive"`
}

type imageInputModel struct {
	URL      string `json:"url" validate:"required,url"`
	Position int32  `json:"position" validate:"gte=1,lte=9"`
}

func (h *CreatePostHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
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

	images := make([]*model.PostImageInput, 0, len(req.Images))
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

	dto := &model.CreatePostDTO{
		AuthorID:    user.ID,
		Category:    model.PostCategory(req.Category),
		Headline:    req.Headline,
		Description: req.Description,
		Pincode:     req.Pincode,
		SponsorName: req.SponsorName,
		ButtonText:  req.ButtonText,
		ButtonURL:   req.ButtonURL,
		Images:      images,
	}

	created, err := h.postService.CreatePost(c.Request.Context(), user, dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
