package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"localbuzz-feed-service/internal/logger"
	comment_service "localbuzz-feed-service/internal/service/comment"
	feed_service "localbuzz-feed-service/internal/service/feed"
	post_service "localbuzz-feed-service/internal/service/post"
	vote_service "localbuzz-feed-service/internal/service/vote"
	"localbuzz-feed-service/internal/storage"
)

var validate = validator.New()

// Handler bundles the route handlers behind a single registration point.
type Handler struct {
	feed       *FeedHandler
	createPost *CreatePostHandler
	getPost    *GetPostHandler
	updatePost *UpdatePostHandler
	deletePost *DeletePostHandler
	vote       *VoteHandler
	report     *ReportPostHandler
	comment    *CommentHandler
	uploadURL  *UploadURLHandler
	recompute  *RecomputeHandler
	log        *logger.Logger
}

func New(
	feedService feed_service.Service,
	postService post_service.Service,
	voteService vote_service.Service,
	commentService comment_service.Service,
	store storage.Provider,
	recomputeDays int,
	log *logger.Logger,
) *Handler {
	return &Handler{
		feed:       NewFeedHandler(feedService, validate),
		createPost: NewCreatePostHandler(postService, validate),
		getPost:    NewGetPostHandler(postService),
		updatePost: NewUpdatePostHandler(postService, validate),
		deletePost: NewDeletePostHandler(postService),
		vote:       NewVoteHandler(voteService),
		report:     NewReportPostHandler(postService, validate),
		comment:    NewCommentHandler(commentService, validate),
		uploadURL:  NewUploadURLHandler(store),
		recompute:  NewRecomputeHandler(postService, recomputeDays),
		log:        log,
	}
}

// RegisterRoutes mounts the API under /api/v1. Health stays outside the
// auth chain so probes need no token.
func (h *Handler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1", auth)

	api.GET("/feed", h.feed.GetFeed)
	api.GET("/feed/refresh", h.feed.RefreshFeed)

	api.POST("/posts", h.createPost.CreatePost)
	api.GET("/posts/:id", h.getPost.GetPost)
	api.PATCH("/posts/:id", h.updatePost.UpdatePost)
	api.DELETE("/posts/:id", h.deletePost.DeletePost)

	api.POST("/posts/:id/upvote", h.vote.Upvote)
	api.POST("/posts/:id/downvote", h.vote.Downvote)
	api.POST("/posts/:id/report", h.report.ReportPost)

	api.GET("/posts/:id/comments", h.comment.ListComments)
	api.POST("/posts/:id/comments", h.comment.CreateComment)
	api.PUT("/comments/:id", h.comment.UpdateComment)
	api.DELETE("/comments/:id", h.comment.DeleteComment)

	api.GET("/storage/upload-url", h.uploadURL.GetUploadURL)

	api.POST("/admin/hot-scores/recompute", h.recompute.Recompute)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
