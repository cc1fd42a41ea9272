package http

import (
	"net/http"

	"post-app/pkg/logger"
	"post-app/pkg/middleware"
	"post-app/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

type CommentRequest struct {
	Content string `json:"content"`
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Param        request body CommentRequest true "Comment"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{postId}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreateCommentInput{Content: req.Content}
	if _, err := h.contentUseCase.CreateComment(c.Request.Context(), userID, c.Param("postId"), input); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Added your comment")
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId path string true "Comment ID"
// @Param        request body CommentRequest true "New content"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /comments/{commentId} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateCommentInput{Content: req.Content}
	if err := h.contentUseCase.UpdateComment(c.Request.Context(), c.Param("commentId"), input); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "comment updated successfully")
}
