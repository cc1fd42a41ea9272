package http

import (
	"net/http"

	"post-app/pkg/logger"
	"post-app/pkg/middleware"
	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewPostHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

type CreatePostRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with an optional image. A failed image upload still creates the post.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Post title"
// @Param        description formData string false "Post description"
// @Param        image formData file false "Post image"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			h.logger.Warn("Failed to open uploaded image %s: %v", fileHeader.Filename, err)
		} else {
			defer file.Close()
			input.Image = &entity.ImageFile{
				Name:        fileHeader.Filename,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Body:        file,
			}
		}
	}

	if _, err := h.contentUseCase.CreatePost(c.Request.Context(), userID, input); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Post created successfully")
}

// UpdatePost godoc
// @Summary      Update post
// @Description  Accepted for compatibility; the post is left unchanged
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Router       /posts/{postId} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	if err := h.contentUseCase.UpdatePost(c.Request.Context(), userID, c.Param("postId")); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Post updated successfully")
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Delete a post together with its comments and image
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{postId} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	if err := h.contentUseCase.DeletePost(c.Request.Context(), userID, c.Param("postId")); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "Post deleted successfully")
}

// ToggleLike godoc
// @Summary      Like or unlike a post
// @Description  Likes the post when the caller has not liked it yet, otherwise removes the like
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{postId}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	liked, err := h.contentUseCase.ToggleLike(c.Request.Context(), userID, c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}

	if liked {
		respondMessage(c, "Successfully liked the post")
		return
	}
	respondMessage(c, "Successfully disliked the post")
}
