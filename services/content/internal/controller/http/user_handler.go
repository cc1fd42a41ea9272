package http

import (
	"net/http"

	"post-app/pkg/logger"
	"post-app/pkg/middleware"
	"post-app/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	contentUseCase usecase.ContentUseCase
	logger         *logger.Logger
}

func NewUserHandler(contentUseCase usecase.ContentUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		contentUseCase: contentUseCase,
		logger:         logger,
	}
}

type UpdateUserRequest struct {
	UserName string `json:"userName"`
}

// ListUsers godoc
// @Summary      List users
// @Description  List every user without credentials or post lists
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.User
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.contentUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if len(users) == 0 {
		respondMessage(c, "No users found")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetMe godoc
// @Summary      Get current user
// @Description  Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	user, err := h.contentUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary      Update current user
// @Description  Change the authenticated user's name (at least 5 letters)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateUserRequest true "New user name"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentUseCase.UpdateUser(c.Request.Context(), userID, usecase.UpdateUserInput{UserName: req.UserName}); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, "User updated successfully")
}
