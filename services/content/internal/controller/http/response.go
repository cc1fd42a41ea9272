package http

import (
	"errors"
	"net/http"

	"post-app/services/content/internal/entity"

	"github.com/gin-gonic/gin"
)

// errorStatus maps workflow errors onto the API's status codes. Missing
// entities answer 400 like bad input does.
func errorStatus(err error) int {
	switch {
	case entity.IsValidationError(err), entity.IsNotFound(err):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
