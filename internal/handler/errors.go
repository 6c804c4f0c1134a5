package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratehub/store-ratings/internal/repository"
	"github.com/ratehub/store-ratings/internal/service"
)

// respondError maps a service or repository error to its HTTP status.
// Unrecognized errors become an opaque 500.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, repository.ErrInvalidSortKey),
		errors.Is(err, repository.ErrInvalidSortOrder),
		errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrCurrentPasswordIncorrect):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRatingsUsersOnly):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrStoreNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
