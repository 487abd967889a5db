package handlers

import (
	"errors"
	"net/http"

	"github.com/bucketlistprince/hpm-tech-solutions/models"

	"github.com/gin-gonic/gin"
)

// responder writes the error contract `{"error": string, "details": object?}`.
// Details are only included when the development-mode flag is set so internals
// never leak in production responses.
type responder struct {
	dev bool
}

func (r responder) Error(c *gin.Context, status int, message string, details any) {
	body := gin.H{"error": message}
	if r.dev && details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// FromError maps a service error onto the HTTP taxonomy.
func (r responder) FromError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		r.Error(c, http.StatusBadRequest, validationErr.Error(), gin.H{"fields": validationErr.Fields})
	case errors.Is(err, models.ErrUnauthorized):
		r.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
	case errors.Is(err, models.ErrInvalidCredentials):
		r.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, models.ErrForbidden):
		r.Error(c, http.StatusForbidden, "Access denied", nil)
	case errors.Is(err, models.ErrNotFound):
		r.Error(c, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, models.ErrConflict):
		r.Error(c, http.StatusConflict, "Resource already exists", nil)
	default:
		r.Error(c, http.StatusInternalServerError, "Internal server error", gin.H{"cause": err.Error()})
	}
}
