package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vinhph2/quizhub-api/internal/api/dto"
	"github.com/vinhph2/quizhub-api/internal/service"
)

// respondError maps service errors to HTTP responses. Only the fixed
// messages below ever reach the client; storage detail stays server-side.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTenantNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Detail: "Tenant not found"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Detail: "User not found"})
	case errors.Is(err, service.ErrNoQuestions):
		c.JSON(http.StatusNotFound, dto.Error{Detail: "No questions found for this tenant"})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.Error{Detail: "Username already exists in this tenant"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Error{Detail: "Invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Detail: "Internal server error"})
	}
}
