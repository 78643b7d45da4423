package handlers

import (
	"errors"
	"net/http"

	"prdash/internal/github"
	"prdash/internal/services"

	"github.com/gin-gonic/gin"
)

// renderError maps pipeline errors onto HTTP statuses. The error message is
// always surfaced as-is; the core already produces user-facing strings.
func renderError(c *gin.Context, err error) {
	status := http.StatusBadGateway

	var rateLimited *github.RateLimitedError
	var invalidToken *services.InvalidTokenError
	switch {
	case errors.As(err, &rateLimited):
		status = http.StatusTooManyRequests
	case errors.As(err, &invalidToken):
		status = http.StatusUnauthorized
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
