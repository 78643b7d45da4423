package middleware

import (
	"net/http"
	"strings"

	"prdash/internal/services"

	"github.com/gin-gonic/gin"
)

const tokenKey = "github_token"

// RequireToken resolves the GitHub token for a request: an Authorization
// bearer header wins, otherwise the stored settings token is used. Requests
// with neither are rejected.
func RequireToken(settingsService *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		if token == "" {
			settings, err := settingsService.Get()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			token = settings.GitHubToken
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No GitHub token configured. Save a token or send an Authorization header.",
			})
			return
		}

		c.Set(tokenKey, token)
		c.Next()
	}
}

// GetToken returns the token resolved by RequireToken.
func GetToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func bearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
