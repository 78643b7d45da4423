package handlers

import (
	"net/http"

	"prdash/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	dashboardService *services.DashboardService
}

func NewAuthHandler(dashboardService *services.DashboardService) *AuthHandler {
	return &AuthHandler{
		dashboardService: dashboardService,
	}
}

type validateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateToken checks a personal access token and returns the viewer it
// belongs to
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req validateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	user, err := h.dashboardService.ValidateToken(c.Request.Context(), req.Token)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
