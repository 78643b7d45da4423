package handlers

import (
	"net/http"

	"prdash/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get returns the current settings. The token itself is never echoed back,
// only whether one is stored.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pollIntervalMs": settings.PollIntervalMS,
		"hasToken":       settings.GitHubToken != "",
		"updatedAt":      settings.UpdatedAt,
	})
}

type saveTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// SaveToken stores a new GitHub token
func (h *SettingsHandler) SaveToken(c *gin.Context) {
	var req saveTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	if _, err := h.settingsService.SaveToken(req.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

type savePollIntervalRequest struct {
	IntervalMS int64 `json:"intervalMs" binding:"required"`
}

// SavePollInterval stores a new poll interval
func (h *SettingsHandler) SavePollInterval(c *gin.Context) {
	var req savePollIntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "intervalMs is required"})
		return
	}

	settings, err := h.settingsService.SavePollInterval(req.IntervalMS)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pollIntervalMs": settings.PollIntervalMS})
}
