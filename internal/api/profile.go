package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/internal/service"
)

// ProfileHandler handles onboarding and profile reads
type ProfileHandler struct {
	profile service.IProfileService
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(profile service.IProfileService) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.POST("", h.Onboard)
		profile.GET("", h.Get)
	}
}

// Onboard creates the initial user document
func (h *ProfileHandler) Onboard(c *gin.Context) {
	var req OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.profile.Onboard(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) || errors.Is(err, service.ErrEmptyEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, data)
}

// Get returns the whole user document
func (h *ProfileHandler) Get(c *gin.Context) {
	data, err := h.profile.UserData(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotOnboarded) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, data)
}
