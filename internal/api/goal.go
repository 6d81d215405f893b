package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/internal/service"
)

// GoalHandler handles goal calculation and the goal lifecycle
type GoalHandler struct {
	goals   service.IGoalService
	profile service.IProfileService
}

// NewGoalHandler creates a new GoalHandler instance
func NewGoalHandler(goals service.IGoalService, profile service.IProfileService) *GoalHandler {
	return &GoalHandler{goals: goals, profile: profile}
}

// RegisterRoutes registers the goal routes
func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goal := router.Group("/goal")
	{
		goal.POST("/preview", h.Preview)
		goal.POST("", h.Set)
	}
}

// Preview calculates a goal from body metrics without persisting anything,
// so the form can show the target before the user commits.
func (h *GoalHandler) Preview(c *gin.Context) {
	var metrics service.BodyMetrics
	if err := c.ShouldBindJSON(&metrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goals.Calculate(metrics)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Set calculates a goal from body metrics and makes it the active goal.
func (h *GoalHandler) Set(c *gin.Context) {
	var metrics service.BodyMetrics
	if err := c.ShouldBindJSON(&metrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goals.Calculate(metrics)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := h.profile.SetGoal(c.Request.Context(), goal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save goal"})
		return
	}

	c.JSON(http.StatusOK, data)
}
