package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/internal/models"
	"github.com/nutritrack/backend/internal/service"
)

// LogHandler handles the daily food ledger
type LogHandler struct {
	tracker service.ITrackerService
}

// NewLogHandler creates a new LogHandler instance
func NewLogHandler(tracker service.ITrackerService) *LogHandler {
	return &LogHandler{tracker: tracker}
}

// RegisterRoutes registers the ledger routes
func (h *LogHandler) RegisterRoutes(router *gin.RouterGroup) {
	log := router.Group("/log")
	{
		log.POST("/food", h.AddFood)
		log.GET("/:date", h.GetDay)
		log.GET("/:date/summary", h.Summary)
	}
}

// AddFood appends a manually entered item to the ledger
func (h *LogHandler) AddFood(c *gin.Context) {
	var req AddFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, mealType, ok := resolveEntryTarget(c, req.Date, req.MealType)
	if !ok {
		return
	}

	item := models.NewFoodItem(req.Name, req.WeightG, models.Nutrients{
		Calories: req.Nutrients.Calories,
		Protein:  req.Nutrients.Protein,
		Carbs:    req.Nutrients.Carbs,
		Fat:      req.Nutrients.Fat,
	})

	data, err := h.tracker.LogFood(c.Request.Context(), date, mealType, item)
	if err != nil {
		if errors.Is(err, service.ErrNotOnboarded) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log food"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item": item,
		"date": date,
		"meal": data.Log[date],
	})
}

// GetDay returns the meal logged for a date (empty categories when nothing
// was logged)
func (h *LogHandler) GetDay(c *gin.Context) {
	date, err := service.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.tracker.MealForDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrNotOnboarded) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load log"})
		return
	}

	c.JSON(http.StatusOK, meal)
}

// Summary returns the totals for a date and, when a goal is set, the
// per-nutrient progress against it
func (h *LogHandler) Summary(c *gin.Context) {
	date, err := service.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.tracker.DaySummary(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, service.ErrNotOnboarded) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// resolveEntryTarget validates the date (defaulting to today) and meal type
// shared by manual and scan entries. On failure it writes the error response
// and returns ok=false.
func resolveEntryTarget(c *gin.Context, rawDate, rawMealType string) (string, models.MealType, bool) {
	date := rawDate
	if date == "" {
		date = service.Today()
	}
	date, err := service.ParseDate(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}

	mealType, err := models.ParseMealType(rawMealType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}

	return date, mealType, true
}
